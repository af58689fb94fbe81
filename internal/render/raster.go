package render

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// A4 portrait at 72dpi, supersampled 2x to keep text sharp after PDF scaling.
const (
	rasterScale = 2
	basePageW   = 595
	basePageH   = 842
	baseMargin  = 56
)

type faceSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

var (
	fontsOnce sync.Once
	fonts     faceSet
	fontsErr  error
)

func loadFonts() (faceSet, error) {
	fontsOnce.Do(func() {
		regular, err := opentype.Parse(goregular.TTF)
		if err != nil {
			fontsErr = err
			return
		}
		bold, err := opentype.Parse(gobold.TTF)
		if err != nil {
			fontsErr = err
			return
		}
		fonts = faceSet{regular: regular, bold: bold}
	})
	return fonts, fontsErr
}

type rasterizer struct {
	img    *image.RGBA
	faces  faceSet
	margin int
	width  int
}

func (r *rasterizer) face(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size * rasterScale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func (r *rasterizer) textWidth(face font.Face, text string) int {
	return font.MeasureString(face, text).Ceil()
}

func (r *rasterizer) draw(face font.Face, text string, x, baseline int, shade uint8) {
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(color.RGBA{shade, shade, shade, 255}),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}

func (r *rasterizer) drawCentered(face font.Face, text string, baseline int, shade uint8) {
	x := (r.width - r.textWidth(face, text)) / 2
	r.draw(face, text, x, baseline, shade)
}

// drawRow puts the label at the left margin and the value flush right.
func (r *rasterizer) drawRow(labelFace, valueFace font.Face, line Line, baseline int) {
	r.draw(labelFace, line.Label, r.margin, baseline, 96)
	valueX := r.width - r.margin - r.textWidth(valueFace, line.Value)
	r.draw(valueFace, line.Value, valueX, baseline, 16)
}

func (r *rasterizer) rule(y, thickness int) {
	rect := image.Rect(r.margin, y, r.width-r.margin, y+thickness)
	draw.Draw(r.img, rect, image.NewUniform(color.RGBA{180, 180, 180, 255}), image.Point{}, draw.Src)
}

// Rasterize draws the receipt layout onto a white A4-proportioned bitmap at a
// fixed 2x supersampling scale.
func Rasterize(doc Document) (*image.RGBA, error) {
	set, err := loadFonts()
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, basePageW*rasterScale, basePageH*rasterScale))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := &rasterizer{
		img:    img,
		faces:  set,
		margin: baseMargin * rasterScale,
		width:  basePageW * rasterScale,
	}

	titleFace, err := r.face(set.bold, 22)
	if err != nil {
		return nil, err
	}
	headingFace, err := r.face(set.bold, 15)
	if err != nil {
		return nil, err
	}
	bodyFace, err := r.face(set.regular, 12)
	if err != nil {
		return nil, err
	}
	valueFace, err := r.face(set.bold, 12)
	if err != nil {
		return nil, err
	}
	totalFace, err := r.face(set.bold, 19)
	if err != nil {
		return nil, err
	}
	footerFace, err := r.face(set.regular, 10)
	if err != nil {
		return nil, err
	}

	y := 90 * rasterScale
	lineGap := 24 * rasterScale

	// Company identity block, centered.
	r.drawCentered(titleFace, doc.CompanyName, y, 16)
	y += 28 * rasterScale
	r.drawCentered(bodyFace, doc.CompanyContact, y, 96)
	y += 18 * rasterScale
	r.drawCentered(bodyFace, doc.CompanyAddress, y, 96)
	y += 30 * rasterScale

	// Titled divider.
	r.rule(y, 2*rasterScale)
	y += 30 * rasterScale
	r.drawCentered(headingFace, doc.Title, y, 16)
	y += 14 * rasterScale
	r.rule(y, 2*rasterScale)
	y += 40 * rasterScale

	// Details block.
	for _, line := range doc.Details {
		r.drawRow(bodyFace, valueFace, line, y)
		y += lineGap
	}
	y += 16 * rasterScale

	// Client information block.
	r.draw(headingFace, doc.ClientHeading, r.margin, y, 16)
	y += lineGap
	for _, line := range doc.Client {
		r.draw(bodyFace, line.Label+" "+line.Value, r.margin, y, 48)
		y += 18 * rasterScale
	}
	y += 20 * rasterScale

	// Total amount line.
	r.rule(y, 2*rasterScale)
	y += 34 * rasterScale
	r.draw(headingFace, doc.TotalLabel, r.margin, y, 16)
	totalX := r.width - r.margin - r.textWidth(totalFace, doc.TotalValue)
	r.draw(totalFace, doc.TotalValue, totalX, y, 16)
	y += 30 * rasterScale

	// Footer.
	r.rule(y, rasterScale)
	y += 26 * rasterScale
	for _, line := range doc.Footer {
		r.drawCentered(footerFace, line, y, 128)
		y += 16 * rasterScale
	}

	return img, nil
}
