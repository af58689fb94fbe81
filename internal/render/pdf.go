package render

import (
	"bytes"
	"image/png"
	"math"

	"github.com/go-pdf/fpdf"
)

// ExportPDF rasterizes the document and embeds the bitmap as the sole content
// of a single-page A4 portrait PDF. The bitmap is scaled uniformly to fit the
// page without distortion, centered horizontally and anchored to the top.
func ExportPDF(doc Document) ([]byte, error) {
	img, err := Rasterize(doc)
	if err != nil {
		return nil, err
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	imgW := float64(img.Bounds().Dx())
	imgH := float64(img.Bounds().Dy())
	ratio := math.Min(pageW/imgW, pageH/imgH)
	offsetX := (pageW - imgW*ratio) / 2

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("receipt", opts, &encoded)
	pdf.ImageOptions("receipt", offsetX, 0, imgW*ratio, imgH*ratio, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
