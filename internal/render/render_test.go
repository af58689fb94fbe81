package render

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/eliteprops/backend/domain"
)

var testCompany = domain.CompanyInfo{
	Name:    "Elite Properties",
	Contact: "+254 700 000 000",
	Address: "Nairobi, Kenya",
}

func testReceipt() domain.Receipt {
	return domain.Receipt{
		ID:            "r-1",
		ClientName:    "Jane Doe",
		ClientEmail:   "jane@example.com",
		ClientPhone:   "0712345678",
		Amount:        decimal.NewFromInt(150000),
		PaymentMethod: domain.PaymentMethodCash,
		TransactionID: "TXN-001",
		ReceiptDate:   "2025-03-17",
	}
}

type ReceiptRenderSuite struct {
	suite.Suite
}

func TestReceiptRenderSuite(t *testing.T) {
	suite.Run(t, new(ReceiptRenderSuite))
}

func (s *ReceiptRenderSuite) TestDocumentContainsLiteralValues() {
	doc := BuildDocument(testReceipt(), testCompany)
	text := doc.Text()

	s.Contains(text, "TXN-001")
	s.Contains(text, "17 March 2025")
	s.Contains(text, "Jane Doe")
	s.Contains(text, "KES 150,000.00")
	s.Contains(text, "PAYMENT RECEIPT")
	s.Contains(text, "Elite Properties")
	s.Contains(text, "Thank you for your business!")
}

func (s *ReceiptRenderSuite) TestBlockOrderIsFixed() {
	doc := BuildDocument(testReceipt(), testCompany)

	s.Require().Len(doc.Details, 3)
	s.Equal("Receipt Number:", doc.Details[0].Label)
	s.Equal("Date:", doc.Details[1].Label)
	s.Equal("Payment Method:", doc.Details[2].Label)

	s.Require().Len(doc.Client, 3)
	s.Equal("jane@example.com", doc.Client[1].Value)
	s.Equal("Total Amount:", doc.TotalLabel)
}

func (s *ReceiptRenderSuite) TestFilenameIsDeterministic() {
	s.Equal("receipt-TXN-001.pdf", Filename("TXN-001"))
}

func (s *ReceiptRenderSuite) TestExportProducesSinglePagePDF() {
	doc := BuildDocument(testReceipt(), testCompany)

	out, err := ExportPDF(doc)
	s.Require().NoError(err)
	s.Require().NotEmpty(out)
	s.True(bytes.HasPrefix(out, []byte("%PDF-")), "export must be a PDF document")
}

func (s *ReceiptRenderSuite) TestRasterizeUsesSupersampledA4Canvas() {
	img, err := Rasterize(BuildDocument(testReceipt(), testCompany))
	s.Require().NoError(err)
	s.Equal(basePageW*rasterScale, img.Bounds().Dx())
	s.Equal(basePageH*rasterScale, img.Bounds().Dy())
}

func TestFormatKESFractionDigits(t *testing.T) {
	amount := decimal.NewFromInt(150000)

	// Receipt view keeps two fraction digits, list views keep none.
	require.Equal(t, "KES 150,000.00", FormatKES(amount, 2))
	require.Equal(t, "KES 150,000", FormatKES(amount, 0))
	require.Equal(t, "KES 2,500,000.50", FormatKES(decimal.NewFromFloat(2500000.50), 2))
}

func TestFormatLongDate(t *testing.T) {
	require.Equal(t, "17 March 2025", FormatLongDate("2025-03-17"))
	require.Equal(t, "1 January 2026", FormatLongDate("2026-01-01T00:00:00Z"))
	// Unparseable input falls through untouched.
	require.Equal(t, "not-a-date", FormatLongDate("not-a-date"))
}
