package render

import (
	"fmt"
	"strings"

	"github.com/eliteprops/backend/domain"
)

// Line is one label/value row of the receipt layout.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Document is the structured receipt representation. Block order is fixed:
// company identity, titled divider, details, client information, total, footer.
type Document struct {
	CompanyName    string `json:"company_name"`
	CompanyContact string `json:"company_contact"`
	CompanyAddress string `json:"company_address"`

	Title   string `json:"title"`
	Details []Line `json:"details"`

	ClientHeading string `json:"client_heading"`
	Client        []Line `json:"client"`

	TotalLabel string `json:"total_label"`
	TotalValue string `json:"total_value"`

	Footer []string `json:"footer"`
}

// BuildDocument lays out a receipt for on-screen display, printing and export.
func BuildDocument(receipt domain.Receipt, company domain.CompanyInfo) Document {
	return Document{
		CompanyName:    company.Name,
		CompanyContact: company.Contact,
		CompanyAddress: company.Address,
		Title:          "PAYMENT RECEIPT",
		Details: []Line{
			{Label: "Receipt Number:", Value: receipt.TransactionID},
			{Label: "Date:", Value: FormatLongDate(receipt.ReceiptDate)},
			{Label: "Payment Method:", Value: receipt.PaymentMethod},
		},
		ClientHeading: "Client Information",
		Client: []Line{
			{Label: "Name:", Value: receipt.ClientName},
			{Label: "Email:", Value: receipt.ClientEmail},
			{Label: "Phone:", Value: receipt.ClientPhone},
		},
		TotalLabel: "Total Amount:",
		TotalValue: FormatKES(receipt.Amount, 2),
		Footer: []string{
			"Thank you for your business!",
			"This is a computer-generated receipt.",
		},
	}
}

// Filename derives the deterministic export name for a receipt download.
func Filename(transactionID string) string {
	return fmt.Sprintf("receipt-%s.pdf", transactionID)
}

// Text flattens the document into plain text, preserving block order. Used by
// the printable view and by anything that needs to search rendered content.
func (d Document) Text() string {
	var b strings.Builder
	writeln := func(parts ...string) {
		b.WriteString(strings.Join(parts, " "))
		b.WriteByte('\n')
	}

	writeln(d.CompanyName)
	writeln(d.CompanyContact)
	writeln(d.CompanyAddress)
	writeln(d.Title)
	for _, line := range d.Details {
		writeln(line.Label, line.Value)
	}
	writeln(d.ClientHeading)
	for _, line := range d.Client {
		writeln(line.Label, line.Value)
	}
	writeln(d.TotalLabel, d.TotalValue)
	for _, line := range d.Footer {
		writeln(line)
	}
	return b.String()
}
