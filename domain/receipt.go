package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted on receipts.
const (
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodMobileMoney  = "mobile_money"
	PaymentMethodCheque       = "cheque"
	PaymentMethodOther        = "other"
)

// Receipt represents a recorded payment. Receipts are created by an admin and
// immutable afterwards; there is no update or delete path.
type Receipt struct {
	ID            string          `json:"id"`
	ClientName    string          `json:"client_name"`
	ClientEmail   string          `json:"client_email"`
	ClientPhone   string          `json:"client_phone"`
	PropertyID    string          `json:"property_id,omitempty"`
	PlotID        string          `json:"plot_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	ReceiptDate   string          `json:"receipt_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CompanyInfo decorates rendered receipts. It is static configuration, never persisted.
type CompanyInfo struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodMobileMoney,
		PaymentMethodCheque, PaymentMethodOther:
		return true
	}
	return false
}
