package transport

import "github.com/shopspring/decimal"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PropertyRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Location       string          `json:"location"`
	Area           string          `json:"area"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	Images         []string        `json:"images"`
	VirtualTourURL string          `json:"virtual_tour_url"`
	Bedrooms       *int            `json:"bedrooms"`
	Bathrooms      *int            `json:"bathrooms"`
	Sqft           *int            `json:"sqft"`
}

type PlotRequest struct {
	PlotNumber  string          `json:"plot_number"`
	Area        string          `json:"area"`
	Size        decimal.Decimal `json:"size"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
}

type VisitRequest struct {
	PlotID        string `json:"plot_id"`
	PropertyID    string `json:"property_id"`
	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	ClientPhone   string `json:"client_phone"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Message       string `json:"message"`
}

type VisitStatusRequest struct {
	Status string `json:"status"`
}

type ReceiptRequest struct {
	ClientName    string          `json:"client_name"`
	ClientEmail   string          `json:"client_email"`
	ClientPhone   string          `json:"client_phone"`
	PropertyID    string          `json:"property_id"`
	PlotID        string          `json:"plot_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	ReceiptDate   string          `json:"receipt_date"`
}

type ContentRequest struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
	IsActive *bool  `json:"is_active"`
}

type ProfileUpdateRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type PasswordUpdateRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
