package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plot represents a surveyed land plot offered for sale.
type Plot struct {
	ID          string          `json:"id"`
	PlotNumber  string          `json:"plot_number"`
	Area        string          `json:"area"`
	Size        decimal.Decimal `json:"size"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	Location    string          `json:"location"`
	Description string          `json:"description,omitempty"`
	Images      []string        `json:"images,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (p *Plot) IsAvailable() bool {
	return p != nil && p.Status == ListingStatusAvailable
}
