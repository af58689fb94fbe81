package domain

import "time"

// Site visit request statuses.
const (
	VisitStatusPending   = "pending"
	VisitStatusConfirmed = "confirmed"
	VisitStatusCompleted = "completed"
	VisitStatusCancelled = "cancelled"
)

// SiteVisit represents a visit request submitted through the public form.
type SiteVisit struct {
	ID            string    `json:"id"`
	PlotID        string    `json:"plot_id,omitempty"`
	PropertyID    string    `json:"property_id,omitempty"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	ClientPhone   string    `json:"client_phone"`
	PreferredDate string    `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"`
	Message       string    `json:"message,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ValidVisitStatus reports whether s is a persisted visit status.
func ValidVisitStatus(s string) bool {
	switch s {
	case VisitStatusPending, VisitStatusConfirmed, VisitStatusCompleted, VisitStatusCancelled:
		return true
	}
	return false
}
