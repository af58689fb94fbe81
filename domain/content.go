package domain

import "time"

// Website content types.
const (
	ContentTypeBanner       = "banner"
	ContentTypeAnnouncement = "announcement"
	ContentTypeCompanyInfo  = "company_info"
)

// WebsiteContent represents an editable piece of public site content.
type WebsiteContent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidContentType reports whether t is a persisted content type.
func ValidContentType(t string) bool {
	switch t {
	case ContentTypeBanner, ContentTypeAnnouncement, ContentTypeCompanyInfo:
		return true
	}
	return false
}
