package domain

import (
	"strings"
	"time"
)

// ContactRecord is a normalized view over a site visit or receipt row. It is
// projected at query time and never persisted.
type ContactRecord struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Timestamp time.Time `json:"timestamp"`
}

// ClientSummary is one roster entry produced by AggregateClients.
type ClientSummary struct {
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	FirstContactAt time.Time `json:"first_contact_at"`
	VisitCount     int       `json:"visit_count"`
	ReceiptCount   int       `json:"receipt_count"`
}

// AggregateClients folds visit and receipt contact records into a deduplicated
// client roster keyed by lowercased email. All visits are processed before all
// receipts, so when the same email appears in both sources the first-seen
// name, phone and email casing are retained. FirstContactAt is the minimum
// timestamp across every record folded into the entry. Records with an empty
// email have no identity to fold on and are skipped.
//
// The result is ordered by first appearance across the two input sequences.
// The fold is pure: re-running it on the same snapshots yields the same roster.
func AggregateClients(visits, receipts []ContactRecord) []ClientSummary {
	index := make(map[string]int)
	roster := make([]ClientSummary, 0, len(visits)+len(receipts))

	fold := func(records []ContactRecord, isVisit bool) {
		for _, rec := range records {
			if rec.Email == "" {
				continue
			}
			key := strings.ToLower(rec.Email)
			i, seen := index[key]
			if !seen {
				entry := ClientSummary{
					Name:           rec.Name,
					Email:          rec.Email,
					Phone:          rec.Phone,
					FirstContactAt: rec.Timestamp,
				}
				if isVisit {
					entry.VisitCount = 1
				} else {
					entry.ReceiptCount = 1
				}
				index[key] = len(roster)
				roster = append(roster, entry)
				continue
			}
			if isVisit {
				roster[i].VisitCount++
			} else {
				roster[i].ReceiptCount++
			}
			if rec.Timestamp.Before(roster[i].FirstContactAt) {
				roster[i].FirstContactAt = rec.Timestamp
			}
		}
	}

	fold(visits, true)
	fold(receipts, false)
	return roster
}
