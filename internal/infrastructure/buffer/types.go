package buffer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EntitySiteVisit = "site_visit"

	OperationCreate = "create"
)

// Item represents a public submission that should be replayed once the
// primary datastore is reachable again.
type Item struct {
	ID        string          `json:"id"`
	Entity    string          `json:"entity"`
	Operation string          `json:"operation"`
	Data      json.RawMessage `json:"data"`
	Retries   int             `json:"retries"`
	Timestamp time.Time       `json:"timestamp"`

	bucketKey []byte
}

func (i *Item) normalize() {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now()
	}
}
