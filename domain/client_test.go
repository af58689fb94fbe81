package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ClientAggregationSuite struct {
	suite.Suite
}

func TestClientAggregationSuite(t *testing.T) {
	suite.Run(t, new(ClientAggregationSuite))
}

func (s *ClientAggregationSuite) record(name, email string, at time.Time) ContactRecord {
	return ContactRecord{
		Name:      name,
		Email:     email,
		Phone:     "0712345678",
		Timestamp: at,
	}
}

func (s *ClientAggregationSuite) TestDisjointEmailsYieldOneEntryPerRecord() {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	visits := []ContactRecord{
		s.record("Alice", "alice@example.com", base),
		s.record("Bob", "bob@example.com", base.Add(time.Hour)),
	}
	receipts := []ContactRecord{
		s.record("Carol", "carol@example.com", base.Add(2*time.Hour)),
	}

	roster := AggregateClients(visits, receipts)
	s.Require().Len(roster, 3)

	for _, entry := range roster {
		s.LessOrEqual(entry.VisitCount, 1)
		s.LessOrEqual(entry.ReceiptCount, 1)
		s.Equal(1, entry.VisitCount+entry.ReceiptCount)
	}
	s.Equal(1, roster[0].VisitCount)
	s.Equal(1, roster[2].ReceiptCount)
}

func (s *ClientAggregationSuite) TestCaseInsensitiveEmailsFoldIntoOne() {
	early := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	late := early.Add(48 * time.Hour)

	visits := []ContactRecord{s.record("Jane", "A@X.com", late)}
	receipts := []ContactRecord{s.record("J. Doe", "a@x.com", early)}

	roster := AggregateClients(visits, receipts)
	s.Require().Len(roster, 1)

	entry := roster[0]
	s.Equal(1, entry.VisitCount)
	s.Equal(1, entry.ReceiptCount)
	s.Equal(early, entry.FirstContactAt, "first contact must be the minimum timestamp regardless of order")
	// First-seen record wins the display values, visits are folded first.
	s.Equal("Jane", entry.Name)
	s.Equal("A@X.com", entry.Email)
}

func (s *ClientAggregationSuite) TestFirstContactIsMinimumAcrossAllRecords() {
	t0 := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	visits := []ContactRecord{
		s.record("Jane", "jane@example.com", t0.Add(3*time.Hour)),
		s.record("Jane", "jane@example.com", t0),
		s.record("Jane", "jane@example.com", t0.Add(time.Hour)),
	}
	receipts := []ContactRecord{
		s.record("Jane", "JANE@example.com", t0.Add(-time.Hour)),
	}

	roster := AggregateClients(visits, receipts)
	s.Require().Len(roster, 1)
	s.Equal(t0.Add(-time.Hour), roster[0].FirstContactAt)
	s.Equal(3, roster[0].VisitCount)
	s.Equal(1, roster[0].ReceiptCount)
}

func (s *ClientAggregationSuite) TestIdempotentOverSameSnapshots() {
	base := time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)
	visits := []ContactRecord{
		s.record("Alice", "alice@example.com", base),
		s.record("Bob", "bob@example.com", base.Add(time.Minute)),
		s.record("Alice", "ALICE@example.com", base.Add(2*time.Minute)),
	}
	receipts := []ContactRecord{
		s.record("Bob", "bob@example.com", base.Add(3*time.Minute)),
	}

	first := AggregateClients(visits, receipts)
	second := AggregateClients(visits, receipts)
	s.Equal(first, second)
}

func (s *ClientAggregationSuite) TestRosterFollowsFirstAppearanceOrder() {
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	visits := []ContactRecord{
		s.record("B", "b@example.com", base),
		s.record("A", "a@example.com", base),
	}
	receipts := []ContactRecord{
		s.record("C", "c@example.com", base),
		s.record("A", "a@example.com", base),
	}

	roster := AggregateClients(visits, receipts)
	s.Require().Len(roster, 3)
	s.Equal("b@example.com", roster[0].Email)
	s.Equal("a@example.com", roster[1].Email)
	s.Equal("c@example.com", roster[2].Email)
}

func (s *ClientAggregationSuite) TestRecordsWithoutEmailAreSkipped() {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	visits := []ContactRecord{
		s.record("Ghost", "", base),
		s.record("Alice", "alice@example.com", base),
	}

	roster := AggregateClients(visits, nil)
	s.Require().Len(roster, 1)
	s.Equal("alice@example.com", roster[0].Email)
}

func (s *ClientAggregationSuite) TestEmptyInputsYieldEmptyRoster() {
	s.Empty(AggregateClients(nil, nil))
	s.Empty(AggregateClients([]ContactRecord{}, []ContactRecord{}))
}
