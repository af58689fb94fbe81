package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisitSubject(t *testing.T) {
	withProperty := &VisitWithRelations{Property: &PropertySummary{ID: "p1", Name: "Sunset Villas"}}
	assert.Equal(t, "Sunset Villas", withProperty.Subject())

	withPlot := &VisitWithRelations{Plot: &PlotSummary{ID: "pl1", PlotNumber: "B-12"}}
	assert.Equal(t, "Plot B-12", withPlot.Subject())

	// Property wins when both relations are somehow present.
	both := &VisitWithRelations{
		Property: &PropertySummary{Name: "Sunset Villas"},
		Plot:     &PlotSummary{PlotNumber: "B-12"},
	}
	assert.Equal(t, "Sunset Villas", both.Subject())

	assert.Equal(t, "N/A", (&VisitWithRelations{}).Subject())
	assert.Equal(t, "", (*VisitWithRelations)(nil).Subject())
}
