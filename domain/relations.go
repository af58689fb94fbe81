package domain

// PropertySummary carries the columns joined alongside visit and receipt rows.
type PropertySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlotSummary carries the plot columns joined alongside visit and receipt rows.
type PlotSummary struct {
	ID         string `json:"id"`
	PlotNumber string `json:"plot_number"`
}

// VisitWithRelations is a site visit row with its optional listing relation resolved.
type VisitWithRelations struct {
	SiteVisit
	Property *PropertySummary `json:"property,omitempty"`
	Plot     *PlotSummary     `json:"plot,omitempty"`
}

// ReceiptWithRelations is a receipt row with its optional listing relation resolved.
type ReceiptWithRelations struct {
	Receipt
	Property *PropertySummary `json:"property,omitempty"`
	Plot     *PlotSummary     `json:"plot,omitempty"`
}

// Subject renders the related listing as a single display string, mirroring the
// admin tables which show either a property name or a plot number.
func (v *VisitWithRelations) Subject() string {
	switch {
	case v == nil:
		return ""
	case v.Property != nil:
		return v.Property.Name
	case v.Plot != nil:
		return "Plot " + v.Plot.PlotNumber
	default:
		return "N/A"
	}
}
