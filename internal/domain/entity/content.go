package entity

// Testimonial is a customer quote shown on the marketing site.
type Testimonial struct {
	ID       int
	Name     string
	Role     string
	Company  string
	Quote    string
	Rating   int
	Featured bool
}

// Plan is a pricing plan in the comparison table.
type Plan struct {
	ID           int
	Name         string
	Description  string
	MonthlyPrice string // display string, e.g. "$19"
	Highlighted  bool
}

// PlanFeature is one row of the comparison table. Values align with the
// plan order returned by the content store.
type PlanFeature struct {
	Name   string
	Values []string
}

// FeatureCategory groups comparison rows under a heading.
type FeatureCategory struct {
	Name     string
	Features []PlanFeature
}
