package dto

// TestimonialResponse is a marketing testimonial.
type TestimonialResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Company  string `json:"company,omitempty"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"`
	Featured bool   `json:"featured"`
}

// PlanResponse is one pricing plan.
type PlanResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	MonthlyPrice string `json:"monthly_price"`
	Highlighted  bool   `json:"highlighted"`
}

// PlanFeatureResponse is one comparison row; Values align with the plan
// order in PlanComparisonResponse.Plans.
type PlanFeatureResponse struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// FeatureCategoryResponse groups comparison rows.
type FeatureCategoryResponse struct {
	Name     string                `json:"name"`
	Features []PlanFeatureResponse `json:"features"`
}

// PlanComparisonResponse is the full comparison table.
type PlanComparisonResponse struct {
	Plans             []PlanResponse            `json:"plans"`
	FeatureCategories []FeatureCategoryResponse `json:"feature_categories"`
}
