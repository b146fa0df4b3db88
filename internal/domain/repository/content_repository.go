package repository

import "github.com/billflow/billflow-api/internal/domain/entity"

// ContentRepository serves the read-only marketing content (testimonials
// and the pricing plan comparison). GetTestimonial and GetPlan return
// (nil, nil) when the id is unknown.
type ContentRepository interface {
	Testimonials() ([]*entity.Testimonial, error)
	GetTestimonial(id int) (*entity.Testimonial, error)
	Plans() ([]*entity.Plan, error)
	GetPlan(id int) (*entity.Plan, error)
	FeatureCategories() ([]*entity.FeatureCategory, error)
}
