package content

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/billflow/billflow-api/internal/application/dto"
	"github.com/billflow/billflow-api/internal/domain"
	"github.com/billflow/billflow-api/internal/domain/entity"
	"github.com/billflow/billflow-api/internal/domain/repository"
)

// UseCase serves the marketing site's read-only content.
type UseCase struct {
	repo repository.ContentRepository
}

// NewUseCase builds the usecase.
func NewUseCase(repo repository.ContentRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Testimonials returns all testimonials, or only the featured ones.
func (uc *UseCase) Testimonials(featuredOnly bool) ([]dto.TestimonialResponse, error) {
	list, err := uc.repo.Testimonials()
	if err != nil {
		return nil, fmt.Errorf("load testimonials: %w", err)
	}
	if featuredOnly {
		list = lo.Filter(list, func(t *entity.Testimonial, _ int) bool { return t.Featured })
	}
	return lo.Map(list, func(t *entity.Testimonial, _ int) dto.TestimonialResponse {
		return toTestimonialResponse(t)
	}), nil
}

// Testimonial returns one testimonial by id.
func (uc *UseCase) Testimonial(id int) (*dto.TestimonialResponse, error) {
	t, err := uc.repo.GetTestimonial(id)
	if err != nil {
		return nil, fmt.Errorf("load testimonial: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("%w: testimonial %d", domain.ErrNotFound, id)
	}
	resp := toTestimonialResponse(t)
	return &resp, nil
}

// Plans returns the pricing plans.
func (uc *UseCase) Plans() ([]dto.PlanResponse, error) {
	plans, err := uc.repo.Plans()
	if err != nil {
		return nil, fmt.Errorf("load plans: %w", err)
	}
	return lo.Map(plans, func(p *entity.Plan, _ int) dto.PlanResponse {
		return toPlanResponse(p)
	}), nil
}

// Plan returns one plan by id.
func (uc *UseCase) Plan(id int) (*dto.PlanResponse, error) {
	p, err := uc.repo.GetPlan(id)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: plan %d", domain.ErrNotFound, id)
	}
	resp := toPlanResponse(p)
	return &resp, nil
}

// PlanComparison returns plans plus the grouped feature rows.
func (uc *UseCase) PlanComparison() (*dto.PlanComparisonResponse, error) {
	plans, err := uc.Plans()
	if err != nil {
		return nil, err
	}
	categories, err := uc.repo.FeatureCategories()
	if err != nil {
		return nil, fmt.Errorf("load feature categories: %w", err)
	}
	out := &dto.PlanComparisonResponse{Plans: plans}
	for _, cat := range categories {
		features := make([]dto.PlanFeatureResponse, 0, len(cat.Features))
		for _, f := range cat.Features {
			features = append(features, dto.PlanFeatureResponse{Name: f.Name, Values: f.Values})
		}
		out.FeatureCategories = append(out.FeatureCategories, dto.FeatureCategoryResponse{
			Name:     cat.Name,
			Features: features,
		})
	}
	return out, nil
}

func toTestimonialResponse(t *entity.Testimonial) dto.TestimonialResponse {
	return dto.TestimonialResponse{
		ID:       t.ID,
		Name:     t.Name,
		Role:     t.Role,
		Company:  t.Company,
		Quote:    t.Quote,
		Rating:   t.Rating,
		Featured: t.Featured,
	}
}

func toPlanResponse(p *entity.Plan) dto.PlanResponse {
	return dto.PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		MonthlyPrice: p.MonthlyPrice,
		Highlighted:  p.Highlighted,
	}
}
