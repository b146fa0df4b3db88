package contact

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/billflow/billflow-api/internal/application/dto"
	"github.com/billflow/billflow-api/internal/domain"
	"github.com/billflow/billflow-api/internal/domain/entity"
)

// Keep in sync with the marketing site's client-side check.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minMessageLength = 10

// Mailer dispatches the two contact emails (support notification and
// submitter confirmation).
type Mailer interface {
	SendContact(ctx context.Context, msg *entity.ContactMessage) error
}

// UseCase validates contact form submissions and hands them to the mailer.
type UseCase struct {
	mailer Mailer
}

// NewUseCase builds the usecase.
func NewUseCase(mailer Mailer) *UseCase {
	return &UseCase{mailer: mailer}
}

// Submit validates the form and sends the emails. Validation failures are
// raised before the mailer is touched; mailer failures surface as external
// service errors.
func (uc *UseCase) Submit(ctx context.Context, in dto.ContactRequest) (*dto.ContactResponse, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Subject) == "" ||
		strings.TrimSpace(in.Message) == "" {
		return nil, fmt.Errorf("%w: name, email, subject and message are required", domain.ErrInvalidInput)
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: invalid email address format", domain.ErrInvalidInput)
	}
	if len(in.Message) < minMessageLength {
		return nil, fmt.Errorf("%w: message must be at least %d characters", domain.ErrInvalidInput, minMessageLength)
	}

	msg := &entity.ContactMessage{
		Reference:   uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Subject:     in.Subject,
		Message:     in.Message,
		SubmittedAt: time.Now(),
	}
	if err := uc.mailer.SendContact(ctx, msg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalService, err)
	}

	return &dto.ContactResponse{
		Reference: msg.Reference,
		Message:   "Your message has been sent successfully. We'll get back to you soon!",
	}, nil
}
