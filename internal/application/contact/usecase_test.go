package contact_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billflow/billflow-api/internal/application/contact"
	"github.com/billflow/billflow-api/internal/application/dto"
	"github.com/billflow/billflow-api/internal/domain"
	"github.com/billflow/billflow-api/internal/domain/entity"
)

type stubMailer struct {
	calls int
	fail  bool
	last  *entity.ContactMessage
}

func (m *stubMailer) SendContact(_ context.Context, msg *entity.ContactMessage) error {
	m.calls++
	m.last = msg
	if m.fail {
		return errors.New("resend unavailable")
	}
	return nil
}

func validRequest() dto.ContactRequest {
	return dto.ContactRequest{
		Name:    "Sarah Mitchell",
		Email:   "sarah@acmedesign.example",
		Subject: "Billing question",
		Message: "How do I change the tax rate on an existing draft?",
	}
}

func TestSubmit_Success(t *testing.T) {
	mailer := &stubMailer{}
	uc := contact.NewUseCase(mailer)

	resp, err := uc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, "Sarah Mitchell", mailer.last.Name)
	assert.NotZero(t, mailer.last.SubmittedAt)
	assert.Contains(t, resp.Message, "sent successfully")

	_, err = uuid.Parse(resp.Reference)
	assert.NoError(t, err, "reference must be a UUID")
}

func TestSubmit_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.ContactRequest)
	}{
		{"missing name", func(in *dto.ContactRequest) { in.Name = " " }},
		{"missing email", func(in *dto.ContactRequest) { in.Email = "" }},
		{"missing subject", func(in *dto.ContactRequest) { in.Subject = "" }},
		{"missing message", func(in *dto.ContactRequest) { in.Message = "" }},
		{"email without at sign", func(in *dto.ContactRequest) { in.Email = "sarah.example.com" }},
		{"email without domain dot", func(in *dto.ContactRequest) { in.Email = "sarah@example" }},
		{"email with spaces", func(in *dto.ContactRequest) { in.Email = "sa rah@example.com" }},
		{"message too short", func(in *dto.ContactRequest) { in.Message = "too short" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mailer := &stubMailer{}
			uc := contact.NewUseCase(mailer)
			in := validRequest()
			tc.mutate(&in)

			_, err := uc.Submit(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, 0, mailer.calls, "invalid input must not reach the mailer")
		})
	}
}

func TestSubmit_MailerFailure(t *testing.T) {
	mailer := &stubMailer{fail: true}
	uc := contact.NewUseCase(mailer)

	_, err := uc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrExternalService)
}
