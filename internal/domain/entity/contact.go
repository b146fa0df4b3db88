package entity

import "time"

// ContactMessage is a submission from the marketing site's contact form.
// Independent of any invoice or client.
type ContactMessage struct {
	Reference   string // uuid assigned when the submission is accepted
	Name        string
	Email       string
	Subject     string
	Message     string
	SubmittedAt time.Time
}
