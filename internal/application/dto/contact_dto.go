package dto

// ContactRequest is the body for POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse acknowledges an accepted contact submission.
type ContactResponse struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}
