package dto

// AddressRequest is a billing address in client bodies.
type AddressRequest struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

// ClientRequest is the body for POST and PUT /api/clients.
type ClientRequest struct {
	CompanyName   string         `json:"company_name"`
	ContactPerson string         `json:"contact_person,omitempty"`
	Email         string         `json:"email,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	Billing       AddressRequest `json:"billing"`
	Notes         string         `json:"notes,omitempty"`
}

// ClientResponse is a client in responses.
type ClientResponse struct {
	ID            int            `json:"id"`
	CompanyName   string         `json:"company_name"`
	ContactPerson string         `json:"contact_person,omitempty"`
	Email         string         `json:"email,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	Billing       AddressRequest `json:"billing"`
	Notes         string         `json:"notes,omitempty"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}
