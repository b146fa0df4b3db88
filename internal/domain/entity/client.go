package entity

import "time"

// Address is a client's billing address.
type Address struct {
	Street string
	City   string
	State  string
	Zip    string
}

// Client represents a company that gets invoiced. Many invoices reference
// one client; deleting a client does not cascade to its invoices.
type Client struct {
	ID            int
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
	Billing       Address
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
