package domain

import "time"

// Contact is a persisted contact-form submission. Records are append-only:
// once stored, no field is ever updated and nothing is ever deleted.
type Contact struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactInput carries the six validated form fields. ID and CreatedAt are
// assigned by the store on insert, never by the caller.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Service   string
	Message   string
}

// FullName returns the submitter's display name.
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}
