package contact

import "metagrow/internal/domain"

type SubmitContactRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=10"`
	Service   string `json:"service" validate:"omitempty"`
	Message   string `json:"message" validate:"required,min=10"`
}

func (r SubmitContactRequest) toInput() domain.ContactInput {
	return domain.ContactInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Service:   r.Service,
		Message:   r.Message,
	}
}

// FieldError is a single validation failure tied to one named input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}
