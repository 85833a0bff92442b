package contact

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names as their JSON keys so errors match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateSubmission checks every field rule and returns one FieldError per
// violation. All rules are evaluated; nothing short-circuits, so the caller
// can report every problem at once. A nil result means the input is valid.
func ValidateSubmission(req SubmitContactRequest) []FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Reason: "Invalid request body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Reason: reasonFor(fe.Field())})
	}
	return out
}

func reasonFor(field string) string {
	switch field {
	case "firstName":
		return "First name must be at least 2 characters"
	case "lastName":
		return "Last name must be at least 2 characters"
	case "email":
		return "Please enter a valid email address"
	case "phone":
		return "Please enter a valid phone number"
	case "message":
		return "Message must be at least 10 characters"
	default:
		return field + " is invalid"
	}
}
