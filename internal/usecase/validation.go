package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/mkazlauskas/shoplt/internal/domain/errors"
	"github.com/mkazlauskas/shoplt/internal/domain/model"
)

// FieldError names a single invalid form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates field-level failures of a submitted form. It
// unwraps to ErrInvalidInput so callers can classify it without inspecting
// the field list.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return domainErrors.ErrInvalidInput
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// ValidateOrderDetails checks the contact/delivery fields required to place
// an order. Comment is optional; everything else is mandatory and the
// buying type must be one of the known values.
func ValidateOrderDetails(d model.OrderDetails) error {
	var verr ValidationError
	if strings.TrimSpace(d.FirstName) == "" {
		verr.add("first_name", "first name is required")
	}
	if strings.TrimSpace(d.LastName) == "" {
		verr.add("last_name", "last name is required")
	}
	if strings.TrimSpace(d.Phone) == "" {
		verr.add("phone", "phone is required")
	}
	if strings.TrimSpace(d.Address) == "" {
		verr.add("address", "address is required")
	}
	switch d.BuyingType {
	case model.BuyingTypeSelf, model.BuyingTypeDelivery:
	default:
		verr.add("buying_type", "buying type must be self or delivery")
	}
	if len(verr.Fields) > 0 {
		return &verr
	}
	return nil
}

// RegistrationForm carries the fields collected at sign-up.
type RegistrationForm struct {
	Login           string
	Password        string
	ConfirmPassword string
	Email           string
	FirstName       string
	LastName        string
	Phone           string
	Address         string
}

// ValidateRegistration checks the sign-up form.
func ValidateRegistration(f RegistrationForm) error {
	var verr ValidationError
	if strings.TrimSpace(f.Login) == "" {
		verr.add("login", "login is required")
	}
	if f.Password == "" {
		verr.add("password", "password is required")
	}
	if f.Password != f.ConfirmPassword {
		verr.add("confirm_password", "passwords don't match")
	}
	if email := strings.TrimSpace(f.Email); email == "" || !strings.Contains(email, "@") {
		verr.add("email", "valid email is required")
	}
	if strings.TrimSpace(f.FirstName) == "" {
		verr.add("first_name", "first name is required")
	}
	if strings.TrimSpace(f.LastName) == "" {
		verr.add("last_name", "last name is required")
	}
	if strings.TrimSpace(f.Phone) == "" {
		verr.add("phone", "phone is required")
	}
	if strings.TrimSpace(f.Address) == "" {
		verr.add("address", "address is required")
	}
	if len(verr.Fields) > 0 {
		return &verr
	}
	return nil
}
