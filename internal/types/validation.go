package types

import (
	"errors"
	"fmt"
	"strings"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when a lookup response carries no entity.
var ErrNotFound = errors.New("chargify: not found")

// ErrInvalidInput is returned when arguments are rejected before any request is sent.
var ErrInvalidInput = errors.New("chargify: invalid input")

// ------------------------------
// Validation helpers
// ------------------------------

// ValidateID checks that a Chargify id is set.
func ValidateID(id int, field string) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be a positive integer, got %d", ErrInvalidInput, field, id)
	}
	return nil
}

// ValidatePresent checks that a string argument is non-blank.
func ValidatePresent(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return nil
}

// ValidateNewCustomer checks the fields Chargify requires on customer creation.
func ValidateNewCustomer(attrs CustomerAttributes) error {
	if err := ValidatePresent(attrs.FirstName, "first_name"); err != nil {
		return err
	}
	if err := ValidatePresent(attrs.LastName, "last_name"); err != nil {
		return err
	}
	return ValidatePresent(attrs.Email, "email")
}

// ValidateCustomerUpdate checks the target id and refuses to blank a field
// Chargify requires.
func ValidateCustomerUpdate(upd CustomerUpdate) error {
	if err := ValidateID(upd.ID, "customer id"); err != nil {
		return err
	}
	required := []struct {
		value *string
		field string
	}{
		{upd.FirstName, "first_name"},
		{upd.LastName, "last_name"},
		{upd.Email, "email"},
	}
	for _, r := range required {
		if r.value == nil {
			continue
		}
		if err := ValidatePresent(*r.value, r.field); err != nil {
			return err
		}
	}
	return nil
}
