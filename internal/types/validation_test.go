package types

import (
	"errors"
	"testing"
)

func TestValidateID(t *testing.T) {
	for _, id := range []int{0, -1} {
		if err := ValidateID(id, "id"); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("id %d: expected ErrInvalidInput, got %v", id, err)
		}
	}
	if err := ValidateID(7, "id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidatePresent(t *testing.T) {
	if err := ValidatePresent("  ", "handle"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank value, got %v", err)
	}
	if err := ValidatePresent("basic", "handle"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateNewCustomer(t *testing.T) {
	ok := CustomerAttributes{FirstName: "A", LastName: "B", Email: "a@b.com"}
	if err := ValidateNewCustomer(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := []CustomerAttributes{
		{LastName: "B", Email: "a@b.com"},
		{FirstName: "A", Email: "a@b.com"},
		{FirstName: "A", LastName: "B"},
	}
	for i, attrs := range missing {
		if err := ValidateNewCustomer(attrs); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestValidateCustomerUpdate(t *testing.T) {
	if err := ValidateCustomerUpdate(CustomerUpdate{ID: 3, Organization: String("")}); err != nil {
		t.Fatalf("clearing an optional field should be allowed: %v", err)
	}

	bad := []CustomerUpdate{
		{Organization: String("Acme")},
		{ID: 3, Email: String("")},
		{ID: 3, FirstName: String("  ")},
	}
	for i, upd := range bad {
		if err := ValidateCustomerUpdate(upd); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}
