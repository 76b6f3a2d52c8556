package errors

import (
	"fmt"
	"strings"
)

// ErrNotFound indicates a resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrConflict indicates a uniqueness violation, e.g. a duplicate discount code
type ErrConflict struct {
	Resource string
	Key      string
}

func (e *ErrConflict) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.Key)
}

// ErrInvalidStateTransition indicates an illegal checkout step change
type ErrInvalidStateTransition struct {
	From string
	To   string
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// ErrMissingFields blocks a checkout transition until the listed fields are filled
type ErrMissingFields struct {
	Fields []string
}

func (e *ErrMissingFields) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// ErrValidation indicates a rejected input value; persisted state is unchanged
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ErrInvalidDiscount is the single generic rejection for a discount code that
// fails any validation rule. It deliberately carries no detail about which
// rule failed.
type ErrInvalidDiscount struct{}

func (e *ErrInvalidDiscount) Error() string {
	return "invalid or expired discount code"
}

// ErrEmptyCart blocks checkout progression while the cart has no items
type ErrEmptyCart struct{}

func (e *ErrEmptyCart) Error() string {
	return "cart is empty"
}
