package domain

import (
	"strings"

	"github.com/acmeboard/acmeboard/internal/money"
	"github.com/bwmarrin/snowflake"
)

// Input is the raw string form data for a create or update.
type Input struct {
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
}

// FieldErrors maps each offending field to its messages, plus a generic
// top-level message. It is a result value, never an error: user input
// validation does not throw.
type FieldErrors struct {
	Errors  map[string][]string `json:"errors"`
	Message string              `json:"message"`
}

func (e *FieldErrors) add(field, message string) {
	if e.Errors == nil {
		e.Errors = map[string][]string{}
	}
	e.Errors[field] = append(e.Errors[field], message)
}

// Validated is the typed record produced by a successful validation.
type Validated struct {
	CustomerID  snowflake.ID
	AmountCents int64
	Status      Status
}

const (
	msgCustomer = "Please select a customer."
	msgAmount   = "Please enter a valid amount."
	msgStatus   = "Please select a status."
)

// Validate checks the raw input and returns either the typed record or the
// field-keyed errors for inline rendering. Exactly one of the two is
// non-zero.
func Validate(input Input) (Validated, *FieldErrors) {
	fieldErrs := &FieldErrors{}

	customerID, err := snowflake.ParseString(strings.TrimSpace(input.CustomerID))
	if strings.TrimSpace(input.CustomerID) == "" || err != nil || customerID == 0 {
		fieldErrs.add("customerId", msgCustomer)
	}

	cents, err := money.ParseDecimalToCents(input.Amount)
	if err != nil {
		fieldErrs.add("amount", msgAmount)
	}

	status := Status(strings.TrimSpace(input.Status))
	if !status.Valid() {
		fieldErrs.add("status", msgStatus)
	}

	if len(fieldErrs.Errors) > 0 {
		return Validated{}, fieldErrs
	}

	return Validated{
		CustomerID:  customerID,
		AmountCents: cents,
		Status:      status,
	}, nil
}
