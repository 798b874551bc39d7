package model

import (
	"strings"

	"posada/shared/failure"
)

const (
	FileName   = "customers.json"
	EntityName = "customer"

	FieldID    = "customer_id"
	FieldName  = "name"
	FieldEmail = "email"
)

type Customer struct {
	ID    string `json:"customer_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate runs on every construction and merge, and on every row decoded
// from the store. The email must contain exactly one '@' and the '@' may not
// be the first or last character.
func (c Customer) Validate() error {
	if c.ID == "" {
		return failure.Validation("customer_id must not be empty")
	}

	if strings.Count(c.Email, "@") != 1 ||
		strings.HasPrefix(c.Email, "@") ||
		strings.HasSuffix(c.Email, "@") {
		return failure.Validation("invalid email format")
	}

	return nil
}
