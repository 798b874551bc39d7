package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"posada/internal/domains/customer/model"
)

func TestCustomer_Validate(t *testing.T) {
	tests := []struct {
		name     string
		customer model.Customer
		wantErr  bool
	}{
		{
			name:     "valid customer",
			customer: model.Customer{ID: "C1", Name: "Ana", Email: "ana@example.com"},
			wantErr:  false,
		},
		{
			name:     "empty id",
			customer: model.Customer{ID: "", Email: "ana@example.com"},
			wantErr:  true,
		},
		{
			name:     "email without at sign",
			customer: model.Customer{ID: "C1", Email: "ana.example.com"},
			wantErr:  true,
		},
		{
			name:     "email with two at signs",
			customer: model.Customer{ID: "C1", Email: "ana@@example.com"},
			wantErr:  true,
		},
		{
			name:     "email starting with at sign",
			customer: model.Customer{ID: "C1", Email: "@example.com"},
			wantErr:  true,
		},
		{
			name:     "email ending with at sign",
			customer: model.Customer{ID: "C1", Email: "ana@"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.customer.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
