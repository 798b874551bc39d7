package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posada/shared/failure"
	"posada/shared/validator"
)

type createRequest struct {
	ID        string `json:"id"         validate:"required"`
	RoomCount *int   `json:"room_count" validate:"omitempty,gte=1"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantCode int
	}{
		{
			name:    "valid body",
			body:    `{"id": "R1", "room_count": 2}`,
			wantErr: false,
		},
		{
			name:    "optional field omitted",
			body:    `{"id": "R1"}`,
			wantErr: false,
		},
		{
			name:     "malformed JSON",
			body:     `{"id": `,
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing required field",
			body:     `{"room_count": 2}`,
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "room_count below minimum",
			body:     `{"id": "R1", "room_count": 0}`,
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req createRequest
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if !tt.wantErr {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("hotel-1", "required"))
	assert.Error(t, validator.ValidateVar("", "required"))
}

func TestValidationMessage(t *testing.T) {
	t.Run("mapped tag", func(t *testing.T) {
		count := 0
		req := createRequest{ID: "R1", RoomCount: &count}

		err := validator.ValidateStruct(&req)

		require.Error(t, err)
		assert.EqualError(t, err, "RoomCount must be greater than or equal to 1")
	})

	t.Run("unmapped tag falls back to validator text", func(t *testing.T) {
		req := struct {
			Status string `validate:"oneof=ACTIVE CANCELLED"`
		}{Status: "PENDING"}

		err := validator.ValidateStruct(&req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "oneof")
	})
}
