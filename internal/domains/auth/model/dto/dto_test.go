package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline/internal/domains/auth/model/dto"
	"airline/shared/constant"
)

func TestAuthResponse_FromResult(t *testing.T) {
	expiresAt := time.Date(2024, 8, 30, 16, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		result    dto.Result
		wantName  string
		wantToken bool
	}{
		{name: "success", result: dto.Success("Isabel", "token", expiresAt), wantName: "Isabel", wantToken: true},
		{name: "invalid credentials", result: dto.InvalidCredentials(), wantName: "Invalid credentials"},
		{name: "email taken", result: dto.EmailTaken(), wantName: "Email already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res dto.AuthResponse
			res.FromResult(tt.result)

			assert.Equal(t, tt.wantName, res.Name)

			if !tt.wantToken {
				assert.Nil(t, res.Token)
				assert.Nil(t, res.ExpiresAt)

				return
			}

			require.NotNil(t, res.Token)
			require.NotNil(t, res.ExpiresAt)
			assert.Equal(t, "token", *res.Token)
			assert.NotEmpty(t, *res.ExpiresAt)
		})
	}
}

func TestRegisterRequest_ToModel(t *testing.T) {
	passenger := (&dto.PassengerRegisterRequest{Name: "Isabel", Email: "isabel@example.com", Phone: "+1987654321"}).ToModel("hash")
	assert.NotEmpty(t, passenger.ID)
	assert.Equal(t, "hash", passenger.Password)
	assert.Equal(t, constant.ContextGuest, passenger.CreatedBy)

	employee := (&dto.EmployeeRegisterRequest{Name: "Carlos", Email: "carlos@airline.com"}).ToModel("hash")
	assert.NotEmpty(t, employee.ID)
	assert.Equal(t, "hash", employee.Password)
}
