package validator_test

import (
	"testing"

	"github.com/mihretgelan/TasteReel/internal/infrastructure/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	v := validator.NewValidator()

	assert.NoError(t, v.ValidateEmail("user@example.com"))
	assert.Error(t, v.ValidateEmail("not-an-email"))
	assert.Error(t, v.ValidateEmail(""))
}

func TestValidatePasswordStrength(t *testing.T) {
	v := validator.NewValidator()

	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Password123", false},
		{"too short", "Pw1", true},
		{"no uppercase", "password123", true},
		{"no lowercase", "PASSWORD123", true},
		{"no number", "PasswordOnly", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidatePasswordStrength(tc.password)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
