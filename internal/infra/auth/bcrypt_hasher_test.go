package auth

import (
	"strings"
	"testing"

	"usman/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHasherTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			// MinCost keeps these tests fast; production uses a higher cost.
			BcryptCost: 4,
		},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        128,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig())

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("password123!", hash))
	assert.False(t, hasher.Check("Password123!", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig())

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	cfg := newHasherTestConfig()
	cfg.Auth.BcryptCost = 99

	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.True(t, hasher.Check("Password123!", hash))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig())

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "valid", password: "Password123!", wantErr: ""},
		{name: "too short", password: "Pw1!", wantErr: "at least 8 characters"},
		{name: "too long", password: strings.Repeat("Aa1!", 40), wantErr: "at most 128 characters"},
		{name: "no uppercase", password: "password123!", wantErr: "an uppercase letter"},
		{name: "no lowercase", password: "PASSWORD123!", wantErr: "a lowercase letter"},
		{name: "no digit", password: "Password!!!!", wantErr: "a digit"},
		{name: "no special", password: "Password1234", wantErr: "a special character"},
		{name: "multiple missing", password: "passwordonly", wantErr: "an uppercase letter, a digit, a special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
