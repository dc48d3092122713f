package impl

import (
	"testing"

	domainerrors "usman/internal/domain/errors"
	"usman/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid", username: "jane.doe_42", wantErr: false},
		{name: "empty", username: "", wantErr: true},
		{name: "whitespace only", username: "   ", wantErr: true},
		{name: "too short", username: "ab", wantErr: true},
		{name: "disallowed characters", username: "jane doe!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := domainerrors.FieldErrors{}
			validateUsername(tt.username, fields)

			if tt.wantErr {
				assert.Contains(t, fields, "username")
			} else {
				assert.Empty(t, fields)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "jane@example.com", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "no at sign", email: "jane.example.com", wantErr: true},
		{name: "display name form", email: "Jane <jane@example.com>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := domainerrors.FieldErrors{}
			validateEmail(tt.email, fields)

			if tt.wantErr {
				assert.Contains(t, fields, "email")
			} else {
				assert.Empty(t, fields)
			}
		})
	}
}

func TestMapDuplicateKeyError(t *testing.T) {
	err := mapDuplicateKeyError(repository.ErrDuplicateUsername)
	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "username")

	err = mapDuplicateKeyError(repository.ErrDuplicateEmail)
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "email")

	// Anything else passes through unchanged.
	plain := errors.New("connection reset")
	assert.Equal(t, plain, mapDuplicateKeyError(plain))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("superJaneDoe123", "janedoe"))
	assert.False(t, containsFold("Password123", "janedoe"))
	assert.False(t, containsFold("anything", ""))
}
