package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"usman/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSerializationUser() *entity.User {
	return &entity.User{
		ID:            uuid.New(),
		Username:      "jane.doe",
		Email:         "jane@example.com",
		PasswordHash:  "$2a$12$secretsecretsecretsecret",
		City:          "Bishkek",
		Gender:        entity.GenderFemale,
		SecurityStamp: 42,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// The user rides inside several response payloads; none of them may ever
// carry the password hash or the revocation counter to the client.
func TestOutputs_NeverExposeCredentialMaterial(t *testing.T) {
	user := newSerializationUser()

	outputs := map[string]any{
		"session": &SessionOutput{
			Token:     "session_token",
			ExpiresAt: time.Now().Add(12 * time.Hour),
			User:      user,
		},
		"profile": &ProfileOutput{
			User:   user,
			Roles:  []string{"member"},
			Claims: entity.Claims{{Type: entity.ClaimTypeCity, Value: "Bishkek"}},
		},
		"profile update": &UpdateProfileOutput{
			User: user,
		},
	}

	for name, output := range outputs {
		t.Run(name, func(t *testing.T) {
			data, err := json.Marshal(output)
			require.NoError(t, err)

			body := string(data)
			assert.NotContains(t, body, user.PasswordHash)
			assert.NotContains(t, body, "PasswordHash")
			assert.NotContains(t, body, "password_hash")
			assert.NotContains(t, body, "SecurityStamp")
			assert.NotContains(t, body, "security_stamp")
			// The public fields still travel.
			assert.Contains(t, body, `"username":"jane.doe"`)
		})
	}
}

func TestUserSerialization_FieldNames(t *testing.T) {
	data, err := json.Marshal(newSerializationUser())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "city")
	assert.Contains(t, fields, "gender")
	assert.NotContains(t, fields, "PasswordHash")
	assert.NotContains(t, fields, "SecurityStamp")
}
