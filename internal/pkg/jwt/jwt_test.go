package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("secret", time.Hour)

	token, err := svc.GenerateToken("user-1", "employer")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "employer", claims.Role)
}

func TestValidate_Rejects(t *testing.T) {
	svc := New("secret", time.Hour)
	other := New("other", time.Hour)
	expired := New("secret", -time.Minute)

	foreign, err := other.GenerateToken("user-1", "candidate")
	require.NoError(t, err)
	stale, err := expired.GenerateToken("user-1", "candidate")
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"garbage":   "not-a-token",
		"wrong key": foreign,
		"expired":   stale,
		"empty":     "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
