package token

import (
	"errors"
	"testing"
	"time"

	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour)

	raw, err := m.Issue(42, "customer", "session-1")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ProfileID)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "session-1", claims.SessionID)
}

func TestParseGarbage(t *testing.T) {
	m := NewManager("secret", time.Hour)

	_, err := m.Parse("not-a-token")
	assert.True(t, errors.Is(err, e.ErrUnauthorized))
}

func TestParseWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	raw, err := issuer.Issue(1, "admin", "session-1")
	require.NoError(t, err)

	_, err = verifier.Parse(raw)
	assert.True(t, errors.Is(err, e.ErrUnauthorized))
}

func TestParseExpired(t *testing.T) {
	m := NewManager("secret", -time.Minute)

	raw, err := m.Issue(1, "customer", "session-1")
	require.NoError(t, err)

	_, err = m.Parse(raw)
	assert.True(t, errors.Is(err, e.ErrUnauthorized))
}

func TestTTL(t *testing.T) {
	m := NewManager("secret", 30*time.Minute)
	assert.Equal(t, 30*time.Minute, m.TTL())
}
