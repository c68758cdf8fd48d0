package authtoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("test-secret", 30*time.Minute, 7*24*time.Hour)
}

func TestIssuePairAndParseAccess(t *testing.T) {
	m := newTestManager()

	pair, err := m.IssuePair(42, "student", "Иван Петров")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := m.ParseAccess(pair.AccessToken)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "Иван Петров", claims.FullName)
}

func TestParseAccess_RejectsRefreshToken(t *testing.T) {
	m := newTestManager()

	pair, err := m.IssuePair(42, "student", "Иван Петров")
	require.NoError(t, err)

	_, err = m.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenKind)
}

func TestParseAccess_RejectsForeignSecret(t *testing.T) {
	pair, err := newTestManager().IssuePair(42, "student", "Иван Петров")
	require.NoError(t, err)

	other := NewManager("another-secret", 30*time.Minute, 7*24*time.Hour)
	_, err = other.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccess_RejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, 7*24*time.Hour)

	pair, err := m.IssuePair(42, "student", "Иван Петров")
	require.NoError(t, err)

	_, err = m.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccess_RejectsGarbage(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseAccess("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
