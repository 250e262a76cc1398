package jwtauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testManager() *Manager {
	return NewManager(Config{
		Username:      "manager",
		Password:      "s3cret",
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
	})
}

func TestAuthenticate(t *testing.T) {
	m := testManager()

	pair, err := m.Authenticate("manager", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, TokenTypeBearer, pair.TokenType)

	subject, err := m.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "manager", subject)

	_, err = m.Authenticate("manager", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	m := NewManager(Config{
		Username:      "manager",
		Password:      string(hash),
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	})

	_, err = m.Authenticate("manager", "s3cret")
	require.NoError(t, err)

	_, err = m.Authenticate("manager", string(hash))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_NotConfigured(t *testing.T) {
	m := NewManager(Config{AccessSecret: "a", RefreshSecret: "r"})
	_, err := m.Authenticate("", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	m := testManager()
	pair, err := m.IssuePair("manager")
	require.NoError(t, err)

	refreshed, err := m.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = m.Refresh(pair.AccessToken)
	assert.Error(t, err)
}

func TestVerifyAccess_WrongType(t *testing.T) {
	m := testManager()
	m.cfg.RefreshSecret = m.cfg.AccessSecret

	pair, err := m.IssuePair("manager")
	require.NoError(t, err)

	_, err = m.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestVerifyAccess_Expired(t *testing.T) {
	m := testManager()
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	pair, err := m.IssuePair("manager")
	require.NoError(t, err)

	_, err = m.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyAccess_Garbage(t *testing.T) {
	_, err := testManager().VerifyAccess("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
