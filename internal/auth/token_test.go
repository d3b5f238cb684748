package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, expires, err := svc.Issue(7, "alice@example.com", "employee")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "employee", claims.Role)
}

func TestParseRejectsForeignAndExpiredTokens(t *testing.T) {
	token, _, err := NewTokenService("other", time.Hour).Issue(1, "a@example.com", "admin")
	require.NoError(t, err)

	_, err = NewTokenService("secret", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, _, err := NewTokenService("secret", -time.Minute).Issue(1, "a@example.com", "admin")
	require.NoError(t, err)
	_, err = NewTokenService("secret", time.Hour).Parse(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokenService("secret", time.Hour).Parse("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
