package utils

import (
	"testing"
	"time"

	"academix/backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "testsecret"}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := IssueToken("someone@example.com", 30*time.Minute, cfg)
	require.NoError(t, err)

	email, err := ParseToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "someone@example.com", email)
}

func TestParseExpiredToken(t *testing.T) {
	cfg := testConfig()

	token, err := IssueToken("late@example.com", -time.Minute, cfg)
	require.NoError(t, err)

	_, err = ParseToken(token, cfg)
	assert.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("someone@example.com", time.Hour, testConfig())
	require.NoError(t, err)

	_, err = ParseToken(token, &config.Config{JWTSecret: "othersecret"})
	assert.Error(t, err)
}

func TestParseGarbageToken(t *testing.T) {
	_, err := ParseToken("definitely.not.a.token", testConfig())
	assert.Error(t, err)
}
