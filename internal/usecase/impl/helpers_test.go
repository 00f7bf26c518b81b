package impl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomString(t *testing.T) {
	s, err := randomString(8)
	require.NoError(t, err)
	assert.Len(t, s, 8)

	for _, r := range s {
		assert.Contains(t, tokenAlphabet, string(r))
	}

	other, err := randomString(8)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)
}

func TestUsernameFromEmail(t *testing.T) {
	username, err := usernameFromEmail("jane.doe@example.com")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(username, "jane.doe_"))
	assert.Len(t, username, len("jane.doe")+1+4)

	// Collisions on the same address stay unlikely thanks to the random suffix.
	other, err := usernameFromEmail("jane.doe@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, username, other)
}

func TestVerificationMail(t *testing.T) {
	mail := verificationMail("user@example.com", "CODE1234")

	assert.Equal(t, "user@example.com", mail.To)
	assert.Contains(t, mail.HTML, "CODE1234")
	assert.NotEmpty(t, mail.Subject)
}

func TestResetMail(t *testing.T) {
	link := "https://app.example.com/reset-password?token=abc&email=user@example.com"
	mail := resetMail("user@example.com", link)

	assert.Equal(t, "user@example.com", mail.To)
	assert.Contains(t, mail.HTML, link)
}
