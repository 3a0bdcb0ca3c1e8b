package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "alice", DisplayName("alice@x.com"))
	assert.Equal(t, "alice", DisplayName(" Alice@X.com "))
	assert.Equal(t, "bob", DisplayName("bob"))
	assert.Equal(t, "", DisplayName(""))
}

func TestSignInCreatesSession(t *testing.T) {
	p := NewProvider()

	id, err := p.SignIn("alice@x.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice", id.DisplayName)
	assert.Equal(t, id, p.Current())

	p.SignOut()
	assert.Equal(t, Identity{}, p.Current())
}

func TestSignInWrongPassword(t *testing.T) {
	p := NewProvider()
	_, err := p.SignIn("alice@x.com", "hunter22")
	require.NoError(t, err)

	_, err = p.SignIn("alice@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpDuplicateFallsBackToSignIn(t *testing.T) {
	p := NewProvider()

	_, err := p.SignUp("alice@x.com", "hunter22")
	require.NoError(t, err)

	// same credentials: recovered silently, never a hard error
	id, err := p.SignUp("alice@x.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice", id.DisplayName)

	// wrong password on the fallback path still fails like sign-in
	_, err = p.SignUp("alice@x.com", "different")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpValidation(t *testing.T) {
	p := NewProvider()

	_, err := p.SignUp("", "hunter22")
	assert.ErrorIs(t, err, ErrEmptyEmail)

	_, err = p.SignUp("alice@x.com", "abc")
	assert.ErrorIs(t, err, ErrWeakPassword)
}
