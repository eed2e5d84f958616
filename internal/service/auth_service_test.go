package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndValidate(t *testing.T) {
	t.Setenv("ANALYST_USERNAME", "ana")
	t.Setenv("ANALYST_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewAuthService()

	resp, err := svc.Login("ana", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.AnalystID)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.AnalystID, claims.AnalystID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Setenv("ANALYST_USERNAME", "ana")
	t.Setenv("ANALYST_PASSWORD", "secret")

	svc := NewAuthService()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "ana", "nope"},
		{"wrong username", "someone", "secret"},
		{"empty credentials", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService()

	_, err := svc.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	issuer := NewAuthService()
	resp, err := issuer.Login("analyst", "password123")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	verifier := NewAuthService()

	_, err = verifier.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
