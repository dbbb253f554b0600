package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	j, err := NewJWT("a-very-long-test-secret", "dev")
	require.NoError(t, err)

	token, err := j.Sign("42", RoleStudent, "Jane Doe")
	require.NoError(t, err)

	claims, err := j.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, RoleStudent, claims.Role)
	assert.Equal(t, "Jane Doe", claims.Name)
}

func TestVerifyRejects(t *testing.T) {
	j, err := NewJWT("secret-one", "dev")
	require.NoError(t, err)
	other, err := NewJWT("secret-two", "dev")
	require.NoError(t, err)

	token, err := other.Sign("7", RoleFaculty, "")
	require.NoError(t, err)

	_, err = j.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = j.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = j.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	j, err := NewJWT("secret", "dev")
	require.NoError(t, err)
	issued := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	j.now = func() time.Time { return issued }
	token, err := j.Sign("1", RoleAdmin, "")
	require.NoError(t, err)

	j.now = func() time.Time { return issued.Add(25 * time.Hour) }
	_, err = j.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSignValidation(t *testing.T) {
	j, err := NewJWT("", "dev")
	require.NoError(t, err)
	_, err = j.Sign("", RoleStudent, "")
	assert.Error(t, err)
	_, err = j.Sign("1", Role("guest"), "")
	assert.Error(t, err)

	_, err = NewJWT("", "production")
	assert.ErrorIs(t, err, errMissingSecret)
}
