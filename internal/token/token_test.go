package token

import (
	"testing"
	"time"

	"chat-directory-service/internal/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueCarriesUserClaims(t *testing.T) {
	svc := New("test-secret", time.Minute)

	signed, err := svc.Issue("u1")
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, "u1", claims["user_id"])

	iat, exp := int64(claims["iat"].(float64)), int64(claims["exp"].(float64))
	require.Equal(t, int64(60), exp-iat)
}

func TestIssueRequiresExternalID(t *testing.T) {
	svc := New("test-secret", time.Minute)

	_, err := svc.Issue("")
	require.ErrorIs(t, err, entities.ErrMissingIdentity)
}

func TestIssueRejectsWrongSecret(t *testing.T) {
	svc := New("test-secret", time.Minute)

	signed, err := svc.Issue("u1")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	})
	require.Error(t, err)
}
