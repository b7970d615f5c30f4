// Package token mints short-lived Communications Platform credentials.
package token

import (
	"fmt"
	"time"

	"chat-directory-service/internal/entities"

	"github.com/golang-jwt/jwt/v5"
)

// Service signs per-user platform tokens with the shared API secret, the same
// scheme chat platforms use to authorize client connections.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New constructs a token service with the given signing secret and lifetime.
func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue mints an HS256 token carrying the user's external id.
func (s *Service) Issue(externalID string) (string, error) {
	if externalID == "" {
		return "", fmt.Errorf("%w: external_id is required", entities.ErrMissingIdentity)
	}

	now := s.now()
	claims := jwt.MapClaims{
		"user_id": externalID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
