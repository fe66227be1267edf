// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtService reads the user echo out of the API's JWT session tokens.
type jwtService struct {
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService() service.TokenService {
	return &jwtService{
		parser: jwt.NewParser(),
	}
}

// DecodeUser extracts the user carried in the token's claims without verifying
// the signature. Tokens that are not JWTs yield an error.
func (s *jwtService) DecodeUser(token string) (*entity.User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parse session token")
	}

	user := &entity.User{}

	for _, key := range []string{"id", "userId", "sub"} {
		if id, ok := numericClaim(claims[key]); ok {
			user.ID = id

			break
		}
	}

	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}

	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		user.CreatedAt = iat.Time.UTC()
		user.UpdatedAt = iat.Time.UTC()
	}

	if user.ID == 0 && user.Email == "" {
		return nil, errors.New("session token carries no user claims")
	}

	return user, nil
}

// ExpiresAt returns the token's expiry, if it declares one.
func (s *jwtService) ExpiresAt(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

func numericClaim(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), n != 0
	case string:
		id, err := strconv.ParseInt(n, 10, 64)

		return id, err == nil && id != 0
	default:
		return 0, false
	}
}
