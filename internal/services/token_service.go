package services

import (
	"fmt"
	"time"

	"krishiseva/internal/apperror"
	"krishiseva/internal/models"

	"github.com/dgrijalva/jwt-go"
)

// Identity is the caller resolved from a bearer token. It is trusted until
// the token expires; the user record is not re-read.
type Identity struct {
	UserID string      `json:"id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
}

type tokenClaims struct {
	UserID string      `json:"id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.StandardClaims
}

// TokenService issues and verifies HS256-signed bearer tokens.
// There is no revocation: a token is valid until its expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService signing with secret.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs a token for the given identity.
func (s *TokenService) Issue(userID, email string, role models.Role) (string, error) {
	issuedAt := s.now()
	claims := tokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: issuedAt.Add(s.ttl).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify checks the signature and expiry of tokenString.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	// Expiry is checked below against the injected clock, so jwt-go's own
	// time-based validation is skipped.
	parser := &jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}

	claims := &tokenClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Wrap(apperror.TokenInvalid, "Invalid token. Authentication failed.", err)
	}
	if claims.UserID == "" || claims.ExpiresAt == 0 {
		return nil, apperror.New(apperror.TokenInvalid, "Invalid token. Authentication failed.")
	}
	if !s.now().Before(time.Unix(claims.ExpiresAt, 0)) {
		return nil, apperror.New(apperror.TokenExpired, "Token has expired. Please login again.")
	}

	return &Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}
