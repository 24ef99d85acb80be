package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tasknest/apiserver/types"
)

// ErrInvalidToken is returned for malformed, tampered, or expired tokens.
// The three causes are deliberately not distinguished to the caller.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload issued on login. The subject carries the
// user id; email and full name ride along so protected endpoints can
// resolve the caller without a store read.
type Claims struct {
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed, time-limited bearer tokens.
// Tokens are self-contained; the server holds no session state.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue produces an HS256-signed token embedding the identity with an
// absolute expiry of issue time + ttl.
func (s *TokenService) Issue(identity types.Identity) (string, error) {
	now := s.now()
	claims := Claims{
		Email:    identity.Email,
		FullName: identity.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(identity.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies the signature and expiry and returns the embedded
// identity. Any failure surfaces as ErrInvalidToken.
func (s *TokenService) Validate(tokenString string) (types.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return types.Identity{}, ErrInvalidToken
	}

	id, err := strconv.Atoi(strings.TrimSpace(claims.Subject))
	if err != nil || id < 1 {
		return types.Identity{}, ErrInvalidToken
	}

	return types.Identity{
		ID:       id,
		Email:    claims.Email,
		FullName: claims.FullName,
	}, nil
}
