package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hako/branca"
	"github.com/nakamauwu/hirechat/errs"
)

var (
	ErrInvalidToken = errs.NewUnauthenticatedError("invalid token")
	ErrExpiredToken = errs.NewUnauthenticatedError("expired token")
)

// Verifier resolves an access token into the caller identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}

// BearerToken extracts the token of an "Authorization: Bearer" header value.
func BearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// BrancaVerifier verifies branca tokens whose payload is a JSON encoded [Principal].
type BrancaVerifier struct {
	Key string
	TTL time.Duration
}

func (v *BrancaVerifier) codec() *branca.Branca {
	cdc := branca.NewBranca(v.Key)
	cdc.SetTTL(uint32(v.TTL.Seconds()))
	return cdc
}

func (v *BrancaVerifier) Verify(ctx context.Context, token string) (Principal, error) {
	var p Principal

	payload, err := v.codec().DecodeToString(token)
	if err != nil {
		if errors.Is(err, branca.ErrInvalidToken) || errors.Is(err, branca.ErrInvalidTokenVersion) {
			return p, ErrInvalidToken
		}

		if _, ok := err.(*branca.ErrExpiredToken); ok {
			return p, ErrExpiredToken
		}

		// chacha20poly1305 failure for a token sealed with another key.
		if strings.HasSuffix(err.Error(), "authentication failed") {
			return p, ErrInvalidToken
		}

		return p, fmt.Errorf("decode branca token: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), &p); err != nil || p.UserID == "" {
		return p, ErrInvalidToken
	}

	return p, nil
}

// Issue is used by tests and local tooling, tokens are normally issued elsewhere.
func (v *BrancaVerifier) Issue(p Principal) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("json marshal principal: %w", err)
	}

	token, err := v.codec().EncodeToString(string(b))
	if err != nil {
		return "", fmt.Errorf("encode branca token: %w", err)
	}

	return token, nil
}

type jwtClaims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies HS256 signed JWTs. The subject is the user ID.
type JWTVerifier struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func (v *JWTVerifier) Verify(ctx context.Context, token string) (Principal, error) {
	var p Principal

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.Issuer))
	}

	var claims jwtClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.Secret, nil
	}, opts...)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return p, ErrExpiredToken
	}

	if err != nil {
		return p, ErrInvalidToken
	}

	if claims.Subject == "" {
		return p, ErrInvalidToken
	}

	p.UserID = claims.Subject
	p.Roles = claims.Roles

	return p, nil
}

func (v *JWTVerifier) Issue(p Principal) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Roles: p.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  p.UserID,
			Issuer:   v.Issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if v.TTL != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(v.TTL))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.Secret)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}

	return token, nil
}
