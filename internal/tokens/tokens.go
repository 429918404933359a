package tokens

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/contenthub/contenthub-server/internal/config"
	"github.com/contenthub/contenthub-server/pkg/middleware"
)

// DefaultTTL is the lifetime of an issued access token.
const DefaultTTL = 10 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// AccessClaims is the claim set carried by the session cookie.
type AccessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Claims decodes the claim set into v (usually *map[string]interface{}).
func (c *AccessClaims) Claims(v interface{}) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// GenerateAccessToken creates a signed JWT access token for the email
func GenerateAccessToken(cfg *config.Config, email string, ttl time.Duration) (string, error) {
	return generate([]byte(cfg.JWT.Secret), email, time.Now(), ttl)
}

func generate(secret []byte, email string, now time.Time, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("jwt secret not configured")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	claims := AccessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString(secret)
}

// ParseAccessToken verifies signature and expiry and returns the claims.
func ParseAccessToken(cfg *config.Config, raw string) (*AccessClaims, error) {
	return parse([]byte(cfg.JWT.Secret), raw, time.Now)
}

func parse(secret []byte, raw string, now func() time.Time) (*AccessClaims, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: jwt secret not configured", ErrInvalidToken)
	}
	claims := &AccessClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid || claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: missing expiry", ErrInvalidToken)
	}
	return claims, nil
}

// Verifier checks access tokens for the auth middleware.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewVerifier(cfg *config.Config) *Verifier {
	return &Verifier{secret: []byte(cfg.JWT.Secret), now: time.Now}
}

// WithClock returns a copy of the verifier that evaluates expiry against now.
func (v *Verifier) WithClock(now func() time.Time) *Verifier {
	return &Verifier{secret: v.secret, now: now}
}

func (v *Verifier) Verify(ctx context.Context, raw string) (middleware.Token, error) {
	claims, err := parse(v.secret, raw, v.now)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
