package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"github.com/musicalcamp/musicalcamp-server/internal/metrics"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
)

// TokenLifetime is how long an issued access token stays valid.
const TokenLifetime = 30 * 24 * time.Hour

const principalKey = "principal"

// TokenVerifier decodes and validates an access token.
type TokenVerifier interface {
	Verify(token string) (*domain.Principal, error)
}

// TokenService issues and verifies HS256 access tokens. It keeps no server-side state.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService returns a service signing with secret.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, port.ErrMissingSigningKey
	}
	return &TokenService{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs claims into a token that expires TokenLifetime from now.
// Claims are not interpreted; callers conventionally include "email".
func (s *TokenService) Issue(claims map[string]any) (string, error) {
	now := s.now()
	mc := make(jwt.MapClaims, len(claims)+2)
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(TokenLifetime).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of token and returns the decoded principal.
func (s *TokenService) Verify(token string) (*domain.Principal, error) {
	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, port.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", port.ErrTokenInvalid, err)
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, port.ErrTokenInvalid
	}
	return principalFromClaims(mc), nil
}

func principalFromClaims(mc jwt.MapClaims) *domain.Principal {
	p := &domain.Principal{Claims: make(map[string]any, len(mc))}
	for k, v := range mc {
		switch k {
		case "iat":
			if n, ok := v.(float64); ok {
				p.IssuedAt = time.Unix(int64(n), 0)
			}
		case "exp":
			if n, ok := v.(float64); ok {
				p.ExpiresAt = time.Unix(int64(n), 0)
			}
		default:
			p.Claims[k] = v
		}
	}
	if email, ok := mc["email"].(string); ok {
		p.Email = email
	}
	return p
}

// JWTMiddleware creates a Fiber middleware that verifies the bearer token
// and injects the decoded Principal into the request context.
//
// The token is the second space-separated segment of the Authorization header;
// the scheme is not checked. Every rejection answers with the same body.
func JWTMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			metrics.AuthRejected("missing_token")
			return unauthorized(c)
		}

		var token string
		if parts := strings.Fields(authHeader); len(parts) > 1 {
			token = parts[1]
		}

		principal, err := verifier.Verify(token)
		if err != nil {
			reason := "invalid_token"
			if errors.Is(err, port.ErrTokenExpired) {
				reason = "expired_token"
			}
			metrics.AuthRejected(reason)
			slog.Debug("access token rejected", "reason", reason, "path", c.Path(), "error", err)
			return unauthorized(c)
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// GetPrincipal extracts the verified Principal from Fiber locals.
func GetPrincipal(c fiber.Ctx) *domain.Principal {
	p, ok := c.Locals(principalKey).(*domain.Principal)
	if !ok {
		return nil
	}
	return p
}

// Passthrough is a no-op gate used where a route is left open.
func Passthrough(c fiber.Ctx) error {
	return c.Next()
}

func unauthorized(c fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   true,
		"message": port.ErrUnauthorized.Error(),
	})
}
