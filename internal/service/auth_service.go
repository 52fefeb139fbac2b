package service

import (
	"fmt"
	"log/slog"

	"github.com/musicalcamp/musicalcamp-server/internal/metrics"
)

// TokenIssuer signs claims into an access token.
type TokenIssuer interface {
	Issue(claims map[string]any) (string, error)
}

// AuthService handles access token issuance.
type AuthService struct {
	tokens TokenIssuer
}

// NewAuthService creates a new authentication service.
func NewAuthService(tokens TokenIssuer) *AuthService {
	return &AuthService{tokens: tokens}
}

// IssueToken returns a signed token carrying claims verbatim.
func (s *AuthService) IssueToken(claims map[string]any) (string, error) {
	if claims == nil {
		claims = map[string]any{}
	}
	token, err := s.tokens.Issue(claims)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	metrics.TokenIssued()
	email, _ := claims["email"].(string)
	slog.Info("access token issued", "email", email)
	return token, nil
}
