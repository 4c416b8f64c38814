package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/platform/config"
	"github.com/SscSPs/bureau_de_change/internal/utils"
)

// authService authenticates the single configured till operator.
type authService struct {
	BaseService
	username     string
	passwordHash string
	jwtSecret    string
	jwtIssuer    string
	tokenTTL     time.Duration
}

// NewAuthService creates the operator authentication service. When no password hash is
// configured, a plain OPERATOR_PASSWORD is hashed once here.
func NewAuthService(cfg *config.Config, options ...ServiceOption) (portssvc.AuthSvc, error) {
	hash := cfg.OperatorPasswordHash
	if hash == "" && cfg.OperatorPassword != "" {
		var err error
		hash, err = utils.HashOperatorPassword(cfg.OperatorPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash operator password: %w", err)
		}
	}

	return &authService{
		BaseService:  newBaseService(options),
		username:     cfg.OperatorUsername,
		passwordHash: hash,
		jwtSecret:    cfg.JWTSecret,
		jwtIssuer:    cfg.JWTIssuer,
		tokenTTL:     cfg.JWTExpiryDuration,
	}, nil
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := utils.OperatorPasswordMatches(password, s.passwordHash)
	if !userOK || !passOK {
		s.LogInfo(ctx, "Rejected operator login", slog.String("username", username))
		return "", time.Time{}, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := utils.GenerateOperatorToken(s.username, s.jwtSecret, s.jwtIssuer, s.clock(), s.tokenTTL)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign operator token")
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	s.LogInfo(ctx, "Operator logged in", slog.String("username", s.username))
	return token, expiresAt, nil
}
