package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ArowuTest/lotto-tracker/internal/config"
	"github.com/ArowuTest/lotto-tracker/internal/models"
	"github.com/ArowuTest/lotto-tracker/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type authService struct {
	cfg *config.Config
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

// Login checks the operator password against the configured bcrypt hash and issues a token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if s.cfg.Auth.OperatorPasswordHash == "" || s.cfg.JWT.Secret == "" {
		return nil, ErrAuthDisabled
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.OperatorPasswordHash), []byte(req.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		slog.Warn("Operator login rejected")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := utils.GenerateJWT("operator", utils.OperatorRole, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{Token: token, ExpiresIn: s.cfg.JWT.ExpiresIn}, nil
}
