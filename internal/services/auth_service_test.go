package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArowuTest/lotto-tracker/internal/config"
	"github.com/ArowuTest/lotto-tracker/internal/models"
	"github.com/ArowuTest/lotto-tracker/internal/utils"
)

func authConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Auth.OperatorPasswordHash = string(hash)
	cfg.JWT.Secret = "secret"
	cfg.JWT.ExpiresIn = 3600
	return cfg
}

func TestLogin_Success(t *testing.T) {
	cfg := authConfig(t, "hunter2")

	resp, err := NewAuthService(cfg).Login(context.Background(), &models.LoginRequest{Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, 3600, resp.ExpiresIn)

	claims, err := utils.ValidateJWT(resp.Token, cfg)
	require.NoError(t, err)
	assert.Equal(t, utils.OperatorRole, claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	cfg := authConfig(t, "hunter2")

	_, err := NewAuthService(cfg).Login(context.Background(), &models.LoginRequest{Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_NotConfigured(t *testing.T) {
	_, err := NewAuthService(&config.Config{}).Login(context.Background(), &models.LoginRequest{Password: "x"})
	assert.ErrorIs(t, err, ErrAuthDisabled)
}
