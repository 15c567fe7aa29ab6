package handlers

import (
	"errors"
	"net/http"

	"github.com/ArowuTest/lotto-tracker/internal/models"
	"github.com/ArowuTest/lotto-tracker/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles operator authentication requests
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var request models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &request)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, services.ErrAuthDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Operator login is not configured"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
	default:
		c.JSON(http.StatusOK, resp)
	}
}
