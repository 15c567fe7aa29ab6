package services

import (
	"errors"
	"fmt"

	"github.com/ArowuTest/lotto-tracker/internal/models"
	"github.com/ArowuTest/lotto-tracker/pkg/dhlottery"
)

// Errors returned by the operator login
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthDisabled       = errors.New("operator login is not configured")
)

// translateLookupError maps client errors onto the shared taxonomy, keeping the cause
func translateLookupError(err error) error {
	switch {
	case errors.Is(err, dhlottery.ErrNetwork):
		return fmt.Errorf("%w: %w", models.ErrNetwork, err)
	case errors.Is(err, dhlottery.ErrMalformedResponse):
		return fmt.Errorf("%w: %w", models.ErrParse, err)
	default:
		return err
	}
}

// UserMessage turns an update error into the single message shown to the operator
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, models.ErrLookupExhausted):
		return "Could not find the latest draw; the configured seed round may be too far off: " + err.Error()
	case errors.Is(err, models.ErrNetwork):
		return "Could not reach the lottery service: " + err.Error()
	case errors.Is(err, models.ErrParse):
		return "Received data could not be read: " + err.Error()
	default:
		return "Update failed: " + err.Error()
	}
}
