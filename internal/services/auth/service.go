package auth

import (
	"context"
	"fmt"
	"log/slog"

	"tamilwords/internal/domain"
	"tamilwords/internal/endpoints"
	"tamilwords/internal/errors"
	"tamilwords/internal/services/response"
)

// AuthenticatorImpl forwards admin credentials to the search API. No session or
// token is kept; the API's answer is returned as-is.
type AuthenticatorImpl struct {
	httpAdapter domain.HTTPAdapter
	logger      *slog.Logger
}

// NewAuthenticator creates a new admin authenticator.
func NewAuthenticator(httpAdapter domain.HTTPAdapter, logger *slog.Logger) *AuthenticatorImpl {
	return &AuthenticatorImpl{
		httpAdapter: httpAdapter,
		logger:      logger,
	}
}

// AdminLogin posts username and password to the admin login endpoint.
func (a *AuthenticatorImpl) AdminLogin(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	a.logger.DebugContext(ctx, "Authenticating admin",
		"server", a.httpAdapter.BaseURL(),
		"username", username)

	payload := domain.LoginRequest{
		Username: username,
		Password: password,
	}

	var loginResp domain.LoginResponse
	if err := response.Do(ctx, a.httpAdapter, endpoints.AdminLogin, response.Call{Body: payload}, &loginResp); err != nil {
		return nil, fmt.Errorf("admin login failed: %w", err)
	}

	// The API answers 401 for bad credentials; a 2xx without success is treated the same.
	if !loginResp.Success {
		return nil, fmt.Errorf("admin login failed for %q: %w", username, errors.ErrUnauthorized)
	}

	a.logger.DebugContext(ctx, "Authentication successful",
		"server", a.httpAdapter.BaseURL(),
		"userID", loginResp.User.UserID)

	return &loginResp, nil
}
