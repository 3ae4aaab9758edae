package commands

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tamilwords/internal/domain"
)

// LoginCommand verifies admin credentials against the API.
type LoginCommand struct {
	auth           domain.AdminAuthenticator
	passwordReader domain.PasswordReader
	logger         *slog.Logger
}

// NewLoginCommand creates a new login command.
func NewLoginCommand(
	auth domain.AdminAuthenticator,
	passwordReader domain.PasswordReader,
	logger *slog.Logger,
) *LoginCommand {
	return &LoginCommand{
		auth:           auth,
		passwordReader: passwordReader,
		logger:         logger,
	}
}

// LoginRequest contains the admin credentials. An empty Password is read from
// the password reader.
type LoginRequest struct {
	Username string
	Password string
}

// Execute forwards the credentials and returns the authenticated user.
func (c *LoginCommand) Execute(ctx context.Context, req LoginRequest) (*domain.LoginResponse, error) {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Username, validation.Required),
	); err != nil {
		return nil, validationError(err)
	}

	password := req.Password
	if password == "" {
		var err error
		password, err = c.passwordReader.ReadPassword(ctx, fmt.Sprintf("Password for %s: ", req.Username))
		if err != nil {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
	}

	resp, err := c.auth.AdminLogin(ctx, req.Username, password)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "Admin login succeeded", "username", resp.User.Username)
	return resp, nil
}
