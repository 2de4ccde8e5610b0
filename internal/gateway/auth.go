package gateway

import (
	"context"
	"fmt"
	"net/http"

	httpclient "github.com/fastbuka/rider/internal/pkg/http"
	"github.com/fastbuka/rider/internal/pkg/models"
)

// Login exchanges credentials for a token and user
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   req,
		Public: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login: %w: missing token", httpclient.ErrMalformedResponse)
	}
	return &resp, nil
}

// Logout invalidates the current token
func (c *Client) Logout(ctx context.Context) error {
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodDelete,
		Path:   "/auth/logout",
	}, nil)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Register submits a rider application
func (c *Client) Register(ctx context.Context, app models.RiderApplication) (*models.RegistrationResult, error) {
	var resp models.RegistrationResult
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   app,
		Public: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &resp, nil
}

// VerifyEmail confirms the emailed verification code
func (c *Client) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error {
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/auth/verify_email",
		Body:   req,
		Public: true,
	}, nil)
	if err != nil {
		return fmt.Errorf("verify email: %w", err)
	}
	return nil
}
