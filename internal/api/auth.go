package api

import (
	"context"
	"net/http"

	"github.com/noah-isme/sdms-portal/internal/models"
	appErrors "github.com/noah-isme/sdms-portal/pkg/errors"
)

// LoginRequest carries either credential-mode ({role,id,password}) or
// token-mode ({token}) login payloads. Token verification is backend-owned.
type LoginRequest struct {
	Role     models.Role `json:"role,omitempty"`
	ID       string      `json:"id,omitempty"`
	Password string      `json:"password,omitempty"`
	Token    string      `json:"token,omitempty"`
}

// LoginResponse is the backend's authentication verdict.
type LoginResponse struct {
	OK    bool        `json:"ok"`
	Role  models.Role `json:"role"`
	ID    string      `json:"id"`
	Email string      `json:"email,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Login authenticates against the backend and returns the granted identity.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*models.Session, error) {
	var resp LoginResponse
	if err := c.do(ctx, "login", http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if !resp.OK {
		message := resp.Error
		if message == "" {
			message = "login failed"
		}
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, message)
	}
	return &models.Session{Role: resp.Role, ID: resp.ID, Email: resp.Email}, nil
}
