package rest

import (
	"context"
	"fmt"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// Login exchanges credentials at the form-encoded token endpoint. The
// platform speaks OAuth2 password-grant wire format here, not JSON.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": email,
			"password": password,
		}).
		Post("/token")
	if err := decode(resp, err, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GoogleLogin(ctx context.Context, credential string) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"credential": credential}).
		Post("/google-login")
	if err := decode(resp, err, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TokenLogin(ctx context.Context, token string, userID int) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"token": token, "user_id": userID}).
		Post("/token/login-with-token")
	if err := decode(resp, err, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, reqBody dto.RegisterRequest) (*domain.User, error) {
	var out domain.User
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(reqBody).
		Post("/users/")
	if err := decode(resp, err, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email}).
		Post("/forgot-password")
	return decode(resp, err, false, nil)
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"password": password}).
		Post(fmt.Sprintf("/reset-password/%s", token))
	return decode(resp, err, false, nil)
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	var out domain.User
	resp, err := c.request(c.http.R().SetContext(ctx), token).
		Get("/users/me")
	if err := decode(resp, err, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, reqBody dto.UserUpdateRequest) (*domain.User, error) {
	var out domain.User
	resp, err := c.request(c.http.R().SetContext(ctx), token).
		SetBody(reqBody).
		Put("/users/me")
	if err := decode(resp, err, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
