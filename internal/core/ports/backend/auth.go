// Package backend defines the remote journal management REST API as a port.
// The API itself is an external collaborator; everything behind these
// interfaces is a plain HTTP round trip with no logic of its own.
package backend

import (
	"context"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// AuthAPI covers token issuance and account lifecycle calls. None of these
// require an established session.
type AuthAPI interface {
	// Login exchanges email/password credentials for a bearer token.
	Login(ctx context.Context, email, password string) (*dto.TokenResponse, error)

	// GoogleLogin exchanges a Google ID-token credential for a bearer token.
	GoogleLogin(ctx context.Context, credential string) (*dto.TokenResponse, error)

	// TokenLogin exchanges an admin-generated one-time login token.
	TokenLogin(ctx context.Context, token string, userID int) (*dto.TokenResponse, error)

	// Register forwards a registration request. No token comes back.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// ForgotPassword asks the backend to mail a reset link.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword completes a password reset started by ForgotPassword.
	ResetPassword(ctx context.Context, token, password string) error
}

// SessionAPI covers calls made with the operator's bearer token.
type SessionAPI interface {
	// CurrentUser fetches the profile belonging to token.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)

	// UpdateProfile updates the operator's own profile.
	UpdateProfile(ctx context.Context, token string, req dto.UserUpdateRequest) (*domain.User, error)
}
