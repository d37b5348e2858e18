package services

import (
	"context"
	"time"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// SessionReaderSvc defines read access to the gateway's operator session.
type SessionReaderSvc interface {
	// Current returns the session user, or nil when unauthenticated.
	Current() *domain.User

	// Token returns the bearer token for upstream calls, empty when
	// unauthenticated.
	Token() string

	// IsAuthenticated reports whether both token and user are present.
	IsAuthenticated() bool

	// TokenExpiry returns the token's expiry claim when one could be read.
	TokenExpiry() *time.Time
}

// SessionWriterSvc defines the operations that establish, refresh, or tear
// down the operator session.
type SessionWriterSvc interface {
	// Login authenticates with a credential pair and establishes the session.
	Login(ctx context.Context, email, password string) (*domain.User, error)

	// LoginWithGoogle authenticates with a Google ID token.
	LoginWithGoogle(ctx context.Context, credential string) (*domain.User, error)

	// LoginWithToken re-establishes a session from a previously issued token.
	LoginWithToken(ctx context.Context, token string, userID int) (*domain.User, error)

	// Register creates a new account upstream. It does not log in.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// RefreshUser re-fetches the session user's profile. Concurrent calls
	// coalesce into a single upstream fetch.
	RefreshUser(ctx context.Context) (*domain.User, error)

	// UpdateProfile changes the session user's profile fields.
	UpdateProfile(ctx context.Context, req dto.UserUpdateRequest) (*domain.User, error)

	// Logout clears the session and its stored mirror.
	Logout(ctx context.Context) error

	// ForgotPassword starts the password reset flow for the given email.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword completes a password reset.
	ResetPassword(ctx context.Context, token, password string) error
}

// SessionSvcFacade combines all session operations.
type SessionSvcFacade interface {
	SessionReaderSvc
	SessionWriterSvc
}
