package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/idtoken"

	"github.com/insanmekan/journal_management_app/internal/apperrors"
	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/core/ports/backend"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// tokenStore is the slice of the local store the session service needs.
type tokenStore interface {
	Token() (string, error)
	SaveToken(token string) error
	DeleteToken() error
}

// googleVerifyFunc checks a Google ID token against an audience before the
// credential is forwarded upstream. Replaceable in tests.
type googleVerifyFunc func(ctx context.Context, credential, audience string) error

// refreshCall is a coalesced in-flight profile fetch. Callers arriving
// while one is outstanding wait on done instead of issuing their own.
type refreshCall struct {
	done chan struct{}
	user *domain.User
	err  error
}

// sessionService owns the gateway's single operator session: the bearer
// token and user profile move together, set and cleared as a pair.
type sessionService struct {
	BaseService
	auth           backend.AuthAPI
	profile        backend.SessionAPI
	store          tokenStore
	googleClientID string
	verifyGoogle   googleVerifyFunc

	mu       sync.Mutex
	token    string
	user     *domain.User
	expiry   *time.Time
	gen      uint64
	inflight *refreshCall
}

// SessionServiceOption customizes the session service.
type SessionServiceOption func(*sessionService)

// WithGoogleVerifier overrides the Google ID token check.
func WithGoogleVerifier(fn googleVerifyFunc) SessionServiceOption {
	return func(s *sessionService) { s.verifyGoogle = fn }
}

// NewSessionService creates the session service. store may be nil, in which
// case nothing is persisted across restarts.
func NewSessionService(auth backend.AuthAPI, profile backend.SessionAPI, store tokenStore, googleClientID string, opts ...SessionServiceOption) *sessionService {
	s := &sessionService{
		auth:           auth,
		profile:        profile,
		store:          store,
		googleClientID: googleClientID,
	}
	s.verifyGoogle = func(ctx context.Context, credential, audience string) error {
		_, err := idtoken.Validate(ctx, credential, audience)
		return err
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InitFromStore restores a session from a previously persisted token. A
// token that no longer authenticates is discarded silently.
func (s *sessionService) InitFromStore(ctx context.Context) {
	if s.store == nil {
		return
	}
	token, err := s.store.Token()
	if err != nil {
		s.LogWarn(ctx, "failed to read stored token", "error", err.Error())
		return
	}
	if token == "" {
		return
	}
	user, err := s.profile.CurrentUser(ctx, token)
	if err != nil {
		s.LogInfo(ctx, "stored token no longer valid, discarding")
		if delErr := s.store.DeleteToken(); delErr != nil {
			s.LogWarn(ctx, "failed to delete stale token", "error", delErr.Error())
		}
		return
	}
	s.commit(ctx, token, user)
	s.LogInfo(ctx, "session restored from store", "user_id", user.ID)
}

func (s *sessionService) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *sessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *sessionService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

func (s *sessionService) TokenExpiry() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiry
}

func (s *sessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	tok, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.clear(ctx)
		return nil, err
	}
	return s.establish(ctx, tok.AccessToken)
}

func (s *sessionService) LoginWithGoogle(ctx context.Context, credential string) (*domain.User, error) {
	if s.googleClientID != "" {
		if err := s.verifyGoogle(ctx, credential, s.googleClientID); err != nil {
			s.LogWarn(ctx, "google credential rejected", "error", err.Error())
			return nil, apperrors.ErrUnauthorized
		}
	}
	tok, err := s.auth.GoogleLogin(ctx, credential)
	if err != nil {
		s.clear(ctx)
		return nil, err
	}
	return s.establish(ctx, tok.AccessToken)
}

func (s *sessionService) LoginWithToken(ctx context.Context, token string, userID int) (*domain.User, error) {
	tok, err := s.auth.TokenLogin(ctx, token, userID)
	if err != nil {
		s.clear(ctx)
		return nil, err
	}
	return s.establish(ctx, tok.AccessToken)
}

func (s *sessionService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	return s.auth.Register(ctx, req)
}

// RefreshUser re-fetches the operator profile. Calls arriving while a fetch
// is outstanding wait for its result instead of issuing a duplicate.
func (s *sessionService) RefreshUser(ctx context.Context) (*domain.User, error) {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return nil, apperrors.ErrNoSession
	}
	if call := s.inflight; call != nil {
		s.mu.Unlock()
		<-call.done
		return call.user, call.err
	}
	call := &refreshCall{done: make(chan struct{})}
	s.inflight = call
	token := s.token
	gen := s.gen
	s.mu.Unlock()

	user, err := s.profile.CurrentUser(ctx, token)

	s.mu.Lock()
	s.inflight = nil
	if s.gen == gen {
		if err == nil {
			s.user = user
		} else if isAuthFailure(err) {
			s.clearLocked(ctx)
		}
	}
	s.mu.Unlock()

	call.user = user
	call.err = err
	close(call.done)
	return user, err
}

func (s *sessionService) UpdateProfile(ctx context.Context, req dto.UserUpdateRequest) (*domain.User, error) {
	s.mu.Lock()
	token := s.token
	gen := s.gen
	s.mu.Unlock()
	if token == "" {
		return nil, apperrors.ErrNoSession
	}
	user, err := s.profile.UpdateProfile(ctx, token, req)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.gen == gen {
		s.user = user
	}
	s.mu.Unlock()
	return user, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.clear(ctx)
	return nil
}

func (s *sessionService) ForgotPassword(ctx context.Context, email string) error {
	return s.auth.ForgotPassword(ctx, email)
}

func (s *sessionService) ResetPassword(ctx context.Context, token, password string) error {
	return s.auth.ResetPassword(ctx, token, password)
}

// establish fetches the profile behind a freshly issued token and commits
// the pair. A profile fetch failure leaves the session cleared, never a
// token without a user.
func (s *sessionService) establish(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.profile.CurrentUser(ctx, token)
	if err != nil {
		s.clear(ctx)
		return nil, err
	}
	s.commit(ctx, token, user)
	return user, nil
}

func (s *sessionService) commit(ctx context.Context, token string, user *domain.User) {
	expiry := tokenExpiry(token)
	s.mu.Lock()
	s.gen++
	s.token = token
	s.user = user
	s.expiry = expiry
	s.mu.Unlock()
	if s.store != nil {
		if err := s.store.SaveToken(token); err != nil {
			s.LogWarn(ctx, "failed to persist token", "error", err.Error())
		}
	}
}

func (s *sessionService) clear(ctx context.Context) {
	s.mu.Lock()
	s.clearLocked(ctx)
	s.mu.Unlock()
}

func (s *sessionService) clearLocked(ctx context.Context) {
	s.gen++
	s.token = ""
	s.user = nil
	s.expiry = nil
	if s.store != nil {
		if err := s.store.DeleteToken(); err != nil {
			s.LogWarn(ctx, "failed to delete persisted token", "error", err.Error())
		}
	}
}

// tokenExpiry reads the exp claim without verifying the signature. The
// upstream API is the token's issuer and verifier; the gateway only uses
// the claim for display.
func tokenExpiry(token string) *time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	return &exp.Time
}

func isAuthFailure(err error) bool {
	return errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrSessionExpired)
}
