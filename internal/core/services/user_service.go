package services

import (
	"context"

	"github.com/insanmekan/journal_management_app/internal/apperrors"
	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/core/ports/backend"
	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
)

// userService exposes the user directory reads the assignment pickers use.
type userService struct {
	BaseService
	userAPI backend.UserAPI
	session portssvc.SessionReaderSvc
}

// NewUserService creates the user directory service.
func NewUserService(userAPI backend.UserAPI, session portssvc.SessionReaderSvc) *userService {
	return &userService{userAPI: userAPI, session: session}
}

func (s *userService) UsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	token := s.session.Token()
	if token == "" {
		return nil, apperrors.ErrNoSession
	}
	return s.userAPI.UsersByRole(ctx, token, role)
}

// BasicInfo fetches display fields, preferring the session endpoint and
// degrading to the public one when no session exists.
func (s *userService) BasicInfo(ctx context.Context, userID int) (*domain.User, error) {
	if token := s.session.Token(); token != "" {
		return s.userAPI.UserBasicInfo(ctx, token, userID)
	}
	return s.userAPI.PublicUserInfo(ctx, userID)
}
