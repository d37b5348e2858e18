package services

import (
	"context"

	"github.com/insanmekan/journal_management_app/internal/apperrors"
	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/core/policy"
	"github.com/insanmekan/journal_management_app/internal/core/ports/backend"
	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// settingsService exposes the platform's global settings row.
type settingsService struct {
	BaseService
	settingsAPI backend.SettingsAPI
	session     portssvc.SessionReaderSvc
}

// NewSettingsService creates the settings service.
func NewSettingsService(settingsAPI backend.SettingsAPI, session portssvc.SessionReaderSvc) *settingsService {
	return &settingsService{settingsAPI: settingsAPI, session: session}
}

func (s *settingsService) Settings(ctx context.Context) (*domain.Settings, error) {
	token := s.session.Token()
	if token == "" {
		return nil, apperrors.ErrNoSession
	}
	return s.settingsAPI.Settings(ctx, token)
}

func (s *settingsService) Update(ctx context.Context, req dto.SettingsUpdateRequest) (*domain.Settings, error) {
	if !policy.IsAdminOnly(s.session.Current()) {
		return nil, apperrors.ErrForbidden
	}
	return s.settingsAPI.UpdateSettings(ctx, s.session.Token(), req)
}
