package services

import (
	"context"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// UserSvcFacade defines the user directory reads the workflow views use.
type UserSvcFacade interface {
	// UsersByRole lists the users holding a role, for assignment pickers.
	UsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error)

	// BasicInfo fetches a user's display fields.
	BasicInfo(ctx context.Context, userID int) (*domain.User, error)
}

// SettingsSvcFacade defines access to the platform's global settings.
type SettingsSvcFacade interface {
	// Settings fetches the global settings row.
	Settings(ctx context.Context) (*domain.Settings, error)

	// Update changes the global settings row.
	Update(ctx context.Context, req dto.SettingsUpdateRequest) (*domain.Settings, error)
}

// SearchSvc defines the public full-text search.
type SearchSvc interface {
	Search(ctx context.Context, query string) (*dto.SearchResults, error)
}
