package backend

import (
	"context"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// SettingsAPI covers the platform's global settings singleton, which holds
// the active journal pointer among other site-wide fields.
type SettingsAPI interface {
	// Settings fetches the global settings row.
	Settings(ctx context.Context, token string) (*domain.Settings, error)

	// UpdateSettings updates the global settings row. Admin only.
	UpdateSettings(ctx context.Context, token string, req dto.SettingsUpdateRequest) (*domain.Settings, error)
}
