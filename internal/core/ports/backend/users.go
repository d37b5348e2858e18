package backend

import (
	"context"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// UserAPI covers the user directory reads the workflow views need.
type UserAPI interface {
	// UsersByRole lists users holding the given role. Admin only.
	UsersByRole(ctx context.Context, token string, role domain.Role) ([]domain.User, error)

	// UserBasicInfo fetches display fields of a user. Any session.
	UserBasicInfo(ctx context.Context, token string, userID int) (*domain.User, error)

	// PublicUserInfo fetches display fields of a user without a session.
	PublicUserInfo(ctx context.Context, userID int) (*domain.User, error)
}

// SearchAPI covers the public full-text search over journals and entries.
type SearchAPI interface {
	Search(ctx context.Context, query string) (*dto.SearchResults, error)
}
