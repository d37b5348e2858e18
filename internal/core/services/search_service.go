package services

import (
	"context"
	"strings"

	"github.com/insanmekan/journal_management_app/internal/apperrors"
	"github.com/insanmekan/journal_management_app/internal/core/ports/backend"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// searchService forwards full-text search to the platform.
type searchService struct {
	BaseService
	searchAPI backend.SearchAPI
}

// NewSearchService creates the search service.
func NewSearchService(searchAPI backend.SearchAPI) *searchService {
	return &searchService{searchAPI: searchAPI}
}

func (s *searchService) Search(ctx context.Context, query string) (*dto.SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.ErrValidation
	}
	return s.searchAPI.Search(ctx, query)
}
