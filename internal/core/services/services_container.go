package services

import (
	"context"

	"github.com/insanmekan/journal_management_app/internal/core/ports/backend"
	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
	"github.com/insanmekan/journal_management_app/internal/localstore"
	"github.com/insanmekan/journal_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized
// dependencies. A persisted session, if any, is restored before the container
// is returned.
func NewServiceContainer(ctx context.Context, cfg *config.Config, apis backend.Provider, store *localstore.Store) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Session first since nearly everything reads its token.
	var tokens tokenStore
	var mirror journalMirror
	if store != nil {
		tokens = store
		mirror = store
	}
	session := NewSessionService(apis.Auth, apis.Session, tokens, cfg.GoogleClientID)
	session.InitFromStore(ctx)
	container.Session = session

	selector := NewActiveJournalService(apis.Settings, apis.Journals, session, mirror)
	container.ActiveJournal = selector

	container.Entries = NewEntryService(apis.Entries, apis.Journals, session, selector)
	container.Journals = NewJournalService(apis.Journals, apis.Users, apis.Settings, session, container.Entries, selector)
	container.Users = NewUserService(apis.Users, session)
	container.Settings = NewSettingsService(apis.Settings, session)
	container.Search = NewSearchService(apis.Search)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SessionSvcFacade       = (*sessionService)(nil)
	_ portssvc.ActiveJournalSvcFacade = (*activeJournalService)(nil)
	_ portssvc.JournalSvcFacade       = (*journalService)(nil)
	_ portssvc.EntrySvcFacade         = (*entryService)(nil)
	_ portssvc.UserSvcFacade          = (*userService)(nil)
	_ portssvc.SettingsSvcFacade      = (*settingsService)(nil)
	_ portssvc.SearchSvc              = (*searchService)(nil)
)
