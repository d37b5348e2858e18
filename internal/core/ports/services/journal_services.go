package services

import (
	"context"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// JournalReaderSvc defines the journal reads, scoped to what the session's
// role may see.
type JournalReaderSvc interface {
	// JournalsForViewer lists journals for the session: admins see all,
	// editors their assigned journals plus published ones, everyone else
	// published only.
	JournalsForViewer(ctx context.Context) ([]domain.Journal, error)

	// PublishedJournals lists published journals without a session.
	PublishedJournals(ctx context.Context) ([]domain.Journal, error)

	// JournalDetail assembles a journal with its editors, visible entries,
	// and the capability flags for the session.
	JournalDetail(ctx context.Context, journalID int) (*dto.JournalDetailResponse, error)
}

// JournalWriterSvc defines journal management actions.
type JournalWriterSvc interface {
	// SetEditorInChief assigns the chief and re-fetches their display info
	// separately rather than trusting a combined response.
	SetEditorInChief(ctx context.Context, journalID, userID int) (*domain.Journal, *domain.User, error)

	// SetEditors reconciles the journal's editor set against the desired id
	// set, one upstream call per add and per remove.
	SetEditors(ctx context.Context, journalID int, desired []int) (*dto.EditorSetResponse, error)

	// MergeFiles triggers the server-side file merge, then re-fetches the
	// journal to pick up updated file paths.
	MergeFiles(ctx context.Context, journalID int) (*domain.Journal, error)

	// GenerateTableOfContents triggers index generation, then re-fetches.
	GenerateTableOfContents(ctx context.Context, journalID int) (*domain.Journal, error)

	// SetActiveJournal updates the platform settings pointer first, then
	// the local selector, so the two diverge only on upstream failure.
	SetActiveJournal(ctx context.Context, journalID int) (*domain.Journal, error)

	// ClearActiveJournal clears the settings pointer and local selector in
	// the same order.
	ClearActiveJournal(ctx context.Context) error
}

// JournalSvcFacade combines all journal operations.
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
