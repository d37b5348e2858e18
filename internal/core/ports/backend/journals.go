package backend

import (
	"context"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
)

// JournalAPI covers journal reads and the editor-management mutations.
// Authenticated calls take the operator token explicitly; Public* calls
// need none.
type JournalAPI interface {
	// ListJournals returns every journal, published or not. Editor/admin only.
	ListJournals(ctx context.Context, token string) ([]domain.Journal, error)

	// ListEditorJournals returns the journals the token's user is assigned
	// to as an editor.
	ListEditorJournals(ctx context.Context, token string) ([]domain.Journal, error)

	// ListPublishedJournals returns published journals. Public.
	ListPublishedJournals(ctx context.Context) ([]domain.Journal, error)

	// PublicJournal fetches a single journal regardless of publication
	// status. Public (the backend decides what it reveals).
	PublicJournal(ctx context.Context, journalID int) (*domain.Journal, error)

	// PublicJournalEditors lists the editor links of a journal. Public.
	PublicJournalEditors(ctx context.Context, journalID int) ([]domain.JournalEditorLink, error)

	// SetEditorInChief assigns the journal's editor-in-chief.
	SetEditorInChief(ctx context.Context, token string, journalID, userID int) (*domain.Journal, error)

	// AddEditor links a user as an editor of the journal.
	AddEditor(ctx context.Context, token string, journalID, userID int) error

	// RemoveEditor unlinks an editor from the journal.
	RemoveEditor(ctx context.Context, token string, journalID, userID int) error

	// MergeFiles asks the backend to regenerate the journal's merged
	// document (cover, meta, index, notes, accepted entries). Returns the
	// journal with refreshed file paths.
	MergeFiles(ctx context.Context, token string, journalID int) (*domain.Journal, error)

	// GenerateTableOfContents regenerates only the index section.
	GenerateTableOfContents(ctx context.Context, token string, journalID int) (*domain.Journal, error)
}
