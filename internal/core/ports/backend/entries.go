package backend

import (
	"context"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// EntryAPI covers entry reads, creation/update, and the author/referee link
// mutations. Add/Remove calls hit the admin endpoints first and fall back to
// the editor endpoints, mirroring how the platform authorizes them.
type EntryAPI interface {
	// Entry fetches the full entry, including referees and token. Requires
	// an entitled session.
	Entry(ctx context.Context, token string, entryID int) (*domain.Entry, error)

	// PublicEntry fetches the public projection of an entry.
	PublicEntry(ctx context.Context, entryID int) (*domain.Entry, error)

	// EntriesByJournal lists all entries of a journal. Editor/admin only.
	EntriesByJournal(ctx context.Context, token string, journalID int) ([]domain.Entry, error)

	// PublishedEntriesByJournal lists the published entries of a journal. Public.
	PublishedEntriesByJournal(ctx context.Context, journalID int) ([]domain.Entry, error)

	// CreateEntry submits a new entry.
	CreateEntry(ctx context.Context, token string, req dto.EntryCreateRequest) (*domain.Entry, error)

	// UpdateEntry updates entry fields, including (re/un)assigning its
	// journal via the JournalID pointer.
	UpdateEntry(ctx context.Context, token string, entryID int, req dto.EntryUpdateRequest) (*domain.Entry, error)

	// AddAuthor links a user as an author of the entry.
	AddAuthor(ctx context.Context, token string, entryID, userID int) error

	// RemoveAuthor unlinks an author from the entry.
	RemoveAuthor(ctx context.Context, token string, entryID, userID int) error

	// AddReferee links a user as a referee of the entry.
	AddReferee(ctx context.Context, token string, entryID, userID int) error

	// RemoveReferee unlinks a referee from the entry.
	RemoveReferee(ctx context.Context, token string, entryID, userID int) error

	// AuthorUpdates lists the entry's author revisions, newest first.
	AuthorUpdates(ctx context.Context, token string, entryID int) ([]domain.AuthorUpdate, error)

	// CreateAuthorUpdate records a new author revision on the entry.
	CreateAuthorUpdate(ctx context.Context, token string, entryID int, req dto.AuthorUpdateCreateRequest) (*domain.AuthorUpdate, error)

	// RefereeUpdates lists the entry's referee review notes, newest first.
	RefereeUpdates(ctx context.Context, token string, entryID int) ([]domain.RefereeUpdate, error)

	// CreateRefereeUpdate records a new referee review note on the entry.
	CreateRefereeUpdate(ctx context.Context, token string, entryID int, req dto.RefereeUpdateCreateRequest) (*domain.RefereeUpdate, error)
}
