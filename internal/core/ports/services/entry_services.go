package services

import (
	"context"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// EntryReaderSvc defines entry reads, trimmed to the session's entitlement.
type EntryReaderSvc interface {
	// EntryDetail fetches an entry through the entitled endpoint when the
	// session qualifies, the public one otherwise, and attaches the
	// computed capability flags.
	EntryDetail(ctx context.Context, entryID int) (*dto.EntryDetailResponse, error)

	// EntriesForJournal lists a journal's entries as the session may see
	// them: full list for admins and editors, published only otherwise.
	EntriesForJournal(ctx context.Context, journalID int) ([]domain.Entry, error)

	// AuthorUpdates lists the entry's author revisions. Requires the
	// session's token-and-updates entitlement on the entry.
	AuthorUpdates(ctx context.Context, entryID int) ([]domain.AuthorUpdate, error)

	// RefereeUpdates lists the entry's referee review notes, gated the
	// same way.
	RefereeUpdates(ctx context.Context, entryID int) ([]domain.RefereeUpdate, error)
}

// EntryWriterSvc defines entry mutations.
type EntryWriterSvc interface {
	// Create submits a new entry. When the request carries no journal, the
	// working journal pointer pre-fills it.
	Create(ctx context.Context, req dto.EntryCreateRequest) (*domain.Entry, error)

	// Update changes entry fields and returns the refreshed entry.
	Update(ctx context.Context, entryID int, req dto.EntryUpdateRequest) (*domain.Entry, error)

	// SetAuthors reconciles the entry's author set against the desired id
	// set, one upstream call per add and per remove, then re-fetches.
	SetAuthors(ctx context.Context, entryID int, desired []int) (*dto.MemberSetResponse, error)

	// SetReferees reconciles the entry's referee set the same way.
	SetReferees(ctx context.Context, entryID int, desired []int) (*dto.MemberSetResponse, error)

	// ChangeJournal moves the entry to another journal (nil unassigns),
	// re-fetches the entry, and fetches the new journal when one is set.
	ChangeJournal(ctx context.Context, entryID int, journalID *int) (*domain.Entry, *domain.Journal, error)

	// AddAuthorUpdate records a revision on the entry. The session must be
	// one of the entry's authors or hold the edit capability.
	AddAuthorUpdate(ctx context.Context, entryID int, req dto.AuthorUpdateCreateRequest) (*domain.AuthorUpdate, error)

	// AddRefereeUpdate records a review note. The session must be one of
	// the entry's referees or hold the edit capability.
	AddRefereeUpdate(ctx context.Context, entryID int, req dto.RefereeUpdateCreateRequest) (*domain.RefereeUpdate, error)
}

// EntrySvcFacade combines all entry operations.
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
