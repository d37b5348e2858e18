package services

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/insanmekan/journal_management_app/internal/apperrors"
	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/core/policy"
	"github.com/insanmekan/journal_management_app/internal/core/ports/backend"
	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// entryService implements entry reads and workflow mutations on top of the
// remote API.
type entryService struct {
	BaseService
	entryAPI   backend.EntryAPI
	journalAPI backend.JournalAPI
	session    portssvc.SessionReaderSvc
	selector   portssvc.ActiveJournalReaderSvc
}

// NewEntryService creates the entry workflow service.
func NewEntryService(entryAPI backend.EntryAPI, journalAPI backend.JournalAPI, session portssvc.SessionReaderSvc, selector portssvc.ActiveJournalReaderSvc) *entryService {
	return &entryService{
		entryAPI:   entryAPI,
		journalAPI: journalAPI,
		session:    session,
		selector:   selector,
	}
}

// EntryDetail fetches the entry through the entitled endpoint when a
// session exists, falling back to the public projection when the session
// turns out not to qualify, then attaches the capability flags and trims
// fields the session may not see.
func (s *entryService) EntryDetail(ctx context.Context, entryID int) (*dto.EntryDetailResponse, error) {
	user := s.session.Current()

	entry, err := s.fetchEntry(ctx, entryID, user)
	if err != nil {
		return nil, err
	}

	caps := dto.EntryCapabilities{
		CanViewFiles:           policy.CanViewRefereesAndFiles(user, entry),
		CanViewReferees:        policy.CanViewRefereesAndFiles(user, entry),
		CanViewTokenAndUpdates: policy.CanViewTokenAndUpdates(user, entry),
		CanViewPayment:         policy.CanViewPaymentSection(user, entry),
		CanViewStatus:          policy.CanViewStatus(user, entry),
		CanEdit:                policy.CanEditEntry(user, entry),
	}

	resp := dto.ToEntryResponse(entry)
	if !caps.CanViewReferees {
		resp.Referees = nil
	}
	if !caps.CanViewStatus {
		resp.Status = ""
	}
	if caps.CanViewPayment && entry.Status == domain.StatusWaitingForPayment && entry.RandomToken != "" {
		resp.Payment = &dto.PaymentPanel{RandomToken: entry.RandomToken}
	}

	return &dto.EntryDetailResponse{Entry: resp, Capabilities: caps}, nil
}

func (s *entryService) fetchEntry(ctx context.Context, entryID int, user *domain.User) (*domain.Entry, error) {
	if user == nil {
		return s.entryAPI.PublicEntry(ctx, entryID)
	}
	entry, err := s.entryAPI.Entry(ctx, s.session.Token(), entryID)
	if errors.Is(err, apperrors.ErrForbidden) || errors.Is(err, apperrors.ErrNotFound) {
		return s.entryAPI.PublicEntry(ctx, entryID)
	}
	return entry, err
}

// EntriesForJournal scopes the entry list to the session's role. Editors
// whose entitlement the backend rejects degrade to the published list.
func (s *entryService) EntriesForJournal(ctx context.Context, journalID int) ([]domain.Entry, error) {
	user := s.session.Current()
	switch {
	case user != nil && user.Role.IsAdminLevel():
		return s.entryAPI.EntriesByJournal(ctx, s.session.Token(), journalID)
	case user != nil && user.Role == domain.RoleEditor:
		entries, err := s.entryAPI.EntriesByJournal(ctx, s.session.Token(), journalID)
		if errors.Is(err, apperrors.ErrForbidden) {
			return s.entryAPI.PublishedEntriesByJournal(ctx, journalID)
		}
		return entries, err
	default:
		return s.entryAPI.PublishedEntriesByJournal(ctx, journalID)
	}
}

// Create submits a new entry, pre-filling the working journal when the
// request does not name one.
func (s *entryService) Create(ctx context.Context, req dto.EntryCreateRequest) (*domain.Entry, error) {
	token := s.session.Token()
	if token == "" {
		return nil, apperrors.ErrNoSession
	}
	if req.JournalID == nil {
		if active, _ := s.selector.Active(); active != nil {
			req.JournalID = &active.ID
		}
	}
	return s.entryAPI.CreateEntry(ctx, token, req)
}

// Update changes entry fields, then re-fetches the full entry so the
// caller sees upstream's view rather than the mutation response.
func (s *entryService) Update(ctx context.Context, entryID int, req dto.EntryUpdateRequest) (*domain.Entry, error) {
	token, entry, err := s.requireEdit(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.entryAPI.UpdateEntry(ctx, token, entry.ID, req); err != nil {
		return nil, err
	}
	return s.entryAPI.Entry(ctx, token, entryID)
}

func (s *entryService) SetAuthors(ctx context.Context, entryID int, desired []int) (*dto.MemberSetResponse, error) {
	return s.reconcileMembers(ctx, entryID, desired,
		func(e *domain.Entry) []int { return e.AuthorIDs() },
		s.entryAPI.AddAuthor, s.entryAPI.RemoveAuthor)
}

func (s *entryService) SetReferees(ctx context.Context, entryID int, desired []int) (*dto.MemberSetResponse, error) {
	return s.reconcileMembers(ctx, entryID, desired,
		func(e *domain.Entry) []int { return e.RefereeIDs() },
		s.entryAPI.AddReferee, s.entryAPI.RemoveReferee)
}

// reconcileMembers diffs the desired id set against the entry's current
// one and applies adds then removes, one upstream call per id, in the
// order the ids appear. Nothing is rolled back on partial failure; the
// concluding re-fetch reports whatever upstream actually persisted.
func (s *entryService) reconcileMembers(ctx context.Context, entryID int, desired []int, currentIDs func(*domain.Entry) []int, add, remove func(ctx context.Context, token string, entryID, userID int) error) (*dto.MemberSetResponse, error) {
	token, entry, err := s.requireEdit(ctx, entryID)
	if err != nil {
		return nil, err
	}
	current := currentIDs(entry)

	adds := lo.Without(desired, current...)
	removes := lo.Without(current, desired...)

	resp := &dto.MemberSetResponse{}
	for _, id := range adds {
		op := dto.MemberOpResult{UserID: id, Op: "add"}
		if err := add(ctx, token, entryID, id); err != nil {
			op.Error = err.Error()
			resp.Failed = append(resp.Failed, op)
			s.LogWarn(ctx, "member add failed", "entry_id", entryID, "user_id", id, "error", err.Error())
			continue
		}
		resp.Applied = append(resp.Applied, op)
	}
	for _, id := range removes {
		op := dto.MemberOpResult{UserID: id, Op: "remove"}
		if err := remove(ctx, token, entryID, id); err != nil {
			op.Error = err.Error()
			resp.Failed = append(resp.Failed, op)
			s.LogWarn(ctx, "member remove failed", "entry_id", entryID, "user_id", id, "error", err.Error())
			continue
		}
		resp.Applied = append(resp.Applied, op)
	}

	refreshed, err := s.entryAPI.Entry(ctx, token, entryID)
	if err != nil {
		return nil, err
	}
	resp.Entry = dto.ToEntryResponse(refreshed)
	return resp, nil
}

// ChangeJournal moves the entry to another journal, or unassigns it when
// journalID is nil. The entry is re-fetched after the update, and the new
// journal is fetched only when one is now associated.
func (s *entryService) ChangeJournal(ctx context.Context, entryID int, journalID *int) (*domain.Entry, *domain.Journal, error) {
	token, entry, err := s.requireEdit(ctx, entryID)
	if err != nil {
		return nil, nil, err
	}
	req := dto.EntryUpdateRequest{JournalID: journalID, JournalIDSet: true}
	if _, err := s.entryAPI.UpdateEntry(ctx, token, entry.ID, req); err != nil {
		return nil, nil, err
	}
	refreshed, err := s.entryAPI.Entry(ctx, token, entryID)
	if err != nil {
		return nil, nil, err
	}
	if refreshed.JournalID == nil {
		return refreshed, nil, nil
	}
	journal, err := s.journalAPI.PublicJournal(ctx, *refreshed.JournalID)
	if err != nil {
		s.LogWarn(ctx, "entry moved but journal fetch failed", "journal_id", *refreshed.JournalID, "error", err.Error())
		return refreshed, nil, nil
	}
	return refreshed, journal, nil
}

// AuthorUpdates lists the entry's author revisions for an entitled session.
func (s *entryService) AuthorUpdates(ctx context.Context, entryID int) ([]domain.AuthorUpdate, error) {
	token, _, err := s.requireUpdatesView(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return s.entryAPI.AuthorUpdates(ctx, token, entryID)
}

// RefereeUpdates lists the entry's referee review notes for an entitled
// session.
func (s *entryService) RefereeUpdates(ctx context.Context, entryID int) ([]domain.RefereeUpdate, error) {
	token, _, err := s.requireUpdatesView(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return s.entryAPI.RefereeUpdates(ctx, token, entryID)
}

// AddAuthorUpdate records a revision. Authors post on their own entries;
// the edit capability covers editors and admins.
func (s *entryService) AddAuthorUpdate(ctx context.Context, entryID int, req dto.AuthorUpdateCreateRequest) (*domain.AuthorUpdate, error) {
	user, token, entry, err := s.fetchForSession(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.HasAuthor(user.ID) && !policy.CanEditEntry(user, entry) {
		return nil, apperrors.ErrForbidden
	}
	return s.entryAPI.CreateAuthorUpdate(ctx, token, entryID, req)
}

// AddRefereeUpdate records a review note. Referees post on entries they
// review; the edit capability covers editors and admins.
func (s *entryService) AddRefereeUpdate(ctx context.Context, entryID int, req dto.RefereeUpdateCreateRequest) (*domain.RefereeUpdate, error) {
	user, token, entry, err := s.fetchForSession(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.HasReferee(user.ID) && !policy.CanEditEntry(user, entry) {
		return nil, apperrors.ErrForbidden
	}
	return s.entryAPI.CreateRefereeUpdate(ctx, token, entryID, req)
}

// requireUpdatesView gates the update history on the same entitlement as
// the submission token.
func (s *entryService) requireUpdatesView(ctx context.Context, entryID int) (string, *domain.Entry, error) {
	user, token, entry, err := s.fetchForSession(ctx, entryID)
	if err != nil {
		return "", nil, err
	}
	if !policy.CanViewTokenAndUpdates(user, entry) {
		return "", nil, apperrors.ErrForbidden
	}
	return token, entry, nil
}

func (s *entryService) fetchForSession(ctx context.Context, entryID int) (*domain.User, string, *domain.Entry, error) {
	user := s.session.Current()
	if user == nil {
		return nil, "", nil, apperrors.ErrNoSession
	}
	token := s.session.Token()
	entry, err := s.entryAPI.Entry(ctx, token, entryID)
	if err != nil {
		return nil, "", nil, err
	}
	return user, token, entry, nil
}

// requireEdit fetches the entry and gates the mutation on the session's
// edit capability.
func (s *entryService) requireEdit(ctx context.Context, entryID int) (string, *domain.Entry, error) {
	user := s.session.Current()
	if user == nil {
		return "", nil, apperrors.ErrNoSession
	}
	token := s.session.Token()
	entry, err := s.entryAPI.Entry(ctx, token, entryID)
	if err != nil {
		return "", nil, err
	}
	if !policy.CanEditEntry(user, entry) && !entry.HasAuthor(user.ID) {
		return "", nil, apperrors.ErrForbidden
	}
	return token, entry, nil
}
