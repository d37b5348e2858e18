package services

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/insanmekan/journal_management_app/internal/apperrors"
	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/core/policy"
	"github.com/insanmekan/journal_management_app/internal/core/ports/backend"
	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// journalService implements journal reads and management workflows on top
// of the remote API.
type journalService struct {
	BaseService
	journalAPI  backend.JournalAPI
	userAPI     backend.UserAPI
	settingsAPI backend.SettingsAPI
	session     portssvc.SessionReaderSvc
	entries     portssvc.EntryReaderSvc
	selector    portssvc.ActiveJournalWriterSvc
}

// NewJournalService creates the journal workflow service.
func NewJournalService(journalAPI backend.JournalAPI, userAPI backend.UserAPI, settingsAPI backend.SettingsAPI, session portssvc.SessionReaderSvc, entries portssvc.EntryReaderSvc, selector portssvc.ActiveJournalWriterSvc) *journalService {
	return &journalService{
		journalAPI:  journalAPI,
		userAPI:     userAPI,
		settingsAPI: settingsAPI,
		session:     session,
		entries:     entries,
		selector:    selector,
	}
}

// JournalsForViewer scopes the journal list to the session's role: admins
// see everything, editors their assignments plus published journals,
// everyone else published journals only.
func (s *journalService) JournalsForViewer(ctx context.Context) ([]domain.Journal, error) {
	user := s.session.Current()
	token := s.session.Token()

	switch {
	case user != nil && user.Role.IsAdminLevel():
		return s.journalAPI.ListJournals(ctx, token)
	case user != nil && user.Role == domain.RoleEditor:
		assigned, err := s.journalAPI.ListEditorJournals(ctx, token)
		if err != nil {
			return nil, err
		}
		published, err := s.journalAPI.ListPublishedJournals(ctx)
		if err != nil {
			return nil, err
		}
		merged := lo.UniqBy(append(assigned, published...), func(j domain.Journal) int { return j.ID })
		return merged, nil
	default:
		return s.journalAPI.ListPublishedJournals(ctx)
	}
}

func (s *journalService) PublishedJournals(ctx context.Context) ([]domain.Journal, error) {
	return s.journalAPI.ListPublishedJournals(ctx)
}

// JournalDetail joins the journal, its editor list, and its visible
// entries. The journal and entries must both resolve; editor display info
// degrades to whatever could be fetched.
func (s *journalService) JournalDetail(ctx context.Context, journalID int) (*dto.JournalDetailResponse, error) {
	journal, err := s.journalAPI.PublicJournal(ctx, journalID)
	if err != nil {
		return nil, err
	}
	user := s.session.Current()
	if !journal.IsPublished && !policy.CanManageJournal(user, journal) && !s.isAssignedEditor(ctx, user, journal.ID) {
		return nil, apperrors.ErrForbidden
	}

	editors := s.resolveEditors(ctx, journalID)

	entries, err := s.entries.EntriesForJournal(ctx, journalID)
	if err != nil {
		return nil, err
	}

	return &dto.JournalDetailResponse{
		Journal: dto.ToJournalResponse(journal),
		Editors: dto.ToUserResponses(editors),
		Entries: dto.ToEntryResponses(entries),
		Capabilities: dto.JournalCapabilities{
			IsEditorInChief: policy.IsEditorInChief(user, journal),
			CanManage:       policy.CanManageJournal(user, journal),
			CanViewFiles:    policy.CanViewJournalFiles(user, journal, editors),
		},
	}, nil
}

// resolveEditors turns the journal's editor links into display users. A
// link whose user cannot be fetched is skipped with a log, not an error.
func (s *journalService) resolveEditors(ctx context.Context, journalID int) []domain.User {
	links, err := s.journalAPI.PublicJournalEditors(ctx, journalID)
	if err != nil {
		s.LogWarn(ctx, "failed to list journal editors", "journal_id", journalID, "error", err.Error())
		return nil
	}
	editors := make([]domain.User, 0, len(links))
	for _, link := range links {
		u, err := s.userAPI.PublicUserInfo(ctx, link.UserID)
		if err != nil {
			s.LogWarn(ctx, "failed to resolve editor", "user_id", link.UserID, "error", err.Error())
			continue
		}
		editors = append(editors, *u)
	}
	return editors
}

// SetEditorInChief assigns the chief, then fetches their display info in a
// second round trip. The assignment standing alone is still a success; the
// display fetch degrades to a nil user.
func (s *journalService) SetEditorInChief(ctx context.Context, journalID, userID int) (*domain.Journal, *domain.User, error) {
	token, err := s.requireManage(ctx, journalID)
	if err != nil {
		return nil, nil, err
	}
	journal, err := s.journalAPI.SetEditorInChief(ctx, token, journalID, userID)
	if err != nil {
		return nil, nil, err
	}
	chief, err := s.userAPI.UserBasicInfo(ctx, token, userID)
	if err != nil {
		s.LogWarn(ctx, "chief assigned but display info fetch failed", "user_id", userID, "error", err.Error())
		return journal, nil, nil
	}
	return journal, chief, nil
}

// SetEditors reconciles the editor set: one upstream call per add and per
// remove, adds first, in the order the ids appear. Failures are collected,
// not rolled back; the returned editor list reflects what actually stuck.
func (s *journalService) SetEditors(ctx context.Context, journalID int, desired []int) (*dto.EditorSetResponse, error) {
	token, err := s.requireManage(ctx, journalID)
	if err != nil {
		return nil, err
	}
	links, err := s.journalAPI.PublicJournalEditors(ctx, journalID)
	if err != nil {
		return nil, err
	}
	current := lo.Map(links, func(l domain.JournalEditorLink, _ int) int { return l.UserID })

	adds := lo.Without(desired, current...)
	removes := lo.Without(current, desired...)

	resp := &dto.EditorSetResponse{}
	for _, id := range adds {
		op := dto.MemberOpResult{UserID: id, Op: "add"}
		if err := s.journalAPI.AddEditor(ctx, token, journalID, id); err != nil {
			op.Error = err.Error()
			resp.Failed = append(resp.Failed, op)
			s.LogWarn(ctx, "add editor failed", "journal_id", journalID, "user_id", id, "error", err.Error())
			continue
		}
		resp.Applied = append(resp.Applied, op)
	}
	for _, id := range removes {
		op := dto.MemberOpResult{UserID: id, Op: "remove"}
		if err := s.journalAPI.RemoveEditor(ctx, token, journalID, id); err != nil {
			op.Error = err.Error()
			resp.Failed = append(resp.Failed, op)
			s.LogWarn(ctx, "remove editor failed", "journal_id", journalID, "user_id", id, "error", err.Error())
			continue
		}
		resp.Applied = append(resp.Applied, op)
	}

	resp.Editors = dto.ToUserResponses(s.resolveEditors(ctx, journalID))
	return resp, nil
}

// MergeFiles triggers the server-side merge, then re-fetches the journal so
// the caller sees the refreshed file paths rather than trusting the merge
// response.
func (s *journalService) MergeFiles(ctx context.Context, journalID int) (*domain.Journal, error) {
	token, err := s.requireManage(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if _, err := s.journalAPI.MergeFiles(ctx, token, journalID); err != nil {
		return nil, err
	}
	return s.journalAPI.PublicJournal(ctx, journalID)
}

func (s *journalService) GenerateTableOfContents(ctx context.Context, journalID int) (*domain.Journal, error) {
	token, err := s.requireManage(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if _, err := s.journalAPI.GenerateTableOfContents(ctx, token, journalID); err != nil {
		return nil, err
	}
	return s.journalAPI.PublicJournal(ctx, journalID)
}

// SetActiveJournal moves the platform-wide pointer: the settings update
// goes first, the local selector second, so local state never leads the
// backend.
func (s *journalService) SetActiveJournal(ctx context.Context, journalID int) (*domain.Journal, error) {
	user := s.session.Current()
	if !policy.IsAdminOnly(user) {
		return nil, apperrors.ErrForbidden
	}
	journal, err := s.journalAPI.PublicJournal(ctx, journalID)
	if err != nil {
		return nil, err
	}
	req := dto.SettingsUpdateRequest{ActiveJournalID: &journalID, ActiveJournalIDSet: true}
	if _, err := s.settingsAPI.UpdateSettings(ctx, s.session.Token(), req); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	if err := s.selector.Set(journal); err != nil {
		s.LogWarn(ctx, "settings updated but selector mirror failed", "error", err.Error())
	}
	return journal, nil
}

func (s *journalService) ClearActiveJournal(ctx context.Context) error {
	user := s.session.Current()
	if !policy.IsAdminOnly(user) {
		return apperrors.ErrForbidden
	}
	req := dto.SettingsUpdateRequest{ActiveJournalIDSet: true}
	if _, err := s.settingsAPI.UpdateSettings(ctx, s.session.Token(), req); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	if err := s.selector.Clear(); err != nil {
		s.LogWarn(ctx, "settings cleared but selector mirror failed", "error", err.Error())
	}
	return nil
}

// requireManage gates management actions on the session's capability for
// the journal.
func (s *journalService) requireManage(ctx context.Context, journalID int) (string, error) {
	user := s.session.Current()
	if user == nil {
		return "", apperrors.ErrNoSession
	}
	journal, err := s.journalAPI.PublicJournal(ctx, journalID)
	if err != nil {
		return "", err
	}
	if !policy.CanManageJournal(user, journal) {
		return "", apperrors.ErrForbidden
	}
	return s.session.Token(), nil
}

// isAssignedEditor reports whether the user appears in the journal's editor
// links. Used only as a visibility fallback for unpublished journals.
func (s *journalService) isAssignedEditor(ctx context.Context, user *domain.User, journalID int) bool {
	if user == nil || user.Role != domain.RoleEditor {
		return false
	}
	links, err := s.journalAPI.PublicJournalEditors(ctx, journalID)
	if err != nil {
		return false
	}
	return lo.ContainsBy(links, func(l domain.JournalEditorLink) bool { return l.UserID == user.ID })
}
