package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/dto"
)

// --- Mock AuthAPI ---

type MockAuthAPI struct {
	mock.Mock
	LoginFn          func(ctx context.Context, email, password string) (*dto.TokenResponse, error)
	GoogleLoginFn    func(ctx context.Context, credential string) (*dto.TokenResponse, error)
	TokenLoginFn     func(ctx context.Context, token string, userID int) (*dto.TokenResponse, error)
	RegisterFn       func(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	ForgotPasswordFn func(ctx context.Context, email string) error
	ResetPasswordFn  func(ctx context.Context, token, password string) error
}

func (m *MockAuthAPI) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	args := m.Called(ctx, email, password)
	return tokenOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAuthAPI) GoogleLogin(ctx context.Context, credential string) (*dto.TokenResponse, error) {
	if m.GoogleLoginFn != nil {
		return m.GoogleLoginFn(ctx, credential)
	}
	args := m.Called(ctx, credential)
	return tokenOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAuthAPI) TokenLogin(ctx context.Context, token string, userID int) (*dto.TokenResponse, error) {
	if m.TokenLoginFn != nil {
		return m.TokenLoginFn(ctx, token, userID)
	}
	args := m.Called(ctx, token, userID)
	return tokenOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAuthAPI) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, req)
	}
	args := m.Called(ctx, req)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAuthAPI) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFn != nil {
		return m.ForgotPasswordFn(ctx, email)
	}
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthAPI) ResetPassword(ctx context.Context, token, password string) error {
	if m.ResetPasswordFn != nil {
		return m.ResetPasswordFn(ctx, token, password)
	}
	return m.Called(ctx, token, password).Error(0)
}

// --- Mock SessionAPI ---

type MockSessionAPI struct {
	mock.Mock
	CurrentUserFn   func(ctx context.Context, token string) (*domain.User, error)
	UpdateProfileFn func(ctx context.Context, token string, req dto.UserUpdateRequest) (*domain.User, error)
}

func (m *MockSessionAPI) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if m.CurrentUserFn != nil {
		return m.CurrentUserFn(ctx, token)
	}
	args := m.Called(ctx, token)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockSessionAPI) UpdateProfile(ctx context.Context, token string, req dto.UserUpdateRequest) (*domain.User, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, token, req)
	}
	args := m.Called(ctx, token, req)
	return userOrNil(args.Get(0)), args.Error(1)
}

// --- Mock JournalAPI ---

type MockJournalAPI struct {
	mock.Mock
	ListJournalsFn            func(ctx context.Context, token string) ([]domain.Journal, error)
	ListEditorJournalsFn      func(ctx context.Context, token string) ([]domain.Journal, error)
	ListPublishedJournalsFn   func(ctx context.Context) ([]domain.Journal, error)
	PublicJournalFn           func(ctx context.Context, journalID int) (*domain.Journal, error)
	PublicJournalEditorsFn    func(ctx context.Context, journalID int) ([]domain.JournalEditorLink, error)
	SetEditorInChiefFn        func(ctx context.Context, token string, journalID, userID int) (*domain.Journal, error)
	AddEditorFn               func(ctx context.Context, token string, journalID, userID int) error
	RemoveEditorFn            func(ctx context.Context, token string, journalID, userID int) error
	MergeFilesFn              func(ctx context.Context, token string, journalID int) (*domain.Journal, error)
	GenerateTableOfContentsFn func(ctx context.Context, token string, journalID int) (*domain.Journal, error)
}

func (m *MockJournalAPI) ListJournals(ctx context.Context, token string) ([]domain.Journal, error) {
	if m.ListJournalsFn != nil {
		return m.ListJournalsFn(ctx, token)
	}
	args := m.Called(ctx, token)
	return journalsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockJournalAPI) ListEditorJournals(ctx context.Context, token string) ([]domain.Journal, error) {
	if m.ListEditorJournalsFn != nil {
		return m.ListEditorJournalsFn(ctx, token)
	}
	args := m.Called(ctx, token)
	return journalsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockJournalAPI) ListPublishedJournals(ctx context.Context) ([]domain.Journal, error) {
	if m.ListPublishedJournalsFn != nil {
		return m.ListPublishedJournalsFn(ctx)
	}
	args := m.Called(ctx)
	return journalsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockJournalAPI) PublicJournal(ctx context.Context, journalID int) (*domain.Journal, error) {
	if m.PublicJournalFn != nil {
		return m.PublicJournalFn(ctx, journalID)
	}
	args := m.Called(ctx, journalID)
	return journalOrNil(args.Get(0)), args.Error(1)
}

func (m *MockJournalAPI) PublicJournalEditors(ctx context.Context, journalID int) ([]domain.JournalEditorLink, error) {
	if m.PublicJournalEditorsFn != nil {
		return m.PublicJournalEditorsFn(ctx, journalID)
	}
	args := m.Called(ctx, journalID)
	var links []domain.JournalEditorLink
	if args.Get(0) != nil {
		links = args.Get(0).([]domain.JournalEditorLink)
	}
	return links, args.Error(1)
}

func (m *MockJournalAPI) SetEditorInChief(ctx context.Context, token string, journalID, userID int) (*domain.Journal, error) {
	if m.SetEditorInChiefFn != nil {
		return m.SetEditorInChiefFn(ctx, token, journalID, userID)
	}
	args := m.Called(ctx, token, journalID, userID)
	return journalOrNil(args.Get(0)), args.Error(1)
}

func (m *MockJournalAPI) AddEditor(ctx context.Context, token string, journalID, userID int) error {
	if m.AddEditorFn != nil {
		return m.AddEditorFn(ctx, token, journalID, userID)
	}
	return m.Called(ctx, token, journalID, userID).Error(0)
}

func (m *MockJournalAPI) RemoveEditor(ctx context.Context, token string, journalID, userID int) error {
	if m.RemoveEditorFn != nil {
		return m.RemoveEditorFn(ctx, token, journalID, userID)
	}
	return m.Called(ctx, token, journalID, userID).Error(0)
}

func (m *MockJournalAPI) MergeFiles(ctx context.Context, token string, journalID int) (*domain.Journal, error) {
	if m.MergeFilesFn != nil {
		return m.MergeFilesFn(ctx, token, journalID)
	}
	args := m.Called(ctx, token, journalID)
	return journalOrNil(args.Get(0)), args.Error(1)
}

func (m *MockJournalAPI) GenerateTableOfContents(ctx context.Context, token string, journalID int) (*domain.Journal, error) {
	if m.GenerateTableOfContentsFn != nil {
		return m.GenerateTableOfContentsFn(ctx, token, journalID)
	}
	args := m.Called(ctx, token, journalID)
	return journalOrNil(args.Get(0)), args.Error(1)
}

// --- Mock EntryAPI ---

type MockEntryAPI struct {
	mock.Mock
	EntryFn                     func(ctx context.Context, token string, entryID int) (*domain.Entry, error)
	PublicEntryFn               func(ctx context.Context, entryID int) (*domain.Entry, error)
	EntriesByJournalFn          func(ctx context.Context, token string, journalID int) ([]domain.Entry, error)
	PublishedEntriesByJournalFn func(ctx context.Context, journalID int) ([]domain.Entry, error)
	CreateEntryFn               func(ctx context.Context, token string, req dto.EntryCreateRequest) (*domain.Entry, error)
	UpdateEntryFn               func(ctx context.Context, token string, entryID int, req dto.EntryUpdateRequest) (*domain.Entry, error)
	AddAuthorFn                 func(ctx context.Context, token string, entryID, userID int) error
	RemoveAuthorFn              func(ctx context.Context, token string, entryID, userID int) error
	AddRefereeFn                func(ctx context.Context, token string, entryID, userID int) error
	RemoveRefereeFn             func(ctx context.Context, token string, entryID, userID int) error
	AuthorUpdatesFn             func(ctx context.Context, token string, entryID int) ([]domain.AuthorUpdate, error)
	CreateAuthorUpdateFn        func(ctx context.Context, token string, entryID int, req dto.AuthorUpdateCreateRequest) (*domain.AuthorUpdate, error)
	RefereeUpdatesFn            func(ctx context.Context, token string, entryID int) ([]domain.RefereeUpdate, error)
	CreateRefereeUpdateFn       func(ctx context.Context, token string, entryID int, req dto.RefereeUpdateCreateRequest) (*domain.RefereeUpdate, error)
}

func (m *MockEntryAPI) Entry(ctx context.Context, token string, entryID int) (*domain.Entry, error) {
	if m.EntryFn != nil {
		return m.EntryFn(ctx, token, entryID)
	}
	args := m.Called(ctx, token, entryID)
	return entryOrNil(args.Get(0)), args.Error(1)
}

func (m *MockEntryAPI) PublicEntry(ctx context.Context, entryID int) (*domain.Entry, error) {
	if m.PublicEntryFn != nil {
		return m.PublicEntryFn(ctx, entryID)
	}
	args := m.Called(ctx, entryID)
	return entryOrNil(args.Get(0)), args.Error(1)
}

func (m *MockEntryAPI) EntriesByJournal(ctx context.Context, token string, journalID int) ([]domain.Entry, error) {
	if m.EntriesByJournalFn != nil {
		return m.EntriesByJournalFn(ctx, token, journalID)
	}
	args := m.Called(ctx, token, journalID)
	return entriesOrNil(args.Get(0)), args.Error(1)
}

func (m *MockEntryAPI) PublishedEntriesByJournal(ctx context.Context, journalID int) ([]domain.Entry, error) {
	if m.PublishedEntriesByJournalFn != nil {
		return m.PublishedEntriesByJournalFn(ctx, journalID)
	}
	args := m.Called(ctx, journalID)
	return entriesOrNil(args.Get(0)), args.Error(1)
}

func (m *MockEntryAPI) CreateEntry(ctx context.Context, token string, req dto.EntryCreateRequest) (*domain.Entry, error) {
	if m.CreateEntryFn != nil {
		return m.CreateEntryFn(ctx, token, req)
	}
	args := m.Called(ctx, token, req)
	return entryOrNil(args.Get(0)), args.Error(1)
}

func (m *MockEntryAPI) UpdateEntry(ctx context.Context, token string, entryID int, req dto.EntryUpdateRequest) (*domain.Entry, error) {
	if m.UpdateEntryFn != nil {
		return m.UpdateEntryFn(ctx, token, entryID, req)
	}
	args := m.Called(ctx, token, entryID, req)
	return entryOrNil(args.Get(0)), args.Error(1)
}

func (m *MockEntryAPI) AddAuthor(ctx context.Context, token string, entryID, userID int) error {
	if m.AddAuthorFn != nil {
		return m.AddAuthorFn(ctx, token, entryID, userID)
	}
	return m.Called(ctx, token, entryID, userID).Error(0)
}

func (m *MockEntryAPI) RemoveAuthor(ctx context.Context, token string, entryID, userID int) error {
	if m.RemoveAuthorFn != nil {
		return m.RemoveAuthorFn(ctx, token, entryID, userID)
	}
	return m.Called(ctx, token, entryID, userID).Error(0)
}

func (m *MockEntryAPI) AddReferee(ctx context.Context, token string, entryID, userID int) error {
	if m.AddRefereeFn != nil {
		return m.AddRefereeFn(ctx, token, entryID, userID)
	}
	return m.Called(ctx, token, entryID, userID).Error(0)
}

func (m *MockEntryAPI) RemoveReferee(ctx context.Context, token string, entryID, userID int) error {
	if m.RemoveRefereeFn != nil {
		return m.RemoveRefereeFn(ctx, token, entryID, userID)
	}
	return m.Called(ctx, token, entryID, userID).Error(0)
}

func (m *MockEntryAPI) AuthorUpdates(ctx context.Context, token string, entryID int) ([]domain.AuthorUpdate, error) {
	if m.AuthorUpdatesFn != nil {
		return m.AuthorUpdatesFn(ctx, token, entryID)
	}
	args := m.Called(ctx, token, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuthorUpdate), args.Error(1)
}

func (m *MockEntryAPI) CreateAuthorUpdate(ctx context.Context, token string, entryID int, req dto.AuthorUpdateCreateRequest) (*domain.AuthorUpdate, error) {
	if m.CreateAuthorUpdateFn != nil {
		return m.CreateAuthorUpdateFn(ctx, token, entryID, req)
	}
	args := m.Called(ctx, token, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthorUpdate), args.Error(1)
}

func (m *MockEntryAPI) RefereeUpdates(ctx context.Context, token string, entryID int) ([]domain.RefereeUpdate, error) {
	if m.RefereeUpdatesFn != nil {
		return m.RefereeUpdatesFn(ctx, token, entryID)
	}
	args := m.Called(ctx, token, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RefereeUpdate), args.Error(1)
}

func (m *MockEntryAPI) CreateRefereeUpdate(ctx context.Context, token string, entryID int, req dto.RefereeUpdateCreateRequest) (*domain.RefereeUpdate, error) {
	if m.CreateRefereeUpdateFn != nil {
		return m.CreateRefereeUpdateFn(ctx, token, entryID, req)
	}
	args := m.Called(ctx, token, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefereeUpdate), args.Error(1)
}

// --- Mock UserAPI ---

type MockUserAPI struct {
	mock.Mock
	UsersByRoleFn    func(ctx context.Context, token string, role domain.Role) ([]domain.User, error)
	UserBasicInfoFn  func(ctx context.Context, token string, userID int) (*domain.User, error)
	PublicUserInfoFn func(ctx context.Context, userID int) (*domain.User, error)
}

func (m *MockUserAPI) UsersByRole(ctx context.Context, token string, role domain.Role) ([]domain.User, error) {
	if m.UsersByRoleFn != nil {
		return m.UsersByRoleFn(ctx, token, role)
	}
	args := m.Called(ctx, token, role)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserAPI) UserBasicInfo(ctx context.Context, token string, userID int) (*domain.User, error) {
	if m.UserBasicInfoFn != nil {
		return m.UserBasicInfoFn(ctx, token, userID)
	}
	args := m.Called(ctx, token, userID)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserAPI) PublicUserInfo(ctx context.Context, userID int) (*domain.User, error) {
	if m.PublicUserInfoFn != nil {
		return m.PublicUserInfoFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return userOrNil(args.Get(0)), args.Error(1)
}

// --- Mock SettingsAPI ---

type MockSettingsAPI struct {
	mock.Mock
	SettingsFn       func(ctx context.Context, token string) (*domain.Settings, error)
	UpdateSettingsFn func(ctx context.Context, token string, req dto.SettingsUpdateRequest) (*domain.Settings, error)
}

func (m *MockSettingsAPI) Settings(ctx context.Context, token string) (*domain.Settings, error) {
	if m.SettingsFn != nil {
		return m.SettingsFn(ctx, token)
	}
	args := m.Called(ctx, token)
	var s *domain.Settings
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.Settings)
	}
	return s, args.Error(1)
}

func (m *MockSettingsAPI) UpdateSettings(ctx context.Context, token string, req dto.SettingsUpdateRequest) (*domain.Settings, error) {
	if m.UpdateSettingsFn != nil {
		return m.UpdateSettingsFn(ctx, token, req)
	}
	args := m.Called(ctx, token, req)
	var s *domain.Settings
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.Settings)
	}
	return s, args.Error(1)
}

// --- shared casting helpers ---

func tokenOrNil(v any) *dto.TokenResponse {
	if v == nil {
		return nil
	}
	return v.(*dto.TokenResponse)
}

func userOrNil(v any) *domain.User {
	if v == nil {
		return nil
	}
	return v.(*domain.User)
}

func journalOrNil(v any) *domain.Journal {
	if v == nil {
		return nil
	}
	return v.(*domain.Journal)
}

func journalsOrNil(v any) []domain.Journal {
	if v == nil {
		return nil
	}
	return v.([]domain.Journal)
}

func entryOrNil(v any) *domain.Entry {
	if v == nil {
		return nil
	}
	return v.(*domain.Entry)
}

func entriesOrNil(v any) []domain.Entry {
	if v == nil {
		return nil
	}
	return v.([]domain.Entry)
}

// --- stub session reader ---

type fakeSession struct {
	token string
	user  *domain.User
}

func (f *fakeSession) Current() *domain.User { return f.user }
func (f *fakeSession) Token() string         { return f.token }
func (f *fakeSession) IsAuthenticated() bool { return f.token != "" && f.user != nil }
func (f *fakeSession) TokenExpiry() *time.Time { return nil }

// --- stub active journal selector ---

type fakeSelector struct {
	journal *domain.Journal
	source  string
	cleared bool
}

func (f *fakeSelector) Active() (*domain.Journal, string) { return f.journal, f.source }
func (f *fakeSelector) Set(j *domain.Journal) error {
	f.journal = j
	return nil
}
func (f *fakeSelector) Clear() error {
	f.journal = nil
	f.cleared = true
	return nil
}
func (f *fakeSelector) Refresh(ctx context.Context) (*domain.Journal, error) {
	return f.journal, nil
}

// --- in-memory token store / journal mirror ---

type fakeStore struct {
	token   string
	journal *domain.Journal

	tokenErr error
}

func (f *fakeStore) Token() (string, error) { return f.token, f.tokenErr }
func (f *fakeStore) SaveToken(t string) error {
	f.token = t
	return nil
}
func (f *fakeStore) DeleteToken() error {
	f.token = ""
	return nil
}
func (f *fakeStore) ActiveJournal() (*domain.Journal, error) { return f.journal, nil }
func (f *fakeStore) SaveActiveJournal(j *domain.Journal) error {
	f.journal = j
	return nil
}
func (f *fakeStore) DeleteActiveJournal() error {
	f.journal = nil
	return nil
}
