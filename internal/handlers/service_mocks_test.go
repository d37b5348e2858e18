package handlers_test

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
	"github.com/insanmekan/journal_management_app/internal/dto"
	"github.com/insanmekan/journal_management_app/internal/handlers"
	"github.com/insanmekan/journal_management_app/internal/i18n"
	"github.com/insanmekan/journal_management_app/internal/platform/config"
)

// --- Mock SessionSvc ---
type MockSessionSvc struct {
	mock.Mock
}

func (m *MockSessionSvc) Current() *domain.User {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.User)
}
func (m *MockSessionSvc) Token() string {
	return m.Called().String(0)
}
func (m *MockSessionSvc) IsAuthenticated() bool {
	return m.Called().Bool(0)
}
func (m *MockSessionSvc) TokenExpiry() *time.Time {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*time.Time)
}
func (m *MockSessionSvc) Login(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockSessionSvc) LoginWithGoogle(ctx context.Context, credential string) (*domain.User, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockSessionSvc) LoginWithToken(ctx context.Context, token string, userID int) (*domain.User, error) {
	args := m.Called(ctx, token, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockSessionSvc) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockSessionSvc) RefreshUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockSessionSvc) UpdateProfile(ctx context.Context, req dto.UserUpdateRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockSessionSvc) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockSessionSvc) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *MockSessionSvc) ResetPassword(ctx context.Context, token, password string) error {
	return m.Called(ctx, token, password).Error(0)
}

var _ portssvc.SessionSvcFacade = (*MockSessionSvc)(nil)

// --- Mock ActiveJournalSvc ---
type MockActiveJournalSvc struct {
	mock.Mock
}

func (m *MockActiveJournalSvc) Active() (*domain.Journal, string) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.String(1)
	}
	return args.Get(0).(*domain.Journal), args.String(1)
}
func (m *MockActiveJournalSvc) Set(j *domain.Journal) error {
	return m.Called(j).Error(0)
}
func (m *MockActiveJournalSvc) Clear() error {
	return m.Called().Error(0)
}
func (m *MockActiveJournalSvc) Refresh(ctx context.Context) (*domain.Journal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

var _ portssvc.ActiveJournalSvcFacade = (*MockActiveJournalSvc)(nil)

// --- Mock JournalSvc ---
type MockJournalSvc struct {
	mock.Mock
}

func (m *MockJournalSvc) JournalsForViewer(ctx context.Context) ([]domain.Journal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}
func (m *MockJournalSvc) PublishedJournals(ctx context.Context) ([]domain.Journal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}
func (m *MockJournalSvc) JournalDetail(ctx context.Context, journalID int) (*dto.JournalDetailResponse, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.JournalDetailResponse), args.Error(1)
}
func (m *MockJournalSvc) SetEditorInChief(ctx context.Context, journalID, userID int) (*domain.Journal, *domain.User, error) {
	args := m.Called(ctx, journalID, userID)
	var j *domain.Journal
	var u *domain.User
	if args.Get(0) != nil {
		j = args.Get(0).(*domain.Journal)
	}
	if args.Get(1) != nil {
		u = args.Get(1).(*domain.User)
	}
	return j, u, args.Error(2)
}
func (m *MockJournalSvc) SetEditors(ctx context.Context, journalID int, desired []int) (*dto.EditorSetResponse, error) {
	args := m.Called(ctx, journalID, desired)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EditorSetResponse), args.Error(1)
}
func (m *MockJournalSvc) MergeFiles(ctx context.Context, journalID int) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalSvc) GenerateTableOfContents(ctx context.Context, journalID int) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalSvc) SetActiveJournal(ctx context.Context, journalID int) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockJournalSvc) ClearActiveJournal(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ portssvc.JournalSvcFacade = (*MockJournalSvc)(nil)

// --- Mock EntrySvc ---
type MockEntrySvc struct {
	mock.Mock
}

func (m *MockEntrySvc) EntryDetail(ctx context.Context, entryID int) (*dto.EntryDetailResponse, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EntryDetailResponse), args.Error(1)
}
func (m *MockEntrySvc) EntriesForJournal(ctx context.Context, journalID int) ([]domain.Entry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}
func (m *MockEntrySvc) Create(ctx context.Context, req dto.EntryCreateRequest) (*domain.Entry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}
func (m *MockEntrySvc) Update(ctx context.Context, entryID int, req dto.EntryUpdateRequest) (*domain.Entry, error) {
	args := m.Called(ctx, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}
func (m *MockEntrySvc) SetAuthors(ctx context.Context, entryID int, desired []int) (*dto.MemberSetResponse, error) {
	args := m.Called(ctx, entryID, desired)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MemberSetResponse), args.Error(1)
}
func (m *MockEntrySvc) SetReferees(ctx context.Context, entryID int, desired []int) (*dto.MemberSetResponse, error) {
	args := m.Called(ctx, entryID, desired)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MemberSetResponse), args.Error(1)
}
func (m *MockEntrySvc) ChangeJournal(ctx context.Context, entryID int, journalID *int) (*domain.Entry, *domain.Journal, error) {
	args := m.Called(ctx, entryID, journalID)
	var e *domain.Entry
	var j *domain.Journal
	if args.Get(0) != nil {
		e = args.Get(0).(*domain.Entry)
	}
	if args.Get(1) != nil {
		j = args.Get(1).(*domain.Journal)
	}
	return e, j, args.Error(2)
}

func (m *MockEntrySvc) AuthorUpdates(ctx context.Context, entryID int) ([]domain.AuthorUpdate, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuthorUpdate), args.Error(1)
}

func (m *MockEntrySvc) RefereeUpdates(ctx context.Context, entryID int) ([]domain.RefereeUpdate, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RefereeUpdate), args.Error(1)
}

func (m *MockEntrySvc) AddAuthorUpdate(ctx context.Context, entryID int, req dto.AuthorUpdateCreateRequest) (*domain.AuthorUpdate, error) {
	args := m.Called(ctx, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthorUpdate), args.Error(1)
}

func (m *MockEntrySvc) AddRefereeUpdate(ctx context.Context, entryID int, req dto.RefereeUpdateCreateRequest) (*domain.RefereeUpdate, error) {
	args := m.Called(ctx, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefereeUpdate), args.Error(1)
}

var _ portssvc.EntrySvcFacade = (*MockEntrySvc)(nil)

// --- Mock UserSvc ---
type MockUserSvc struct {
	mock.Mock
}

func (m *MockUserSvc) UsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserSvc) BasicInfo(ctx context.Context, userID int) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserSvc)(nil)

// --- Mock SettingsSvc ---
type MockSettingsSvc struct {
	mock.Mock
}

func (m *MockSettingsSvc) Settings(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}
func (m *MockSettingsSvc) Update(ctx context.Context, req dto.SettingsUpdateRequest) (*domain.Settings, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsSvc)(nil)

// --- Mock SearchSvc ---
type MockSearchSvc struct {
	mock.Mock
}

func (m *MockSearchSvc) Search(ctx context.Context, query string) (*dto.SearchResults, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SearchResults), args.Error(1)
}

var _ portssvc.SearchSvc = (*MockSearchSvc)(nil)

// testServices bundles one mock per facade so suites can reach each one.
type testServices struct {
	Session       *MockSessionSvc
	ActiveJournal *MockActiveJournalSvc
	Journals      *MockJournalSvc
	Entries       *MockEntrySvc
	Users         *MockUserSvc
	Settings      *MockSettingsSvc
	Search        *MockSearchSvc
}

// newTestRouter wires a gin engine exactly as the binary does, but against
// mocked services.
func newTestRouter() (*gin.Engine, *testServices) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	mocks := &testServices{
		Session:       new(MockSessionSvc),
		ActiveJournal: new(MockActiveJournalSvc),
		Journals:      new(MockJournalSvc),
		Entries:       new(MockEntrySvc),
		Users:         new(MockUserSvc),
		Settings:      new(MockSettingsSvc),
		Search:        new(MockSearchSvc),
	}
	container := &portssvc.ServiceContainer{
		Session:       mocks.Session,
		ActiveJournal: mocks.ActiveJournal,
		Journals:      mocks.Journals,
		Entries:       mocks.Entries,
		Users:         mocks.Users,
		Settings:      mocks.Settings,
		Search:        mocks.Search,
	}

	cfg := &config.Config{
		Port:               "8080",
		Version:            "test",
		BackendBaseURL:     "http://localhost:8000/api",
		LocalStorePath:     "test.db",
		LoginRateLimit:     "100-M",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}

	handlers.RegisterRoutes(r, cfg, container, i18n.NewResolver())
	return r, mocks
}
