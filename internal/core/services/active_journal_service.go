package services

import (
	"context"
	"errors"
	"sync"

	"github.com/insanmekan/journal_management_app/internal/apperrors"
	"github.com/insanmekan/journal_management_app/internal/core/domain"
	"github.com/insanmekan/journal_management_app/internal/core/ports/backend"
	portssvc "github.com/insanmekan/journal_management_app/internal/core/ports/services"
)

// journalMirror is the slice of the local store the selector needs.
type journalMirror interface {
	ActiveJournal() (*domain.Journal, error)
	SaveActiveJournal(j *domain.Journal) error
	DeleteActiveJournal() error
}

// activeJournalService holds the process-wide working journal pointer.
// Reads and the setter are purely local; only Refresh talks upstream.
type activeJournalService struct {
	BaseService
	settingsAPI backend.SettingsAPI
	journalAPI  backend.JournalAPI
	session     portssvc.SessionReaderSvc
	mirror      journalMirror

	mu      sync.RWMutex
	journal *domain.Journal
	source  string
}

// NewActiveJournalService creates the working journal selector. mirror may
// be nil, in which case the pointer does not survive restarts.
func NewActiveJournalService(settingsAPI backend.SettingsAPI, journalAPI backend.JournalAPI, session portssvc.SessionReaderSvc, mirror journalMirror) *activeJournalService {
	return &activeJournalService{
		settingsAPI: settingsAPI,
		journalAPI:  journalAPI,
		session:     session,
		mirror:      mirror,
	}
}

func (s *activeJournalService) Active() (*domain.Journal, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.journal, s.source
}

func (s *activeJournalService) Set(j *domain.Journal) error {
	if j == nil {
		return s.Clear()
	}
	s.mu.Lock()
	s.journal = j
	s.source = portssvc.ActiveJournalSourceBackend
	s.mu.Unlock()
	if s.mirror != nil {
		return s.mirror.SaveActiveJournal(j)
	}
	return nil
}

func (s *activeJournalService) Clear() error {
	s.mu.Lock()
	s.journal = nil
	s.source = ""
	s.mu.Unlock()
	if s.mirror != nil {
		return s.mirror.DeleteActiveJournal()
	}
	return nil
}

// Refresh re-derives the pointer from the platform settings and journal
// list. When upstream cannot answer, the stored mirror stands in so the
// operator keeps a working journal across backend outages.
func (s *activeJournalService) Refresh(ctx context.Context) (*domain.Journal, error) {
	j, err := s.fromBackend(ctx)
	if err != nil {
		if s.mirror != nil {
			if m, merr := s.mirror.ActiveJournal(); merr == nil && m != nil {
				s.LogWarn(ctx, "active journal refresh failed, using mirror", "error", err.Error(), "journal_id", m.ID)
				s.mu.Lock()
				s.journal = m
				s.source = portssvc.ActiveJournalSourceMirror
				s.mu.Unlock()
				return m, nil
			}
		}
		return nil, err
	}
	if j == nil {
		if clearErr := s.Clear(); clearErr != nil {
			s.LogWarn(ctx, "failed to clear journal mirror", "error", clearErr.Error())
		}
		return nil, nil
	}
	if setErr := s.Set(j); setErr != nil {
		s.LogWarn(ctx, "failed to mirror active journal", "error", setErr.Error())
	}
	return j, nil
}

// fromBackend resolves the settings pointer against the journal list. A
// pointer that matches no listed journal resolves to none.
func (s *activeJournalService) fromBackend(ctx context.Context) (*domain.Journal, error) {
	token := s.session.Token()
	if token == "" {
		return nil, apperrors.ErrNoSession
	}
	settings, err := s.settingsAPI.Settings(ctx, token)
	if err != nil {
		return nil, err
	}
	if settings.ActiveJournalID == nil {
		return nil, nil
	}
	journals, err := s.journalAPI.ListJournals(ctx, token)
	if errors.Is(err, apperrors.ErrForbidden) {
		journals, err = s.journalAPI.ListPublishedJournals(ctx)
	}
	if err != nil {
		return nil, err
	}
	for i := range journals {
		if journals[i].ID == *settings.ActiveJournalID {
			return &journals[i], nil
		}
	}
	s.LogWarn(ctx, "settings point at an unlisted journal", "journal_id", *settings.ActiveJournalID)
	return nil, nil
}
