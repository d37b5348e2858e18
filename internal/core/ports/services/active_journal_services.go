package services

import (
	"context"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
)

// Sources reported by ActiveJournalReaderSvc.Active.
const (
	ActiveJournalSourceBackend = "backend"
	ActiveJournalSourceMirror  = "mirror"
)

// ActiveJournalReaderSvc defines read access to the process-wide working
// journal pointer.
type ActiveJournalReaderSvc interface {
	// Active returns the current working journal and where the value came
	// from. Purely local, never a network call.
	Active() (*domain.Journal, string)
}

// ActiveJournalWriterSvc defines the mutations of the working journal
// pointer.
type ActiveJournalWriterSvc interface {
	// Set stores the journal locally and mirrors it to durable storage.
	// Never a network call.
	Set(j *domain.Journal) error

	// Clear drops both the in-memory value and the stored mirror.
	Clear() error

	// Refresh re-derives the pointer from the platform's settings and
	// journal list, falling back to the stored mirror when upstream is
	// unreachable.
	Refresh(ctx context.Context) (*domain.Journal, error)
}

// ActiveJournalSvcFacade combines the working journal operations.
type ActiveJournalSvcFacade interface {
	ActiveJournalReaderSvc
	ActiveJournalWriterSvc
}
