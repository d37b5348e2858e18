// Package policy holds the capability predicates that decide what a user
// may see or do on journals and entries. Every predicate is a pure function
// of (user, entity) and fails closed: a nil user gets false for everything.
//
// Several predicates currently share a body. They stay separately named on
// purpose, one capability per function, so they can diverge independently.
package policy

import (
	"github.com/insanmekan/journal_management_app/internal/core/domain"
)

// IsAdminOnly reports whether the user holds a platform-wide admin role.
func IsAdminOnly(u *domain.User) bool {
	if u == nil {
		return false
	}
	return u.Role.IsAdminLevel()
}

// IsAdminOverride reports whether the user is treated as chief-equivalent
// for journal management regardless of the journal's actual chief. Kept as
// its own rule rather than folded into IsEditorInChief so the override can
// be tightened without touching the chief check.
func IsAdminOverride(u *domain.User) bool {
	return IsAdminOnly(u)
}

// IsEditorInChief reports whether the user is the journal's designated
// editor in chief, or qualifies via the admin override.
func IsEditorInChief(u *domain.User, j *domain.Journal) bool {
	if u == nil {
		return false
	}
	if IsAdminOverride(u) {
		return true
	}
	if j == nil || j.EditorInChiefID == nil {
		return false
	}
	return *j.EditorInChiefID == u.ID
}

// CanManageJournal reports whether the user may run journal management
// actions such as editor assignment and file merging.
func CanManageJournal(u *domain.User, j *domain.Journal) bool {
	return IsAdminOnly(u) || IsEditorInChief(u, j)
}

// CanViewJournalFiles reports whether the user may see the journal's meta
// and merged files. Editors qualify only for journals they belong to.
func CanViewJournalFiles(u *domain.User, j *domain.Journal, editors []domain.User) bool {
	if u == nil {
		return false
	}
	if IsAdminOnly(u) {
		return true
	}
	if u.Role != domain.RoleEditor || j == nil {
		return false
	}
	if j.EditorInChiefID != nil && *j.EditorInChiefID == u.ID {
		return true
	}
	for _, e := range editors {
		if e.ID == u.ID {
			return true
		}
	}
	return false
}

// CanViewRefereesAndFiles reports whether the user may see an entry's
// referee list and attached files.
func CanViewRefereesAndFiles(u *domain.User, e *domain.Entry) bool {
	if u == nil {
		return false
	}
	if IsAdminOnly(u) {
		return true
	}
	return u.Role == domain.RoleEditor && e != nil && e.JournalID != nil
}

// CanViewTokenAndUpdates reports whether the user may see the entry's
// submission token and update history.
func CanViewTokenAndUpdates(u *domain.User, e *domain.Entry) bool {
	return entitledToEntry(u, e)
}

// CanViewPaymentSection reports whether the user may see the payment
// instructions panel. The panel itself only renders while the entry is
// waiting for payment.
func CanViewPaymentSection(u *domain.User, e *domain.Entry) bool {
	return entitledToEntry(u, e)
}

// CanViewStatus reports whether the user may see the entry's workflow
// status.
func CanViewStatus(u *domain.User, e *domain.Entry) bool {
	return entitledToEntry(u, e)
}

// CanEditEntry reports whether the edit affordances are shown for the
// entry.
func CanEditEntry(u *domain.User, e *domain.Entry) bool {
	return CanViewRefereesAndFiles(u, e)
}

func entitledToEntry(u *domain.User, e *domain.Entry) bool {
	if u == nil {
		return false
	}
	if IsAdminOnly(u) {
		return true
	}
	if e == nil {
		return false
	}
	if u.Role == domain.RoleEditor && e.JournalID != nil {
		return true
	}
	return e.HasAuthor(u.ID) || e.HasReferee(u.ID)
}
