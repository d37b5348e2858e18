package domain

// Settings is the backend's global singleton settings row (id is always 1).
type Settings struct {
	ID              int    `json:"id"`
	ActiveJournalID *int   `json:"active_journal_id"`
	About           string `json:"about,omitempty"`
}
