package dto

// SettingsUpdateRequest updates the platform's global settings row.
// Pointers differentiate omitted fields from zero values; setting
// ActiveJournalID explicitly to null clears the platform-wide selection.
type SettingsUpdateRequest struct {
	ActiveJournalID *int    `json:"active_journal_id,omitempty"`
	About           *string `json:"about,omitempty"`

	// ActiveJournalIDSet marks that ActiveJournalID carries meaning even
	// when nil, so a clear can be sent as an explicit null.
	ActiveJournalIDSet bool `json:"-"`
}

// ActiveJournalRequest selects the operator's working journal.
type ActiveJournalRequest struct {
	JournalID int `json:"journal_id" binding:"required"`
}

// ActiveJournalResponse reports the current working journal, if any, and
// where the selection came from.
type ActiveJournalResponse struct {
	Journal *JournalResponse `json:"journal"`
	Source  string           `json:"source,omitempty"`
}
