package dto

import (
	"time"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
)

// EntryCreateRequest carries the fields for submitting a new entry.
type EntryCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	TitleEn     string `json:"title_en"`
	AbstractTr  string `json:"abstract_tr"`
	AbstractEn  string `json:"abstract_en"`
	Keywords    string `json:"keywords"`
	ArticleType string `json:"article_type"`
	Language    string `json:"language"`
	JournalID   *int   `json:"journal_id"`
}

// EntryUpdateRequest defines the entry fields an entitled user may change.
// Pointers differentiate omitted fields from zero values; a JournalID of
// nil in a change-journal call means the entry is being unassigned.
type EntryUpdateRequest struct {
	Title           *string `json:"title,omitempty"`
	TitleEn         *string `json:"title_en,omitempty"`
	AbstractTr      *string `json:"abstract_tr,omitempty"`
	AbstractEn      *string `json:"abstract_en,omitempty"`
	Keywords        *string `json:"keywords,omitempty"`
	PageNumber      *string `json:"page_number,omitempty"`
	ArticleType     *string `json:"article_type,omitempty"`
	Language        *string `json:"language,omitempty"`
	DOI             *string `json:"doi,omitempty"`
	Status          *string `json:"status,omitempty"`
	JournalID       *int    `json:"journal_id,omitempty"`
	JournalIDSet    bool    `json:"-"`
	PublicationDate *string `json:"publication_date,omitempty"`
}

// AuthorUpdateCreateRequest carries a new author revision. Every field is
// optional upstream; an empty body still records a revision marker.
type AuthorUpdateCreateRequest struct {
	Title      string `json:"title,omitempty"`
	AbstractEn string `json:"abstract_en,omitempty"`
	AbstractTr string `json:"abstract_tr,omitempty"`
	Keywords   string `json:"keywords,omitempty"`
	FilePath   string `json:"file_path,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// RefereeUpdateCreateRequest carries a new referee review note.
type RefereeUpdateCreateRequest struct {
	FilePath string `json:"file_path,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// MemberSetRequest carries the desired complete set of linked user IDs for
// an entry's authors or referees. The service diffs it against the current
// set and applies adds and removes individually.
type MemberSetRequest struct {
	UserIDs []int `json:"user_ids" binding:"required"`
}

// ChangeJournalRequest moves an entry to another journal, or unassigns it
// when JournalID is nil.
type ChangeJournalRequest struct {
	JournalID *int `json:"journal_id"`
}

// MemberOpResult records the outcome of one add or remove call made while
// reconciling a member set.
type MemberOpResult struct {
	UserID int    `json:"user_id"`
	Op     string `json:"op"`
	Error  string `json:"error,omitempty"`
}

// MemberSetResponse reports a reconciliation: which operations were applied,
// which failed, and the entry state re-fetched afterwards.
type MemberSetResponse struct {
	Applied []MemberOpResult `json:"applied"`
	Failed  []MemberOpResult `json:"failed"`
	Entry   EntryResponse    `json:"entry"`
}

// PaymentPanel is shown to authors only while the entry awaits payment.
type PaymentPanel struct {
	RandomToken string `json:"random_token"`
}

// EntryResponse is the outward projection of an entry, trimmed to what the
// caller is entitled to see.
type EntryResponse struct {
	ID              int            `json:"id"`
	Title           string         `json:"title"`
	TitleEn         string         `json:"title_en,omitempty"`
	AbstractTr      string         `json:"abstract_tr,omitempty"`
	AbstractEn      string         `json:"abstract_en,omitempty"`
	Keywords        string         `json:"keywords,omitempty"`
	PageNumber      string         `json:"page_number,omitempty"`
	ArticleType     string         `json:"article_type,omitempty"`
	Language        string         `json:"language,omitempty"`
	DOI             string         `json:"doi,omitempty"`
	Status          string         `json:"status,omitempty"`
	JournalID       *int           `json:"journal_id"`
	PublicationDate *time.Time     `json:"publication_date,omitempty"`
	DownloadCount   int            `json:"download_count"`
	ReadCount       int            `json:"read_count"`
	Authors         []UserResponse `json:"authors"`
	Referees        []UserResponse `json:"referees,omitempty"`
	FilePath        string         `json:"file_path,omitempty"`
	FullPDF         string         `json:"full_pdf,omitempty"`
	Payment         *PaymentPanel  `json:"payment,omitempty"`
}

// EntryCapabilities tells the caller which parts of the entry view their
// session unlocks.
type EntryCapabilities struct {
	CanViewFiles           bool `json:"can_view_files"`
	CanViewReferees        bool `json:"can_view_referees"`
	CanViewTokenAndUpdates bool `json:"can_view_token_and_updates"`
	CanViewPayment         bool `json:"can_view_payment"`
	CanViewStatus          bool `json:"can_view_status"`
	CanEdit                bool `json:"can_edit"`
}

// EntryDetailResponse wraps an entry together with the capability flags
// computed for the current session.
type EntryDetailResponse struct {
	Entry        EntryResponse     `json:"entry"`
	Capabilities EntryCapabilities `json:"capabilities"`
}

// ToEntryResponse converts a domain.Entry to its full response DTO. Callers
// are expected to blank out fields the session is not entitled to.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	resp := EntryResponse{
		ID:              e.ID,
		Title:           e.Title,
		TitleEn:         e.TitleEn,
		AbstractTr:      e.AbstractTr,
		AbstractEn:      e.AbstractEn,
		Keywords:        e.Keywords,
		PageNumber:      e.PageNumber,
		ArticleType:     e.ArticleType,
		Language:        e.Language,
		DOI:             e.DOI,
		Status:          string(e.Status),
		JournalID:       e.JournalID,
		PublicationDate: e.PublicationDate,
		DownloadCount:   e.DownloadCount,
		ReadCount:       e.ReadCount,
		Authors:         ToUserResponses(e.Authors),
		Referees:        ToUserResponses(e.Referees),
		FilePath:        e.FilePath,
		FullPDF:         e.FullPDF,
	}
	return resp
}

// ToEntryResponses converts a slice of domain entries.
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = ToEntryResponse(&entries[i])
	}
	return out
}
