package dto

import (
	"time"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
)

// EditorInChiefRequest assigns or replaces a journal's editor in chief.
type EditorInChiefRequest struct {
	UserID int `json:"user_id" binding:"required"`
}

// EditorSetRequest carries the desired complete set of editors for a
// journal. Reconciled the same way entry member sets are.
type EditorSetRequest struct {
	UserIDs []int `json:"user_ids" binding:"required"`
}

// JournalResponse is the outward projection of a journal.
type JournalResponse struct {
	ID               int        `json:"id"`
	Title            string     `json:"title"`
	TitleEn          string     `json:"title_en,omitempty"`
	Issue            string     `json:"issue,omitempty"`
	CreatedDate      *time.Time `json:"created_date,omitempty"`
	IsPublished      bool       `json:"is_published"`
	PublicationDate  *time.Time `json:"publication_date,omitempty"`
	PublicationPlace string     `json:"publication_place,omitempty"`
	EditorInChiefID  *int       `json:"editor_in_chief_id,omitempty"`
	CoverPhoto       string     `json:"cover_photo,omitempty"`
	MetaFiles        string     `json:"meta_files,omitempty"`
	EditorNotes      string     `json:"editor_notes,omitempty"`
	FullPDF          string     `json:"full_pdf,omitempty"`
	IndexSection     string     `json:"index_section,omitempty"`
	FilePath         string     `json:"file_path,omitempty"`
}

// JournalCapabilities tells the caller which journal management affordances
// their session unlocks.
type JournalCapabilities struct {
	IsEditorInChief bool `json:"is_editor_in_chief"`
	CanManage       bool `json:"can_manage"`
	CanViewFiles    bool `json:"can_view_files"`
}

// JournalDetailResponse wraps a journal with its editors, its entries as
// visible to the session, and the computed capability flags.
type JournalDetailResponse struct {
	Journal      JournalResponse     `json:"journal"`
	Editors      []UserResponse      `json:"editors"`
	Entries      []EntryResponse     `json:"entries"`
	Capabilities JournalCapabilities `json:"capabilities"`
}

// EditorSetResponse reports an editor set reconciliation.
type EditorSetResponse struct {
	Applied []MemberOpResult `json:"applied"`
	Failed  []MemberOpResult `json:"failed"`
	Editors []UserResponse   `json:"editors"`
}

// ToJournalResponse converts a domain.Journal to its response DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	return JournalResponse{
		ID:               j.ID,
		Title:            j.Title,
		TitleEn:          j.TitleEn,
		Issue:            j.Issue,
		CreatedDate:      j.CreatedDate,
		IsPublished:      j.IsPublished,
		PublicationDate:  j.PublicationDate,
		PublicationPlace: j.PublicationPlace,
		EditorInChiefID:  j.EditorInChiefID,
		CoverPhoto:       j.CoverPhoto,
		MetaFiles:        j.MetaFiles,
		EditorNotes:      j.EditorNotes,
		FullPDF:          j.FullPDF,
		IndexSection:     j.IndexSection,
		FilePath:         j.FilePath,
	}
}

// ToJournalResponses converts a slice of domain journals.
func ToJournalResponses(journals []domain.Journal) []JournalResponse {
	out := make([]JournalResponse, len(journals))
	for i := range journals {
		out[i] = ToJournalResponse(&journals[i])
	}
	return out
}
