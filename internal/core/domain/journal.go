package domain

import "time"

// Journal is a publication issue container grouping entries.
//
// EditorInChiefID is at most one user; the editor set is independent of it
// (the chief need not also appear among the editors). File fields hold
// backend-relative paths and are empty when no file was uploaded.
type Journal struct {
	ID               int        `json:"id"`
	Title            string     `json:"title"`
	TitleEn          string     `json:"title_en,omitempty"`
	Issue            string     `json:"issue"`
	CreatedDate      *time.Time `json:"created_date,omitempty"`
	IsPublished      bool       `json:"is_published"`
	PublicationDate  *time.Time `json:"publication_date,omitempty"`
	PublicationPlace string     `json:"publication_place,omitempty"`
	EditorInChiefID  *int       `json:"editor_in_chief_id,omitempty"`

	// File attachments (backend-relative paths, served under /api).
	CoverPhoto   string `json:"cover_photo,omitempty"`
	MetaFiles    string `json:"meta_files,omitempty"`
	EditorNotes  string `json:"editor_notes,omitempty"`
	FullPDF      string `json:"full_pdf,omitempty"`
	IndexSection string `json:"index_section,omitempty"`
	FilePath     string `json:"file_path,omitempty"` // merged output
}

// JournalEditorLink is the many-to-many row linking editors to journals.
type JournalEditorLink struct {
	JournalID int `json:"journal_id"`
	UserID    int `json:"user_id"`
}
