package domain

import "time"

// EntryStatus is the closed set of submission states. Transitions are owned
// by the backend; the client only reflects whatever it is served.
type EntryStatus string

const (
	StatusWaitingForPayment  EntryStatus = "waiting_for_payment"
	StatusWaitingForAuthors  EntryStatus = "waiting_for_authors"
	StatusWaitingForReferees EntryStatus = "waiting_for_referees"
	StatusWaitingForEditors  EntryStatus = "waiting_for_editors"
	StatusAccepted           EntryStatus = "accepted"
	StatusNotAccepted        EntryStatus = "not_accepted"

	// Legacy values still present on old rows. Rendered, never produced.
	StatusPending  EntryStatus = "pending"
	StatusRejected EntryStatus = "rejected"
)

// Entry is a submitted article. JournalID is nil for unassigned submissions.
//
// RandomToken is the payment-reconciliation reference shown to the entry's
// authors while the entry waits for payment.
type Entry struct {
	ID              int         `json:"id"`
	Title           string      `json:"title"`
	TitleEn         string      `json:"title_en,omitempty"`
	AbstractTr      string      `json:"abstract_tr,omitempty"`
	AbstractEn      string      `json:"abstract_en,omitempty"`
	Keywords        string      `json:"keywords,omitempty"`
	PageNumber      string      `json:"page_number,omitempty"`
	ArticleType     string      `json:"article_type,omitempty"`
	Language        string      `json:"language,omitempty"`
	DOI             string      `json:"doi,omitempty"`
	RandomToken     string      `json:"random_token,omitempty"`
	Status          EntryStatus `json:"status,omitempty"`
	JournalID       *int        `json:"journal_id,omitempty"`
	PublicationDate *time.Time  `json:"publication_date,omitempty"`
	DownloadCount   int         `json:"download_count"`
	ReadCount       int         `json:"read_count"`
	Authors         []User      `json:"authors,omitempty"`
	Referees        []User      `json:"referees,omitempty"`
	FilePath        string      `json:"file_path,omitempty"`
	FullPDF         string      `json:"full_pdf,omitempty"`
}

// AuthorIDs returns the ids of the entry's authors.
func (e *Entry) AuthorIDs() []int {
	ids := make([]int, 0, len(e.Authors))
	for _, u := range e.Authors {
		ids = append(ids, u.ID)
	}
	return ids
}

// RefereeIDs returns the ids of the entry's referees.
func (e *Entry) RefereeIDs() []int {
	ids := make([]int, 0, len(e.Referees))
	for _, u := range e.Referees {
		ids = append(ids, u.ID)
	}
	return ids
}

// HasAuthor reports whether userID appears among the entry's authors.
func (e *Entry) HasAuthor(userID int) bool {
	for _, u := range e.Authors {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// HasReferee reports whether userID appears among the entry's referees.
func (e *Entry) HasReferee(userID int) bool {
	for _, u := range e.Referees {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// AuthorUpdate is a revision an author attaches to their entry: changed
// metadata, a replacement file, or free-form notes.
type AuthorUpdate struct {
	ID          int        `json:"id"`
	Title       string     `json:"title,omitempty"`
	AbstractEn  string     `json:"abstract_en,omitempty"`
	AbstractTr  string     `json:"abstract_tr,omitempty"`
	Keywords    string     `json:"keywords,omitempty"`
	FilePath    string     `json:"file_path,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedDate *time.Time `json:"created_date,omitempty"`
	EntryID     int        `json:"entry_id"`
	AuthorID    int        `json:"author_id"`
}

// RefereeUpdate is a review note a referee attaches to an entry, optionally
// with a report file.
type RefereeUpdate struct {
	ID          int        `json:"id"`
	FilePath    string     `json:"file_path,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedDate *time.Time `json:"created_date,omitempty"`
	EntryID     int        `json:"entry_id"`
	RefereeID   int        `json:"referee_id"`
}
