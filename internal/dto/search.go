package dto

// SearchResults is the platform's answer to a full-text search, grouping
// journal and entry hits.
type SearchResults struct {
	Journals []JournalResponse `json:"journals"`
	Entries  []EntryResponse   `json:"entries"`
}
