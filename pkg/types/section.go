package types

type Section struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	SortOrder   int    `json:"sort_order" db:"sort_order"`
	CreatedAt   int64  `json:"created_at" db:"created_at"`
}

// SectionDetail is the sections listing shape: the seeded section with its
// subtopics and how many entries it holds.
type SectionDetail struct {
	Section
	Subtopics  []Subtopic `json:"subtopics"`
	EntryCount int64      `json:"entry_count"`
}

type SectionEntryCount struct {
	SectionID int64 `db:"section_id"`
	Total     int64 `db:"total"`
}
