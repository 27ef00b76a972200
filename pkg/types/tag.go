package types

type Tag struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Color     string `json:"color" db:"color"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

type TagDetail struct {
	Tag
	EntryCount int64 `json:"entry_count"`
}

type EntryTag struct {
	EntryID int64 `json:"entry_id" db:"entry_id"`
	TagID   int64 `json:"tag_id" db:"tag_id"`
}

type TagEntryCount struct {
	TagID int64 `db:"tag_id"`
	Total int64 `db:"total"`
}
