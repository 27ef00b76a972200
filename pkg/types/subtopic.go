package types

type Subtopic struct {
	ID          int64  `json:"id" db:"id"`
	SectionID   int64  `json:"section_id" db:"section_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	UpdatedAt   int64  `json:"updated_at" db:"updated_at"`
	CreatedAt   int64  `json:"created_at" db:"created_at"`
}
