package types

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

type Entry struct {
	ID         int64  `json:"id" db:"id"`
	SectionID  int64  `json:"section_id" db:"section_id"`
	SubtopicID *int64 `json:"subtopic_id" db:"subtopic_id"`
	Title      string `json:"title" db:"title"`
	Content    string `json:"content" db:"content"`
	Mood       string `json:"mood" db:"mood"`
	Intensity  *int   `json:"intensity" db:"intensity"`
	IsDraft    bool   `json:"is_draft" db:"is_draft"`
	UpdatedAt  int64  `json:"updated_at" db:"updated_at"`
	CreatedAt  int64  `json:"created_at" db:"created_at"`
}

// EntryDetail decorates an entry with its section, subtopic, tags and
// prompt answers for API responses.
type EntryDetail struct {
	Entry
	Section  *Section           `json:"section,omitempty"`
	Subtopic *Subtopic          `json:"subtopic,omitempty"`
	Tags     []Tag              `json:"tags"`
	Answers  []AnswerWithPrompt `json:"answers,omitempty"`
}

type CreateEntryArgs struct {
	SectionID  int64
	SubtopicID *int64
	Title      string
	Content    string
	Mood       string
	Intensity  *int
	IsDraft    bool
	TagIDs     []int64
}

type ListEntryOptions struct {
	SectionID  int64
	SubtopicID int64
	TagID      int64
	Mood       string
	Search     string
}

func (opts ListEntryOptions) Apply(query *sq.SelectBuilder) {
	if opts.SectionID > 0 {
		*query = query.Where(sq.Eq{"section_id": opts.SectionID})
	}
	if opts.SubtopicID > 0 {
		*query = query.Where(sq.Eq{"subtopic_id": opts.SubtopicID})
	}
	if opts.TagID > 0 {
		*query = query.Where(sq.Expr("id IN (SELECT entry_id FROM "+TABLE_ENTRY_TAG.Name()+" WHERE tag_id = ?)", opts.TagID))
	}
	if opts.Mood != "" {
		*query = query.Where(sq.Eq{"mood": opts.Mood})
	}
	if opts.Search != "" {
		// LOWER on both sides keeps the match mode identical across
		// postgres and sqlite.
		pattern := "%" + strings.ToLower(opts.Search) + "%"
		*query = query.Where(sq.Or{
			sq.Expr("LOWER(title) LIKE ?", pattern),
			sq.Expr("LOWER(content) LIKE ?", pattern),
		})
	}
}

type Pagination struct {
	Page  uint64 `json:"page"`
	Limit uint64 `json:"limit"`
	Total int64  `json:"total"`
	Pages int64  `json:"pages"`
}

func NewPagination(page, limit uint64, total int64) Pagination {
	p := Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
	}
	if limit > 0 {
		p.Pages = (total + int64(limit) - 1) / int64(limit)
	}
	return p
}
