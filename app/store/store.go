package store

import (
	"context"

	"github.com/reflectdiary/diary-api/pkg/types"
)

type UserStore interface {
	Create(ctx context.Context, data types.User) error
	Get(ctx context.Context, id int64) (*types.User, error)
	GetFirst(ctx context.Context) (*types.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string, updatedAt int64) error
	Total(ctx context.Context) (int64, error)
}

type SectionStore interface {
	Create(ctx context.Context, data types.Section) error
	Get(ctx context.Context, id int64) (*types.Section, error)
	GetByName(ctx context.Context, name string) (*types.Section, error)
	List(ctx context.Context) ([]types.Section, error)
}

type SubtopicStore interface {
	Create(ctx context.Context, data types.Subtopic) error
	Get(ctx context.Context, id int64) (*types.Subtopic, error)
	Update(ctx context.Context, id int64, name, description string, updatedAt int64) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]types.Subtopic, error)
	ListBySection(ctx context.Context, sectionID int64) ([]types.Subtopic, error)
}

type EntryStore interface {
	Create(ctx context.Context, data types.Entry) error
	Get(ctx context.Context, id int64) (*types.Entry, error)
	Update(ctx context.Context, data types.Entry) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, opts types.ListEntryOptions, page, pageSize uint64) ([]types.Entry, error)
	Total(ctx context.Context, opts types.ListEntryOptions) (int64, error)
	ClearSubtopic(ctx context.Context, subtopicID int64, updatedAt int64) error
	CountBySection(ctx context.Context) ([]types.SectionEntryCount, error)
}

type TagStore interface {
	Create(ctx context.Context, data types.Tag) error
	Get(ctx context.Context, id int64) (*types.Tag, error)
	GetByName(ctx context.Context, name string) (*types.Tag, error)
	Update(ctx context.Context, data types.Tag) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]types.Tag, error)
	ListByIDs(ctx context.Context, ids []int64) ([]types.Tag, error)
}

type EntryTagStore interface {
	BatchCreate(ctx context.Context, entryID int64, tagIDs []int64) error
	DeleteByEntry(ctx context.Context, entryID int64) error
	DeleteByTag(ctx context.Context, tagID int64) error
	ListByEntries(ctx context.Context, entryIDs []int64) ([]types.EntryTag, error)
	CountByTag(ctx context.Context) ([]types.TagEntryCount, error)
}

type PromptStore interface {
	Create(ctx context.Context, data types.Prompt) error
	List(ctx context.Context) ([]types.Prompt, error)
}

type AnswerStore interface {
	Create(ctx context.Context, data types.Answer) error
	ListWithPromptByEntries(ctx context.Context, entryIDs []int64) ([]types.AnswerWithPrompt, error)
}
