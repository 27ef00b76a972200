package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/reflectdiary/diary-api/pkg/register"
	"github.com/reflectdiary/diary-api/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.PromptStore = NewPromptStore(provider)
		provider.stores.AnswerStore = NewAnswerStore(provider)
	})
}

type PromptStore struct {
	CommonFields
}

func NewPromptStore(provider SqlProviderAchieve) *PromptStore {
	repo := &PromptStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_PROMPT)
	repo.SetAllColumns("id", "question", "created_at")
	return repo
}

func (s *PromptStore) Create(ctx context.Context, data types.Prompt) error {
	query := sq.Insert(s.GetTable()).
		Columns("id", "question", "created_at").
		Values(data.ID, data.Question, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *PromptStore) List(ctx context.Context) ([]types.Prompt, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("created_at ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Prompt
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

type AnswerStore struct {
	CommonFields
}

func NewAnswerStore(provider SqlProviderAchieve) *AnswerStore {
	repo := &AnswerStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_ANSWER)
	repo.SetAllColumns("id", "entry_id", "prompt_id", "content", "created_at")
	return repo
}

func (s *AnswerStore) Create(ctx context.Context, data types.Answer) error {
	query := sq.Insert(s.GetTable()).
		Columns("id", "entry_id", "prompt_id", "content", "created_at").
		Values(data.ID, data.EntryID, data.PromptID, data.Content, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *AnswerStore) ListWithPromptByEntries(ctx context.Context, entryIDs []int64) ([]types.AnswerWithPrompt, error) {
	if len(entryIDs) == 0 {
		return nil, nil
	}
	query := sq.Select("a.id", "a.entry_id", "a.prompt_id", "a.content", "a.created_at", "p.question").
		From(s.GetTable() + " a").
		Join(types.TABLE_PROMPT.Name() + " p ON p.id = a.prompt_id").
		Where(sq.Eq{"a.entry_id": entryIDs}).
		OrderBy("a.created_at ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.AnswerWithPrompt
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
