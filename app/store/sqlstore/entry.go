package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/reflectdiary/diary-api/pkg/register"
	"github.com/reflectdiary/diary-api/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.EntryStore = NewEntryStore(provider)
	})
}

type EntryStore struct {
	CommonFields
}

func NewEntryStore(provider SqlProviderAchieve) *EntryStore {
	repo := &EntryStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_ENTRY)
	repo.SetAllColumns("id", "section_id", "subtopic_id", "title", "content", "mood", "intensity", "is_draft", "updated_at", "created_at")
	return repo
}

func (s *EntryStore) Create(ctx context.Context, data types.Entry) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}
	if data.UpdatedAt == 0 {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "section_id", "subtopic_id", "title", "content", "mood", "intensity", "is_draft", "updated_at", "created_at").
		Values(data.ID, data.SectionID, data.SubtopicID, data.Title, data.Content, data.Mood, data.Intensity, data.IsDraft, data.UpdatedAt, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *EntryStore) Get(ctx context.Context, id int64) (*types.Entry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Entry
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *EntryStore) Update(ctx context.Context, data types.Entry) error {
	query := sq.Update(s.GetTable()).
		Set("section_id", data.SectionID).
		Set("subtopic_id", data.SubtopicID).
		Set("title", data.Title).
		Set("content", data.Content).
		Set("mood", data.Mood).
		Set("intensity", data.Intensity).
		Set("is_draft", data.IsDraft).
		Set("updated_at", data.UpdatedAt).
		Where(sq.Eq{"id": data.ID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *EntryStore) Delete(ctx context.Context, id int64) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// List returns newest-first entries. page/pageSize of 0 disables
// pagination, which the export and stats paths rely on.
func (s *EntryStore) List(ctx context.Context, opts types.ListEntryOptions, page, pageSize uint64) ([]types.Entry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("created_at DESC")
	if page != 0 || pageSize != 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	opts.Apply(&query)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Entry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *EntryStore) Total(ctx context.Context, opts types.ListEntryOptions) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable())

	opts.Apply(&query)

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var res int64
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return 0, err
	}
	return res, nil
}

// ClearSubtopic detaches all entries from a subtopic before it is deleted.
func (s *EntryStore) ClearSubtopic(ctx context.Context, subtopicID int64, updatedAt int64) error {
	query := sq.Update(s.GetTable()).
		Set("subtopic_id", nil).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"subtopic_id": subtopicID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *EntryStore) CountBySection(ctx context.Context) ([]types.SectionEntryCount, error) {
	query := sq.Select("section_id", "COUNT(*) AS total").From(s.GetTable()).GroupBy("section_id")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.SectionEntryCount
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
