package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/reflectdiary/diary-api/pkg/register"
	"github.com/reflectdiary/diary-api/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.SubtopicStore = NewSubtopicStore(provider)
	})
}

type SubtopicStore struct {
	CommonFields
}

func NewSubtopicStore(provider SqlProviderAchieve) *SubtopicStore {
	repo := &SubtopicStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_SUBTOPIC)
	repo.SetAllColumns("id", "section_id", "name", "description", "updated_at", "created_at")
	return repo
}

func (s *SubtopicStore) Create(ctx context.Context, data types.Subtopic) error {
	query := sq.Insert(s.GetTable()).
		Columns("id", "section_id", "name", "description", "updated_at", "created_at").
		Values(data.ID, data.SectionID, data.Name, data.Description, data.UpdatedAt, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *SubtopicStore) Get(ctx context.Context, id int64) (*types.Subtopic, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Subtopic
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *SubtopicStore) Update(ctx context.Context, id int64, name, description string, updatedAt int64) error {
	query := sq.Update(s.GetTable()).
		Set("name", name).
		Set("description", description).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *SubtopicStore) Delete(ctx context.Context, id int64) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *SubtopicStore) List(ctx context.Context) ([]types.Subtopic, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("created_at ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Subtopic
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *SubtopicStore) ListBySection(ctx context.Context, sectionID int64) ([]types.Subtopic, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"section_id": sectionID}).OrderBy("created_at ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Subtopic
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
