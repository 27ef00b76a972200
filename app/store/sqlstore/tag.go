package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/reflectdiary/diary-api/pkg/register"
	"github.com/reflectdiary/diary-api/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.TagStore = NewTagStore(provider)
	})
}

type TagStore struct {
	CommonFields
}

func NewTagStore(provider SqlProviderAchieve) *TagStore {
	repo := &TagStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_TAG)
	repo.SetAllColumns("id", "name", "color", "created_at")
	return repo
}

func (s *TagStore) Create(ctx context.Context, data types.Tag) error {
	query := sq.Insert(s.GetTable()).
		Columns("id", "name", "color", "created_at").
		Values(data.ID, data.Name, data.Color, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *TagStore) Get(ctx context.Context, id int64) (*types.Tag, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Tag
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *TagStore) GetByName(ctx context.Context, name string) (*types.Tag, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"name": name})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Tag
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *TagStore) Update(ctx context.Context, data types.Tag) error {
	query := sq.Update(s.GetTable()).
		Set("name", data.Name).
		Set("color", data.Color).
		Where(sq.Eq{"id": data.ID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *TagStore) Delete(ctx context.Context, id int64) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *TagStore) List(ctx context.Context) ([]types.Tag, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("name ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Tag
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *TagStore) ListByIDs(ctx context.Context, ids []int64) ([]types.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": ids}).OrderBy("name ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Tag
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
