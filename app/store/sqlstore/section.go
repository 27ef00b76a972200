package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/reflectdiary/diary-api/pkg/register"
	"github.com/reflectdiary/diary-api/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.SectionStore = NewSectionStore(provider)
	})
}

type SectionStore struct {
	CommonFields
}

func NewSectionStore(provider SqlProviderAchieve) *SectionStore {
	repo := &SectionStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_SECTION)
	repo.SetAllColumns("id", "name", "description", "sort_order", "created_at")
	return repo
}

func (s *SectionStore) Create(ctx context.Context, data types.Section) error {
	query := sq.Insert(s.GetTable()).
		Columns("id", "name", "description", "sort_order", "created_at").
		Values(data.ID, data.Name, data.Description, data.SortOrder, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *SectionStore) Get(ctx context.Context, id int64) (*types.Section, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Section
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *SectionStore) GetByName(ctx context.Context, name string) (*types.Section, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"name": name})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Section
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *SectionStore) List(ctx context.Context) ([]types.Section, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("sort_order ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Section
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
