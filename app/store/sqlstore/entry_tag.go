package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/reflectdiary/diary-api/pkg/register"
	"github.com/reflectdiary/diary-api/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.EntryTagStore = NewEntryTagStore(provider)
	})
}

type EntryTagStore struct {
	CommonFields
}

func NewEntryTagStore(provider SqlProviderAchieve) *EntryTagStore {
	repo := &EntryTagStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_ENTRY_TAG)
	repo.SetAllColumns("entry_id", "tag_id")
	return repo
}

func (s *EntryTagStore) BatchCreate(ctx context.Context, entryID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	query := sq.Insert(s.GetTable()).Columns("entry_id", "tag_id")
	for _, tagID := range tagIDs {
		query = query.Values(entryID, tagID)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *EntryTagStore) DeleteByEntry(ctx context.Context, entryID int64) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"entry_id": entryID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *EntryTagStore) DeleteByTag(ctx context.Context, tagID int64) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"tag_id": tagID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *EntryTagStore) ListByEntries(ctx context.Context, entryIDs []int64) ([]types.EntryTag, error) {
	if len(entryIDs) == 0 {
		return nil, nil
	}
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"entry_id": entryIDs})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.EntryTag
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *EntryTagStore) CountByTag(ctx context.Context) ([]types.TagEntryCount, error) {
	query := sq.Select("tag_id", "COUNT(*) AS total").From(s.GetTable()).GroupBy("tag_id")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.TagEntryCount
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
