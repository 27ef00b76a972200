package types_test

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflectdiary/diary-api/pkg/types"
)

func Test_NewPagination(t *testing.T) {
	p := types.NewPagination(1, 10, 25)
	assert.Equal(t, int64(3), p.Pages)

	p = types.NewPagination(1, 10, 30)
	assert.Equal(t, int64(3), p.Pages)

	p = types.NewPagination(1, 10, 0)
	assert.Equal(t, int64(0), p.Pages)

	p = types.NewPagination(0, 0, 25)
	assert.Equal(t, int64(0), p.Pages)
}

func Test_ListEntryOptions_Apply(t *testing.T) {
	query := sq.Select("id").From(types.TABLE_ENTRY.Name())
	opts := types.ListEntryOptions{
		SectionID: 7,
		Mood:      "calm",
		Search:    "MixedCase",
	}
	opts.Apply(&query)

	queryString, args, err := query.ToSql()
	require.NoError(t, err)

	assert.Contains(t, queryString, "section_id = ?")
	assert.Contains(t, queryString, "mood = ?")
	assert.Contains(t, queryString, "LOWER(title) LIKE ?")
	assert.Contains(t, queryString, "LOWER(content) LIKE ?")
	assert.Contains(t, args, "%mixedcase%")
	assert.Contains(t, args, int64(7))
}

func Test_ListEntryOptions_ApplyEmpty(t *testing.T) {
	query := sq.Select("id").From(types.TABLE_ENTRY.Name())
	types.ListEntryOptions{}.Apply(&query)

	queryString, _, err := query.ToSql()
	require.NoError(t, err)
	assert.NotContains(t, queryString, "WHERE")
}

func Test_ListEntryOptions_ApplyTagFilter(t *testing.T) {
	query := sq.Select("id").From(types.TABLE_ENTRY.Name())
	types.ListEntryOptions{TagID: 3}.Apply(&query)

	queryString, args, err := query.ToSql()
	require.NoError(t, err)
	assert.Contains(t, queryString, "id IN (SELECT entry_id FROM "+types.TABLE_ENTRY_TAG.Name())
	assert.Contains(t, args, int64(3))
}
