package sqlstore_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflectdiary/diary-api/app/store/sqlstore"
	pkgsqlstore "github.com/reflectdiary/diary-api/pkg/sqlstore"
	"github.com/reflectdiary/diary-api/pkg/types"
	"github.com/reflectdiary/diary-api/pkg/utils"
)

func TestMain(m *testing.M) {
	utils.SetupIDWorker(1)
	os.Exit(m.Run())
}

func setupProvider(t *testing.T) *sqlstore.Provider {
	t.Helper()
	getProvider := sqlstore.MustSetup(pkgsqlstore.ConnectConfig{
		Driver: pkgsqlstore.DRIVER_SQLITE,
		DSN:    ":memory:",
	})
	p := getProvider()
	require.NoError(t, p.Install())
	return p
}

func createSection(t *testing.T, p *sqlstore.Provider, name string) types.Section {
	t.Helper()
	section := types.Section{
		ID:        utils.GenSpecID(),
		Name:      name,
		SortOrder: 1,
		CreatedAt: time.Now().Unix(),
	}
	require.NoError(t, p.SectionStore().Create(context.Background(), section))
	return section
}

func createEntry(t *testing.T, p *sqlstore.Provider, sectionID int64, title, content, mood string) types.Entry {
	t.Helper()
	entry := types.Entry{
		ID:        utils.GenSpecID(),
		SectionID: sectionID,
		Title:     title,
		Content:   content,
		Mood:      mood,
	}
	require.NoError(t, p.EntryStore().Create(context.Background(), entry))
	return entry
}

func Test_EntryCRUD(t *testing.T) {
	p := setupProvider(t)
	ctx := context.Background()
	section := createSection(t, p, "Life story")

	created := createEntry(t, p, section.ID, "First", "hello world", "calm")

	got, err := p.EntryStore().Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)
	assert.Nil(t, got.SubtopicID)
	assert.NotZero(t, got.CreatedAt)

	got.Title = "Renamed"
	got.Mood = "joyful"
	got.UpdatedAt = time.Now().Unix()
	require.NoError(t, p.EntryStore().Update(ctx, *got))

	got, err = p.EntryStore().Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, "joyful", got.Mood)

	require.NoError(t, p.EntryStore().Delete(ctx, created.ID))
	_, err = p.EntryStore().Get(ctx, created.ID)
	assert.Equal(t, sql.ErrNoRows, err)
}

func Test_EntryListFilters(t *testing.T) {
	p := setupProvider(t)
	ctx := context.Background()
	work := createSection(t, p, "Work")
	home := createSection(t, p, "Home")

	createEntry(t, p, work.ID, "Standup notes", "the daily grind", "tired")
	createEntry(t, p, work.ID, "Review", "Quarterly REVIEW went fine", "calm")
	createEntry(t, p, home.ID, "Garden", "planted tomatoes", "joyful")

	list, err := p.EntryStore().List(ctx, types.ListEntryOptions{SectionID: work.ID}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = p.EntryStore().List(ctx, types.ListEntryOptions{Mood: "joyful"}, 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Garden", list[0].Title)

	// search is case-insensitive over title and content
	list, err = p.EntryStore().List(ctx, types.ListEntryOptions{Search: "review"}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	total, err := p.EntryStore().Total(ctx, types.ListEntryOptions{SectionID: work.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func Test_EntryListPagination(t *testing.T) {
	p := setupProvider(t)
	ctx := context.Background()
	section := createSection(t, p, "Reflection and growth")

	for i := 0; i < 5; i++ {
		createEntry(t, p, section.ID, "entry", "content", "")
	}

	page1, err := p.EntryStore().List(ctx, types.ListEntryOptions{}, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page3, err := p.EntryStore().List(ctx, types.ListEntryOptions{}, 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}

func Test_EntryTagAssociations(t *testing.T) {
	p := setupProvider(t)
	ctx := context.Background()
	section := createSection(t, p, "Social life")
	entry := createEntry(t, p, section.ID, "Dinner", "with friends", "")

	tagA := types.Tag{ID: utils.GenSpecID(), Name: "friends", CreatedAt: time.Now().Unix()}
	tagB := types.Tag{ID: utils.GenSpecID(), Name: "food", CreatedAt: time.Now().Unix()}
	require.NoError(t, p.TagStore().Create(ctx, tagA))
	require.NoError(t, p.TagStore().Create(ctx, tagB))

	require.NoError(t, p.EntryTagStore().BatchCreate(ctx, entry.ID, []int64{tagA.ID, tagB.ID}))

	relations, err := p.EntryTagStore().ListByEntries(ctx, []int64{entry.ID})
	require.NoError(t, err)
	assert.Len(t, relations, 2)

	counts, err := p.EntryTagStore().CountByTag(ctx)
	require.NoError(t, err)
	assert.Len(t, counts, 2)

	// wholesale replacement drops everything first
	require.NoError(t, p.EntryTagStore().DeleteByEntry(ctx, entry.ID))
	require.NoError(t, p.EntryTagStore().BatchCreate(ctx, entry.ID, []int64{tagB.ID}))

	relations, err = p.EntryTagStore().ListByEntries(ctx, []int64{entry.ID})
	require.NoError(t, err)
	require.Len(t, relations, 1)
	assert.Equal(t, tagB.ID, relations[0].TagID)

	require.NoError(t, p.EntryTagStore().DeleteByTag(ctx, tagB.ID))
	relations, err = p.EntryTagStore().ListByEntries(ctx, []int64{entry.ID})
	require.NoError(t, err)
	assert.Len(t, relations, 0)
}

func Test_ClearSubtopic(t *testing.T) {
	p := setupProvider(t)
	ctx := context.Background()
	section := createSection(t, p, "Goals and dreams")

	subtopic := types.Subtopic{
		ID:        utils.GenSpecID(),
		SectionID: section.ID,
		Name:      "Running",
		UpdatedAt: time.Now().Unix(),
		CreatedAt: time.Now().Unix(),
	}
	require.NoError(t, p.SubtopicStore().Create(ctx, subtopic))

	entry := types.Entry{
		ID:         utils.GenSpecID(),
		SectionID:  section.ID,
		SubtopicID: &subtopic.ID,
		Content:    "5k today",
	}
	require.NoError(t, p.EntryStore().Create(ctx, entry))

	require.NoError(t, p.EntryStore().ClearSubtopic(ctx, subtopic.ID, time.Now().Unix()))

	got, err := p.EntryStore().Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SubtopicID)
}

func Test_TagNameUnique(t *testing.T) {
	p := setupProvider(t)
	ctx := context.Background()

	tag := types.Tag{ID: utils.GenSpecID(), Name: "mood", CreatedAt: time.Now().Unix()}
	require.NoError(t, p.TagStore().Create(ctx, tag))

	dup := types.Tag{ID: utils.GenSpecID(), Name: "mood", CreatedAt: time.Now().Unix()}
	assert.Error(t, p.TagStore().Create(ctx, dup))
}

func Test_Transaction_RollsBack(t *testing.T) {
	p := setupProvider(t)
	ctx := context.Background()
	section := createSection(t, p, "Shadow side")

	entryID := utils.GenSpecID()
	err := p.Transaction(ctx, func(ctx context.Context) error {
		if err := p.EntryStore().Create(ctx, types.Entry{
			ID:        entryID,
			SectionID: section.ID,
			Content:   "should not survive",
		}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	_, err = p.EntryStore().Get(ctx, entryID)
	assert.Equal(t, sql.ErrNoRows, err)
}
