package v1_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflectdiary/diary-api/app/core"
	v1 "github.com/reflectdiary/diary-api/app/logic/v1"
	"github.com/reflectdiary/diary-api/pkg/errors"
	"github.com/reflectdiary/diary-api/pkg/security"
	"github.com/reflectdiary/diary-api/pkg/sqlstore"
	"github.com/reflectdiary/diary-api/pkg/types"
	"github.com/reflectdiary/diary-api/pkg/utils"
)

func newTestCore(t *testing.T) *core.Core {
	t.Helper()
	app := core.MustSetupCore(core.CoreConfig{
		Database: sqlstore.ConnectConfig{
			Driver: sqlstore.DRIVER_SQLITE,
			DSN:    ":memory:",
		},
		Security: core.Security{
			JWTSecret:     "test-secret",
			TokenTTLHours: 1,
		},
	})
	require.NoError(t, app.Install())
	return app
}

func authedContext(t *testing.T, app *core.Core) context.Context {
	t.Helper()
	user, err := app.Store().UserStore().GetFirst(context.Background())
	require.NoError(t, err)
	claims := security.NewTokenClaims(user.ID, time.Now().Add(time.Hour).Unix())
	return context.WithValue(context.Background(), v1.TOKEN_CONTEXT_KEY, claims)
}

func firstSection(t *testing.T, app *core.Core) types.Section {
	t.Helper()
	sections, err := app.Store().SectionStore().List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, sections)
	return sections[0]
}

func assertStatus(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, code, appErr.StatusCode())
}

func Test_Login(t *testing.T) {
	app := newTestCore(t)
	logic := v1.NewAuthLogic(context.Background(), app)

	token, user, err := logic.Login(core.DefaultPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotZero(t, user.ID)

	claims, err := security.VerifyUserToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, _, err = logic.Login("wrong")
	assertStatus(t, err, http.StatusUnauthorized)
}

func Test_ChangePassword(t *testing.T) {
	app := newTestCore(t)
	ctx := authedContext(t, app)
	logic := v1.NewAuthLogic(ctx, app)

	assertStatus(t, logic.ChangePassword(core.DefaultPassword, "short"), http.StatusBadRequest)
	assertStatus(t, logic.ChangePassword("wrong", "newpassword"), http.StatusUnauthorized)

	require.NoError(t, logic.ChangePassword(core.DefaultPassword, "newpassword"))

	_, _, err := v1.NewAuthLogic(context.Background(), app).Login(core.DefaultPassword)
	assertStatus(t, err, http.StatusUnauthorized)

	_, _, err = v1.NewAuthLogic(context.Background(), app).Login("newpassword")
	assert.NoError(t, err)
}

func Test_ListSections(t *testing.T) {
	app := newTestCore(t)

	list, err := v1.NewSectionLogic(context.Background(), app).ListSections()
	require.NoError(t, err)
	assert.Len(t, list, len(core.DefaultSections))
	assert.NotNil(t, list[0].Subtopics)
}

func Test_EntryLifecycle(t *testing.T) {
	app := newTestCore(t)
	ctx := context.Background()
	section := firstSection(t, app)

	tagLogic := v1.NewTagLogic(ctx, app)
	tagA, err := tagLogic.CreateTag("gratitude", "#fca311")
	require.NoError(t, err)
	tagB, err := tagLogic.CreateTag("family", "")
	require.NoError(t, err)

	logic := v1.NewEntryLogic(ctx, app)

	intensity := 7
	detail, err := logic.CreateEntry(types.CreateEntryArgs{
		SectionID: section.ID,
		Title:     "A good day",
		Content:   "walked in the park with everyone",
		Mood:      "joyful",
		Intensity: &intensity,
		TagIDs:    []int64{tagA.ID, tagB.ID, tagA.ID},
	})
	require.NoError(t, err)
	assert.Len(t, detail.Tags, 2)
	require.NotNil(t, detail.Section)
	assert.Equal(t, section.Name, detail.Section.Name)

	// tag set is replaced wholesale on update
	updated, err := logic.UpdateEntry(detail.ID, types.CreateEntryArgs{
		SectionID: section.ID,
		Title:     "A good day",
		Content:   "walked in the park",
		Mood:      "calm",
		TagIDs:    []int64{tagB.ID},
	})
	require.NoError(t, err)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, tagB.ID, updated.Tags[0].ID)
	assert.Equal(t, detail.CreatedAt, updated.CreatedAt)

	list, pagination, err := logic.ListEntries(types.ListEntryOptions{TagID: tagB.ID}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(1), pagination.Total)
	assert.Equal(t, int64(1), pagination.Pages)

	require.NoError(t, logic.DeleteEntry(detail.ID))
	_, err = logic.GetEntry(detail.ID)
	assertStatus(t, err, http.StatusNotFound)
}

func Test_EntryValidation(t *testing.T) {
	app := newTestCore(t)
	ctx := context.Background()
	section := firstSection(t, app)
	logic := v1.NewEntryLogic(ctx, app)

	badIntensity := 11
	_, err := logic.CreateEntry(types.CreateEntryArgs{
		SectionID: section.ID,
		Content:   "too intense",
		Intensity: &badIntensity,
	})
	assertStatus(t, err, http.StatusBadRequest)

	_, err = logic.CreateEntry(types.CreateEntryArgs{
		SectionID: 99999,
		Content:   "orphan",
	})
	assertStatus(t, err, http.StatusBadRequest)

	_, err = logic.GetEntry(99999)
	assertStatus(t, err, http.StatusNotFound)
}

func Test_SubtopicDeleteDetachesEntries(t *testing.T) {
	app := newTestCore(t)
	ctx := context.Background()
	section := firstSection(t, app)

	subtopicLogic := v1.NewSubtopicLogic(ctx, app)
	subtopic, err := subtopicLogic.CreateSubtopic(section.ID, "Morning pages", "")
	require.NoError(t, err)

	entryLogic := v1.NewEntryLogic(ctx, app)
	detail, err := entryLogic.CreateEntry(types.CreateEntryArgs{
		SectionID:  section.ID,
		SubtopicID: &subtopic.ID,
		Content:    "three pages before coffee",
	})
	require.NoError(t, err)
	require.NotNil(t, detail.Subtopic)

	require.NoError(t, subtopicLogic.DeleteSubtopic(subtopic.ID))

	got, err := entryLogic.GetEntry(detail.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SubtopicID)
	assert.Nil(t, got.Subtopic)

	assertStatus(t, subtopicLogic.DeleteSubtopic(subtopic.ID), http.StatusNotFound)
}

func Test_TagConflicts(t *testing.T) {
	app := newTestCore(t)
	ctx := context.Background()
	logic := v1.NewTagLogic(ctx, app)

	tag, err := logic.CreateTag("health", "")
	require.NoError(t, err)

	_, err = logic.CreateTag("health", "#ffffff")
	assertStatus(t, err, http.StatusConflict)

	other, err := logic.CreateTag("sleep", "")
	require.NoError(t, err)
	_, err = logic.UpdateTag(other.ID, "health", "")
	assertStatus(t, err, http.StatusConflict)

	require.NoError(t, logic.DeleteTag(tag.ID))
	assertStatus(t, logic.DeleteTag(tag.ID), http.StatusNotFound)
}

func Test_TagListCounts(t *testing.T) {
	app := newTestCore(t)
	ctx := context.Background()
	section := firstSection(t, app)

	tagLogic := v1.NewTagLogic(ctx, app)
	tag, err := tagLogic.CreateTag("walks", "")
	require.NoError(t, err)

	_, err = v1.NewEntryLogic(ctx, app).CreateEntry(types.CreateEntryArgs{
		SectionID: section.ID,
		Content:   "around the block",
		TagIDs:    []int64{tag.ID},
	})
	require.NoError(t, err)

	list, err := tagLogic.ListTags()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].EntryCount)
}

func Test_ExportImport(t *testing.T) {
	app := newTestCore(t)
	ctx := context.Background()
	section := firstSection(t, app)

	tagLogic := v1.NewTagLogic(ctx, app)
	tag, err := tagLogic.CreateTag("memories", "")
	require.NoError(t, err)

	entryLogic := v1.NewEntryLogic(ctx, app)
	created, err := entryLogic.CreateEntry(types.CreateEntryArgs{
		SectionID: section.ID,
		Title:     "Summer",
		Content:   "the lake was warm",
		TagIDs:    []int64{tag.ID},
	})
	require.NoError(t, err)

	transferLogic := v1.NewTransferLogic(ctx, app)
	data, err := transferLogic.Export()
	require.NoError(t, err)
	assert.Equal(t, types.EXPORT_VERSION, data.Version)
	assert.Len(t, data.Sections, len(core.DefaultSections))
	require.Len(t, data.Tags, 1)

	var exportedEntries int
	for _, s := range data.Sections {
		exportedEntries += len(s.Entries)
	}
	assert.Equal(t, 1, exportedEntries)

	// importing the own export is additive and keeps timestamps
	data.Sections = append(data.Sections, types.ExportSection{
		Section: types.Section{Name: "No such section"},
		Entries: []types.ExportEntry{{Entry: types.Entry{Content: "dropped"}}},
	})
	result, err := transferLogic.Import(*data)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TagsUpserted)
	assert.Equal(t, 1, result.EntriesImported)
	assert.Equal(t, 1, result.SectionsSkipped)

	entries, err := app.Store().EntryStore().List(ctx, types.ListEntryOptions{}, 0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, created.CreatedAt, e.CreatedAt)
	}
}

func Test_ImportBadPayload(t *testing.T) {
	app := newTestCore(t)

	_, err := v1.NewTransferLogic(context.Background(), app).Import(types.ExportData{})
	assertStatus(t, err, http.StatusBadRequest)
}

func Test_ImportNewTags(t *testing.T) {
	app := newTestCore(t)
	ctx := context.Background()

	result, err := v1.NewTransferLogic(ctx, app).Import(types.ExportData{
		Version:  types.EXPORT_VERSION,
		Sections: []types.ExportSection{},
		Tags: []types.Tag{
			{Name: "imported"},
			{Name: "imported"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TagsUpserted)

	tags, err := app.Store().TagStore().List(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func Test_StatsOverview(t *testing.T) {
	app := newTestCore(t)
	ctx := context.Background()
	section := firstSection(t, app)

	empty, err := v1.NewStatsLogic(ctx, app).Overview()
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.TotalEntries)

	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	for _, offset := range []int{0, 1, 2, 4} {
		require.NoError(t, app.Store().EntryStore().Create(ctx, types.Entry{
			ID:        utils.GenSpecID(),
			SectionID: section.ID,
			Content:   "two words",
			CreatedAt: base.AddDate(0, 0, offset).Unix(),
			UpdatedAt: base.AddDate(0, 0, offset).Unix(),
		}))
	}

	overview, err := v1.NewStatsLogic(ctx, app).Overview()
	require.NoError(t, err)
	assert.Equal(t, int64(4), overview.TotalEntries)
	assert.Equal(t, 8, overview.TotalWords)
	assert.Equal(t, 3, overview.LongestStreak)
	assert.GreaterOrEqual(t, overview.DaysSinceFirst, 1)
}

func Test_Prompts(t *testing.T) {
	app := newTestCore(t)
	ctx := context.Background()
	section := firstSection(t, app)

	promptLogic := v1.NewPromptLogic(ctx, app)
	prompts, err := promptLogic.ListPrompts()
	require.NoError(t, err)
	require.Len(t, prompts, len(core.DefaultPrompts))

	entryLogic := v1.NewEntryLogic(ctx, app)
	detail, err := entryLogic.CreateEntry(types.CreateEntryArgs{
		SectionID: section.ID,
		Content:   "thinking about the week",
	})
	require.NoError(t, err)

	answer, err := promptLogic.SaveAnswer(detail.ID, prompts[0].ID, "mostly relief")
	require.NoError(t, err)
	assert.Equal(t, detail.ID, answer.EntryID)

	got, err := entryLogic.GetEntry(detail.ID)
	require.NoError(t, err)
	require.Len(t, got.Answers, 1)
	assert.Equal(t, prompts[0].Question, got.Answers[0].Question)

	_, err = promptLogic.SaveAnswer(99999, prompts[0].ID, "x")
	assertStatus(t, err, http.StatusNotFound)

	_, err = promptLogic.SaveAnswer(detail.ID, 99999, "x")
	assertStatus(t, err, http.StatusBadRequest)
}
