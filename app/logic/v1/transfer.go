package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/samber/lo"

	"github.com/reflectdiary/diary-api/app/core"
	"github.com/reflectdiary/diary-api/pkg/errors"
	"github.com/reflectdiary/diary-api/pkg/i18n"
	"github.com/reflectdiary/diary-api/pkg/types"
	"github.com/reflectdiary/diary-api/pkg/utils"
)

type TransferLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewTransferLogic(ctx context.Context, core *core.Core) *TransferLogic {
	return &TransferLogic{
		ctx:  ctx,
		core: core,
	}
}

// Export dumps the whole journal into one document: sections with their
// subtopics and fully decorated entries, plus the tag and prompt catalogs.
func (l *TransferLogic) Export() (*types.ExportData, error) {
	sections, err := l.core.Store().SectionStore().List(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TransferLogic.Export.SectionStore.List", i18n.ERROR_INTERNAL, err)
	}

	subtopics, err := l.core.Store().SubtopicStore().List(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TransferLogic.Export.SubtopicStore.List", i18n.ERROR_INTERNAL, err)
	}
	subtopicsBySection := lo.GroupBy(subtopics, func(s types.Subtopic) int64 {
		return s.SectionID
	})

	entryLogic := NewEntryLogic(l.ctx, l.core)
	entries, err := l.core.Store().EntryStore().List(l.ctx, types.ListEntryOptions{}, 0, 0)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TransferLogic.Export.EntryStore.List", i18n.ERROR_INTERNAL, err)
	}
	details, err := entryLogic.decorateEntries(entries, true)
	if err != nil {
		return nil, errors.Trace("TransferLogic.Export", err)
	}
	detailsBySection := lo.GroupBy(details, func(d *types.EntryDetail) int64 {
		return d.SectionID
	})

	tags, err := l.core.Store().TagStore().List(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TransferLogic.Export.TagStore.List", i18n.ERROR_INTERNAL, err)
	}

	prompts, err := l.core.Store().PromptStore().List(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TransferLogic.Export.PromptStore.List", i18n.ERROR_INTERNAL, err)
	}

	data := &types.ExportData{
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		Version:    types.EXPORT_VERSION,
		Sections: lo.Map(sections, func(section types.Section, _ int) types.ExportSection {
			exported := types.ExportSection{
				Section:   section,
				Subtopics: subtopicsBySection[section.ID],
				Entries: lo.Map(detailsBySection[section.ID], func(d *types.EntryDetail, _ int) types.ExportEntry {
					return types.ExportEntry{
						Entry:   d.Entry,
						Tags:    d.Tags,
						Answers: d.Answers,
					}
				}),
			}
			if exported.Subtopics == nil {
				exported.Subtopics = []types.Subtopic{}
			}
			return exported
		}),
		Tags:    tags,
		Prompts: prompts,
	}
	return data, nil
}

// Import is additive. Sections are matched by name and never created;
// entries land in matched sections, tags are upserted by name, and the
// original timestamps are preserved. Everything runs in one transaction.
func (l *TransferLogic) Import(data types.ExportData) (*types.ImportResult, error) {
	if data.Version == "" || data.Sections == nil {
		return nil, errors.New("TransferLogic.Import.payload", i18n.ERROR_IMPORT_BAD_PAYLOAD, nil).Code(http.StatusBadRequest)
	}

	result := &types.ImportResult{}
	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		tagIDByName := make(map[string]int64)
		existingTags, err := l.core.Store().TagStore().List(ctx)
		if err != nil && err != sql.ErrNoRows {
			return errors.New("TransferLogic.Import.TagStore.List", i18n.ERROR_INTERNAL, err)
		}
		for _, tag := range existingTags {
			tagIDByName[tag.Name] = tag.ID
		}

		for _, tag := range data.Tags {
			if _, exist := tagIDByName[tag.Name]; exist {
				continue
			}
			created := types.Tag{
				ID:        utils.GenSpecID(),
				Name:      tag.Name,
				Color:     tag.Color,
				CreatedAt: time.Now().Unix(),
			}
			if err := l.core.Store().TagStore().Create(ctx, created); err != nil {
				return errors.New("TransferLogic.Import.TagStore.Create", i18n.ERROR_INTERNAL, err)
			}
			tagIDByName[created.Name] = created.ID
			result.TagsUpserted++
		}

		for _, importedSection := range data.Sections {
			section, err := l.core.Store().SectionStore().GetByName(ctx, importedSection.Name)
			if err != nil && err != sql.ErrNoRows {
				return errors.New("TransferLogic.Import.SectionStore.GetByName", i18n.ERROR_INTERNAL, err)
			}
			if section == nil {
				result.SectionsSkipped++
				continue
			}

			// Subtopic and tag links are not restored, entries come back
			// as plain rows in the matched section.
			for _, imported := range importedSection.Entries {
				entry := types.Entry{
					ID:        utils.GenSpecID(),
					SectionID: section.ID,
					Title:     imported.Title,
					Content:   imported.Content,
					Mood:      imported.Mood,
					Intensity: imported.Intensity,
					IsDraft:   imported.IsDraft,
					UpdatedAt: imported.UpdatedAt,
					CreatedAt: imported.CreatedAt,
				}
				if err := l.core.Store().EntryStore().Create(ctx, entry); err != nil {
					return errors.New("TransferLogic.Import.EntryStore.Create", i18n.ERROR_INTERNAL, err)
				}
				result.EntriesImported++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
