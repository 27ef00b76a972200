package v1

import (
	"context"
	"database/sql"

	"github.com/samber/lo"

	"github.com/reflectdiary/diary-api/app/core"
	"github.com/reflectdiary/diary-api/pkg/errors"
	"github.com/reflectdiary/diary-api/pkg/i18n"
	"github.com/reflectdiary/diary-api/pkg/types"
)

type SectionLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewSectionLogic(ctx context.Context, core *core.Core) *SectionLogic {
	return &SectionLogic{
		ctx:  ctx,
		core: core,
	}
}

// ListSections returns the seeded sections with their subtopics and entry
// counts. Sections are read-only through the API.
func (l *SectionLogic) ListSections() ([]types.SectionDetail, error) {
	sections, err := l.core.Store().SectionStore().List(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("SectionLogic.ListSections.SectionStore.List", i18n.ERROR_INTERNAL, err)
	}

	subtopics, err := l.core.Store().SubtopicStore().List(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("SectionLogic.ListSections.SubtopicStore.List", i18n.ERROR_INTERNAL, err)
	}

	counts, err := l.core.Store().EntryStore().CountBySection(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("SectionLogic.ListSections.EntryStore.CountBySection", i18n.ERROR_INTERNAL, err)
	}

	subtopicsBySection := lo.GroupBy(subtopics, func(s types.Subtopic) int64 {
		return s.SectionID
	})
	countBySection := lo.SliceToMap(counts, func(c types.SectionEntryCount) (int64, int64) {
		return c.SectionID, c.Total
	})

	return lo.Map(sections, func(section types.Section, _ int) types.SectionDetail {
		detail := types.SectionDetail{
			Section:    section,
			Subtopics:  subtopicsBySection[section.ID],
			EntryCount: countBySection[section.ID],
		}
		if detail.Subtopics == nil {
			detail.Subtopics = []types.Subtopic{}
		}
		return detail
	}), nil
}
