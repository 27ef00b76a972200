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

type EntryLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewEntryLogic(ctx context.Context, core *core.Core) *EntryLogic {
	return &EntryLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *EntryLogic) validateArgs(args types.CreateEntryArgs) error {
	if args.Intensity != nil && (*args.Intensity < 0 || *args.Intensity > 10) {
		return errors.New("EntryLogic.validateArgs.intensity", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	section, err := l.core.Store().SectionStore().Get(l.ctx, args.SectionID)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("EntryLogic.validateArgs.SectionStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if section == nil {
		return errors.New("EntryLogic.validateArgs.SectionStore.Get.nil", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	if args.SubtopicID != nil {
		subtopic, err := l.core.Store().SubtopicStore().Get(l.ctx, *args.SubtopicID)
		if err != nil && err != sql.ErrNoRows {
			return errors.New("EntryLogic.validateArgs.SubtopicStore.Get", i18n.ERROR_INTERNAL, err)
		}
		if subtopic == nil || subtopic.SectionID != args.SectionID {
			return errors.New("EntryLogic.validateArgs.SubtopicStore.Get.nil", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
		}
	}
	return nil
}

// CreateEntry inserts the entry and its tag associations in a single
// transaction so a crash can't leave a half-written entry.
func (l *EntryLogic) CreateEntry(args types.CreateEntryArgs) (*types.EntryDetail, error) {
	if err := l.validateArgs(args); err != nil {
		return nil, errors.Trace("EntryLogic.CreateEntry", err)
	}

	id := utils.GenSpecID()
	now := time.Now().Unix()
	entry := types.Entry{
		ID:         id,
		SectionID:  args.SectionID,
		SubtopicID: args.SubtopicID,
		Title:      args.Title,
		Content:    args.Content,
		Mood:       args.Mood,
		Intensity:  args.Intensity,
		IsDraft:    args.IsDraft,
		UpdatedAt:  now,
		CreatedAt:  now,
	}

	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().EntryStore().Create(ctx, entry); err != nil {
			return errors.New("EntryLogic.CreateEntry.EntryStore.Create", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().EntryTagStore().BatchCreate(ctx, id, lo.Uniq(args.TagIDs)); err != nil {
			return errors.New("EntryLogic.CreateEntry.EntryTagStore.BatchCreate", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return l.GetEntry(id)
}

// UpdateEntry replaces the stored entry and its tag set wholesale; the
// previous associations are dropped, not diffed.
func (l *EntryLogic) UpdateEntry(id int64, args types.CreateEntryArgs) (*types.EntryDetail, error) {
	existing, err := l.core.Store().EntryStore().Get(l.ctx, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("EntryLogic.UpdateEntry.EntryStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if existing == nil {
		return nil, errors.New("EntryLogic.UpdateEntry.EntryStore.Get.nil", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	}

	if err := l.validateArgs(args); err != nil {
		return nil, errors.Trace("EntryLogic.UpdateEntry", err)
	}

	entry := types.Entry{
		ID:         id,
		SectionID:  args.SectionID,
		SubtopicID: args.SubtopicID,
		Title:      args.Title,
		Content:    args.Content,
		Mood:       args.Mood,
		Intensity:  args.Intensity,
		IsDraft:    args.IsDraft,
		UpdatedAt:  time.Now().Unix(),
		CreatedAt:  existing.CreatedAt,
	}

	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().EntryStore().Update(ctx, entry); err != nil {
			return errors.New("EntryLogic.UpdateEntry.EntryStore.Update", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().EntryTagStore().DeleteByEntry(ctx, id); err != nil {
			return errors.New("EntryLogic.UpdateEntry.EntryTagStore.DeleteByEntry", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().EntryTagStore().BatchCreate(ctx, id, lo.Uniq(args.TagIDs)); err != nil {
			return errors.New("EntryLogic.UpdateEntry.EntryTagStore.BatchCreate", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return l.GetEntry(id)
}

func (l *EntryLogic) DeleteEntry(id int64) error {
	entry, err := l.core.Store().EntryStore().Get(l.ctx, id)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("EntryLogic.DeleteEntry.EntryStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if entry == nil {
		return errors.New("EntryLogic.DeleteEntry.EntryStore.Get.nil", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	}

	return l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().EntryTagStore().DeleteByEntry(ctx, id); err != nil {
			return errors.New("EntryLogic.DeleteEntry.EntryTagStore.DeleteByEntry", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().EntryStore().Delete(ctx, id); err != nil {
			return errors.New("EntryLogic.DeleteEntry.EntryStore.Delete", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
}

func (l *EntryLogic) GetEntry(id int64) (*types.EntryDetail, error) {
	entry, err := l.core.Store().EntryStore().Get(l.ctx, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("EntryLogic.GetEntry.EntryStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if entry == nil {
		return nil, errors.New("EntryLogic.GetEntry.EntryStore.Get.nil", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	}

	details, err := l.decorateEntries([]types.Entry{*entry}, true)
	if err != nil {
		return nil, errors.Trace("EntryLogic.GetEntry", err)
	}
	return details[0], nil
}

func (l *EntryLogic) ListEntries(opts types.ListEntryOptions, page, pageSize uint64) ([]*types.EntryDetail, types.Pagination, error) {
	list, err := l.core.Store().EntryStore().List(l.ctx, opts, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, types.Pagination{}, errors.New("EntryLogic.ListEntries.EntryStore.List", i18n.ERROR_INTERNAL, err)
	}

	total, err := l.core.Store().EntryStore().Total(l.ctx, opts)
	if err != nil {
		return nil, types.Pagination{}, errors.New("EntryLogic.ListEntries.EntryStore.Total", i18n.ERROR_INTERNAL, err)
	}

	details, err := l.decorateEntries(list, false)
	if err != nil {
		return nil, types.Pagination{}, errors.Trace("EntryLogic.ListEntries", err)
	}

	return details, types.NewPagination(page, pageSize, total), nil
}

// decorateEntries attaches sections, subtopics, tags and, for single-entry
// reads, prompt answers.
func (l *EntryLogic) decorateEntries(list []types.Entry, withAnswers bool) ([]*types.EntryDetail, error) {
	if len(list) == 0 {
		return []*types.EntryDetail{}, nil
	}

	sections, err := l.core.Store().SectionStore().List(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("EntryLogic.decorateEntries.SectionStore.List", i18n.ERROR_INTERNAL, err)
	}
	sectionByID := lo.SliceToMap(sections, func(s types.Section) (int64, types.Section) {
		return s.ID, s
	})

	subtopics, err := l.core.Store().SubtopicStore().List(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("EntryLogic.decorateEntries.SubtopicStore.List", i18n.ERROR_INTERNAL, err)
	}
	subtopicByID := lo.SliceToMap(subtopics, func(s types.Subtopic) (int64, types.Subtopic) {
		return s.ID, s
	})

	entryIDs := lo.Map(list, func(e types.Entry, _ int) int64 {
		return e.ID
	})

	relations, err := l.core.Store().EntryTagStore().ListByEntries(l.ctx, entryIDs)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("EntryLogic.decorateEntries.EntryTagStore.ListByEntries", i18n.ERROR_INTERNAL, err)
	}

	tagIDs := lo.Uniq(lo.Map(relations, func(r types.EntryTag, _ int) int64 {
		return r.TagID
	}))
	tags, err := l.core.Store().TagStore().ListByIDs(l.ctx, tagIDs)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("EntryLogic.decorateEntries.TagStore.ListByIDs", i18n.ERROR_INTERNAL, err)
	}
	tagByID := lo.SliceToMap(tags, func(t types.Tag) (int64, types.Tag) {
		return t.ID, t
	})

	var answersByEntry map[int64][]types.AnswerWithPrompt
	if withAnswers {
		answers, err := l.core.Store().AnswerStore().ListWithPromptByEntries(l.ctx, entryIDs)
		if err != nil && err != sql.ErrNoRows {
			return nil, errors.New("EntryLogic.decorateEntries.AnswerStore.ListWithPromptByEntries", i18n.ERROR_INTERNAL, err)
		}
		answersByEntry = lo.GroupBy(answers, func(a types.AnswerWithPrompt) int64 {
			return a.EntryID
		})
	}

	relationsByEntry := lo.GroupBy(relations, func(r types.EntryTag) int64 {
		return r.EntryID
	})

	return lo.Map(list, func(entry types.Entry, _ int) *types.EntryDetail {
		detail := &types.EntryDetail{
			Entry: entry,
			Tags:  []types.Tag{},
		}
		if section, exist := sectionByID[entry.SectionID]; exist {
			detail.Section = &section
		}
		if entry.SubtopicID != nil {
			if subtopic, exist := subtopicByID[*entry.SubtopicID]; exist {
				detail.Subtopic = &subtopic
			}
		}
		for _, relation := range relationsByEntry[entry.ID] {
			if tag, exist := tagByID[relation.TagID]; exist {
				detail.Tags = append(detail.Tags, tag)
			}
		}
		if withAnswers {
			detail.Answers = answersByEntry[entry.ID]
		}
		return detail
	}), nil
}
