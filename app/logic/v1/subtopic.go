package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/reflectdiary/diary-api/app/core"
	"github.com/reflectdiary/diary-api/pkg/errors"
	"github.com/reflectdiary/diary-api/pkg/i18n"
	"github.com/reflectdiary/diary-api/pkg/types"
	"github.com/reflectdiary/diary-api/pkg/utils"
)

type SubtopicLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewSubtopicLogic(ctx context.Context, core *core.Core) *SubtopicLogic {
	return &SubtopicLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *SubtopicLogic) CreateSubtopic(sectionID int64, name, description string) (*types.Subtopic, error) {
	section, err := l.core.Store().SectionStore().Get(l.ctx, sectionID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("SubtopicLogic.CreateSubtopic.SectionStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if section == nil {
		return nil, errors.New("SubtopicLogic.CreateSubtopic.SectionStore.Get.nil", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	now := time.Now().Unix()
	subtopic := types.Subtopic{
		ID:          utils.GenSpecID(),
		SectionID:   sectionID,
		Name:        name,
		Description: description,
		UpdatedAt:   now,
		CreatedAt:   now,
	}
	if err = l.core.Store().SubtopicStore().Create(l.ctx, subtopic); err != nil {
		return nil, errors.New("SubtopicLogic.CreateSubtopic.SubtopicStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return &subtopic, nil
}

func (l *SubtopicLogic) UpdateSubtopic(id int64, name, description string) (*types.Subtopic, error) {
	subtopic, err := l.core.Store().SubtopicStore().Get(l.ctx, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("SubtopicLogic.UpdateSubtopic.SubtopicStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if subtopic == nil {
		return nil, errors.New("SubtopicLogic.UpdateSubtopic.SubtopicStore.Get.nil", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	}

	now := time.Now().Unix()
	if err = l.core.Store().SubtopicStore().Update(l.ctx, id, name, description, now); err != nil {
		return nil, errors.New("SubtopicLogic.UpdateSubtopic.SubtopicStore.Update", i18n.ERROR_INTERNAL, err)
	}

	subtopic.Name = name
	subtopic.Description = description
	subtopic.UpdatedAt = now
	return subtopic, nil
}

// DeleteSubtopic removes the subtopic and detaches its entries in one
// transaction. Entries survive as subtopic-less.
func (l *SubtopicLogic) DeleteSubtopic(id int64) error {
	subtopic, err := l.core.Store().SubtopicStore().Get(l.ctx, id)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("SubtopicLogic.DeleteSubtopic.SubtopicStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if subtopic == nil {
		return errors.New("SubtopicLogic.DeleteSubtopic.SubtopicStore.Get.nil", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	}

	return l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().EntryStore().ClearSubtopic(ctx, id, time.Now().Unix()); err != nil {
			return errors.New("SubtopicLogic.DeleteSubtopic.EntryStore.ClearSubtopic", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().SubtopicStore().Delete(ctx, id); err != nil {
			return errors.New("SubtopicLogic.DeleteSubtopic.SubtopicStore.Delete", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
}
