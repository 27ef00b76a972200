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

type TagLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewTagLogic(ctx context.Context, core *core.Core) *TagLogic {
	return &TagLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *TagLogic) ListTags() ([]types.TagDetail, error) {
	tags, err := l.core.Store().TagStore().List(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TagLogic.ListTags.TagStore.List", i18n.ERROR_INTERNAL, err)
	}

	counts, err := l.core.Store().EntryTagStore().CountByTag(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TagLogic.ListTags.EntryTagStore.CountByTag", i18n.ERROR_INTERNAL, err)
	}
	countByTag := lo.SliceToMap(counts, func(c types.TagEntryCount) (int64, int64) {
		return c.TagID, c.Total
	})

	return lo.Map(tags, func(tag types.Tag, _ int) types.TagDetail {
		return types.TagDetail{
			Tag:        tag,
			EntryCount: countByTag[tag.ID],
		}
	}), nil
}

// CreateTag enforces name uniqueness up front so the caller gets a 409
// instead of a driver-specific constraint error.
func (l *TagLogic) CreateTag(name, color string) (*types.Tag, error) {
	exist, err := l.core.Store().TagStore().GetByName(l.ctx, name)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TagLogic.CreateTag.TagStore.GetByName", i18n.ERROR_INTERNAL, err)
	}
	if exist != nil {
		return nil, errors.New("TagLogic.CreateTag.TagStore.GetByName.exist", i18n.ERROR_EXIST, nil).Code(http.StatusConflict)
	}

	tag := types.Tag{
		ID:        utils.GenSpecID(),
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().Unix(),
	}
	if err = l.core.Store().TagStore().Create(l.ctx, tag); err != nil {
		return nil, errors.New("TagLogic.CreateTag.TagStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return &tag, nil
}

func (l *TagLogic) UpdateTag(id int64, name, color string) (*types.Tag, error) {
	tag, err := l.core.Store().TagStore().Get(l.ctx, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TagLogic.UpdateTag.TagStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if tag == nil {
		return nil, errors.New("TagLogic.UpdateTag.TagStore.Get.nil", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	}

	if name != tag.Name {
		exist, err := l.core.Store().TagStore().GetByName(l.ctx, name)
		if err != nil && err != sql.ErrNoRows {
			return nil, errors.New("TagLogic.UpdateTag.TagStore.GetByName", i18n.ERROR_INTERNAL, err)
		}
		if exist != nil {
			return nil, errors.New("TagLogic.UpdateTag.TagStore.GetByName.exist", i18n.ERROR_EXIST, nil).Code(http.StatusConflict)
		}
	}

	tag.Name = name
	tag.Color = color
	if err = l.core.Store().TagStore().Update(l.ctx, *tag); err != nil {
		return nil, errors.New("TagLogic.UpdateTag.TagStore.Update", i18n.ERROR_INTERNAL, err)
	}
	return tag, nil
}

// DeleteTag removes the tag and its entry associations together. Entries
// themselves are untouched.
func (l *TagLogic) DeleteTag(id int64) error {
	tag, err := l.core.Store().TagStore().Get(l.ctx, id)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("TagLogic.DeleteTag.TagStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if tag == nil {
		return errors.New("TagLogic.DeleteTag.TagStore.Get.nil", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	}

	return l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().EntryTagStore().DeleteByTag(ctx, id); err != nil {
			return errors.New("TagLogic.DeleteTag.EntryTagStore.DeleteByTag", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().TagStore().Delete(ctx, id); err != nil {
			return errors.New("TagLogic.DeleteTag.TagStore.Delete", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
}
