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

type PromptLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewPromptLogic(ctx context.Context, core *core.Core) *PromptLogic {
	return &PromptLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *PromptLogic) ListPrompts() ([]types.Prompt, error) {
	prompts, err := l.core.Store().PromptStore().List(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("PromptLogic.ListPrompts.PromptStore.List", i18n.ERROR_INTERNAL, err)
	}
	if prompts == nil {
		prompts = []types.Prompt{}
	}
	return prompts, nil
}

// SaveAnswer records a reflection answer on an entry. The entry and the
// prompt must both exist.
func (l *PromptLogic) SaveAnswer(entryID, promptID int64, content string) (*types.Answer, error) {
	entry, err := l.core.Store().EntryStore().Get(l.ctx, entryID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("PromptLogic.SaveAnswer.EntryStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if entry == nil {
		return nil, errors.New("PromptLogic.SaveAnswer.EntryStore.Get.nil", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	}

	prompts, err := l.core.Store().PromptStore().List(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("PromptLogic.SaveAnswer.PromptStore.List", i18n.ERROR_INTERNAL, err)
	}
	found := false
	for _, prompt := range prompts {
		if prompt.ID == promptID {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.New("PromptLogic.SaveAnswer.prompt.nil", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	answer := types.Answer{
		ID:        utils.GenSpecID(),
		EntryID:   entryID,
		PromptID:  promptID,
		Content:   content,
		CreatedAt: time.Now().Unix(),
	}
	if err = l.core.Store().AnswerStore().Create(l.ctx, answer); err != nil {
		return nil, errors.New("PromptLogic.SaveAnswer.AnswerStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return &answer, nil
}
