package v1

import (
	"context"
	"database/sql"
	"time"

	"github.com/samber/lo"

	"github.com/reflectdiary/diary-api/app/core"
	"github.com/reflectdiary/diary-api/pkg/errors"
	"github.com/reflectdiary/diary-api/pkg/i18n"
	"github.com/reflectdiary/diary-api/pkg/stats"
	"github.com/reflectdiary/diary-api/pkg/types"
)

type StatsLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewStatsLogic(ctx context.Context, core *core.Core) *StatsLogic {
	return &StatsLogic{
		ctx:  ctx,
		core: core,
	}
}

// Overview aggregates across all entries, drafts included.
func (l *StatsLogic) Overview() (*types.StatsOverview, error) {
	entries, err := l.core.Store().EntryStore().List(l.ctx, types.ListEntryOptions{}, 0, 0)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("StatsLogic.Overview.EntryStore.List", i18n.ERROR_INTERNAL, err)
	}

	overview := &types.StatsOverview{
		TotalEntries: int64(len(entries)),
	}
	if len(entries) == 0 {
		return overview, nil
	}

	overview.TotalWords = stats.WordCount(lo.Map(entries, func(e types.Entry, _ int) string {
		return e.Content
	}))

	moments := lo.Map(entries, func(e types.Entry, _ int) time.Time {
		return time.Unix(e.CreatedAt, 0)
	})
	first := lo.MinBy(moments, func(a, b time.Time) bool {
		return a.Before(b)
	})
	overview.DaysSinceFirst = stats.DaysSince(first, time.Now())
	overview.LongestStreak = stats.LongestStreak(moments)
	return overview, nil
}
