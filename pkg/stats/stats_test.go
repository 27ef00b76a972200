package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/reflectdiary/diary-api/pkg/stats"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func Test_WordCount(t *testing.T) {
	assert.Equal(t, 0, stats.WordCount(nil))
	assert.Equal(t, 0, stats.WordCount([]string{"", "   "}))
	assert.Equal(t, 5, stats.WordCount([]string{"hello world", " one  two\nthree "}))
}

func Test_DaysSince(t *testing.T) {
	now := day("2026-08-28")

	assert.Equal(t, 1, stats.DaysSince(now, now))
	assert.Equal(t, 4, stats.DaysSince(day("2026-08-25"), now))
	assert.Equal(t, 0, stats.DaysSince(day("2026-09-01"), now))
}

func Test_LongestStreak(t *testing.T) {
	assert.Equal(t, 0, stats.LongestStreak(nil))

	moments := []time.Time{
		day("2026-08-01"),
		day("2026-08-02"),
		day("2026-08-03"),
		day("2026-08-05"),
		day("2026-08-06"),
	}
	assert.Equal(t, 3, stats.LongestStreak(moments))

	sameDay := []time.Time{
		day("2026-08-01").Add(time.Hour),
		day("2026-08-01").Add(20 * time.Hour),
	}
	assert.Equal(t, 1, stats.LongestStreak(sameDay))
}

func Test_LongestStreak_Unordered(t *testing.T) {
	moments := []time.Time{
		day("2026-08-10"),
		day("2026-08-08"),
		day("2026-08-09"),
	}
	assert.Equal(t, 3, stats.LongestStreak(moments))
}
