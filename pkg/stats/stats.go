// Package stats holds the journaling aggregate computations shown on the
// dashboard: total word count, inclusive day span and the longest run of
// consecutive calendar days with at least one entry.
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
)

// WordCount counts whitespace-separated tokens across all contents.
func WordCount(contents []string) int {
	total := 0
	for _, content := range contents {
		total += len(strings.Fields(content))
	}
	return total
}

// DaysSince returns the inclusive calendar day count from first to now.
// Same-day first and now yields 1.
func DaysSince(first, now time.Time) int {
	if now.Before(first) {
		return 0
	}
	return int(now.Sub(first).Hours()/24) + 1
}

// LongestStreak returns the longest run of consecutive calendar days in
// the given timestamps. Days are truncated in UTC; duplicates collapse.
func LongestStreak(moments []time.Time) int {
	if len(moments) == 0 {
		return 0
	}

	days := lo.Uniq(lo.Map(moments, func(t time.Time, _ int) string {
		return t.UTC().Format("2006-01-02")
	}))
	sort.Strings(days)

	maxStreak, current := 1, 1
	for i := 1; i < len(days); i++ {
		prev, _ := time.Parse("2006-01-02", days[i-1])
		cur, _ := time.Parse("2006-01-02", days[i])
		if cur.Sub(prev) == 24*time.Hour {
			current++
		} else {
			current = 1
		}
		if current > maxStreak {
			maxStreak = current
		}
	}
	return maxStreak
}
