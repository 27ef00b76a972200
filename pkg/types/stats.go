package types

type StatsOverview struct {
	TotalEntries   int64 `json:"total_entries"`
	TotalWords     int   `json:"total_words"`
	DaysSinceFirst int   `json:"days_since_first"`
	LongestStreak  int   `json:"longest_streak"`
}
