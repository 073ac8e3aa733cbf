package models

// StatsBundle is the derived 30-day statistics for one role. It is always
// recomputed from the current store and catalog, never persisted.
type StatsBundle struct {
	TotalPoints      int     `json:"total_points"`
	PerfectDays      int     `json:"perfect_days"`
	MaxStreak        int     `json:"max_streak"`
	TahajjudStreak   int     `json:"tahajjud_streak"`
	QuranStreak      int     `json:"quran_streak"`
	AllPrayersStreak int     `json:"all_prayers_streak"`
	TaraweehStreak   int     `json:"taraweeh_streak"`
	DaysTracked      int     `json:"days_tracked"`
	AvgPct           float64 `json:"avg_pct"`
}
