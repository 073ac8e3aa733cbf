// Package engine is the pure progress-aggregation core. Every function
// computes from a store snapshot and returns; nothing here mutates state,
// caches across calls or performs I/O, so recomputation is idempotent.
package engine

import (
	"math"

	"ramadantracker/backend/models"
)

// ActiveTasks returns the task set for a role: fixed tasks, then the
// role's defaults, then its custom tasks in creation order. The order only
// matters for display grouping; scoring is a plain sum.
func ActiveTasks(s models.Store, role string) []models.Task {
	defaults := models.RoleTasks[role]
	custom := s.Custom(role)
	tasks := make([]models.Task, 0, len(models.IbadahTasks)+len(defaults)+len(custom))
	tasks = append(tasks, models.IbadahTasks...)
	tasks = append(tasks, defaults...)
	tasks = append(tasks, custom...)
	return tasks
}

// DayMaxScore is the points total over the active task set. It depends on
// the role's current catalog but not on the day, so aggregation computes
// it once for all 30 days. Adding or removing a custom task therefore
// shifts historical percentages too.
func DayMaxScore(s models.Store, role string) int {
	total := 0
	for _, t := range ActiveTasks(s, role) {
		total += t.Points
	}
	return total
}

// DayScore sums the points of completed tasks on a day. Completion flags
// whose id is no longer in the catalog (deleted custom tasks) contribute
// nothing and are not an error.
func DayScore(s models.Store, role string, day int) int {
	rec := s.Record(role, day)
	score := 0
	for _, t := range ActiveTasks(s, role) {
		if rec[t.Id] {
			score += t.Points
		}
	}
	return score
}

// DayPercent is the day's score as a rounded percentage of the max,
// 0 when the task set is empty.
func DayPercent(s models.Store, role string, day int) int {
	maxScore := DayMaxScore(s, role)
	if maxScore == 0 {
		return 0
	}
	return int(math.Round(float64(DayScore(s, role, day)) / float64(maxScore) * 100))
}

// IsDayComplete reports whether every active task is marked done. An
// empty task set never yields a complete day, matching DayPercent == 0.
func IsDayComplete(s models.Store, role string, day int) bool {
	tasks := ActiveTasks(s, role)
	if len(tasks) == 0 {
		return false
	}
	rec := s.Record(role, day)
	for _, t := range tasks {
		if !rec[t.Id] {
			return false
		}
	}
	return true
}

// CompletedCount counts the active tasks marked done on a day.
func CompletedCount(s models.Store, role string, day int) int {
	rec := s.Record(role, day)
	n := 0
	for _, t := range ActiveTasks(s, role) {
		if rec[t.Id] {
			n++
		}
	}
	return n
}

// ComputeStats derives the full statistics bundle for a role with one scan
// over days 1..30. Each streak keeps its own running counter that resets
// on a non-qualifying day; the reported value is the best run observed,
// not the run still open at day 30.
func ComputeStats(s models.Store, role string) models.StatsBundle {
	var stats models.StatsBundle
	tasks := ActiveTasks(s, role)
	maxPts := 0
	for _, t := range tasks {
		maxPts += t.Points
	}

	var perfectRun, tahajjudRun, quranRun, taraweehRun, prayersRun int

	for day := 1; day <= models.TotalDays; day++ {
		rec := s.Record(role, day)

		// Tracked means any flag set true in the raw record, including
		// orphaned ids from deleted custom tasks.
		tracked := false
		for _, done := range rec {
			if done {
				tracked = true
				break
			}
		}
		if tracked {
			stats.DaysTracked++
		}

		perfect := len(tasks) > 0
		for _, t := range tasks {
			if rec[t.Id] {
				stats.TotalPoints += t.Points
			} else {
				perfect = false
			}
		}

		if perfect {
			perfectRun++
			stats.PerfectDays++
			stats.MaxStreak = max(stats.MaxStreak, perfectRun)
		} else {
			perfectRun = 0
		}

		if rec["tahajjud"] {
			tahajjudRun++
			stats.TahajjudStreak = max(stats.TahajjudStreak, tahajjudRun)
		} else {
			tahajjudRun = 0
		}

		if rec["quran_para"] {
			quranRun++
			stats.QuranStreak = max(stats.QuranStreak, quranRun)
		} else {
			quranRun = 0
		}

		if rec["taraweeh"] {
			taraweehRun++
			stats.TaraweehStreak = max(stats.TaraweehStreak, taraweehRun)
		} else {
			taraweehRun = 0
		}

		allPrayers := true
		for _, p := range models.FiveDailyPrayers {
			if !rec[p] {
				allPrayers = false
				break
			}
		}
		if allPrayers {
			prayersRun++
			stats.AllPrayersStreak = max(stats.AllPrayersStreak, prayersRun)
		} else {
			prayersRun = 0
		}
	}

	// Average over tracked days only: untracked days do not drag it down.
	if stats.DaysTracked > 0 && maxPts > 0 {
		stats.AvgPct = float64(stats.TotalPoints) / float64(stats.DaysTracked*maxPts) * 100
	}

	return stats
}
