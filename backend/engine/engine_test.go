package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ramadantracker/backend/models"
)

// ibadahTotal is the fixed catalog's points total (the general role's max).
func ibadahTotal() int {
	sum := 0
	for _, t := range models.IbadahTasks {
		sum += t.Points
	}
	return sum
}

func markAll(s models.Store, role string, day int) models.Store {
	for _, t := range ActiveTasks(s, role) {
		if !s.Record(role, day)[t.Id] {
			s = s.Toggle(role, day, t.Id)
		}
	}
	return s
}

func TestDayScoreGeneralRole(t *testing.T) {
	s := models.NewStore()
	s = s.Toggle(models.RoleGeneral, 1, "fajr")       // 15 pts
	s = s.Toggle(models.RoleGeneral, 1, "quran_para") // 30 pts

	assert.Equal(t, 45, DayScore(s, models.RoleGeneral, 1))
	assert.Equal(t, ibadahTotal(), DayMaxScore(s, models.RoleGeneral))
	assert.Equal(t, 22, DayPercent(s, models.RoleGeneral, 1)) // round(45/205*100)
	assert.False(t, IsDayComplete(s, models.RoleGeneral, 1))
	assert.Equal(t, 2, CompletedCount(s, models.RoleGeneral, 1))
}

func TestScoreBounds(t *testing.T) {
	s := models.NewStore()
	s = s.Toggle(models.RoleStudent, 3, "fajr")
	s = s.Toggle(models.RoleStudent, 3, "study_2h")

	for day := 1; day <= models.TotalDays; day++ {
		score := DayScore(s, models.RoleStudent, day)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, DayMaxScore(s, models.RoleStudent))

		pct := DayPercent(s, models.RoleStudent, day)
		assert.GreaterOrEqual(t, pct, 0)
		assert.LessOrEqual(t, pct, 100)
	}
}

func TestRoleDefaultsRaiseMax(t *testing.T) {
	s := models.NewStore()
	general := DayMaxScore(s, models.RoleGeneral)
	student := DayMaxScore(s, models.RoleStudent)
	professional := DayMaxScore(s, models.RoleProfessional)

	assert.Equal(t, general+55, student)      // 20+15+10+10
	assert.Equal(t, general+55, professional) // 20+10+15+10
}

func TestPerfectWeekStats(t *testing.T) {
	s := models.NewStore()
	for day := 1; day <= 7; day++ {
		s = markAll(s, models.RoleGeneral, day)
	}

	stats := ComputeStats(s, models.RoleGeneral)
	assert.Equal(t, 7, stats.PerfectDays)
	assert.Equal(t, 7, stats.MaxStreak)
	assert.Equal(t, 7, stats.DaysTracked)
	assert.Equal(t, 7*ibadahTotal(), stats.TotalPoints)
	assert.InDelta(t, 100.0, stats.AvgPct, 0.001)
}

func TestStreakIsBestRunNotCurrentRun(t *testing.T) {
	s := models.NewStore()
	// Tahajjud on days 1-5, gap, then 28-29: best run is 5 even though
	// the run open at day 30 is shorter.
	for _, day := range []int{1, 2, 3, 4, 5, 28, 29} {
		s = s.Toggle(models.RoleGeneral, day, "tahajjud")
	}

	stats := ComputeStats(s, models.RoleGeneral)
	assert.Equal(t, 5, stats.TahajjudStreak)
}

func TestStreakResetDoesNotEraseMax(t *testing.T) {
	s := models.NewStore()
	for _, day := range []int{1, 2, 3} {
		s = s.Toggle(models.RoleGeneral, day, "quran_para")
	}
	withBreak := s.Toggle(models.RoleGeneral, 5, "quran_para")

	// Breaking the run on day 4 leaves the recorded max at 3.
	assert.Equal(t, 3, ComputeStats(withBreak, models.RoleGeneral).QuranStreak)

	// Appending a qualifying day to the best run never decreases it.
	extended := s.Toggle(models.RoleGeneral, 4, "quran_para")
	assert.Equal(t, 4, ComputeStats(extended, models.RoleGeneral).QuranStreak)
}

func TestAllPrayersStreakNeedsAllFive(t *testing.T) {
	s := models.NewStore()
	for _, day := range []int{1, 2} {
		for _, p := range models.FiveDailyPrayers {
			s = s.Toggle(models.RoleGeneral, day, p)
		}
	}
	// Day 3 misses isha.
	for _, p := range []string{"fajr", "zuhr", "asr", "maghrib"} {
		s = s.Toggle(models.RoleGeneral, 3, p)
	}

	stats := ComputeStats(s, models.RoleGeneral)
	assert.Equal(t, 2, stats.AllPrayersStreak)
}

func TestTaraweehStreak(t *testing.T) {
	s := models.NewStore()
	for day := 10; day <= 16; day++ {
		s = s.Toggle(models.RoleGeneral, day, "taraweeh")
	}

	assert.Equal(t, 7, ComputeStats(s, models.RoleGeneral).TaraweehStreak)
}

func TestAverageUsesTrackedDaysOnly(t *testing.T) {
	s := models.NewStore()
	// Days 1-5 untouched, day 6 perfect: the average must not be dragged
	// down by the empty days.
	s = markAll(s, models.RoleGeneral, 6)

	stats := ComputeStats(s, models.RoleGeneral)
	assert.Equal(t, 1, stats.DaysTracked)
	assert.InDelta(t, 100.0, stats.AvgPct, 0.001)
}

func TestOrphanedTaskResilience(t *testing.T) {
	baseline := models.NewStore()
	baseline = baseline.Toggle(models.RoleGeneral, 2, "fajr")

	custom := models.NewCustomTask("Morning walk", 10, "star")
	s := baseline.AddCustomTask(models.RoleGeneral, custom)
	s = s.Toggle(models.RoleGeneral, 2, custom.Id)
	s = s.RemoveCustomTask(models.RoleGeneral, custom.Id)

	// Scores equal the never-had-the-task baseline once the id no longer
	// resolves against the catalog.
	assert.Equal(t, DayScore(baseline, models.RoleGeneral, 2), DayScore(s, models.RoleGeneral, 2))
	assert.Equal(t, DayMaxScore(baseline, models.RoleGeneral), DayMaxScore(s, models.RoleGeneral))

	// The orphaned flag still marks the day as tracked.
	empty := models.NewStore()
	orphanOnly := empty.AddCustomTask(models.RoleGeneral, custom)
	orphanOnly = orphanOnly.Toggle(models.RoleGeneral, 9, custom.Id)
	orphanOnly = orphanOnly.RemoveCustomTask(models.RoleGeneral, custom.Id)
	assert.Equal(t, 1, ComputeStats(orphanOnly, models.RoleGeneral).DaysTracked)
	assert.Equal(t, 0, ComputeStats(orphanOnly, models.RoleGeneral).TotalPoints)
}

func TestDayMaxScoreShiftsRetroactively(t *testing.T) {
	s := models.NewStore()
	s = markAll(s, models.RoleGeneral, 1)
	assert.Equal(t, 100, DayPercent(s, models.RoleGeneral, 1))

	// Adding a custom task raises the max for every day, past ones
	// included, so day 1 is no longer perfect.
	s = s.AddCustomTask(models.RoleGeneral, models.NewCustomTask("Charity", 20, "heart"))
	assert.Less(t, DayPercent(s, models.RoleGeneral, 1), 100)
	assert.False(t, IsDayComplete(s, models.RoleGeneral, 1))
	assert.Equal(t, 0, ComputeStats(s, models.RoleGeneral).PerfectDays)
}

func TestCustomTasksInvisibleAcrossRoles(t *testing.T) {
	s := models.NewStore()
	s = s.AddCustomTask(models.RoleStudent, models.NewCustomTask("Extra reading", 10, "book"))

	assert.Len(t, ActiveTasks(s, models.RoleStudent), len(models.IbadahTasks)+len(models.RoleTasks[models.RoleStudent])+1)
	assert.Len(t, ActiveTasks(s, models.RoleGeneral), len(models.IbadahTasks))
}

func TestActiveTasksOrder(t *testing.T) {
	s := models.NewStore()
	first := models.NewCustomTask("One", 5, "star")
	second := models.NewCustomTask("Two", 5, "star")
	s = s.AddCustomTask(models.RoleStudent, first)
	s = s.AddCustomTask(models.RoleStudent, second)

	tasks := ActiveTasks(s, models.RoleStudent)
	assert.Equal(t, "fajr", tasks[0].Id)
	assert.Equal(t, "study_2h", tasks[len(models.IbadahTasks)].Id)
	assert.Equal(t, first.Id, tasks[len(tasks)-2].Id)
	assert.Equal(t, second.Id, tasks[len(tasks)-1].Id)
}
