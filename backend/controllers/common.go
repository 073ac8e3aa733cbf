package controllers

import (
	"github.com/gofiber/fiber/v2"

	"ramadantracker/backend/engine"
	"ramadantracker/backend/models"
)

// TaskState is a catalog task plus its completion flag for one day.
type TaskState struct {
	models.Task
	Done   bool `json:"done"`
	Custom bool `json:"custom"`
}

// DaySummary is the per-day scoring block the clients render.
type DaySummary struct {
	Day            int  `json:"day"`
	Score          int  `json:"score"`
	MaxScore       int  `json:"max_score"`
	Percent        int  `json:"percent"`
	CompletedCount int  `json:"completed_count"`
	TaskCount      int  `json:"task_count"`
	Complete       bool `json:"complete"`
}

func daySummary(s models.Store, role string, day int) DaySummary {
	return DaySummary{
		Day:            day,
		Score:          engine.DayScore(s, role, day),
		MaxScore:       engine.DayMaxScore(s, role),
		Percent:        engine.DayPercent(s, role, day),
		CompletedCount: engine.CompletedCount(s, role, day),
		TaskCount:      len(engine.ActiveTasks(s, role)),
		Complete:       engine.IsDayComplete(s, role, day),
	}
}

func taskStates(s models.Store, role string, day int) []TaskState {
	rec := s.Record(role, day)
	custom := make(map[string]bool, len(s.Custom(role)))
	for _, t := range s.Custom(role) {
		custom[t.Id] = true
	}

	tasks := engine.ActiveTasks(s, role)
	states := make([]TaskState, 0, len(tasks))
	for _, t := range tasks {
		states = append(states, TaskState{Task: t, Done: rec[t.Id], Custom: custom[t.Id]})
	}
	return states
}

// selectedRole resolves the chosen role from the snapshot. The day, task
// and stats routes are meaningless before onboarding picked a role.
func selectedRole(s models.Store) (string, bool) {
	return s.Role, s.Role != ""
}

// parseDay validates the day path parameter. Out-of-range days fail loudly
// instead of being clamped so caller bugs surface early.
func parseDay(c *fiber.Ctx) (int, bool) {
	day, err := c.ParamsInt("day")
	if err != nil || day < 1 || day > models.TotalDays {
		return 0, false
	}
	return day, true
}

func taskInSet(s models.Store, role string, taskId string) bool {
	for _, t := range engine.ActiveTasks(s, role) {
		if t.Id == taskId {
			return true
		}
	}
	return false
}
