package controllers

import (
	"github.com/gofiber/fiber/v2"

	"ramadantracker/backend/engine"
	"ramadantracker/backend/store"
	"ramadantracker/backend/utils"
)

type TrackerController struct {
	Store *store.Manager
}

func NewTrackerController(m *store.Manager) *TrackerController {
	return &TrackerController{Store: m}
}

// GetDay godoc
// @Summary Get one day's progress
// @Description Returns the task list with done flags and the scoring summary for a day
// @Tags days
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /days/{day} [get]
func (tc *TrackerController) GetDay(c *fiber.Ctx) error {
	snap := tc.Store.Snapshot()
	role, ok := selectedRole(snap)
	if !ok {
		return utils.BadRequest(c, "no role selected")
	}
	day, ok := parseDay(c)
	if !ok {
		return utils.BadRequest(c, "day out of range (1..30)")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"summary": daySummary(snap, role, day),
		"tasks":   taskStates(snap, role, day),
	})
}

// ToggleTask godoc
// @Summary Toggle a task's completion
// @Description Flips the completion flag for a task on a day. The response
// reports day_completed exactly when the day's percentage crossed from
// below 100 to 100 with this toggle.
// @Tags days
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /days/{day}/toggle [post]
func (tc *TrackerController) ToggleTask(c *fiber.Ctx) error {
	snap := tc.Store.Snapshot()
	role, ok := selectedRole(snap)
	if !ok {
		return utils.BadRequest(c, "no role selected")
	}
	day, ok := parseDay(c)
	if !ok {
		return utils.BadRequest(c, "day out of range (1..30)")
	}

	var input struct {
		TaskId string `json:"task_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "cannot parse JSON")
	}
	if !taskInSet(snap, role, input.TaskId) {
		return utils.NotFound(c, "unknown task id")
	}

	prev, next := tc.Store.Toggle(role, day, input.TaskId)

	// Day-completion transition, detected by diffing the two snapshots.
	before := engine.DayPercent(prev, role, day)
	after := engine.DayPercent(next, role, day)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"summary":       daySummary(next, role, day),
		"tasks":         taskStates(next, role, day),
		"day_completed": before < 100 && after == 100,
	})
}
