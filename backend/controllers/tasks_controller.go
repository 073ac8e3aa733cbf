package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ramadantracker/backend/engine"
	"ramadantracker/backend/models"
	"ramadantracker/backend/store"
	"ramadantracker/backend/utils"
)

type TasksController struct {
	Store *store.Manager
}

func NewTasksController(m *store.Manager) *TasksController {
	return &TasksController{Store: m}
}

// GetTasks godoc
// @Summary List the active task set
// @Description Returns fixed tasks, role defaults and custom tasks for the selected role
// @Tags tasks
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /tasks [get]
func (tc *TasksController) GetTasks(c *fiber.Ctx) error {
	snap := tc.Store.Snapshot()
	role, ok := selectedRole(snap)
	if !ok {
		return utils.BadRequest(c, "no role selected")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"role":  role,
		"tasks": engine.ActiveTasks(snap, role),
	})
}

// AddCustomTask godoc
// @Summary Add a custom goal
// @Description Creates a user-defined task scoped to the selected role
// @Tags tasks
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /tasks/custom [post]
func (tc *TasksController) AddCustomTask(c *fiber.Ctx) error {
	snap := tc.Store.Snapshot()
	role, ok := selectedRole(snap)
	if !ok {
		return utils.BadRequest(c, "no role selected")
	}

	var input struct {
		Label  string `json:"label"`
		Points int    `json:"points"`
		Icon   string `json:"icon"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "cannot parse JSON")
	}
	if strings.TrimSpace(input.Label) == "" {
		return utils.BadRequest(c, "label is required")
	}
	if input.Points <= 0 {
		return utils.BadRequest(c, "points must be a positive integer")
	}
	if input.Icon == "" {
		input.Icon = "star"
	}

	task := models.NewCustomTask(input.Label, input.Points, input.Icon)
	tc.Store.AddCustomTask(role, task)

	return utils.Created(c, fiber.Map{
		"task": task,
	})
}

// RemoveCustomTask godoc
// @Summary Remove a custom goal
// @Description Deletes a custom task. Historical completion flags stay in
// the record but no longer contribute to scores.
// @Tags tasks
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /tasks/custom/{id} [delete]
func (tc *TasksController) RemoveCustomTask(c *fiber.Ctx) error {
	snap := tc.Store.Snapshot()
	role, ok := selectedRole(snap)
	if !ok {
		return utils.BadRequest(c, "no role selected")
	}

	taskId := c.Params("id")
	found := false
	for _, t := range snap.Custom(role) {
		if t.Id == taskId {
			found = true
			break
		}
	}
	if !found {
		return utils.NotFound(c, "custom task not found")
	}

	next := tc.Store.RemoveCustomTask(role, taskId)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"tasks": next.Custom(role),
	})
}
