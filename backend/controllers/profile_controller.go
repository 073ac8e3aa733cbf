package controllers

import (
	"github.com/gofiber/fiber/v2"

	"ramadantracker/backend/models"
	"ramadantracker/backend/store"
	"ramadantracker/backend/utils"
)

type ProfileController struct {
	Store *store.Manager
}

func NewProfileController(m *store.Manager) *ProfileController {
	return &ProfileController{Store: m}
}

// GetProfile godoc
// @Summary Get tracker profile
// @Description Returns the selected role and the active day
// @Tags profile
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	snap := pc.Store.Snapshot()
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"role":       snap.Role,
		"active_day": pc.Store.ActiveDay(),
		"roles":      models.Roles,
	})
}

// SelectRole godoc
// @Summary Select the life-role
// @Description Sets the active role; role-default tasks and the custom bucket follow it
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /profile/role [put]
func (pc *ProfileController) SelectRole(c *fiber.Ctx) error {
	var input struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "cannot parse JSON")
	}
	if !models.ValidRole(input.Role) {
		return utils.BadRequest(c, "role must be one of student, professional, general")
	}

	snap := pc.Store.SelectRole(input.Role)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"role": snap.Role,
	})
}

// SelectDay godoc
// @Summary Select the active day
// @Description Sets the day (1..30) clients are viewing
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /profile/day [put]
func (pc *ProfileController) SelectDay(c *fiber.Ctx) error {
	var input struct {
		Day int `json:"day"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "cannot parse JSON")
	}
	if input.Day < 1 || input.Day > models.TotalDays {
		return utils.BadRequest(c, "day out of range (1..30)")
	}

	pc.Store.SetActiveDay(input.Day)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"active_day": input.Day,
	})
}
