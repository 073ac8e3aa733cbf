package controllers

import (
	"github.com/gofiber/fiber/v2"

	"ramadantracker/backend/engine"
	"ramadantracker/backend/models"
	"ramadantracker/backend/store"
	"ramadantracker/backend/utils"
)

type StatsController struct {
	Store *store.Manager
}

func NewStatsController(m *store.Manager) *StatsController {
	return &StatsController{Store: m}
}

// badgeState is a badge definition plus its live earned flag.
type badgeState struct {
	Id     string `json:"id"`
	Icon   string `json:"icon"`
	Label  string `json:"label"`
	Desc   string `json:"desc"`
	Color  string `json:"color"`
	Earned bool   `json:"earned"`
}

// GetStats godoc
// @Summary Get the 30-day statistics bundle
// @Description Totals, perfect days, the four habit streaks and the average percentage, recomputed from the current store
// @Tags stats
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /stats [get]
func (sc *StatsController) GetStats(c *fiber.Ctx) error {
	snap := sc.Store.Snapshot()
	role, ok := selectedRole(snap)
	if !ok {
		return utils.BadRequest(c, "no role selected")
	}

	return utils.Success(c, fiber.StatusOK, engine.ComputeStats(snap, role))
}

// GetBadges godoc
// @Summary List badges with earned status
// @Description Earned is evaluated fresh against the current stats on every call
// @Tags stats
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /badges [get]
func (sc *StatsController) GetBadges(c *fiber.Ctx) error {
	snap := sc.Store.Snapshot()
	role, ok := selectedRole(snap)
	if !ok {
		return utils.BadRequest(c, "no role selected")
	}

	stats := engine.ComputeStats(snap, role)
	badges := make([]badgeState, 0, len(models.Badges))
	earned := 0
	for _, b := range models.Badges {
		got := b.Condition(stats)
		if got {
			earned++
		}
		badges = append(badges, badgeState{
			Id: b.Id, Icon: b.Icon, Label: b.Label, Desc: b.Desc, Color: b.Color,
			Earned: got,
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"badges": badges,
		"earned": earned,
		"total":  len(badges),
	})
}

// GetCertificate godoc
// @Summary Get the certificate tier
// @Description Gold >= 85, Silver >= 75, Bronze >= 60 average percent over tracked days; null below Bronze
// @Tags stats
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /certificate [get]
func (sc *StatsController) GetCertificate(c *fiber.Ctx) error {
	snap := sc.Store.Snapshot()
	role, ok := selectedRole(snap)
	if !ok {
		return utils.BadRequest(c, "no role selected")
	}

	stats := engine.ComputeStats(snap, role)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"avg_pct":     stats.AvgPct,
		"certificate": models.CertificateFor(stats.AvgPct),
	})
}

// GetVerses godoc
// @Summary List the verses shown between interactions
// @Tags stats
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /verses [get]
func (sc *StatsController) GetVerses(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"verses": models.Verses,
	})
}
