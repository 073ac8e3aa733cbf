package routes

import (
	"github.com/gofiber/fiber/v2"

	"ramadantracker/backend/controllers"
	"ramadantracker/backend/store"
)

func SetupRoutes(app *fiber.App, m *store.Manager) {
	// Profile routes
	profileController := controllers.NewProfileController(m)
	app.Get("/api/profile", profileController.GetProfile)
	app.Put("/api/profile/role", profileController.SelectRole)
	app.Put("/api/profile/day", profileController.SelectDay)

	// Day routes
	trackerController := controllers.NewTrackerController(m)
	days := app.Group("/api/days")
	days.Get("/:day", trackerController.GetDay)
	days.Post("/:day/toggle", trackerController.ToggleTask)

	// Task routes
	tasksController := controllers.NewTasksController(m)
	tasks := app.Group("/api/tasks")
	tasks.Get("/", tasksController.GetTasks)
	tasks.Post("/custom", tasksController.AddCustomTask)
	tasks.Delete("/custom/:id", tasksController.RemoveCustomTask)

	// Stats routes
	statsController := controllers.NewStatsController(m)
	app.Get("/api/stats", statsController.GetStats)
	app.Get("/api/badges", statsController.GetBadges)
	app.Get("/api/certificate", statsController.GetCertificate)
	app.Get("/api/verses", statsController.GetVerses)
}
