package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinic-ledger/controllers"
)

// SetupDoctorRoutes configures the doctor catalog routes
func SetupDoctorRoutes(app *fiber.App, ctl *controllers.DoctorController) {
	app.Get("/api/doctors", ctl.GetDoctors)
}
