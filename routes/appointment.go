package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinic-ledger/controllers"
	"clinic-ledger/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, ctl *controllers.AppointmentController) {
	appointment := app.Group("/api/appointments", middleware.Protected())
	appointment.Get("/", ctl.GetAllAppointments)
	appointment.Post("/", ctl.CreateAppointment)
	appointment.Post("/confirm/:id", middleware.RequireRole("doctor"), ctl.ConfirmAppointment)
}
