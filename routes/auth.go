package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinic-ledger/controllers"
	"clinic-ledger/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, ctl *controllers.AuthController) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/register", ctl.Register)
	auth.Post("/login", ctl.Login)
	auth.Post("/refresh", ctl.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), ctl.GetUserProfile)
	auth.Post("/logout", middleware.Protected(), ctl.Logout)
}
