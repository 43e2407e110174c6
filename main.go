package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"clinic-ledger/controllers"
	appcron "clinic-ledger/cron"
	"clinic-ledger/db"
	"clinic-ledger/ledger"
	appredis "clinic-ledger/redis"
	"clinic-ledger/routes"
	"clinic-ledger/services"
	"clinic-ledger/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	var (
		appointmentLedger ledger.Ledger
		users             store.Users
		doctors           store.Doctors
	)

	// STORAGE_BACKEND=memory runs everything in-process, matching the
	// original demo. The default is durable postgres storage.
	if os.Getenv("STORAGE_BACKEND") == "memory" {
		appointmentLedger = ledger.NewMemoryLedger()
		users = store.NewMemoryUsers()
		doctors = store.NewMemoryDoctors(db.DefaultDoctors())
		seedMemoryUsers(users)
		log.Println("Using in-memory storage")
	} else {
		db.Init()
		db.Migrate()
		appointmentLedger = ledger.NewGormLedger(db.GetDB())
		users = store.NewGormUsers(db.GetDB())
		doctors = store.NewGormDoctors(db.GetDB())
	}

	cache, err := appredis.Connect()
	if err != nil {
		log.Printf("Warning: running without cache: %v", err)
		cache = nil
	}

	appointmentService := services.NewAppointmentService(appointmentLedger, cache)

	authController := controllers.NewAuthController(users)
	appointmentController := controllers.NewAppointmentController(appointmentService)
	doctorController := controllers.NewDoctorController(doctors)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Clinic appointment ledger API")
	})
	routes.SetupAuthRoutes(app, authController)
	routes.SetupAppointmentRoutes(app, appointmentController)
	routes.SetupDoctorRoutes(app, doctorController)

	appcron.StartReminderJobs(appointmentLedger, users)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}

func seedMemoryUsers(users store.Users) {
	seed, err := db.DefaultUsers()
	if err != nil {
		log.Fatalf("Failed to build seed users: %v", err)
	}
	for i := range seed {
		if err := users.Create(context.Background(), &seed[i]); err != nil {
			log.Fatalf("Failed to seed user %s: %v", seed[i].Email, err)
		}
	}
}
