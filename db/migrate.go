package db

import (
	"log"

	"clinic-ledger/models"
)

// Migrate applies the schema and seeds the demo data on first boot.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.Doctor{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	if err := Seed(); err != nil {
		log.Fatal("Failed to seed database: ", err)
	}

	log.Println("Migrations applied")
}
