package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"clinic-ledger/models"
)

// DefaultDoctors is the static booking catalog the front end renders.
func DefaultDoctors() []models.Doctor {
	return []models.Doctor{
		{Name: "Dr. Ahmed", Specialty: "Dentist", Slots: models.SlotList{"09:00", "10:00", "11:00", "13:00", "15:00"}},
		{Name: "Dr. Sarah", Specialty: "Cardiologist", Slots: models.SlotList{"10:00", "11:30", "14:00", "15:30"}},
	}
}

// DefaultUsers returns the demo accounts with the given passwords hashed.
func DefaultUsers() ([]models.User, error) {
	seed := []struct {
		name, email, password, role string
	}{
		{"Admin", "admin@clinic.com", "admin123", models.RoleAdmin},
		{"Dr. Sarah", "sarah@clinic.com", "doctor123", models.RoleDoctor},
		{"Dr. Ahmed", "ahmed@clinic.com", "doctor123", models.RoleDoctor},
		{"Abdullah", "abdullah@example.com", "patient123", models.RolePatient},
	}

	users := make([]models.User, 0, len(seed))
	for _, s := range seed {
		hashed, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		users = append(users, models.User{
			Name:     s.name,
			Email:    s.email,
			Password: string(hashed),
			Role:     s.role,
		})
	}
	return users, nil
}

// Seed creates the demo users and the doctor catalog if they don't exist.
func Seed() error {
	users, err := DefaultUsers()
	if err != nil {
		return err
	}
	for _, user := range users {
		var existing models.User
		if DB.Where("LOWER(email) = LOWER(?)", user.Email).First(&existing).RowsAffected == 0 {
			if err := DB.Create(&user).Error; err != nil {
				return err
			}
			log.Printf("Seeded user %s (%s)", user.Name, user.Role)
		}
	}

	for _, doctor := range DefaultDoctors() {
		var existing models.Doctor
		if DB.Where("name = ?", doctor.Name).First(&existing).RowsAffected == 0 {
			if err := DB.Create(&doctor).Error; err != nil {
				return err
			}
			log.Printf("Seeded doctor %s (%s)", doctor.Name, doctor.Specialty)
		}
	}

	return nil
}
