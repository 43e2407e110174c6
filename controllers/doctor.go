package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"clinic-ledger/store"
	"clinic-ledger/utils"
)

// DoctorController serves the bookable doctor/slot catalog.
type DoctorController struct {
	Doctors store.Doctors
}

func NewDoctorController(doctors store.Doctors) *DoctorController {
	return &DoctorController{Doctors: doctors}
}

// GetDoctors lists every doctor with specialty and bookable time slots.
func (ctl *DoctorController) GetDoctors(c *fiber.Ctx) error {
	doctors, err := ctl.Doctors.All(c.Context())
	if err != nil {
		log.Printf("Error fetching doctors: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error fetching doctors",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctors)
}
