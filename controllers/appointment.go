package controllers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"clinic-ledger/ledger"
	"clinic-ledger/models"
	"clinic-ledger/services"
	"clinic-ledger/utils"
)

// AppointmentController maps the appointment routes onto the service.
type AppointmentController struct {
	Service *services.AppointmentService
}

func NewAppointmentController(svc *services.AppointmentService) *AppointmentController {
	return &AppointmentController{Service: svc}
}

type createAppointmentInput struct {
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
	Date        string `json:"date"`
}

// CreateAppointment books a new pending appointment on the ledger.
// Patients book for themselves: the patient name on the record comes from
// the verified token, not from the request body.
func (ctl *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	input := new(createAppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	role, _ := c.Locals("role").(string)
	if role == models.RolePatient {
		if name, ok := c.Locals("name").(string); ok && name != "" {
			input.PatientName = name
		}
	}

	appointment, err := ctl.Service.Create(c.Context(), input.PatientName, input.DoctorName, input.Date)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Missing required fields",
				Error:   err.Error(),
			})
		}
		log.Printf("Error creating appointment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error creating appointment",
			Error:   err.Error(),
		})
	}

	log.Printf("Appointment created: %s -> %s (%s)", appointment.PatientName, appointment.DoctorName, appointment.Date)
	return c.JSON(fiber.Map{
		"message":     "Appointment created successfully",
		"appointment": appointment,
	})
}

// GetAllAppointments returns the caller's view of the ledger: patients see
// their own rows, doctors theirs, admins everything.
func (ctl *AppointmentController) GetAllAppointments(c *fiber.Ctx) error {
	name, _ := c.Locals("name").(string)
	role, ok := c.Locals("role").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User role not found in context",
		})
	}

	appointments, err := ctl.Service.ListFor(c.Context(), name, role)
	if err != nil {
		log.Printf("Error fetching appointments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error fetching appointments",
			Error:   err.Error(),
		})
	}

	return c.JSON(appointments)
}

// ConfirmAppointment flips a pending appointment to confirmed. Confirming
// twice reports a conflict rather than writing again.
func (ctl *AppointmentController) ConfirmAppointment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment id",
			Error:   err.Error(),
		})
	}

	if err := ctl.Service.Confirm(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, ledger.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Appointment not found",
				Error:   err.Error(),
			})
		case errors.Is(err, ledger.ErrAlreadyConfirmed):
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Appointment already confirmed",
				Error:   err.Error(),
			})
		default:
			log.Printf("Error confirming appointment %d: %v", id, err)
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Error confirming appointment",
				Error:   err.Error(),
			})
		}
	}

	log.Printf("Appointment %d confirmed", id)
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Appointment %d confirmed successfully", id),
	})
}
