package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"clinic-ledger/ledger"
	"clinic-ledger/models"
	"clinic-ledger/store"
	"clinic-ledger/utils"
)

const dateLayout = "2006-01-02 15:04"

// StartReminderJobs starts the scheduler that mails patients one hour
// before their confirmed appointments.
func StartReminderJobs(l ledger.Ledger, users store.Users) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("* * * * *", func() {
		sendAppointmentReminders(l, users)
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
	return c
}

// sendAppointmentReminders checks the ledger and sends reminders for
// confirmed appointments starting in roughly one hour.
func sendAppointmentReminders(l ledger.Ledger, users store.Users) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	appointments, err := l.List(ctx)
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	patients, err := users.ListByRole(ctx, models.RolePatient)
	if err != nil {
		log.Printf("Error fetching patients for reminders: %v", err)
		return
	}

	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	for _, appointment := range appointments {
		if !appointment.Confirmed {
			continue
		}
		// The date is stored as an opaque string; rows that don't parse
		// are skipped rather than failing the whole run.
		start, err := time.ParseInLocation(dateLayout, appointment.Date, time.Local)
		if err != nil {
			continue
		}
		if start.Before(startWindow) || start.After(endWindow) {
			continue
		}

		// Appointments reference patients by free-text name, so the
		// account lookup goes through the same normalized match the
		// dashboards use.
		var patient *models.User
		for i := range patients {
			if utils.SamePatient(patients[i].Name, appointment.PatientName) {
				patient = &patients[i]
				break
			}
		}
		if patient == nil {
			continue
		}

		if err := sendReminderEmail(patient, &appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, patient.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(patient *models.User, appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment with %s", appointment.DoctorName)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Doctor:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you cannot attend, contact the clinic as soon as possible.</p>
		<p>Best regards,</p>
		<p>The Clinic Team</p>
	`, patient.Name, appointment.DoctorName, appointment.Date, appointment.Status())

	return utils.SendEmail(patient.Email, subject, body)
}
