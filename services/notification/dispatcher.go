package notification

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/services/scheduling"
	"barberbook/services/tasks"
	"barberbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Dispatcher turns appointment events into pushes and delayed reminders. It
// is invoked after state changes are committed; a failed push is logged and
// dropped, never propagated back to the booking flow.
type Dispatcher struct {
	Notifier     NotificationService
	Reminders    *asynq.Client // nil disables reminders
	ReminderLead time.Duration
}

func (d *Dispatcher) AppointmentCreated(appt models.Appointment) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	title := "New appointment request"
	body := fmt.Sprintf("A client requested %s at %s on %s.",
		appt.TreatmentID, models.ClockFromMinutes(appt.Start), appt.Date)
	data := map[string]string{
		"type":          "appointment_created",
		"appointmentId": appt.ID,
	}

	if err := d.Notifier.SendBarberPushNotification(ctx, appt.BarberID, title, body, data); err != nil {
		utils.GetLogger().Warn("failed to notify barber of new appointment",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

func (d *Dispatcher) AppointmentStatusChanged(change scheduling.StatusChange) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger := utils.GetLogger()

	appt := change.Appointment
	var title, body string
	switch appt.Status {
	case models.StatusConfirmed:
		title = "Appointment confirmed"
		body = fmt.Sprintf("Your appointment on %s at %s is confirmed. See you there!",
			appt.Date, models.ClockFromMinutes(appt.Start))
	case models.StatusCancelled:
		title = "Appointment cancelled"
		body = fmt.Sprintf("Your appointment on %s at %s was cancelled.",
			appt.Date, models.ClockFromMinutes(appt.Start))
	case models.StatusCompleted:
		title = "Thanks for coming in"
		body = "We hope you like your new look. Book again anytime!"
	default:
		return
	}

	data := map[string]string{
		"type":          "appointment_status",
		"appointmentId": appt.ID,
		"status":        string(appt.Status),
	}
	if err := d.Notifier.SendClientPushNotification(ctx, appt.ClientID, title, body, data); err != nil {
		logger.Warn("failed to notify client of status change",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}

	if appt.Status == models.StatusConfirmed {
		d.scheduleReminder(appt)
	}
}

// scheduleReminder enqueues a delayed push firing before the appointment
// starts. Reminders are best effort; a full queue or past fire time just
// skips the reminder.
func (d *Dispatcher) scheduleReminder(appt models.Appointment) {
	if d.Reminders == nil {
		return
	}
	logger := utils.GetLogger()

	day, err := time.ParseInLocation(models.DateLayout, appt.Date, time.Local)
	if err != nil {
		logger.Warn("invalid appointment date, skipping reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}
	startAt := day.Add(time.Duration(appt.Start) * time.Minute)
	fireAt := startAt.Add(-d.ReminderLead)
	if !fireAt.After(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		Target:        "client",
		ID:            appt.ClientID,
		Title:         "Upcoming appointment",
		Body: fmt.Sprintf("Reminder: your appointment is today at %s.",
			models.ClockFromMinutes(appt.Start)),
		FireDate: fireAt.Format(time.RFC3339),
	}

	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := d.Reminders.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}
