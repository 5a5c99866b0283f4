package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "barberbook/database/repository/appointment"
	"barberbook/models"
	"barberbook/services/scheduling"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SchedulingHandler exposes the scheduling service over HTTP.
type SchedulingHandler struct {
	Service scheduling.SchedulingService
	Logger  *zap.Logger
}

func NewSchedulingHandler(svc scheduling.SchedulingService, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Service: svc, Logger: logger}
}

// actorFromContext reads the identity the auth middleware stored.
func actorFromContext(c *gin.Context) scheduling.Actor {
	return scheduling.Actor{
		ID:   c.GetString("actorID"),
		Role: c.GetString("actorRole"),
	}
}

// respondError maps domain errors onto HTTP statuses.
func (h *SchedulingHandler) respondError(c *gin.Context, err error) {
	var validationErr *scheduling.ValidationError
	var transitionErr *scheduling.InvalidTransitionError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", validationErr.Message)
	case errors.Is(err, scheduling.ErrSlotConflict):
		utils.JSONError(c, http.StatusConflict, "Slot no longer available",
			"Someone else booked this time. Please pick another slot.")
	case errors.Is(err, scheduling.ErrBarberUnavailable):
		utils.JSONError(c, http.StatusConflict, "Barber unavailable",
			"This barber is not accepting bookings right now.")
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusConflict, "Invalid status change", transitionErr.Error())
	case errors.Is(err, scheduling.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "You may not perform this operation.")
	case errors.Is(err, appointmentRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Appointment not found", "")
	default:
		h.Logger.Error("scheduling request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// ListSlots handles GET /barbers/:id/slots?date=YYYY-MM-DD&treatmentId=...
func (h *SchedulingHandler) ListSlots(c *gin.Context) {
	barberID := c.Param("id")
	date := c.Query("date")
	treatmentID := c.Query("treatmentId")
	if date == "" || treatmentID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "date and treatmentId are required")
		return
	}

	result, err := h.Service.ListAvailableSlots(barberID, date, treatmentID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BookAppointment handles POST /appointments.
func (h *SchedulingHandler) BookAppointment(c *gin.Context) {
	var req scheduling.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	appt, err := h.Service.BookAppointment(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ConfirmAppointment handles PUT /appointments/:id/confirm.
func (h *SchedulingHandler) ConfirmAppointment(c *gin.Context) {
	h.transition(c, h.Service.ConfirmAppointment)
}

// CompleteAppointment handles PUT /appointments/:id/complete.
func (h *SchedulingHandler) CompleteAppointment(c *gin.Context) {
	h.transition(c, h.Service.CompleteAppointment)
}

// CancelAppointment handles PUT /appointments/:id/cancel.
func (h *SchedulingHandler) CancelAppointment(c *gin.Context) {
	h.transition(c, h.Service.CancelAppointment)
}

func (h *SchedulingHandler) transition(c *gin.Context, op func(scheduling.Actor, string) (*models.Appointment, error)) {
	appt, err := op(actorFromContext(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// MyAppointments handles GET /appointments.
func (h *SchedulingHandler) MyAppointments(c *gin.Context) {
	appts, err := h.Service.AppointmentsForClient(actorFromContext(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// BarberDay handles GET /barbers/:id/appointments?date=YYYY-MM-DD.
func (h *SchedulingHandler) BarberDay(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "date is required")
		return
	}

	appts, err := h.Service.AppointmentsForBarberDay(actorFromContext(c), c.Param("id"), date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// GetSchedule handles GET /barbers/:id/schedule.
func (h *SchedulingHandler) GetSchedule(c *gin.Context) {
	rules, err := h.Service.WeeklySchedule(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// SetSchedule handles PUT /barbers/:id/schedule.
func (h *SchedulingHandler) SetSchedule(c *gin.Context) {
	var body struct {
		Rules []models.WeeklyScheduleInput `json:"rules" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	rules, err := h.Service.SetWeeklySchedule(actorFromContext(c), c.Param("id"), body.Rules)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}
