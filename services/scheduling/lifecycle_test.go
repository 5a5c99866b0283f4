package scheduling

import (
	"errors"
	"testing"

	"barberbook/models"
)

func TestTransition_LegalEdges(t *testing.T) {
	cases := []struct {
		from, to models.AppointmentStatus
	}{
		{models.StatusPending, models.StatusConfirmed},
		{models.StatusPending, models.StatusCancelled},
		{models.StatusConfirmed, models.StatusCompleted},
		{models.StatusConfirmed, models.StatusCancelled},
	}
	for _, tc := range cases {
		appt := &models.Appointment{Status: tc.from, Active: true}
		if err := Transition(appt, tc.to); err != nil {
			t.Fatalf("%s -> %s should be legal: %v", tc.from, tc.to, err)
		}
		if appt.Status != tc.to {
			t.Fatalf("status not updated for %s -> %s", tc.from, tc.to)
		}
		wantActive := tc.to != models.StatusCancelled
		if appt.Active != wantActive {
			t.Fatalf("%s -> %s: expected active=%v", tc.from, tc.to, wantActive)
		}
	}
}

func TestTransition_IllegalEdgesClosed(t *testing.T) {
	all := []models.AppointmentStatus{
		models.StatusPending, models.StatusConfirmed,
		models.StatusCompleted, models.StatusCancelled,
	}
	for _, from := range all {
		for _, to := range all {
			if CanTransition(from, to) {
				continue
			}
			appt := &models.Appointment{Status: from, Active: from != models.StatusCancelled}
			err := Transition(appt, to)

			var transitionErr *InvalidTransitionError
			if !errors.As(err, &transitionErr) {
				t.Fatalf("%s -> %s: expected InvalidTransitionError, got %v", from, to, err)
			}
			if appt.Status != from {
				t.Fatalf("%s -> %s: status must not change on failure", from, to)
			}
		}
	}
}

func TestTransition_PendingCannotJumpToCompleted(t *testing.T) {
	appt := &models.Appointment{Status: models.StatusPending, Active: true}
	var transitionErr *InvalidTransitionError
	if err := Transition(appt, models.StatusCompleted); !errors.As(err, &transitionErr) {
		t.Fatalf("pending -> completed must fail, got %v", err)
	}
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	for _, terminal := range []models.AppointmentStatus{models.StatusCompleted, models.StatusCancelled} {
		for _, to := range []models.AppointmentStatus{
			models.StatusPending, models.StatusConfirmed,
			models.StatusCompleted, models.StatusCancelled,
		} {
			if CanTransition(terminal, to) {
				t.Fatalf("%s must be terminal but %s -> %s is allowed", terminal, terminal, to)
			}
		}
	}
}
