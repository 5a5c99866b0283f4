package scheduling

import "barberbook/models"

// GenerateSlots enumerates candidate start times (minutes from midnight)
// within the window at a fixed step. A slot is included only if the whole
// treatment fits inside the window: start + duration <= window end. The
// function is pure; callers filter out conflicts themselves.
func GenerateSlots(window models.Window, stepMinutes, durationMinutes int) []int {
	if stepMinutes <= 0 || durationMinutes <= 0 {
		return nil
	}

	var starts []int
	for start := window.Start; start+durationMinutes <= window.End; start += stepMinutes {
		starts = append(starts, start)
	}
	return starts
}
