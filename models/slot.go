package models

// Slot is a candidate bookable start time. Slots are transient: they exist
// only between a "list available slots" call and the booking attempt that
// may follow, and are never persisted.
type Slot struct {
	BarberID string `json:"barberId"`
	Date     string `json:"date"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Label    string `json:"label"` // e.g., "09:30"
}
