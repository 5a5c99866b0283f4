package models

// Treatment is a bookable service (haircut, beard trim, ...). Pricing and
// catalog management are out of scope here; the scheduler only needs the
// duration, which fixes the length of every slot offered for it.
type Treatment struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	DurationMinutes int     `bson:"duration_minutes" json:"durationMinutes"`
	Price           float64 `bson:"price,omitempty" json:"price,omitempty"`
}
