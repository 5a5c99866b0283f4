package models

import "time"

// Barber is the service professional being booked. Profile editing, photos
// and ratings live elsewhere; the scheduling core only reads the Available
// flag and the push token.
type Barber struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Available   bool      `bson:"available" json:"available"` // gates all bookings for this barber
	Specialties []string  `bson:"specialties,omitempty" json:"specialties,omitempty"`
	FCMToken    string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}
