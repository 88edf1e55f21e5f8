package models

// Booking is an already-committed appointment. The availability subsystem
// reads these to keep new candidates from colliding with them; it never
// creates or mutates bookings.
type Booking struct {
	ID         string `bson:"id" json:"id"`
	ProviderID string `bson:"providerId" json:"providerId"`
	Date       string `bson:"date" json:"date"` // e.g., "2025-02-25"
	Start      int    `bson:"start" json:"start"`
	End        int    `bson:"end" json:"end"`
}
