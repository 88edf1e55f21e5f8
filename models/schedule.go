package models

import "time"

// ProviderSchedule holds a provider's recurring working window plus any
// declared exception windows. Times are minutes from midnight (e.g., 540
// for 9:00 AM); conversion to "HH:MM" happens only at the API boundary.
type ProviderSchedule struct {
	ProviderID   string            `bson:"providerId" json:"providerId"`
	WorkingDays  []time.Weekday    `bson:"workingDays" json:"workingDays"`   // weekdays the provider accepts bookings
	Start        int               `bson:"start" json:"start"`               // daily opening, minutes from midnight
	End          int               `bson:"end" json:"end"`                   // daily closing, minutes from midnight
	SlotInterval int               `bson:"slotInterval" json:"slotInterval"` // candidate step in minutes
	BlockedSlots []BlockedInterval `bson:"blockedSlots,omitempty" json:"blockedSlots,omitempty"`
}

// WorksOn reports whether the given weekday is one of the provider's working days.
func (s *ProviderSchedule) WorksOn(day time.Weekday) bool {
	for _, wd := range s.WorkingDays {
		if wd == day {
			return true
		}
	}
	return false
}

// BlockedInterval represents a provider-declared unavailability window on a
// specific date (e.g., vacation, break).
type BlockedInterval struct {
	ID     string `bson:"id" json:"id"`         // unique identifier for the block
	Date   string `bson:"date" json:"date"`     // e.g., "2025-02-25"
	Start  int    `bson:"start" json:"start"`   // minutes from midnight
	End    int    `bson:"end" json:"end"`       // minutes from midnight
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
}
