package models

// Day availability statuses. "closed today" and "nothing configured" must be
// distinguishable from an empty-but-open day, so callers can message users
// correctly.
const (
	DayStatusOK            = "ok"
	DayStatusNotWorkingDay = "not_working_day"
	DayStatusNoSchedule    = "no_schedule"
)

// TimeSlot is a scored candidate start time. Built, scored, and returned per
// request — never persisted.
type TimeSlot struct {
	Start       int    `json:"start"`       // minutes from midnight
	End         int    `json:"end"`         // start + service duration
	Available   bool   `json:"available"`
	Score       int    `json:"score"`       // 0..100, higher is more desirable
	Reason      string `json:"reason"`
	NearClosing bool   `json:"nearClosing,omitempty"` // advisory, not a validity gate
}

// DayAvailability is the result envelope for one provider/date/service query.
// Slots carries every candidate, available or not, in ascending start order.
type DayAvailability struct {
	ProviderID string     `json:"providerId"`
	Date       string     `json:"date"`
	Status     string     `json:"status"`
	Slots      []TimeSlot `json:"slots"`
}

// SlotGroup partitions slots by period of day purely for display.
type SlotGroup struct {
	Period string     `json:"period"` // "morning", "afternoon", or "evening"
	Slots  []TimeSlot `json:"slots"`
}
