package availability

import "agendoai/models"

// Period-of-day boundaries in minutes from midnight.
const (
	morningEnd   = 12 * 60
	afternoonEnd = 18 * 60
)

// GroupByPeriod partitions slots into morning (06:00-12:00), afternoon
// (12:00-18:00), and evening (18:00-23:59) buckets by start time, purely for
// display. Every slot lands in exactly one group; nothing is filtered out.
// Starts before 06:00 fall into the morning bucket.
func GroupByPeriod(slots []models.TimeSlot) []models.SlotGroup {
	groups := []models.SlotGroup{
		{Period: "morning"},
		{Period: "afternoon"},
		{Period: "evening"},
	}
	for _, slot := range slots {
		switch {
		case slot.Start < morningEnd:
			groups[0].Slots = append(groups[0].Slots, slot)
		case slot.Start < afternoonEnd:
			groups[1].Slots = append(groups[1].Slots, slot)
		default:
			groups[2].Slots = append(groups[2].Slots, slot)
		}
	}
	return groups
}
