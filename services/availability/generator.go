package availability

import "agendoai/models"

// generateCandidates produces every candidate start time across the
// provider's working window, stepped by the schedule's slot interval. The
// full grid is returned, including candidates whose service end would run
// past closing; the validation pipeline tags those unavailable so callers
// always see the whole day. The result is ascending and fully materialized.
func generateCandidates(schedule *models.ProviderSchedule, duration int) []models.TimeSlot {
	var candidates []models.TimeSlot
	for start := schedule.Start; start < schedule.End; start += schedule.SlotInterval {
		candidates = append(candidates, models.TimeSlot{
			Start: start,
			End:   start + duration,
		})
	}
	return candidates
}
