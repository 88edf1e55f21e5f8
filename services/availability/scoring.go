package availability

import (
	"agendoai/config"
	"agendoai/models"
)

const baseScore = 50

// scoreSlot assigns a desirability score in [0, 100] to a valid candidate.
// The policy is deliberately simple and fully deterministic: start from a
// neutral base, reward proximity to the middle of the working window, and
// penalize slots whose buffered end lands inside the near-closing margin.
// The near-closing flag itself is advisory metadata, never a validity gate.
func scoreSlot(schedule *models.ProviderSchedule, cfg config.AvailabilityConfig, start, bufferedEnd int) (int, bool) {
	score := baseScore

	// Mid-day preference: full bonus at the window midpoint, tapering
	// linearly to zero at the window edges.
	halfWindow := (schedule.End - schedule.Start) / 2
	if halfWindow > 0 && cfg.MidDayBonusMax > 0 {
		midpoint := schedule.Start + halfWindow
		dist := start - midpoint
		if dist < 0 {
			dist = -dist
		}
		if dist > halfWindow {
			dist = halfWindow
		}
		score += cfg.MidDayBonusMax * (halfWindow - dist) / halfWindow
	}

	nearClosing := bufferedEnd > schedule.End-cfg.NearClosingMarginMins
	if nearClosing {
		score -= cfg.NearClosingPenalty
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, nearClosing
}
