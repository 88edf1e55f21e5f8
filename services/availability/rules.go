package availability

import (
	"fmt"

	"agendoai/models"
	"agendoai/utils"
)

// checkInput carries everything a predicate needs to judge one candidate.
// start/end bound the service itself; bufferedEnd additionally includes the
// service's buffer time and is what existing bookings are compared against.
type checkInput struct {
	schedule    *models.ProviderSchedule
	bookings    []models.Booking
	date        string
	start       int
	end         int
	bufferedEnd int
}

// slotCheck returns ok=false with a human-readable reason on failure.
type slotCheck func(in checkInput) (bool, string)

// slotChecks is the ordered validation pipeline. The first failing check
// determines the candidate's reason, so the cheap containment test runs
// before the interval scans.
var slotChecks = []slotCheck{
	withinWorkingHours,
	notBlocked,
	notDoubleBooked,
}

// runChecks evaluates the pipeline, stopping at the first failure.
func runChecks(in checkInput) (bool, string) {
	for _, check := range slotChecks {
		if ok, reason := check(in); !ok {
			return false, reason
		}
	}
	return true, ""
}

// overlaps applies the half-open interval rule: [aStart, aEnd) and
// [bStart, bEnd) overlap iff aStart < bEnd && bStart < aEnd. Intervals that
// merely touch do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

func withinWorkingHours(in checkInput) (bool, string) {
	if in.start < in.schedule.Start || in.end > in.schedule.End {
		return false, "outside working hours"
	}
	return true, ""
}

func notBlocked(in checkInput) (bool, string) {
	for _, block := range in.schedule.BlockedSlots {
		if block.Date != in.date {
			continue
		}
		if overlaps(in.start, in.end, block.Start, block.End) {
			if block.Reason != "" {
				return false, fmt.Sprintf("blocked by provider: %s", block.Reason)
			}
			return false, "blocked by provider"
		}
	}
	return true, ""
}

func notDoubleBooked(in checkInput) (bool, string) {
	for _, booking := range in.bookings {
		if overlaps(in.start, in.bufferedEnd, booking.Start, booking.End) {
			return false, fmt.Sprintf("conflicts with existing booking at %s",
				utils.FormatMinutes(booking.Start))
		}
	}
	return true, ""
}
