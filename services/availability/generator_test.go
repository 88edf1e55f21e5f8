package availability

import (
	"testing"

	"agendoai/models"
)

func TestGenerateCandidates_Grid(t *testing.T) {
	schedule := weekdaySchedule()
	candidates := generateCandidates(schedule, 60)

	if len(candidates) != 18 {
		t.Fatalf("want 18 candidates, got %d", len(candidates))
	}
	if candidates[0].Start != 9*60 {
		t.Errorf("first candidate should start at opening, got %d", candidates[0].Start)
	}
	if candidates[len(candidates)-1].Start != 17*60+30 {
		t.Errorf("last candidate should start at 17:30, got %d", candidates[len(candidates)-1].Start)
	}
	for i, c := range candidates {
		if c.End != c.Start+60 {
			t.Errorf("candidate %d: end %d != start+duration", i, c.End)
		}
		if i > 0 && c.Start-candidates[i-1].Start != schedule.SlotInterval {
			t.Errorf("candidate %d: spacing %d, want %d", i, c.Start-candidates[i-1].Start, schedule.SlotInterval)
		}
	}
}

func TestGenerateCandidates_IntervalLargerThanWindow(t *testing.T) {
	schedule := &models.ProviderSchedule{Start: 9 * 60, End: 10 * 60, SlotInterval: 120}
	candidates := generateCandidates(schedule, 30)
	if len(candidates) != 1 {
		t.Fatalf("want exactly the opening candidate, got %d", len(candidates))
	}
}

func TestOverlaps_HalfOpen(t *testing.T) {
	cases := []struct {
		name                   string
		aStart, aEnd, bStart, bEnd int
		want                   bool
	}{
		{"identical", 600, 660, 600, 660, true},
		{"partial", 570, 630, 600, 660, true},
		{"contained", 610, 620, 600, 660, true},
		{"abuts before", 540, 600, 600, 660, false},
		{"abuts after", 660, 720, 600, 660, false},
		{"disjoint", 400, 500, 600, 660, false},
	}
	for _, tc := range cases {
		if got := overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("%s: overlaps(%d,%d,%d,%d) = %v, want %v",
				tc.name, tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
		}
	}
}
