package availability

import (
	"testing"

	"agendoai/models"
)

func TestGroupByPeriod_Partitions(t *testing.T) {
	slots := []models.TimeSlot{
		{Start: 5 * 60, End: 6 * 60},        // before 06:00, lands in morning
		{Start: 9 * 60, End: 10 * 60},       // morning
		{Start: 11*60 + 30, End: 12*60 + 30}, // starts before noon, still morning
		{Start: 12 * 60, End: 13 * 60},      // afternoon
		{Start: 17*60 + 30, End: 18*60 + 30}, // afternoon
		{Start: 18 * 60, End: 19 * 60},      // evening
		{Start: 22 * 60, End: 23 * 60},      // evening
	}

	groups := GroupByPeriod(slots)
	if len(groups) != 3 {
		t.Fatalf("want 3 groups, got %d", len(groups))
	}
	if groups[0].Period != "morning" || groups[1].Period != "afternoon" || groups[2].Period != "evening" {
		t.Fatalf("unexpected group order: %s/%s/%s", groups[0].Period, groups[1].Period, groups[2].Period)
	}

	if len(groups[0].Slots) != 3 {
		t.Errorf("want 3 morning slots, got %d", len(groups[0].Slots))
	}
	if len(groups[1].Slots) != 2 {
		t.Errorf("want 2 afternoon slots, got %d", len(groups[1].Slots))
	}
	if len(groups[2].Slots) != 2 {
		t.Errorf("want 2 evening slots, got %d", len(groups[2].Slots))
	}

	// Grouping partitions; it never drops a slot.
	total := len(groups[0].Slots) + len(groups[1].Slots) + len(groups[2].Slots)
	if total != len(slots) {
		t.Fatalf("grouping dropped slots: %d in, %d out", len(slots), total)
	}
}

func TestGroupByPeriod_Empty(t *testing.T) {
	groups := GroupByPeriod(nil)
	if len(groups) != 3 {
		t.Fatalf("want 3 empty groups, got %d", len(groups))
	}
	for _, g := range groups {
		if len(g.Slots) != 0 {
			t.Errorf("group %s should be empty", g.Period)
		}
	}
}
