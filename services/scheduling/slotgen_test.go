package scheduling

import (
	"testing"

	"barberbook/models"
)

func TestGenerateSlots_MorningWindow(t *testing.T) {
	// Open 09:00-12:00, 30 minute treatment, 30 minute step.
	window := models.Window{Start: 9 * 60, End: 12 * 60}
	starts := GenerateSlots(window, 30, 30)

	want := []int{540, 570, 600, 630, 660, 690} // 09:00 .. 11:30
	if len(starts) != len(want) {
		t.Fatalf("expected %d slots, got %d (%v)", len(want), len(starts), starts)
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Fatalf("slot %d: expected %s, got %s", i,
				models.ClockFromMinutes(want[i]), models.ClockFromMinutes(starts[i]))
		}
	}
}

func TestGenerateSlots_SlotMustFitEntirely(t *testing.T) {
	// Window ends 20:00: a 30 minute treatment starting 19:50 would spill
	// over, so 19:40 (step 10) is the last valid start.
	window := models.Window{Start: 19 * 60, End: 20 * 60}
	starts := GenerateSlots(window, 10, 30)

	last := starts[len(starts)-1]
	if last != 19*60+30 {
		t.Fatalf("expected last slot 19:30, got %s", models.ClockFromMinutes(last))
	}
	for _, s := range starts {
		if s < window.Start || s+30 > window.End {
			t.Fatalf("slot %s violates containment", models.ClockFromMinutes(s))
		}
	}
}

func TestGenerateSlots_ExactFitAtWindowEnd(t *testing.T) {
	// A slot ending exactly at the window end is included.
	window := models.Window{Start: 11 * 60, End: 12 * 60}
	starts := GenerateSlots(window, 30, 30)

	if len(starts) != 2 || starts[1] != 11*60+30 {
		t.Fatalf("expected [11:00 11:30], got %v", starts)
	}
}

func TestGenerateSlots_TreatmentLongerThanWindow(t *testing.T) {
	window := models.Window{Start: 9 * 60, End: 10 * 60}
	if starts := GenerateSlots(window, 30, 90); starts != nil {
		t.Fatalf("expected no slots, got %v", starts)
	}
}

func TestGenerateSlots_InvalidInputs(t *testing.T) {
	window := models.Window{Start: 9 * 60, End: 17 * 60}
	if starts := GenerateSlots(window, 0, 30); starts != nil {
		t.Fatalf("expected nil for zero step, got %v", starts)
	}
	if starts := GenerateSlots(window, 30, 0); starts != nil {
		t.Fatalf("expected nil for zero duration, got %v", starts)
	}
}

func TestGenerateSlots_IsPure(t *testing.T) {
	window := models.Window{Start: 10 * 60, End: 14 * 60}
	first := GenerateSlots(window, 20, 45)
	second := GenerateSlots(window, 20, 45)

	if len(first) != len(second) {
		t.Fatalf("expected identical results, got %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical results, got %v vs %v", first, second)
		}
	}
}
