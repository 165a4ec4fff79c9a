package services

import (
	"testing"
	"time"
)

func TestGenerateSlots_Basic(t *testing.T) {
	slots := GenerateSlots("09:00-10:30", 30)
	want := []string{"09:00", "09:30", "10:00"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], slots[i])
		}
	}
}

func TestGenerateSlots_NoPartialTrailingSlot(t *testing.T) {
	// 10:00 starts inside the window but 10:00+30m would overrun 10:15
	slots := GenerateSlots("09:00-10:15", 30)
	want := []string{"09:00", "09:30"}
	if len(slots) != len(want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], slots[i])
		}
	}
}

func TestGenerateSlots_CountAndOrdering(t *testing.T) {
	cases := []struct {
		interval string
		duration int
	}{
		{"09:00-18:00", 30},
		{"09:00-18:00", 45},
		{"08:30-12:00", 15},
		{"09:00-14:00", 60},
	}
	for _, tc := range cases {
		slots := GenerateSlots(tc.interval, tc.duration)

		start, end, err := parseIntervalForTest(tc.interval)
		if err != nil {
			t.Fatalf("bad test interval %q", tc.interval)
		}
		wantCount := int(end.Sub(start).Minutes()) / tc.duration
		if len(slots) != wantCount {
			t.Errorf("%s/%dm: expected %d slots, got %d", tc.interval, tc.duration, wantCount, len(slots))
		}

		for i := 1; i < len(slots); i++ {
			if slots[i-1] >= slots[i] {
				t.Errorf("%s/%dm: slots not strictly ascending at %d: %v", tc.interval, tc.duration, i, slots)
			}
		}

		for _, slot := range slots {
			st, _ := time.Parse("15:04", slot)
			if st.Add(time.Duration(tc.duration) * time.Minute).After(end) {
				t.Errorf("%s/%dm: slot %s overruns interval end", tc.interval, tc.duration, slot)
			}
		}
	}
}

func TestGenerateSlots_DurationExceedsInterval(t *testing.T) {
	if slots := GenerateSlots("09:00-09:30", 45); len(slots) != 0 {
		t.Errorf("expected no slots, got %v", slots)
	}
}

func TestGenerateSlots_MalformedInterval(t *testing.T) {
	// Falls back to 09:00-18:00
	slots := GenerateSlots("garbage", 30)
	if len(slots) != 18 {
		t.Fatalf("expected 18 default slots, got %d", len(slots))
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "17:30" {
		t.Errorf("unexpected default slot boundaries: %s..%s", slots[0], slots[len(slots)-1])
	}
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	// Falls back to 30 minutes
	slots := GenerateSlots("09:00-10:00", 0)
	if len(slots) != 2 {
		t.Errorf("expected 2 slots with default duration, got %v", slots)
	}
}

func TestFallbackSlots_SkipsLunchWindow(t *testing.T) {
	slots := FallbackSlots()
	if len(slots) != 13 {
		t.Fatalf("expected 13 fallback slots, got %d", len(slots))
	}
	for _, slot := range slots {
		if slot >= "12:00" && slot < "14:00" {
			t.Errorf("fallback slots include lunch slot %s", slot)
		}
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "17:00" {
		t.Errorf("unexpected fallback boundaries: %s..%s", slots[0], slots[len(slots)-1])
	}

	// Returned slice is a copy
	slots[0] = "changed"
	if FallbackSlots()[0] != "09:00" {
		t.Error("FallbackSlots leaked internal slice")
	}
}

func parseIntervalForTest(interval string) (time.Time, time.Time, error) {
	start, err := time.Parse("15:04", interval[:5])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse("15:04", interval[6:])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
