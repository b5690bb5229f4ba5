package evolution

import "testing"

func TestStage(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{0, 1},
		{4, 1},
		{5, 2},
		{9, 2},
		{10, 3},
		{19, 4},
		{20, 5},
		{24, 5},
		{1000, 5},
	}

	for _, tc := range tests {
		if got := Stage(tc.level, 5, 5); got != tc.expected {
			t.Errorf("Stage(%d, 5, 5) = %d, expected %d", tc.level, got, tc.expected)
		}
	}
}

func TestStageRangeAndMonotonic(t *testing.T) {
	for _, interval := range []int{1, 2, 5, 7} {
		prev := MinStage
		for level := 0; level <= 200; level++ {
			stage := Stage(level, interval, 5)
			if stage < 1 || stage > 5 {
				t.Fatalf("Stage(%d, %d, 5) = %d, out of [1,5]", level, interval, stage)
			}
			if stage < prev {
				t.Fatalf("Stage decreased at level %d (interval %d): %d -> %d", level, interval, prev, stage)
			}
			prev = stage
		}
	}
}

func TestStageDegenerateInputs(t *testing.T) {
	if got := Stage(10, 0, 5); got != MinStage {
		t.Errorf("zero interval should stay at MinStage, got %d", got)
	}
	if got := Stage(-3, 5, 5); got != MinStage {
		t.Errorf("negative level should map to MinStage, got %d", got)
	}
	if got := Stage(50, 5, 0); got != MinStage {
		t.Errorf("maxStage below MinStage should clamp to MinStage, got %d", got)
	}
}

func TestSpeedMultiplier(t *testing.T) {
	if got := SpeedMultiplier(0, 0.5); got != 1.0 {
		t.Errorf("SpeedMultiplier(0) = %f, expected 1.0", got)
	}
	if got := SpeedMultiplier(4, 0.5); got != 3.0 {
		t.Errorf("SpeedMultiplier(4) = %f, expected 3.0", got)
	}

	prev := SpeedMultiplier(0, 0.5)
	for level := 1; level < 100; level++ {
		cur := SpeedMultiplier(level, 0.5)
		if cur <= prev {
			t.Fatalf("SpeedMultiplier not strictly increasing at level %d: %f <= %f", level, cur, prev)
		}
		prev = cur
	}
}

func TestSpriteKey(t *testing.T) {
	k := SpriteKeyFor(3, ActionCatch)
	if k.String() != "stage3_catch" {
		t.Errorf("String() = %q, expected stage3_catch", k.String())
	}

	lower, ok := k.Lower()
	if !ok || lower != SpriteKeyFor(2, ActionCatch) {
		t.Errorf("Lower() = %v, %v", lower, ok)
	}

	if _, ok := SpriteKeyFor(1, ActionIdle).Lower(); ok {
		t.Error("stage 1 should have no lower stage")
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAction("dance"); err == nil {
		t.Error("ParseAction should reject unknown names")
	}
}

func TestStageNeverExceedsMaxStage(t *testing.T) {
	for _, maxStage := range []int{0, 1, 5, 6, 9} {
		for level := 0; level <= 50; level++ {
			if got := Stage(level, 1, maxStage); got < MinStage || got > MaxStage {
				t.Fatalf("Stage(%d, 1, %d) = %d, out of [%d,%d]", level, maxStage, got, MinStage, MaxStage)
			}
		}
	}
}
