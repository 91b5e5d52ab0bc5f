package financeai

import "testing"

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name          string
		target        float64
		current       float64
		wantProgress  int
		wantCompleted bool
	}{
		{"halfway", 1000, 500, 50, false},
		{"exactly funded", 1000, 1000, 100, true},
		{"overfunded clamps to 100", 1000, 1500, 100, true},
		{"rounds to nearest", 1000, 496, 50, false},
		{"rounds up to completion", 1000, 999, 100, true},
		{"zero target is defined", 0, 0, 0, false},
		{"zero target with funds", 0, 500, 0, false},
		{"unfunded", 1000, 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := Goal{Title: "test", TargetAmount: BRL(tc.target), CurrentAmount: BRL(tc.current)}
			if got := g.Progress(); got != tc.wantProgress {
				t.Errorf("Progress() = %d, want %d", got, tc.wantProgress)
			}
			if got := g.IsCompleted(); got != tc.wantCompleted {
				t.Errorf("IsCompleted() = %v, want %v", got, tc.wantCompleted)
			}
		})
	}
}

func TestGoalValidate(t *testing.T) {
	tests := []struct {
		name string
		goal Goal
		err  bool
	}{
		{"valid", Goal{Title: "Viagem", TargetAmount: BRL(1000)}, false},
		{"missing title", Goal{TargetAmount: BRL(1000)}, true},
		{"zero target", Goal{Title: "Viagem", TargetAmount: BRL(0)}, true},
		{"negative target", Goal{Title: "Viagem", TargetAmount: BRL(-10)}, true},
		{"negative current", Goal{Title: "Viagem", TargetAmount: BRL(1000), CurrentAmount: BRL(-1)}, true},
		{"current beyond target", Goal{Title: "Viagem", TargetAmount: BRL(1000), CurrentAmount: BRL(2000)}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.goal.Validate()
			if tc.err && err == nil {
				t.Error("expected a validation error")
			}
			if !tc.err && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
