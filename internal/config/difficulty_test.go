package config

import "testing"

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"MEDIUM", DifficultyMedium, false},
		{" hard ", DifficultyHard, false},
		{"normal", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestDifficultyNextCycles(t *testing.T) {
	d := DifficultyEasy
	seen := []Difficulty{d}
	for range 3 {
		d = d.Next()
		seen = append(seen, d)
	}

	expected := []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyEasy}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Errorf("step %d: got %q, expected %q", i, seen[i], expected[i])
		}
	}
}

func TestMovementThreshold(t *testing.T) {
	cfg := DefaultSnakeConfig()

	tests := []struct {
		d      Difficulty
		slowmo bool
		want   int
	}{
		{DifficultyEasy, false, 10},  // 30 - 2*10
		{DifficultyMedium, false, 6}, // 30 - 2*12
		{DifficultyHard, false, 1},   // max(30 - 2*15, 1)
		{DifficultyEasy, true, 20},
		{DifficultyHard, true, 2},
	}

	for _, tc := range tests {
		if got := cfg.MovementThreshold(tc.d, tc.slowmo); got != tc.want {
			t.Errorf("MovementThreshold(%s, slowmo=%v) = %d, expected %d", tc.d, tc.slowmo, got, tc.want)
		}
	}
}

func TestSpeedUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown difficulty")
		}
	}()
	DefaultSnakeConfig().Speed(Difficulty("insane"))
}
