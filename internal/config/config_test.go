package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("Embedded YAML and DefaultSnakeConfig() differ:\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")

	doc := `
tick_rate: 60
obstacles:
  max: 3
food:
  weights:
    - kind: ghost
      weight: 1
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.TickRate)
	}
	if cfg.Obstacles.Max != 3 {
		t.Errorf("Obstacles.Max = %d, expected 3", cfg.Obstacles.Max)
	}
	// Keys not named keep their defaults
	if cfg.Grid.CellSize != 20 {
		t.Errorf("Grid.CellSize = %d, expected default 20", cfg.Grid.CellSize)
	}
	if len(cfg.Food.Weights) != 1 || cfg.Food.Weights[0].Kind != "ghost" {
		t.Errorf("Weights should be replaced, got %+v", cfg.Food.Weights)
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing custom config")
	}
}

func TestLoadSnakeInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSnake(path); err == nil {
		t.Fatal("Expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *SnakeConfig)
		errSub string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *SnakeConfig) {},
		},
		{
			name:   "zero cell size",
			mutate: func(c *SnakeConfig) { c.Grid.CellSize = 0 },
			errSub: "cell_size",
		},
		{
			name:   "grid not a multiple of cell",
			mutate: func(c *SnakeConfig) { c.Grid.Width = 810 },
			errSub: "multiple",
		},
		{
			name:   "snake does not fit",
			mutate: func(c *SnakeConfig) { c.Snake.StartX = 20 },
			errSub: "does not fit",
		},
		{
			name:   "empty weight table",
			mutate: func(c *SnakeConfig) { c.Food.Weights = nil },
			errSub: "weights",
		},
		{
			name:   "moving chance above one",
			mutate: func(c *SnakeConfig) { c.Obstacles.MovingChance = 1.5 },
			errSub: "moving_chance",
		},
		{
			name: "misaligned challenge obstacle",
			mutate: func(c *SnakeConfig) {
				c.Obstacles.ChallengeLayout = []ObstacleSpec{{X: 500, Y: 450, Kind: "moving"}}
			},
			errSub: "not cell aligned",
		},
		{
			name:   "non-positive time attack",
			mutate: func(c *SnakeConfig) { c.TimeAttack.DurationSeconds = 0 },
			errSub: "time_attack",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.errSub == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.errSub)
			}
		})
	}
}

func TestTimeAttackTicks(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if got := cfg.TimeAttackTicks(); got != 3600 {
		t.Errorf("TimeAttackTicks() = %d, expected 3600", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Error("Marshal/Parse did not reproduce the defaults")
	}
}
