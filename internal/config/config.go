// Package config provides YAML-based game configuration loading and
// difficulty handling for the snake game.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains every tunable of the game simulation.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	TickRate   int              `yaml:"tick_rate"`
	Difficulty DifficultySpeeds `yaml:"difficulty"`
	Movement   MovementConfig   `yaml:"movement"`
	Snake      SnakeStart       `yaml:"snake"`
	PowerUps   PowerUpDurations `yaml:"power_ups"`
	Food       FoodConfig       `yaml:"food"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	TimeAttack TimeAttackConfig `yaml:"time_attack"`
}

// GridConfig defines the play area. Width and height are in the same units as
// positions and must be multiples of CellSize.
type GridConfig struct {
	CellSize int `yaml:"cell_size"`
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
}

// DifficultySpeeds maps each difficulty to its speed value.
type DifficultySpeeds struct {
	Easy   int `yaml:"easy"`
	Medium int `yaml:"medium"`
	Hard   int `yaml:"hard"`
}

// MovementConfig defines the movement cadence:
// threshold = max(base_threshold - speed_factor*speed, min_threshold),
// multiplied by slowmo_factor while slowmo is active.
type MovementConfig struct {
	BaseThreshold int `yaml:"base_threshold"`
	SpeedFactor   int `yaml:"speed_factor"`
	MinThreshold  int `yaml:"min_threshold"`
	SlowmoFactor  int `yaml:"slowmo_factor"`
}

// SnakeStart defines the snake's spawn layout.
type SnakeStart struct {
	StartX          int `yaml:"start_x"`
	StartY          int `yaml:"start_y"`
	StartLength     int `yaml:"start_length"`
	ShrinkMinLength int `yaml:"shrink_min_length"` // shrink only applies above this length
}

// PowerUpDurations holds effect durations in ticks.
type PowerUpDurations struct {
	SpeedBoost      int `yaml:"speed_boost"`
	ScoreMultiplier int `yaml:"score_multiplier"`
	Shrink          int `yaml:"shrink"`
	Slowmo          int `yaml:"slowmo"`
	DoubleScore     int `yaml:"double_score"`
	Ghost           int `yaml:"ghost"`
}

// FoodConfig defines spawning, scoring and expiry of food items.
type FoodConfig struct {
	SpecialEvery  int           `yaml:"special_every"`  // every Nth spawn rolls the weight table
	SpawnAttempts int           `yaml:"spawn_attempts"` // random samples before falling back to a scan
	Points        FoodPoints    `yaml:"points"`
	Lifetimes     FoodLifetimes `yaml:"lifetimes"`
	Weights       []FoodWeight  `yaml:"weights"`
}

// FoodPoints is the base score per food kind.
type FoodPoints struct {
	Normal      int `yaml:"normal"`
	Special     int `yaml:"special"`
	Super       int `yaml:"super"`
	Shrink      int `yaml:"shrink"`
	Slowmo      int `yaml:"slowmo"`
	DoubleScore int `yaml:"double_score"`
	Ghost       int `yaml:"ghost"`
}

// FoodLifetimes is how many ticks a special item lasts before reverting to normal.
type FoodLifetimes struct {
	Special     int `yaml:"special"`
	Super       int `yaml:"super"`
	Shrink      int `yaml:"shrink"`
	Slowmo      int `yaml:"slowmo"`
	DoubleScore int `yaml:"double_score"`
	Ghost       int `yaml:"ghost"`
}

// FoodWeight is one row of the weighted special-kind roll table.
type FoodWeight struct {
	Kind   string `yaml:"kind"`
	Weight int    `yaml:"weight"`
}

// ObstacleConfig defines obstacle placement and movement.
type ObstacleConfig struct {
	Max               int            `yaml:"max"`
	MoveCooldown      int            `yaml:"move_cooldown"`
	MovingChance      float64        `yaml:"moving_chance"`
	PlacementAttempts int            `yaml:"placement_attempts"`
	ClassicEvery      int            `yaml:"classic_every"` // classic mode adds one obstacle per this many points
	ChallengeLayout   []ObstacleSpec `yaml:"challenge_layout"`
}

// ObstacleSpec is a fixed obstacle placement used by challenge mode.
type ObstacleSpec struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Kind string `yaml:"kind"` // "static" or "moving"
}

// TimeAttackConfig defines the time-attack countdown.
type TimeAttackConfig struct {
	DurationSeconds int `yaml:"duration_seconds"`
}

// TimeAttackTicks returns the time-attack duration converted to ticks.
func (c SnakeConfig) TimeAttackTicks() int {
	return c.TimeAttack.DurationSeconds * c.TickRate
}

// Validate checks that the configuration describes a playable game.
// Kind names in the food table and challenge layout are checked by the
// game package, which owns those enums.
func (c SnakeConfig) Validate() error {
	g := c.Grid
	if g.CellSize <= 0 {
		return fmt.Errorf("config: grid.cell_size must be positive, got %d", g.CellSize)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("config: grid size must be positive, got %dx%d", g.Width, g.Height)
	}
	if g.Width%g.CellSize != 0 || g.Height%g.CellSize != 0 {
		return fmt.Errorf("config: grid %dx%d is not a multiple of cell size %d", g.Width, g.Height, g.CellSize)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}
	if c.Movement.MinThreshold < 1 {
		return fmt.Errorf("config: movement.min_threshold must be at least 1, got %d", c.Movement.MinThreshold)
	}
	if c.Movement.SlowmoFactor < 1 {
		return fmt.Errorf("config: movement.slowmo_factor must be at least 1, got %d", c.Movement.SlowmoFactor)
	}

	s := c.Snake
	if s.StartLength < 1 {
		return fmt.Errorf("config: snake.start_length must be at least 1, got %d", s.StartLength)
	}
	if s.StartX%g.CellSize != 0 || s.StartY%g.CellSize != 0 {
		return fmt.Errorf("config: snake start (%d,%d) is not cell aligned", s.StartX, s.StartY)
	}
	// The body extends to the left of the head.
	if s.StartX-(s.StartLength-1)*g.CellSize < 0 || s.StartX >= g.Width || s.StartY < 0 || s.StartY >= g.Height {
		return fmt.Errorf("config: snake of length %d at (%d,%d) does not fit the grid", s.StartLength, s.StartX, s.StartY)
	}

	if c.Food.SpecialEvery < 1 {
		return fmt.Errorf("config: food.special_every must be at least 1, got %d", c.Food.SpecialEvery)
	}
	total := 0
	for _, w := range c.Food.Weights {
		if w.Weight < 0 {
			return fmt.Errorf("config: food weight for %q is negative", w.Kind)
		}
		total += w.Weight
	}
	if total == 0 {
		return errors.New("config: food.weights must contain at least one positive weight")
	}

	o := c.Obstacles
	if o.Max < 0 {
		return fmt.Errorf("config: obstacles.max must not be negative, got %d", o.Max)
	}
	if o.MoveCooldown < 1 {
		return fmt.Errorf("config: obstacles.move_cooldown must be at least 1, got %d", o.MoveCooldown)
	}
	if o.MovingChance < 0 || o.MovingChance > 1 {
		return fmt.Errorf("config: obstacles.moving_chance must be in [0,1], got %v", o.MovingChance)
	}
	for _, spec := range o.ChallengeLayout {
		if spec.X%g.CellSize != 0 || spec.Y%g.CellSize != 0 {
			return fmt.Errorf("config: challenge obstacle (%d,%d) is not cell aligned", spec.X, spec.Y)
		}
	}

	if c.TimeAttack.DurationSeconds <= 0 {
		return fmt.Errorf("config: time_attack.duration_seconds must be positive, got %d", c.TimeAttack.DurationSeconds)
	}
	return nil
}
