package snake

import (
	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/core"
)

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	State         State
	Mode          Mode
	Difficulty    config.Difficulty
	Score         int
	GameTicks     uint64
	FrameCounter  int
	TimeRemaining int
	SnakeLen      int
	Head          core.Point
	Dir           core.Direction
	Effects       Effects
	FoodPos       core.Point
	FoodKind      FoodKind
	FoodActive    bool
	Obstacles     []core.Point
}

// Snapshot returns the current session snapshot. Game fields are zero before
// the first game starts.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          s.tick,
		State:         s.state,
		Mode:          s.mode,
		Difficulty:    s.difficulty,
		Score:         s.score,
		GameTicks:     s.ticks,
		FrameCounter:  s.frameCounter,
		TimeRemaining: s.timeRemaining,
	}
	if s.snake == nil {
		return snap
	}

	snap.SnakeLen = s.snake.Len()
	snap.Head = s.snake.Head()
	snap.Dir = s.snake.Direction()
	snap.Effects = s.snake.Effects()
	snap.FoodPos = s.food.Position()
	snap.FoodKind = s.food.Kind()
	snap.FoodActive = s.food.Active()
	snap.Obstacles = s.obstacles.Positions()
	return snap
}

// HUD is the status line data of a running game.
type HUD struct {
	Score         int
	Best          int
	Length        int
	Multiplier    int
	Mode          Mode
	Difficulty    config.Difficulty
	SecondsLeft   int // time attack only
	Effects       []ActiveEffect
	FoodKind      FoodKind
	FoodRemaining int
}

// HUD returns the status data of the current game.
func (s *Session) HUD() HUD {
	h := HUD{
		Score:      s.score,
		Best:       s.Best(),
		Mode:       s.mode,
		Difficulty: s.difficulty,
		Multiplier: 1,
	}
	if s.snake == nil {
		return h
	}
	h.Length = s.snake.Len()
	h.Multiplier = s.snake.ScoreMultiplier()
	h.Effects = s.snake.Effects().Active()
	h.FoodKind = s.food.Kind()
	h.FoodRemaining = s.food.Remaining()
	if s.mode == ModeTimeAttack {
		rate := s.cfg.TickRate
		h.SecondsLeft = (s.timeRemaining + rate - 1) / rate
	}
	return h
}
