package snake

import (
	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/core"
)

// Snake is the player-controlled body. The head is at index 0.
type Snake struct {
	body          []core.Point
	direction     core.Direction
	lastDirection core.Direction
	pendingGrowth bool
	effects       Effects
	dying         bool

	cell      int
	shrinkMin int
	durations config.PowerUpDurations
}

// NewSnake creates a snake at the configured spawn point, heading right with
// the body trailing to the left.
func NewSnake(cfg config.SnakeConfig) *Snake {
	cell := cfg.Grid.CellSize
	head := core.Point{X: cfg.Snake.StartX, Y: cfg.Snake.StartY}

	body := make([]core.Point, cfg.Snake.StartLength)
	for i := range body {
		body[i] = core.Point{X: head.X - i*cell, Y: head.Y}
	}
	return newSnakeWithBody(cfg, body, core.DirRight)
}

func newSnakeWithBody(cfg config.SnakeConfig, body []core.Point, dir core.Direction) *Snake {
	return &Snake{
		body:          body,
		direction:     dir,
		lastDirection: dir,
		cell:          cfg.Grid.CellSize,
		shrinkMin:     cfg.Snake.ShrinkMinLength,
		durations:     cfg.PowerUps,
	}
}

// ChangeDirection sets the heading for the next move. A direction that
// reverses the last applied one is ignored.
func (s *Snake) ChangeDirection(d core.Direction) {
	if d.IsOpposite(s.lastDirection) {
		return
	}
	s.direction = d
}

// Move advances the snake one cell and ticks its effects.
// It returns the effects that expired during this move.
//
// Tail handling, in priority order: an active shrink on a snake longer than
// the shrink minimum drops two tail segments and discards pending growth;
// otherwise without pending growth one tail segment is dropped; otherwise
// the growth is consumed and the snake is one segment longer.
func (s *Snake) Move() []Effect {
	s.lastDirection = s.direction

	prevLen := len(s.body)
	head := s.body[0].Step(s.direction, s.cell)
	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body[:prevLen])
	s.body[0] = head

	switch {
	case s.effects.Shrink > 0 && prevLen > s.shrinkMin:
		s.body = s.body[:len(s.body)-2]
		s.pendingGrowth = false
	case !s.pendingGrowth:
		s.body = s.body[:len(s.body)-1]
	default:
		s.pendingGrowth = false
	}

	return s.effects.tick()
}

// Grow makes the next Move keep its tail.
func (s *Snake) Grow() {
	s.pendingGrowth = true
}

// ApplyPowerUp starts (or restarts) the effect granted by kind.
// Normal food has no effect. Unknown kinds panic.
func (s *Snake) ApplyPowerUp(kind FoodKind) {
	eff, ok := effectFor(kind)
	if !ok {
		return
	}
	*s.effects.counter(eff) = durationFor(s.durations, eff)
}

// CheckCollision tests the head against the play area, the obstacles and the
// rest of the body, in that order. Ghost only suppresses self collisions.
func (s *Snake) CheckCollision(bounds core.Bounds, obstacles []core.Point) Collision {
	head := s.body[0]
	if !bounds.Contains(head) {
		return WallHit
	}
	for _, p := range obstacles {
		if p == head {
			return ObstacleHit
		}
	}
	if s.effects.Ghost > 0 {
		return NoHit
	}
	for _, p := range s.body[1:] {
		if p == head {
			return SelfHit
		}
	}
	return NoHit
}

// ScoreMultiplier returns the factor applied to food points: 2 while the
// multiplier effect runs, doubled again while double score runs.
func (s *Snake) ScoreMultiplier() int {
	m := 1
	if s.effects.ScoreMultiplier > 0 {
		m = 2
	}
	if s.effects.DoubleScore > 0 {
		m *= 2
	}
	return m
}

// StartDeathAnimation flags the snake for the death animation. It has no
// effect on the simulation.
func (s *Snake) StartDeathAnimation() {
	s.dying = true
}

// Dying reports whether the death animation was started.
func (s *Snake) Dying() bool {
	return s.dying
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns a copy of all segments, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Occupies reports whether any segment lies on p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Direction returns the heading used by the next move.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// LastDirection returns the heading used by the previous move.
func (s *Snake) LastDirection() core.Direction {
	return s.lastDirection
}

// Effects returns the current effect counters.
func (s *Snake) Effects() Effects {
	return s.effects
}

// GrowthPending reports whether the next move keeps the tail.
func (s *Snake) GrowthPending() bool {
	return s.pendingGrowth
}
