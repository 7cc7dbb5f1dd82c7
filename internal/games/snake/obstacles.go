package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/core"
)

// Obstacle is a single blocked cell. Moving obstacles wander one cell at a time.
type Obstacle struct {
	Pos  core.Point
	Kind ObstacleKind
	Dir  core.Direction // zero for static obstacles

	moveCounter int
}

// ObstacleField holds the obstacles of a session, up to the configured maximum.
type ObstacleField struct {
	items  []Obstacle
	cfg    config.ObstacleConfig
	bounds core.Bounds
	rng    *rand.Rand
}

// NewObstacleField creates an empty field.
func NewObstacleField(cfg config.ObstacleConfig, bounds core.Bounds, rng *rand.Rand) *ObstacleField {
	return &ObstacleField{
		cfg:    cfg,
		bounds: bounds,
		rng:    rng,
	}
}

// Add places an obstacle at p. It returns false when the field is full, p is
// off the board or already blocked.
func (f *ObstacleField) Add(p core.Point, kind ObstacleKind) bool {
	if len(f.items) >= f.cfg.Max || !f.bounds.Contains(p) || f.CollidesAt(p) {
		return false
	}
	o := Obstacle{Pos: p, Kind: kind}
	if kind == ObstacleMoving {
		o.Dir = f.randomDirection()
	}
	f.items = append(f.items, o)
	return true
}

// AddRandom tries a bounded number of random cells for a new obstacle,
// skipping cells for which avoid returns true. Moving obstacles are chosen
// with the configured probability. It gives up silently after the attempt cap.
func (f *ObstacleField) AddRandom(avoid func(core.Point) bool) bool {
	if len(f.items) >= f.cfg.Max {
		return false
	}
	cols, rows := f.bounds.Cols(), f.bounds.Rows()
	for range f.cfg.PlacementAttempts {
		p := f.bounds.At(f.rng.Intn(cols), f.rng.Intn(rows))
		if avoid(p) || f.CollidesAt(p) {
			continue
		}
		kind := ObstacleStatic
		if f.rng.Float64() < f.cfg.MovingChance {
			kind = ObstacleMoving
		}
		return f.Add(p, kind)
	}
	return false
}

// layoutSpec is a validated challenge placement.
type layoutSpec struct {
	pos  core.Point
	kind ObstacleKind
}

// parseLayout validates challenge placements against the board.
func parseLayout(specs []config.ObstacleSpec, bounds core.Bounds) ([]layoutSpec, error) {
	out := make([]layoutSpec, 0, len(specs))
	for _, s := range specs {
		kind, err := ParseObstacleKind(s.Kind)
		if err != nil {
			return nil, err
		}
		p := core.Point{X: s.X, Y: s.Y}
		if !bounds.Contains(p) || !bounds.Aligned(p) {
			return nil, fmt.Errorf("snake: challenge obstacle (%d,%d) is not a board cell", s.X, s.Y)
		}
		out = append(out, layoutSpec{pos: p, kind: kind})
	}
	return out, nil
}

// seedLayout places a fixed layout. Placements beyond the maximum are dropped.
func (f *ObstacleField) seedLayout(layout []layoutSpec) {
	for _, s := range layout {
		f.Add(s.pos, s.kind)
	}
}

// Update advances moving obstacles. Every cooldown period each one steps
// forward. A step that would leave the board, hit another obstacle or land on
// a cell for which avoid returns true instead turns it to a random direction
// without moving. avoid may be nil.
func (f *ObstacleField) Update(avoid func(core.Point) bool) {
	for i := range f.items {
		o := &f.items[i]
		if o.Kind != ObstacleMoving {
			continue
		}
		o.moveCounter++
		if o.moveCounter < f.cfg.MoveCooldown {
			continue
		}
		o.moveCounter = 0

		next := o.Pos.Step(o.Dir, f.bounds.Cell)
		if !f.bounds.Contains(next) || f.CollidesAt(next) || (avoid != nil && avoid(next)) {
			o.Dir = f.randomDirection()
			continue
		}
		o.Pos = next
	}
}

func (f *ObstacleField) randomDirection() core.Direction {
	dirs := core.Cardinals()
	return dirs[f.rng.Intn(len(dirs))]
}

// CollidesAt reports whether any obstacle occupies p.
func (f *ObstacleField) CollidesAt(p core.Point) bool {
	for _, o := range f.items {
		if o.Pos == p {
			return true
		}
	}
	return false
}

// Positions returns the occupied cells.
func (f *ObstacleField) Positions() []core.Point {
	out := make([]core.Point, len(f.items))
	for i, o := range f.items {
		out[i] = o.Pos
	}
	return out
}

// All returns a copy of the obstacles.
func (f *ObstacleField) All() []Obstacle {
	out := make([]Obstacle, len(f.items))
	copy(out, f.items)
	return out
}

// Len returns the number of obstacles.
func (f *ObstacleField) Len() int {
	return len(f.items)
}

// Reset removes all obstacles.
func (f *ObstacleField) Reset() {
	f.items = f.items[:0]
}
