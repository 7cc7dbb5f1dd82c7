package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/core"
)

// SpawnPolicy decides which kind each food spawn gets and what it is worth.
type SpawnPolicy struct {
	every     int // every Nth spawn rolls the weight table
	attempts  int // random samples before the free-cell scan
	points    [foodKindCount]int
	lifetimes [foodKindCount]int
	table     []weightedKind
	total     int
}

type weightedKind struct {
	kind   FoodKind
	weight int
}

// NewSpawnPolicy builds a policy from configuration. The weight table may only
// name special kinds.
func NewSpawnPolicy(cfg config.FoodConfig) (SpawnPolicy, error) {
	p := SpawnPolicy{
		every:    cfg.SpecialEvery,
		attempts: cfg.SpawnAttempts,
	}
	if p.every < 1 {
		return SpawnPolicy{}, fmt.Errorf("snake: special_every must be at least 1, got %d", p.every)
	}

	pts := cfg.Points
	p.points = [foodKindCount]int{
		FoodNormal:      pts.Normal,
		FoodSpecial:     pts.Special,
		FoodSuper:       pts.Super,
		FoodShrink:      pts.Shrink,
		FoodSlowmo:      pts.Slowmo,
		FoodDoubleScore: pts.DoubleScore,
		FoodGhost:       pts.Ghost,
	}
	lt := cfg.Lifetimes
	p.lifetimes = [foodKindCount]int{
		FoodSpecial:     lt.Special,
		FoodSuper:       lt.Super,
		FoodShrink:      lt.Shrink,
		FoodSlowmo:      lt.Slowmo,
		FoodDoubleScore: lt.DoubleScore,
		FoodGhost:       lt.Ghost,
	}

	for _, w := range cfg.Weights {
		kind, err := ParseFoodKind(w.Kind)
		if err != nil {
			return SpawnPolicy{}, err
		}
		if !kind.IsSpecial() {
			return SpawnPolicy{}, fmt.Errorf("snake: weight table may only contain special kinds, got %q", w.Kind)
		}
		if w.Weight < 0 {
			return SpawnPolicy{}, fmt.Errorf("snake: negative weight for %q", w.Kind)
		}
		if w.Weight == 0 {
			continue
		}
		p.table = append(p.table, weightedKind{kind: kind, weight: w.Weight})
		p.total += w.Weight
	}
	if p.total == 0 {
		return SpawnPolicy{}, fmt.Errorf("snake: weight table has no positive weights")
	}
	return p, nil
}

// Points returns the base score for kind.
func (p SpawnPolicy) Points(kind FoodKind) int {
	mustFoodKind(kind)
	return p.points[kind]
}

// Lifetime returns how many frames kind lasts before reverting to normal.
func (p SpawnPolicy) Lifetime(kind FoodKind) int {
	mustFoodKind(kind)
	return p.lifetimes[kind]
}

// roll picks a special kind from the weight table.
func (p SpawnPolicy) roll(rng *rand.Rand) FoodKind {
	n := rng.Intn(p.total)
	for _, w := range p.table {
		if n < w.weight {
			return w.kind
		}
		n -= w.weight
	}
	// unreachable while total is the sum of the weights
	return p.table[len(p.table)-1].kind
}

// Food is the single food slot of a session.
type Food struct {
	pos          core.Point
	kind         FoodKind
	remaining    int
	active       bool
	spawnCounter int

	policy SpawnPolicy
	bounds core.Bounds
	rng    *rand.Rand
}

// NewFood creates an empty food slot. Call Spawn to place the first item.
func NewFood(policy SpawnPolicy, bounds core.Bounds, rng *rand.Rand) *Food {
	return &Food{
		policy: policy,
		bounds: bounds,
		rng:    rng,
	}
}

// Spawn places a new item on a free cell and picks its kind.
// Cells for which occupied returns true are never used. Placement first tries
// a bounded number of uniform random samples, then falls back to a random
// pick among all free cells. It returns false, leaving the slot empty, only
// when no free cell exists.
func (f *Food) Spawn(occupied func(core.Point) bool) bool {
	pos, ok := f.pickCell(occupied)
	if !ok {
		f.active = false
		return false
	}
	f.pos = pos
	f.active = true

	f.spawnCounter++
	if f.spawnCounter >= f.policy.every {
		f.spawnCounter = 0
		f.kind = f.policy.roll(f.rng)
		f.remaining = f.policy.Lifetime(f.kind)
	} else {
		f.kind = FoodNormal
		f.remaining = 0
	}
	return true
}

func (f *Food) pickCell(occupied func(core.Point) bool) (core.Point, bool) {
	cols, rows := f.bounds.Cols(), f.bounds.Rows()
	for range f.policy.attempts {
		p := f.bounds.At(f.rng.Intn(cols), f.rng.Intn(rows))
		if !occupied(p) {
			return p, true
		}
	}

	free := make([]core.Point, 0, f.bounds.CellCount())
	for row := range rows {
		for col := range cols {
			if p := f.bounds.At(col, row); !occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[f.rng.Intn(len(free))], true
}

// Update counts down the lifetime of a special item. At zero the item turns
// into normal food where it lies.
func (f *Food) Update() {
	if !f.active || f.kind == FoodNormal {
		return
	}
	f.remaining--
	if f.remaining <= 0 {
		f.kind = FoodNormal
		f.remaining = 0
	}
}

// PointValue returns the base score of the current item. The caller applies
// the snake's multiplier.
func (f *Food) PointValue() int {
	return f.policy.Points(f.kind)
}

// Position returns where the item lies. Only meaningful while Active.
func (f *Food) Position() core.Point {
	return f.pos
}

// Kind returns the current item kind.
func (f *Food) Kind() FoodKind {
	return f.kind
}

// Remaining returns the frames left before a special item reverts.
func (f *Food) Remaining() int {
	return f.remaining
}

// Active reports whether an item is on the board.
func (f *Food) Active() bool {
	return f.active
}
