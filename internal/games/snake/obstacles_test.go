package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/core"
)

func newTestField(cfg config.ObstacleConfig, seed int64) *ObstacleField {
	return NewObstacleField(cfg, defaultBounds, rand.New(rand.NewSource(seed)))
}

func TestAddRandomAvoidsCells(t *testing.T) {
	cfg := config.DefaultSnakeConfig().Obstacles
	cfg.Max = 200
	f := newTestField(cfg, 9)

	avoid := func(p core.Point) bool { return p.Y < 300 }
	for range 100 {
		f.AddRandom(avoid)
	}

	if f.Len() == 0 {
		t.Fatal("no obstacles placed")
	}
	seen := make(map[core.Point]bool)
	for _, p := range f.Positions() {
		if avoid(p) {
			t.Errorf("obstacle placed on avoided cell %v", p)
		}
		if seen[p] {
			t.Errorf("two obstacles on %v", p)
		}
		seen[p] = true
	}
}

func TestAddRandomRespectsMax(t *testing.T) {
	cfg := config.DefaultSnakeConfig().Obstacles
	f := newTestField(cfg, 1)

	for range 50 {
		f.AddRandom(func(core.Point) bool { return false })
	}
	if f.Len() != cfg.Max {
		t.Errorf("Len() = %d, expected max %d", f.Len(), cfg.Max)
	}
	if f.AddRandom(func(core.Point) bool { return false }) {
		t.Error("AddRandom() should fail once the field is full")
	}
}

func TestAddRandomGivesUp(t *testing.T) {
	f := newTestField(config.DefaultSnakeConfig().Obstacles, 1)
	if f.AddRandom(func(core.Point) bool { return true }) {
		t.Error("AddRandom() = true with every cell avoided")
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", f.Len())
	}
}

func TestAddRandomMovingChance(t *testing.T) {
	cfg := config.DefaultSnakeConfig().Obstacles
	cfg.Max = 100
	cfg.MovingChance = 1
	f := newTestField(cfg, 4)
	for range 10 {
		f.AddRandom(func(core.Point) bool { return false })
	}
	for _, o := range f.All() {
		if o.Kind != ObstacleMoving || o.Dir == (core.Direction{}) {
			t.Errorf("obstacle %+v should be moving with a direction", o)
		}
	}

	cfg.MovingChance = 0
	f = newTestField(cfg, 4)
	for range 10 {
		f.AddRandom(func(core.Point) bool { return false })
	}
	for _, o := range f.All() {
		if o.Kind != ObstacleStatic {
			t.Errorf("obstacle %+v should be static", o)
		}
	}
}

func TestMovingObstacleCadence(t *testing.T) {
	cfg := config.DefaultSnakeConfig().Obstacles
	f := newTestField(cfg, 2)
	f.Add(core.Point{X: 400, Y: 300}, ObstacleMoving)
	f.Add(core.Point{X: 100, Y: 100}, ObstacleStatic)
	f.items[0].Dir = core.DirRight

	for range cfg.MoveCooldown - 1 {
		f.Update(nil)
	}
	if got := f.items[0].Pos; got != (core.Point{X: 400, Y: 300}) {
		t.Fatalf("moved early to %v", got)
	}
	f.Update(nil)
	if got := f.items[0].Pos; got != (core.Point{X: 420, Y: 300}) {
		t.Errorf("Pos = %v, expected (420,300)", got)
	}
	if got := f.items[1].Pos; got != (core.Point{X: 100, Y: 100}) {
		t.Errorf("static obstacle moved to %v", got)
	}
}

func TestMovingObstacleTurnsAtEdge(t *testing.T) {
	cfg := config.DefaultSnakeConfig().Obstacles
	cfg.MoveCooldown = 1
	f := newTestField(cfg, 2)
	corner := core.Point{X: 0, Y: 0}
	f.Add(corner, ObstacleMoving)
	f.items[0].Dir = core.DirLeft

	f.Update(nil)
	if f.items[0].Pos != corner {
		t.Errorf("obstacle left the board or moved while turning: %v", f.items[0].Pos)
	}

	// Whatever it turns to, it never leaves the board.
	for range 500 {
		f.Update(nil)
		if !defaultBounds.Contains(f.items[0].Pos) {
			t.Fatalf("obstacle left the board at %v", f.items[0].Pos)
		}
	}
}

func TestMovingObstacleAvoidsBlockedCells(t *testing.T) {
	cfg := config.DefaultSnakeConfig().Obstacles
	cfg.MoveCooldown = 1
	f := newTestField(cfg, 2)
	start := core.Point{X: 400, Y: 300}
	f.Add(start, ObstacleMoving)
	f.Add(core.Point{X: 400, Y: 320}, ObstacleStatic)

	food := core.Point{X: 420, Y: 300}
	f.items[0].Dir = core.DirRight
	f.Update(func(p core.Point) bool { return p == food })
	if f.items[0].Pos != start {
		t.Errorf("stepped onto a blocked cell: %v", f.items[0].Pos)
	}

	f.items[0].Dir = core.DirDown
	f.Update(nil)
	if f.items[0].Pos != start {
		t.Errorf("stepped onto another obstacle: %v", f.items[0].Pos)
	}

	// Hemmed in on all four sides it never moves.
	blocked := map[core.Point]bool{
		{X: 420, Y: 300}: true,
		{X: 380, Y: 300}: true,
		{X: 400, Y: 280}: true,
	}
	for range 200 {
		f.Update(func(p core.Point) bool { return blocked[p] })
		if f.items[0].Pos != start {
			t.Fatalf("moved to %v while hemmed in", f.items[0].Pos)
		}
	}
}

func TestCollidesAt(t *testing.T) {
	f := newTestField(config.DefaultSnakeConfig().Obstacles, 1)
	p := core.Point{X: 200, Y: 200}
	f.Add(p, ObstacleStatic)

	if !f.CollidesAt(p) {
		t.Error("CollidesAt() = false on obstacle cell")
	}
	if f.CollidesAt(core.Point{X: 220, Y: 200}) {
		t.Error("CollidesAt() = true on free cell")
	}
	if f.Add(p, ObstacleMoving) {
		t.Error("Add() should refuse an occupied cell")
	}

	f.Reset()
	if f.Len() != 0 || f.CollidesAt(p) {
		t.Error("Reset() should remove all obstacles")
	}
}

func TestChallengeLayout(t *testing.T) {
	cfg := config.DefaultSnakeConfig().Obstacles
	layout, err := parseLayout(cfg.ChallengeLayout, defaultBounds)
	if err != nil {
		t.Fatalf("parseLayout() failed: %v", err)
	}

	f := newTestField(cfg, 1)
	f.seedLayout(layout)

	expected := []struct {
		p    core.Point
		kind ObstacleKind
	}{
		{core.Point{X: 200, Y: 200}, ObstacleStatic},
		{core.Point{X: 400, Y: 300}, ObstacleStatic},
		{core.Point{X: 600, Y: 200}, ObstacleStatic},
		{core.Point{X: 300, Y: 400}, ObstacleMoving},
		{core.Point{X: 500, Y: 440}, ObstacleMoving},
	}
	all := f.All()
	if len(all) != len(expected) {
		t.Fatalf("Len() = %d, expected %d", len(all), len(expected))
	}
	for i, e := range expected {
		if all[i].Pos != e.p || all[i].Kind != e.kind {
			t.Errorf("obstacle %d = %v/%v, expected %v/%v", i, all[i].Pos, all[i].Kind, e.p, e.kind)
		}
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		spec config.ObstacleSpec
	}{
		{"unknown kind", config.ObstacleSpec{X: 20, Y: 20, Kind: "spinning"}},
		{"off board", config.ObstacleSpec{X: 800, Y: 20, Kind: "static"}},
		{"misaligned", config.ObstacleSpec{X: 25, Y: 20, Kind: "static"}},
	}
	for _, tc := range tests {
		if _, err := parseLayout([]config.ObstacleSpec{tc.spec}, defaultBounds); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}
