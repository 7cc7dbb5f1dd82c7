package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/core"
)

func horizontalBody(headX, y, length int) []core.Point {
	body := make([]core.Point, length)
	for i := range body {
		body[i] = core.Point{X: headX - i*20, Y: y}
	}
	return body
}

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(config.DefaultSnakeConfig())

	expected := []core.Point{{X: 100, Y: 100}, {X: 80, Y: 100}, {X: 60, Y: 100}}
	body := s.Body()
	if len(body) != len(expected) {
		t.Fatalf("Len() = %d, expected %d", len(body), len(expected))
	}
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("segment %d = %v, expected %v", i, body[i], expected[i])
		}
	}
	if s.Direction() != core.DirRight {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
}

func TestChangeDirectionIgnoresReversal(t *testing.T) {
	s := NewSnake(config.DefaultSnakeConfig())

	s.ChangeDirection(core.DirLeft)
	if s.Direction() != core.DirRight {
		t.Errorf("reverse turn should be ignored, direction = %v", s.Direction())
	}

	// Up then Left before the next move: Left is still checked against the
	// last applied direction (right) and must be dropped.
	s.ChangeDirection(core.DirUp)
	s.ChangeDirection(core.DirLeft)
	if s.Direction() != core.DirUp {
		t.Errorf("Direction() = %v, expected up", s.Direction())
	}

	s.Move()
	if got := s.Head(); got != (core.Point{X: 100, Y: 80}) {
		t.Errorf("Head() = %v, expected (100,80)", got)
	}
}

func TestNoReversalAcrossMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dirs := core.Cardinals()
	s := NewSnake(config.DefaultSnakeConfig())

	prev := s.LastDirection()
	for i := range 2000 {
		for range rng.Intn(4) {
			s.ChangeDirection(dirs[rng.Intn(len(dirs))])
		}
		s.Move()
		cur := s.LastDirection()
		if cur.IsOpposite(prev) {
			t.Fatalf("move %d reversed from %v to %v", i, prev, cur)
		}
		prev = cur
	}
}

func TestMoveLength(t *testing.T) {
	cfg := config.DefaultSnakeConfig()

	tests := []struct {
		name     string
		length   int
		grow     bool
		shrink   bool
		expected int
	}{
		{"plain move", 3, false, false, 3},
		{"growth", 3, true, false, 4},
		{"shrink", 5, false, true, 4},
		{"shrink beats growth", 5, true, true, 4},
		{"shrink at minimum", 3, false, true, 3},
		{"shrink at minimum with growth", 3, true, true, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSnakeWithBody(cfg, horizontalBody(200, 100, tc.length), core.DirRight)
			if tc.grow {
				s.Grow()
			}
			if tc.shrink {
				s.effects.Shrink = 50
			}
			s.Move()

			if s.Len() != tc.expected {
				t.Errorf("Len() = %d, expected %d", s.Len(), tc.expected)
			}
			if s.Head() != (core.Point{X: 220, Y: 100}) {
				t.Errorf("Head() = %v, expected (220,100)", s.Head())
			}
		})
	}
}

func TestShrinkConsumesPendingGrowth(t *testing.T) {
	s := newSnakeWithBody(config.DefaultSnakeConfig(), horizontalBody(200, 100, 5), core.DirRight)
	s.effects.Shrink = 1
	s.Grow()
	s.Move()

	if s.GrowthPending() {
		t.Error("growth should be discarded by shrink")
	}
	// Shrink expired during the last move, so this one is a plain move.
	s.Move()
	if s.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", s.Len())
	}
}

func TestCheckCollision(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	bounds := core.Bounds{Width: 800, Height: 600, Cell: 20}

	// Head at (40,40) overlapping the last segment of a closed loop.
	loop := []core.Point{
		{X: 40, Y: 40}, {X: 60, Y: 40}, {X: 60, Y: 60}, {X: 40, Y: 60}, {X: 40, Y: 40},
	}

	tests := []struct {
		name      string
		body      []core.Point
		ghost     int
		obstacles []core.Point
		expected  Collision
	}{
		{"free", horizontalBody(200, 100, 3), 0, nil, NoHit},
		{"self", loop, 0, nil, SelfHit},
		{"self with ghost", loop, 10, nil, NoHit},
		{"wall left", horizontalBody(-20, 100, 3), 0, nil, WallHit},
		{"wall right", horizontalBody(800, 100, 3), 0, nil, WallHit},
		{"wall bottom", []core.Point{{X: 100, Y: 600}}, 0, nil, WallHit},
		{"wall with ghost", horizontalBody(-20, 100, 3), 10, nil, WallHit},
		{"obstacle", horizontalBody(200, 100, 3), 0, []core.Point{{X: 200, Y: 100}}, ObstacleHit},
		{"obstacle with ghost", horizontalBody(200, 100, 3), 10, []core.Point{{X: 200, Y: 100}}, ObstacleHit},
		{"obstacle on body only", horizontalBody(200, 100, 3), 0, []core.Point{{X: 180, Y: 100}}, NoHit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSnakeWithBody(cfg, tc.body, core.DirRight)
			s.effects.Ghost = tc.ghost
			if got := s.CheckCollision(bounds, tc.obstacles); got != tc.expected {
				t.Errorf("CheckCollision() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestScoreMultiplierComposition(t *testing.T) {
	tests := []struct {
		super, double bool
		expected      int
	}{
		{false, false, 1},
		{true, false, 2},
		{false, true, 2},
		{true, true, 4},
	}

	for _, tc := range tests {
		s := NewSnake(config.DefaultSnakeConfig())
		if tc.super {
			s.ApplyPowerUp(FoodSuper)
		}
		if tc.double {
			s.ApplyPowerUp(FoodDoubleScore)
		}
		if got := s.ScoreMultiplier(); got != tc.expected {
			t.Errorf("super=%v double=%v: ScoreMultiplier() = %d, expected %d", tc.super, tc.double, got, tc.expected)
		}
	}
}

func TestApplyPowerUpDurations(t *testing.T) {
	cfg := config.DefaultSnakeConfig()

	tests := []struct {
		kind     FoodKind
		effect   Effect
		expected int
	}{
		{FoodSpecial, EffectSpeedBoost, 300},
		{FoodSuper, EffectScoreMultiplier, 300},
		{FoodShrink, EffectShrink, 200},
		{FoodSlowmo, EffectSlowmo, 250},
		{FoodDoubleScore, EffectDoubleScore, 300},
		{FoodGhost, EffectGhost, 200},
	}

	for _, tc := range tests {
		s := NewSnake(cfg)
		s.ApplyPowerUp(tc.kind)
		if got := s.Effects().Remaining(tc.effect); got != tc.expected {
			t.Errorf("ApplyPowerUp(%v): %v = %d, expected %d", tc.kind, tc.effect, got, tc.expected)
		}
		if n := len(s.Effects().Active()); n != 1 {
			t.Errorf("ApplyPowerUp(%v): %d active effects, expected 1", tc.kind, n)
		}
	}

	s := NewSnake(cfg)
	s.ApplyPowerUp(FoodNormal)
	if len(s.Effects().Active()) != 0 {
		t.Error("normal food should not start an effect")
	}
}

func TestEffectsStackAndExpire(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.PowerUps.ScoreMultiplier = 3
	cfg.PowerUps.Ghost = 2
	s := NewSnake(cfg)
	s.ApplyPowerUp(FoodSuper)
	s.ApplyPowerUp(FoodGhost)

	if got := s.Move(); len(got) != 0 {
		t.Errorf("first move expired %v", got)
	}
	if got := s.Move(); len(got) != 1 || got[0] != EffectGhost {
		t.Errorf("second move expired %v, expected [Ghost]", got)
	}
	if s.ScoreMultiplier() != 2 {
		t.Errorf("multiplier should survive ghost expiry, got %d", s.ScoreMultiplier())
	}
	if got := s.Move(); len(got) != 1 || got[0] != EffectScoreMultiplier {
		t.Errorf("third move expired %v, expected [x2]", got)
	}
	if s.ScoreMultiplier() != 1 {
		t.Errorf("ScoreMultiplier() = %d after expiry, expected 1", s.ScoreMultiplier())
	}
}

func TestApplyPowerUpUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown food kind")
		}
	}()
	NewSnake(config.DefaultSnakeConfig()).ApplyPowerUp(FoodKind(99))
}

func TestDeathAnimationFlag(t *testing.T) {
	s := NewSnake(config.DefaultSnakeConfig())
	if s.Dying() {
		t.Fatal("new snake should not be dying")
	}
	s.StartDeathAnimation()
	if !s.Dying() {
		t.Error("Dying() should be true after StartDeathAnimation")
	}
}
