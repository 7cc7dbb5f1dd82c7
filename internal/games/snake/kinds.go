package snake

import (
	"fmt"
	"strings"
)

// FoodKind identifies the type of the food item on the board.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodSpecial
	FoodSuper
	FoodShrink
	FoodSlowmo
	FoodDoubleScore
	FoodGhost

	foodKindCount
)

var foodKindNames = [foodKindCount]string{
	FoodNormal:      "normal",
	FoodSpecial:     "special",
	FoodSuper:       "super",
	FoodShrink:      "shrink",
	FoodSlowmo:      "slowmo",
	FoodDoubleScore: "double_score",
	FoodGhost:       "ghost",
}

// String returns the configuration name of the kind.
func (k FoodKind) String() string {
	if k < 0 || k >= foodKindCount {
		return fmt.Sprintf("FoodKind(%d)", int(k))
	}
	return foodKindNames[k]
}

// IsSpecial reports whether eating the kind applies a power-up.
func (k FoodKind) IsSpecial() bool {
	return k != FoodNormal
}

// ParseFoodKind converts a configuration name to a FoodKind.
func ParseFoodKind(s string) (FoodKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range foodKindNames {
		if n == name {
			return FoodKind(k), nil
		}
	}
	return 0, fmt.Errorf("snake: unknown food kind %q", s)
}

// mustFoodKind panics on values outside the closed kind set.
func mustFoodKind(k FoodKind) {
	if k < 0 || k >= foodKindCount {
		panic(fmt.Sprintf("snake: invalid food kind %d", int(k)))
	}
}

// State is the top-level state of a session.
type State int

const (
	StateMenu State = iota
	StateModeSelect
	StateSettings
	StateHighScores
	StateRunning
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateModeSelect:
		return "mode_select"
	case StateSettings:
		return "settings"
	case StateHighScores:
		return "high_scores"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Mode is the rule set of a game.
type Mode int

const (
	ModeClassic Mode = iota
	ModeTimeAttack
	ModeChallenge
)

// Modes returns all game modes in menu order.
func Modes() []Mode {
	return []Mode{ModeClassic, ModeTimeAttack, ModeChallenge}
}

// String returns the identifier used in flags and storage.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeTimeAttack:
		return "time_attack"
	case ModeChallenge:
		return "challenge"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Label returns the display name of the mode.
func (m Mode) Label() string {
	switch m {
	case ModeClassic:
		return "Classic"
	case ModeTimeAttack:
		return "Time Attack"
	case ModeChallenge:
		return "Challenge"
	default:
		return m.String()
	}
}

// Description returns a one-line summary shown on the mode select screen.
func (m Mode) Description() string {
	switch m {
	case ModeClassic:
		return "Traditional snake with growing obstacles"
	case ModeTimeAttack:
		return "Score as much as possible before time runs out"
	case ModeChallenge:
		return "Navigate a fixed obstacle course"
	default:
		return ""
	}
}

// ParseMode converts an identifier such as "time_attack" (or "time-attack") to a Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, m := range Modes() {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("snake: unknown mode %q (want classic, time_attack or challenge)", s)
}

// Collision is the result of a collision check.
type Collision int

const (
	NoHit Collision = iota
	WallHit
	ObstacleHit
	SelfHit
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case NoHit:
		return "none"
	case WallHit:
		return "wall"
	case ObstacleHit:
		return "obstacle"
	case SelfHit:
		return "self"
	default:
		return fmt.Sprintf("Collision(%d)", int(c))
	}
}

// EndCause records why a game ended.
type EndCause string

const (
	EndWall     EndCause = "wall"
	EndObstacle EndCause = "obstacle"
	EndSelf     EndCause = "self"
	EndTimeUp   EndCause = "time_up"
)

// endCauseFor maps a collision to its end cause.
func endCauseFor(c Collision) EndCause {
	switch c {
	case WallHit:
		return EndWall
	case ObstacleHit:
		return EndObstacle
	case SelfHit:
		return EndSelf
	default:
		panic(fmt.Sprintf("snake: no end cause for collision %v", c))
	}
}

// ObstacleKind distinguishes immobile obstacles from wandering ones.
type ObstacleKind int

const (
	ObstacleStatic ObstacleKind = iota
	ObstacleMoving
)

// String returns the configuration name of the kind.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleStatic:
		return "static"
	case ObstacleMoving:
		return "moving"
	default:
		return fmt.Sprintf("ObstacleKind(%d)", int(k))
	}
}

// ParseObstacleKind converts a configuration name to an ObstacleKind.
func ParseObstacleKind(s string) (ObstacleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "static":
		return ObstacleStatic, nil
	case "moving":
		return ObstacleMoving, nil
	default:
		return 0, fmt.Errorf("snake: unknown obstacle kind %q", s)
	}
}
