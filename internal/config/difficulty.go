package config

import (
	"fmt"
	"strings"
)

// Difficulty is a named difficulty level. It selects the snake speed and the
// high-score bucket a session is recorded under.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns all difficulty levels in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a name (case-insensitive) to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	_, err := ParseDifficulty(string(d))
	return err == nil
}

// Next returns the following difficulty, wrapping from hard back to easy.
func (d Difficulty) Next() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// Label returns the upper-case display name.
func (d Difficulty) Label() string {
	return strings.ToUpper(string(d))
}

// Speed returns the speed value configured for d.
func (c SnakeConfig) Speed(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return c.Difficulty.Easy
	case DifficultyHard:
		return c.Difficulty.Hard
	case DifficultyMedium:
		return c.Difficulty.Medium
	default:
		panic(fmt.Sprintf("config: unknown difficulty %q", string(d)))
	}
}

// MovementThreshold returns the number of ticks between snake moves for d.
func (c SnakeConfig) MovementThreshold(d Difficulty, slowmo bool) int {
	m := c.Movement
	threshold := m.BaseThreshold - m.SpeedFactor*c.Speed(d)
	if threshold < m.MinThreshold {
		threshold = m.MinThreshold
	}
	if slowmo {
		threshold *= m.SlowmoFactor
	}
	return threshold
}
