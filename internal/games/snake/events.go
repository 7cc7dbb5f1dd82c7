package snake

import (
	"time"

	"github.com/vovakirdan/pixel-snake/internal/config"
)

// Listener receives notifications from a session. Calls are made
// synchronously from Step and must not block; return values are never read.
type Listener interface {
	OnFoodEaten(kind FoodKind)
	OnCollision(c Collision)
	OnGameOver(finalScore int, newHighScore bool)
	OnStateChanged(s State)
}

// NopListener ignores every notification. Embed it to implement only some callbacks.
type NopListener struct{}

func (NopListener) OnFoodEaten(FoodKind) {}
func (NopListener) OnCollision(Collision) {}
func (NopListener) OnGameOver(int, bool) {}
func (NopListener) OnStateChanged(State) {}

var _ Listener = NopListener{}

// Listeners fans notifications out to several listeners in order.
type Listeners []Listener

func (ls Listeners) OnFoodEaten(kind FoodKind) {
	for _, l := range ls {
		l.OnFoodEaten(kind)
	}
}

func (ls Listeners) OnCollision(c Collision) {
	for _, l := range ls {
		l.OnCollision(c)
	}
}

func (ls Listeners) OnGameOver(finalScore int, newHighScore bool) {
	for _, l := range ls {
		l.OnGameOver(finalScore, newHighScore)
	}
}

func (ls Listeners) OnStateChanged(s State) {
	for _, l := range ls {
		l.OnStateChanged(s)
	}
}

// HighScores is the per-difficulty best score record used by a session.
type HighScores interface {
	Best(d config.Difficulty) int
	// RecordIfHigher stores score when it beats the current best and reports
	// whether it did. Persistence failures are handled by the implementation.
	RecordIfHigher(d config.Difficulty, score int) bool
}

// Result summarises a finished game.
type Result struct {
	ID         string
	Mode       Mode
	Difficulty config.Difficulty
	Score      int
	Length     int
	Ticks      uint64
	Cause      EndCause
	NewHigh    bool
	EndedAt    time.Time
}

// ResultRecorder stores finished games.
type ResultRecorder interface {
	SaveSessionResult(r Result) error
}
