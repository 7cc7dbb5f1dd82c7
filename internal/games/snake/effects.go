package snake

import (
	"fmt"

	"github.com/vovakirdan/pixel-snake/internal/config"
)

// Effect is one of the timed power-up effects a snake can carry.
type Effect int

const (
	EffectSpeedBoost Effect = iota
	EffectScoreMultiplier
	EffectShrink
	EffectSlowmo
	EffectDoubleScore
	EffectGhost
)

// String returns the display name of the effect.
func (e Effect) String() string {
	switch e {
	case EffectSpeedBoost:
		return "Boost"
	case EffectScoreMultiplier:
		return "x2"
	case EffectShrink:
		return "Shrink"
	case EffectSlowmo:
		return "Slowmo"
	case EffectDoubleScore:
		return "Double"
	case EffectGhost:
		return "Ghost"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// effectFor returns the effect granted by eating a food kind.
// Normal food grants nothing.
func effectFor(k FoodKind) (Effect, bool) {
	mustFoodKind(k)
	switch k {
	case FoodSpecial:
		return EffectSpeedBoost, true
	case FoodSuper:
		return EffectScoreMultiplier, true
	case FoodShrink:
		return EffectShrink, true
	case FoodSlowmo:
		return EffectSlowmo, true
	case FoodDoubleScore:
		return EffectDoubleScore, true
	case FoodGhost:
		return EffectGhost, true
	default:
		return 0, false
	}
}

// Effects holds the remaining frames of each timed effect. Zero means inactive.
// The counters are independent: any combination may be active at once.
type Effects struct {
	SpeedBoost      int
	ScoreMultiplier int
	Shrink          int
	Slowmo          int
	DoubleScore     int
	Ghost           int
}

// ActiveEffect is an effect together with its remaining frames.
type ActiveEffect struct {
	Effect    Effect
	Remaining int
}

func (e *Effects) counter(eff Effect) *int {
	switch eff {
	case EffectSpeedBoost:
		return &e.SpeedBoost
	case EffectScoreMultiplier:
		return &e.ScoreMultiplier
	case EffectShrink:
		return &e.Shrink
	case EffectSlowmo:
		return &e.Slowmo
	case EffectDoubleScore:
		return &e.DoubleScore
	case EffectGhost:
		return &e.Ghost
	default:
		panic(fmt.Sprintf("snake: invalid effect %d", int(eff)))
	}
}

// Remaining returns the frames left for eff.
func (e Effects) Remaining(eff Effect) int {
	return *e.counter(eff)
}

// Active returns the running effects in a stable order.
func (e Effects) Active() []ActiveEffect {
	var out []ActiveEffect
	for _, eff := range allEffects {
		if n := e.Remaining(eff); n > 0 {
			out = append(out, ActiveEffect{Effect: eff, Remaining: n})
		}
	}
	return out
}

// tick decrements every active counter and returns the effects that ended.
func (e *Effects) tick() []Effect {
	var expired []Effect
	for _, eff := range allEffects {
		c := e.counter(eff)
		if *c > 0 {
			*c--
			if *c == 0 {
				expired = append(expired, eff)
			}
		}
	}
	return expired
}

var allEffects = []Effect{
	EffectSpeedBoost,
	EffectScoreMultiplier,
	EffectShrink,
	EffectSlowmo,
	EffectDoubleScore,
	EffectGhost,
}

// durationFor returns the configured duration of eff in frames.
func durationFor(d config.PowerUpDurations, eff Effect) int {
	switch eff {
	case EffectSpeedBoost:
		return d.SpeedBoost
	case EffectScoreMultiplier:
		return d.ScoreMultiplier
	case EffectShrink:
		return d.Shrink
	case EffectSlowmo:
		return d.Slowmo
	case EffectDoubleScore:
		return d.DoubleScore
	case EffectGhost:
		return d.Ghost
	default:
		panic(fmt.Sprintf("snake: invalid effect %d", int(eff)))
	}
}
