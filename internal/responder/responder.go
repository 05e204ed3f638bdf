// Package responder turns a resolved intent plus a profile into a
// structured reply, combining live metrics, the workout plan generator,
// and the static knowledge tables. Every builder is a pure function of
// its inputs except motivation, which draws a random quote from the
// injected source.
package responder

import (
	"math/rand"
	"time"

	"github.com/imfiit/fitcoach/internal/intent"
	"github.com/imfiit/fitcoach/internal/profile"
)

// Response is a rendered reply: display text plus machine-readable data.
type Response struct {
	Text        string         `json:"response"`
	Data        map[string]any `json:"data"`
	Suggestions []string       `json:"suggestions,omitempty"`
}

// Responder dispatches intents to their builders.
type Responder struct {
	rng *rand.Rand
}

// New creates a Responder with a time-seeded random source.
func New() *Responder {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a Responder with a caller-controlled random
// source, so tests can pin the motivation quote pick.
func NewWithRand(rng *rand.Rand) *Responder {
	return &Responder{rng: rng}
}

// Respond routes the intent to exactly one builder. Anything outside
// the dispatchable set, including the catch-all general intent, goes to
// the profile-summary builder.
func (r *Responder) Respond(p profile.Profile, in intent.Intent, message string) Response {
	switch in {
	case intent.Greeting:
		return greeting(p)
	case intent.BMIQuery:
		return bmiQuery(p)
	case intent.DietPlan:
		return dietPlan(p)
	case intent.WorkoutPlan:
		return workoutPlan(p)
	case intent.HealthRisk:
		return healthRisk(p)
	case intent.ProgressTracking:
		return progressTracking(p)
	case intent.Motivation:
		return r.motivation(p)
	case intent.NutritionInfo:
		return nutritionInfo(p)
	case intent.GoalSetting:
		return goalSetting(p)
	case intent.SupplementInfo:
		return supplementInfo(p)
	case intent.InjuryPrevention:
		return injuryPrevention(p)
	case intent.Recovery:
		return recovery(p)
	case intent.SleepAdvice:
		return sleepAdvice(p)
	case intent.Hydration:
		return hydration(p)
	default:
		return general(p)
	}
}
