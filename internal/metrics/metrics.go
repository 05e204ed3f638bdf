// Package metrics computes resting and daily energy expenditure and the
// goal-adjusted macronutrient split for a validated profile. All
// functions are pure; inputs are assumed pre-validated by the profile
// package.
package metrics

import (
	"math"

	"github.com/imfiit/fitcoach/internal/profile"
)

// activityMultipliers maps activity levels to their TDEE multiplier.
var activityMultipliers = map[profile.ActivityLevel]float64{
	profile.ActivitySedentary:  1.2,
	profile.ActivityLight:      1.375,
	profile.ActivityModerate:   1.55,
	profile.ActivityActive:     1.725,
	profile.ActivityVeryActive: 1.9,
}

// Calories per gram of each macronutrient.
const (
	calPerGramProtein = 4
	calPerGramCarb    = 4
	calPerGramFat     = 9
)

// BMR estimates basal metabolic rate via the Mifflin-St Jeor equation,
// rounded to the nearest calorie.
func BMR(p profile.Profile) int {
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == profile.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr))
}

// TDEE scales a BMR by the profile's activity multiplier. An
// unrecognized activity level falls back to the sedentary multiplier.
func TDEE(p profile.Profile, bmr int) int {
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = 1.2
	}
	return int(math.Round(float64(bmr) * mult))
}

// Macros is a daily calorie target with its macronutrient breakdown.
type Macros struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein"`
	CarbsG   int `json:"carbs"`
	FatG     int `json:"fats"`
}

// MacroSplit derives the calorie target and macro grams from TDEE and
// the profile's goals. Weight loss takes precedence over muscle gain
// when both are present.
func MacroSplit(p profile.Profile, tdee int) Macros {
	var calories float64
	var proteinRatio, fatRatio, carbRatio float64

	switch {
	case p.HasGoal(profile.GoalWeightLoss):
		calories = float64(tdee) - 500 // 500 calorie deficit
		proteinRatio, fatRatio, carbRatio = 0.35, 0.25, 0.40
	case p.HasGoal(profile.GoalMuscleGain):
		calories = float64(tdee) + 300 // 300 calorie surplus
		proteinRatio, fatRatio, carbRatio = 0.30, 0.25, 0.45
	default:
		calories = float64(tdee)
		proteinRatio, fatRatio, carbRatio = 0.25, 0.30, 0.45
	}

	return Macros{
		Calories: int(math.Round(calories)),
		ProteinG: int(math.Round(calories * proteinRatio / calPerGramProtein)),
		CarbsG:   int(math.Round(calories * carbRatio / calPerGramCarb)),
		FatG:     int(math.Round(calories * fatRatio / calPerGramFat)),
	}
}
