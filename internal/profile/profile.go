// Package profile models a user's biometric profile and its derived
// body-composition values. A Profile is immutable after construction:
// BMI and the BMI category are computed once in New and stay consistent
// with weight/height; any biometric change requires building a new one.
package profile

import (
	"fmt"
	"math"
)

// Gender selects the BMR formula branch. Only two values are recognized.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel is the ordered activity scale used for TDEE multipliers.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// FitnessLevel drives workout frequency and intensity.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
	LevelElite        FitnessLevel = "elite"
)

// Goal is a training/nutrition objective from the closed goal vocabulary.
type Goal string

const (
	GoalWeightLoss     Goal = "weight_loss"
	GoalMuscleGain     Goal = "muscle_gain"
	GoalEndurance      Goal = "endurance"
	GoalStrength       Goal = "strength"
	GoalGeneralFitness Goal = "general_fitness"
	GoalFlexibility    Goal = "flexibility"
)

// BMICategory is the WHO weight-status band derived from BMI.
type BMICategory string

const (
	Underweight BMICategory = "underweight"
	Normal      BMICategory = "normal"
	Overweight  BMICategory = "overweight"
	Obese1      BMICategory = "obese_class_1"
	Obese2      BMICategory = "obese_class_2"
	Obese3      BMICategory = "obese_class_3"
)

// Input carries raw profile fields as supplied by the caller.
// Optional fields fall back to defaults in New.
type Input struct {
	UserID              string   `json:"user_id"`
	Age                 int      `json:"age"`
	Weight              float64  `json:"weight"` // kg
	Height              float64  `json:"height"` // cm
	Gender              string   `json:"gender"`
	ActivityLevel       string   `json:"activity_level"`
	FitnessLevel        string   `json:"fitness_level"`
	Goals               []string `json:"goals"`
	HealthConditions    []string `json:"health_conditions"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

// Profile is a validated user profile with derived BMI values.
type Profile struct {
	UserID              string        `json:"user_id"`
	Age                 int           `json:"age"`
	Weight              float64       `json:"weight"`
	Height              float64       `json:"height"`
	Gender              Gender        `json:"gender"`
	ActivityLevel       ActivityLevel `json:"activity_level"`
	FitnessLevel        FitnessLevel  `json:"fitness_level"`
	Goals               []Goal        `json:"goals"`
	HealthConditions    []string      `json:"health_conditions"`
	DietaryRestrictions []string      `json:"dietary_restrictions"`
	BMI                 float64       `json:"bmi"`
	BMICategory         BMICategory   `json:"bmi_category"`
}

// ValidationError reports a malformed or out-of-domain input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile field %q: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

var activityLevels = map[ActivityLevel]bool{
	ActivitySedentary:  true,
	ActivityLight:      true,
	ActivityModerate:   true,
	ActivityActive:     true,
	ActivityVeryActive: true,
}

var fitnessLevels = map[FitnessLevel]bool{
	LevelBeginner:     true,
	LevelIntermediate: true,
	LevelAdvanced:     true,
	LevelElite:        true,
}

var goals = map[Goal]bool{
	GoalWeightLoss:     true,
	GoalMuscleGain:     true,
	GoalEndurance:      true,
	GoalStrength:       true,
	GoalGeneralFitness: true,
	GoalFlexibility:    true,
}

// New validates raw input and constructs a Profile with derived BMI and
// BMI category. Gender, activity level, fitness level, and goals must
// come from their closed vocabularies — unrecognized values fail rather
// than silently defaulting.
func New(in Input) (Profile, error) {
	if in.UserID == "" {
		return Profile{}, invalid("user_id", "must not be empty")
	}
	if in.Age <= 0 {
		return Profile{}, invalid("age", "must be positive, got %d", in.Age)
	}
	if in.Weight <= 0 {
		return Profile{}, invalid("weight", "must be positive, got %g", in.Weight)
	}
	if in.Height <= 0 {
		return Profile{}, invalid("height", "must be positive, got %g", in.Height)
	}

	gender := Gender(in.Gender)
	if gender != GenderMale && gender != GenderFemale {
		return Profile{}, invalid("gender", "unrecognized value %q", in.Gender)
	}

	activity := ActivityModerate
	if in.ActivityLevel != "" {
		activity = ActivityLevel(in.ActivityLevel)
		if !activityLevels[activity] {
			return Profile{}, invalid("activity_level", "unrecognized value %q", in.ActivityLevel)
		}
	}

	level := LevelBeginner
	if in.FitnessLevel != "" {
		level = FitnessLevel(in.FitnessLevel)
		if !fitnessLevels[level] {
			return Profile{}, invalid("fitness_level", "unrecognized value %q", in.FitnessLevel)
		}
	}

	gs := make([]Goal, 0, len(in.Goals))
	for _, raw := range in.Goals {
		g := Goal(raw)
		if !goals[g] {
			return Profile{}, invalid("goals", "unrecognized value %q", raw)
		}
		gs = append(gs, g)
	}
	if len(gs) == 0 {
		gs = []Goal{GoalGeneralFitness}
	}

	bmi := computeBMI(in.Weight, in.Height)
	return Profile{
		UserID:              in.UserID,
		Age:                 in.Age,
		Weight:              in.Weight,
		Height:              in.Height,
		Gender:              gender,
		ActivityLevel:       activity,
		FitnessLevel:        level,
		Goals:               gs,
		HealthConditions:    append([]string(nil), in.HealthConditions...),
		DietaryRestrictions: append([]string(nil), in.DietaryRestrictions...),
		BMI:                 bmi,
		BMICategory:         CategorizeBMI(bmi),
	}, nil
}

// HasGoal reports whether g is among the profile's goals.
func (p Profile) HasGoal(g Goal) bool {
	for _, have := range p.Goals {
		if have == g {
			return true
		}
	}
	return false
}

// HasRestriction reports whether the named dietary restriction is present.
func (p Profile) HasRestriction(name string) bool {
	for _, r := range p.DietaryRestrictions {
		if r == name {
			return true
		}
	}
	return false
}

func computeBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*100) / 100
}

// CategorizeBMI maps a BMI value onto the WHO bands. The bands are
// half-open: a boundary value belongs to the higher band's start
// (e.g. exactly 25 is overweight, exactly 18.5 is normal).
func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	case bmi < 35:
		return Obese1
	case bmi < 40:
		return Obese2
	default:
		return Obese3
	}
}

// WeightRange is a min/max weight band in kilograms.
type WeightRange struct {
	MinKg float64 `json:"min_kg"`
	MaxKg float64 `json:"max_kg"`
}

// IdealWeightRange returns the weight band corresponding to BMI
// 18.5–24.9 for the given height, rounded to one decimal.
func IdealWeightRange(heightCm float64) WeightRange {
	heightM := heightCm / 100
	round1 := func(v float64) float64 { return math.Round(v*10) / 10 }
	return WeightRange{
		MinKg: round1(18.5 * heightM * heightM),
		MaxKg: round1(24.9 * heightM * heightM),
	}
}
