// Package plan generates deterministic weekly workout schedules from a
// profile. The same profile always yields the same plan: frequency and
// duration come from the fitness level, day content from the first
// matching goal template, and days cycle a fixed archetype list.
package plan

import (
	"fmt"

	"github.com/imfiit/fitcoach/internal/profile"
)

// Day is one scheduled training day.
type Day struct {
	Label     string   `json:"label"` // "Day 1", "Day 2", ...
	Name      string   `json:"name,omitempty"`
	Type      string   `json:"type,omitempty"`
	Muscles   string   `json:"muscles,omitempty"`
	Focus     string   `json:"focus,omitempty"`
	Intensity string   `json:"intensity,omitempty"`
	Duration  string   `json:"duration"`
	Exercises []string `json:"exercises,omitempty"`
	Sets      string   `json:"sets,omitempty"`
	Reps      string   `json:"reps,omitempty"`
	Rest      string   `json:"rest,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// Plan is a full weekly workout schedule.
type Plan struct {
	Overview        string   `json:"week_overview"`
	Days            []Day    `json:"days"`
	ProgressionTips []string `json:"progression_tips"`
	RecoveryAdvice  []string `json:"recovery_advice"`
}

// Weekly builds the plan for a profile. Goal precedence is fixed:
// weight_loss, then muscle_gain, then endurance, then the general
// fitness template.
func Weekly(p profile.Profile) Plan {
	frequency, intensity, duration := schedule(p.FitnessLevel)

	var focus string
	var days []Day
	switch {
	case p.HasGoal(profile.GoalWeightLoss):
		focus = "focus on cardio and circuit training"
		days = weightLossDays(frequency, duration)
	case p.HasGoal(profile.GoalMuscleGain):
		focus = "focus on progressive overload"
		days = muscleGainDays(frequency, duration)
	case p.HasGoal(profile.GoalEndurance):
		focus = "focus on cardiovascular endurance"
		days = enduranceDays(frequency, duration)
	default:
		focus = "balanced fitness approach"
		days = generalFitnessDays(frequency, duration)
	}

	return Plan{
		Overview: fmt.Sprintf("%d days/week, %s intensity, %s", frequency, intensity, focus),
		Days:     days,
		ProgressionTips: []string{
			"Increase intensity by 5-10% each week",
			"Focus on proper form over weight/speed",
			"Track your workouts for progressive overload",
			"Listen to your body and rest when needed",
		},
		RecoveryAdvice: []string{
			"Get 7-9 hours of sleep per night",
			"Stay hydrated (aim for 3-4L water daily)",
			"Include protein within 30 minutes post-workout",
			"Consider active recovery on rest days",
		},
	}
}

func schedule(level profile.FitnessLevel) (frequency int, intensity string, durationMin int) {
	switch level {
	case profile.LevelBeginner:
		return 3, "low-moderate", 30
	case profile.LevelIntermediate:
		return 4, "moderate-high", 45
	default: // advanced and elite
		return 5, "high", 60
	}
}

func minutes(d int) string { return fmt.Sprintf("%d minutes", d) }

func weightLossDays(frequency, duration int) []Day {
	archetypes := []Day{
		{Type: "HIIT Cardio", Exercises: []string{"Burpees", "Jump squats", "Mountain climbers", "High knees"}},
		{Type: "Circuit Training", Exercises: []string{"Push-ups", "Lunges", "Plank", "Jumping jacks"}},
		{Type: "Steady Cardio", Exercises: []string{"Running", "Cycling", "Swimming", "Rowing"}},
		{Type: "Full Body Strength", Exercises: []string{"Squats", "Deadlifts", "Bench press", "Rows"}},
		{Type: "Core & Flexibility", Exercises: []string{"Plank variations", "Yoga flow", "Pilates", "Stretching"}},
	}

	days := make([]Day, frequency)
	for i := 0; i < frequency; i++ {
		d := archetypes[i%len(archetypes)]
		d.Label = fmt.Sprintf("Day %d", i+1)
		d.Duration = minutes(duration)
		d.Sets = "3-4"
		if d.Type == "Full Body Strength" {
			d.Reps = "12-15"
		} else {
			d.Reps = "Time-based"
		}
		d.Rest = "30-45 seconds"
		days[i] = d
	}
	return days
}

func muscleGainDays(frequency, duration int) []Day {
	split := []Day{
		{Name: "Push Day", Muscles: "Chest, Shoulders, Triceps", Exercises: []string{"Bench Press", "Shoulder Press", "Dips", "Tricep Extensions"}},
		{Name: "Pull Day", Muscles: "Back, Biceps", Exercises: []string{"Deadlifts", "Pull-ups", "Rows", "Bicep Curls"}},
		{Name: "Leg Day", Muscles: "Quads, Hamstrings, Glutes", Exercises: []string{"Squats", "Leg Press", "Lunges", "Calf Raises"}},
		{Name: "Upper Body", Muscles: "All Upper", Exercises: []string{"Bench Press", "Rows", "Shoulder Press", "Pull-ups"}},
		{Name: "Lower Body", Muscles: "All Lower", Exercises: []string{"Squats", "Deadlifts", "Leg Curls", "Lunges"}},
	}

	days := make([]Day, frequency)
	for i := 0; i < frequency; i++ {
		d := split[i%len(split)]
		d.Label = fmt.Sprintf("Day %d", i+1)
		d.Duration = minutes(duration)
		d.Sets = "4-5"
		d.Reps = "6-12"
		d.Rest = "60-90 seconds"
		d.Notes = "Progressive overload - increase weight when you can do 12 reps easily"
		days[i] = d
	}
	return days
}

func enduranceDays(frequency, duration int) []Day {
	workouts := []Day{
		{Type: "Long Slow Distance", Intensity: "Zone 2 (60-70% max HR)"},
		{Type: "Tempo Run", Intensity: "Zone 3-4 (70-85% max HR)"},
		{Type: "Interval Training", Intensity: "Zone 4-5 (85-95% max HR)"},
		{Type: "Recovery Run", Intensity: "Zone 1-2 (50-65% max HR)"},
		{Type: "Cross Training", Intensity: "Moderate"},
	}

	days := make([]Day, frequency)
	for i := 0; i < frequency; i++ {
		d := workouts[i%len(workouts)]
		d.Label = fmt.Sprintf("Day %d", i+1)
		d.Duration = minutes(duration)
		d.Notes = "Monitor heart rate and stay in target zone"
		days[i] = d
	}
	return days
}

func generalFitnessDays(frequency, duration int) []Day {
	workouts := []Day{
		{Type: "Full Body Strength", Focus: "Compound movements"},
		{Type: "Cardio", Focus: "Moderate intensity steady state"},
		{Type: "Functional Training", Focus: "Movement patterns"},
		{Type: "HIIT", Focus: "High intensity intervals"},
		{Type: "Flexibility & Recovery", Focus: "Stretching and mobility"},
	}

	days := make([]Day, frequency)
	for i := 0; i < frequency; i++ {
		d := workouts[i%len(workouts)]
		d.Label = fmt.Sprintf("Day %d", i+1)
		d.Duration = minutes(duration)
		days[i] = d
	}
	return days
}
