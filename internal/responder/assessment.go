package responder

import (
	"github.com/imfiit/fitcoach/internal/knowledge"
	"github.com/imfiit/fitcoach/internal/metrics"
	"github.com/imfiit/fitcoach/internal/plan"
	"github.com/imfiit/fitcoach/internal/profile"
)

// Report is the complete initial assessment: BMI analysis, health
// risks, nutrition targets, the weekly workout plan, and the expected
// progress timeline.
type Report struct {
	BMIAnalysis       BMIAnalysis       `json:"bmi_analysis"`
	HealthAssessment  HealthAssessment  `json:"health_assessment"`
	NutritionPlan     NutritionPlan     `json:"nutrition_plan"`
	WorkoutPlan       plan.Plan         `json:"workout_plan"`
	Timeline          map[string]string `json:"timeline"`
	MonitoringMetrics []string          `json:"monitoring_metrics"`
}

type BMIAnalysis struct {
	Value            float64             `json:"value"`
	Category         profile.BMICategory `json:"category"`
	Interpretation   string              `json:"interpretation"`
	IdealWeightRange profile.WeightRange `json:"ideal_weight_range"`
}

type HealthAssessment struct {
	PotentialRisks  []string `json:"potential_risks"`
	Recommendations []string `json:"recommendations"`
	PriorityActions []string `json:"priority_actions"`
}

type NutritionPlan struct {
	BMR             int                    `json:"bmr"`
	TDEE            int                    `json:"tdee"`
	DailyTargets    metrics.Macros         `json:"daily_targets"`
	MealTiming      knowledge.MealSchedule `json:"meal_timing"`
	FoodSuggestions knowledge.FoodGuide    `json:"food_suggestions"`
}

// Assessment builds the full report for a profile. It is deterministic:
// the same profile always yields the same report.
func Assessment(p profile.Profile) Report {
	bmr := metrics.BMR(p)
	tdee := metrics.TDEE(p, bmr)
	risks := knowledge.Risks(p.BMICategory)

	return Report{
		BMIAnalysis: BMIAnalysis{
			Value:            p.BMI,
			Category:         p.BMICategory,
			Interpretation:   knowledge.InterpretBMI(p.BMICategory),
			IdealWeightRange: profile.IdealWeightRange(p.Height),
		},
		HealthAssessment: HealthAssessment{
			PotentialRisks:  risks.Risks,
			Recommendations: risks.Recommendations,
			PriorityActions: priorityActions(p),
		},
		NutritionPlan: NutritionPlan{
			BMR:             bmr,
			TDEE:            tdee,
			DailyTargets:    metrics.MacroSplit(p, tdee),
			MealTiming:      knowledge.MealTiming(p),
			FoodSuggestions: knowledge.FoodSuggestions(p),
		},
		WorkoutPlan: plan.Weekly(p),
		Timeline:    progressTimeline(),
		MonitoringMetrics: []string{
			"Weekly weight measurements",
			"Body measurements (waist, hips, chest)",
			"Progress photos",
			"Energy levels (1-10 scale)",
			"Workout performance",
		},
	}
}
