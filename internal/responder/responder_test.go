package responder

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/imfiit/fitcoach/internal/intent"
	"github.com/imfiit/fitcoach/internal/knowledge"
	"github.com/imfiit/fitcoach/internal/profile"
)

func testProfile(t *testing.T, in profile.Input) profile.Profile {
	t.Helper()
	p, err := profile.New(in)
	if err != nil {
		t.Fatalf("profile.New: %v", err)
	}
	return p
}

func baseInput() profile.Input {
	return profile.Input{
		UserID:        "u1",
		Age:           30,
		Weight:        80,
		Height:        180,
		Gender:        "male",
		ActivityLevel: "moderate",
		FitnessLevel:  "intermediate",
		Goals:         []string{"weight_loss"},
	}
}

func TestRespond_Greeting(t *testing.T) {
	p := testProfile(t, baseInput())
	resp := New().Respond(p, intent.Greeting, "hi")

	if !strings.Contains(resp.Text, "24.69") {
		t.Errorf("greeting should quote BMI 24.69, got %q", resp.Text)
	}
	if len(resp.Suggestions) != 4 {
		t.Errorf("greeting suggestions = %d, want 4", len(resp.Suggestions))
	}
	if resp.Data["bmi"] != 24.69 || resp.Data["category"] != "normal" {
		t.Errorf("greeting data = %v", resp.Data)
	}
	if resp.Data["bmr"] != 1780 {
		t.Errorf("greeting bmr = %v, want 1780", resp.Data["bmr"])
	}
}

func TestRespond_DietPlanNumbers(t *testing.T) {
	p := testProfile(t, baseInput())
	resp := New().Respond(p, intent.DietPlan, "diet plan please")

	// BMR 1780, TDEE 2759, weight loss target 2259.
	for _, want := range []string{
		"BMR (Basal Metabolic Rate): 1780 calories",
		"TDEE (Total Daily Energy): 2759 calories",
		"Target Intake: 2259 calories",
		"Protein: 198g",
		"Carbohydrates: 226g",
		"Fats: 63g",
		"Aim for 2.6L of water daily",
	} {
		if !strings.Contains(resp.Text, want) {
			t.Errorf("diet plan text missing %q", want)
		}
	}
	if resp.Data["bmr"] != 1780 || resp.Data["tdee"] != 2759 {
		t.Errorf("diet plan data = %v", resp.Data)
	}
}

func TestRespond_WorkoutPlanRendersAllDays(t *testing.T) {
	p := testProfile(t, baseInput())
	resp := New().Respond(p, intent.WorkoutPlan, "workout")

	// Intermediate level trains 4 days.
	for day := 1; day <= 4; day++ {
		if !strings.Contains(resp.Text, fmt.Sprintf("Day %d:", day)) {
			t.Errorf("workout plan missing Day %d", day)
		}
	}
	if _, ok := resp.Data["plan"]; !ok {
		t.Error("workout plan data missing plan")
	}
}

func TestRespond_HealthRiskEscalation(t *testing.T) {
	cases := []struct {
		weight float64
		want   string
	}{
		{250, "IMPORTANT: Please consult with a healthcare provider"}, // obese_class_3
		{105, "Consider consulting with a healthcare provider"},      // obese_class_1
		{80, "Regular health check-ups are recommended"},             // normal
	}
	for _, tc := range cases {
		in := baseInput()
		in.Weight = tc.weight
		p := testProfile(t, in)
		resp := New().Respond(p, intent.HealthRisk, "risks?")
		if !strings.Contains(resp.Text, tc.want) {
			t.Errorf("weight %g (%s): text missing %q", tc.weight, p.BMICategory, tc.want)
		}
	}
}

func TestRespond_MotivationQuoteIsDeterministicPerSeed(t *testing.T) {
	p := testProfile(t, baseInput())

	a := NewWithRand(rand.New(rand.NewSource(7))).Respond(p, intent.Motivation, "motivate me")
	b := NewWithRand(rand.New(rand.NewSource(7))).Respond(p, intent.Motivation, "motivate me")

	quoteA, okA := a.Data["quote"].(string)
	quoteB, okB := b.Data["quote"].(string)
	if !okA || !okB || quoteA != quoteB {
		t.Fatalf("same seed gave different quotes: %q vs %q", quoteA, quoteB)
	}

	var known bool
	for _, q := range knowledge.Quotes() {
		if q == quoteA {
			known = true
		}
	}
	if !known {
		t.Errorf("quote %q not in the fixed quote list", quoteA)
	}
	if !strings.Contains(a.Text, quoteA) {
		t.Error("motivation text does not contain the chosen quote")
	}
}

func TestRespond_HydrationNumbers(t *testing.T) {
	p := testProfile(t, baseInput())
	resp := New().Respond(p, intent.Hydration, "water intake")

	for _, want := range []string{
		"Baseline: 2.8L per day",
		"Exercise days: +0.4L per hour",
		"Total: 3.2L on training days",
	} {
		if !strings.Contains(resp.Text, want) {
			t.Errorf("hydration text missing %q", want)
		}
	}
}

func TestRespond_UnknownIntentFallsBackToGeneral(t *testing.T) {
	p := testProfile(t, baseInput())
	resp := New().Respond(p, intent.Intent("no_such_intent"), "?")

	if !strings.Contains(resp.Text, "What specific area would you like help with today?") {
		t.Errorf("expected general response, got %q", resp.Text)
	}
	if _, ok := resp.Data["services"]; !ok {
		t.Error("general response data missing services")
	}
}

func TestPriorityActions_CappedAtFive(t *testing.T) {
	in := baseInput()
	in.Weight = 250 // obese_class_3
	in.ActivityLevel = "sedentary"
	p := testProfile(t, in)

	actions := priorityActions(p)
	if len(actions) != 5 {
		t.Fatalf("got %d actions, want 5", len(actions))
	}
	if actions[0] != "Consult with a healthcare provider immediately" {
		t.Errorf("first action = %q", actions[0])
	}
}

func TestPriorityActions_NormalProfile(t *testing.T) {
	p := testProfile(t, baseInput())
	actions := priorityActions(p)
	if len(actions) != 3 {
		t.Fatalf("got %d actions, want 3: %v", len(actions), actions)
	}
	if actions[0] != "Start tracking food intake and exercise" {
		t.Errorf("first action = %q", actions[0])
	}
}

func TestAssessment_Shape(t *testing.T) {
	p := testProfile(t, baseInput())
	rep := Assessment(p)

	if rep.BMIAnalysis.Value != 24.69 || rep.BMIAnalysis.Category != profile.Normal {
		t.Errorf("bmi analysis = %+v", rep.BMIAnalysis)
	}
	if rep.BMIAnalysis.IdealWeightRange.MinKg != 59.9 || rep.BMIAnalysis.IdealWeightRange.MaxKg != 80.7 {
		t.Errorf("ideal range = %+v", rep.BMIAnalysis.IdealWeightRange)
	}
	if rep.NutritionPlan.BMR != 1780 || rep.NutritionPlan.TDEE != 2759 {
		t.Errorf("nutrition plan = %+v", rep.NutritionPlan)
	}
	if rep.NutritionPlan.DailyTargets.Calories != 2259 {
		t.Errorf("daily target calories = %d, want 2259", rep.NutritionPlan.DailyTargets.Calories)
	}
	if len(rep.WorkoutPlan.Days) != 4 {
		t.Errorf("workout days = %d, want 4", len(rep.WorkoutPlan.Days))
	}
	if len(rep.Timeline) != 5 {
		t.Errorf("timeline entries = %d, want 5", len(rep.Timeline))
	}
	if len(rep.MonitoringMetrics) != 5 {
		t.Errorf("monitoring metrics = %d, want 5", len(rep.MonitoringMetrics))
	}
	// Normal weight has no tabled risks, but priority actions still apply.
	if len(rep.HealthAssessment.PotentialRisks) != 0 {
		t.Errorf("normal weight risks = %v", rep.HealthAssessment.PotentialRisks)
	}
	if len(rep.HealthAssessment.PriorityActions) == 0 {
		t.Error("priority actions should not be empty")
	}
}

func TestAssessment_Deterministic(t *testing.T) {
	p := testProfile(t, baseInput())
	a := Assessment(p)
	b := Assessment(p)
	if !reflect.DeepEqual(a.NutritionPlan, b.NutritionPlan) {
		t.Error("nutrition plan should be identical across calls")
	}
	if a.WorkoutPlan.Overview != b.WorkoutPlan.Overview {
		t.Error("workout overview should be identical across calls")
	}
}
