// Package intent maps free-text user messages onto a closed intent
// vocabulary. Resolution is two-tiered: a trainable naive Bayes
// classifier when a model has been trained, and a deterministic
// keyword matcher otherwise (and whenever the trained path fails).
package intent

import "strings"

// Intent is a label from the closed intent vocabulary.
type Intent string

const (
	Greeting         Intent = "greeting"
	BMIQuery         Intent = "bmi_query"
	DietPlan         Intent = "diet_plan"
	WorkoutPlan      Intent = "workout_plan"
	HealthRisk       Intent = "health_risk"
	ProgressTracking Intent = "progress_tracking"
	Motivation       Intent = "motivation"
	NutritionInfo    Intent = "nutrition_info"
	GoalSetting      Intent = "goal_setting"
	SupplementInfo   Intent = "supplement_info"
	InjuryPrevention Intent = "injury_prevention"
	Recovery         Intent = "recovery"
	SleepAdvice      Intent = "sleep_advice"
	Hydration        Intent = "hydration"
	General          Intent = "general"
)

// Vocabulary lists every resolvable intent, catch-all last.
func Vocabulary() []Intent {
	return []Intent{
		Greeting, BMIQuery, DietPlan, WorkoutPlan, HealthRisk,
		ProgressTracking, Motivation, NutritionInfo, GoalSetting,
		SupplementInfo, InjuryPrevention, Recovery, SleepAdvice,
		Hydration, General,
	}
}

// Fallback confidence levels: fixed for a keyword hit, lower for the
// catch-all.
const (
	fallbackMatchConfidence = 0.8
	fallbackNoneConfidence  = 0.5
)

type keywordRule struct {
	intent   Intent
	keywords []string
}

// keywordRules is scanned in order; the first rule with any keyword
// contained in the lower-cased text wins. Order is the tie-break and
// must not be changed.
var keywordRules = []keywordRule{
	{Greeting, []string{"hi", "hello", "hey", "good morning", "good evening"}},
	{BMIQuery, []string{"bmi", "body mass", "weight status", "am i overweight"}},
	{DietPlan, []string{"diet", "meal plan", "what to eat", "nutrition plan", "calories"}},
	{WorkoutPlan, []string{"workout", "exercise", "training", "gym", "fitness routine"}},
	{HealthRisk, []string{"risk", "disease", "diabetes", "heart", "health problem"}},
	{ProgressTracking, []string{"progress", "track", "measure", "improvement", "results"}},
	{Motivation, []string{"motivate", "tired", "give up", "can't", "help me"}},
	{NutritionInfo, []string{"protein", "carbs", "fats", "vitamins", "nutrients"}},
	{GoalSetting, []string{"goal", "target", "achieve", "want to", "aim"}},
	{SupplementInfo, []string{"supplement", "vitamin", "whey", "creatine", "bcaa"}},
	{InjuryPrevention, []string{"injury", "pain", "hurt", "prevent", "safe"}},
	{Recovery, []string{"recover", "rest", "sore", "muscle pain", "fatigue"}},
	{SleepAdvice, []string{"sleep", "insomnia", "rest", "tired", "bedtime"}},
	{Hydration, []string{"water", "drink", "hydration", "thirsty", "fluids"}},
}

// Fallback classifies text by substring keyword matching. It never
// fails: text matching no rule (including the empty string) resolves to
// General with low confidence.
func Fallback(text string) (Intent, float64) {
	lower := strings.ToLower(text)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent, fallbackMatchConfidence
			}
		}
	}
	return General, fallbackNoneConfidence
}
