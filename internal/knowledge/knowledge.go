// Package knowledge holds the static lookup tables the response
// builders draw from: health risks per BMI category, food suggestions,
// meal timing templates, BMI interpretations, and motivational quotes.
// All lookups are total — unknown keys yield empty values, never errors.
package knowledge

import "github.com/imfiit/fitcoach/internal/profile"

// RiskProfile lists the health risks and counter-recommendations for a
// BMI category. Order is stable and user-visible.
type RiskProfile struct {
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
}

var riskTable = map[profile.BMICategory]RiskProfile{
	profile.Underweight: {
		Risks:           []string{"Malnutrition", "Osteoporosis", "Weakened immune system", "Fertility issues"},
		Recommendations: []string{"Increase caloric intake", "Focus on nutrient-dense foods", "Strength training", "Regular health checkups"},
	},
	profile.Overweight: {
		Risks:           []string{"Type 2 diabetes", "High blood pressure", "Heart disease", "Sleep apnea"},
		Recommendations: []string{"Create caloric deficit", "Regular cardio exercise", "Balanced diet", "Monitor blood sugar"},
	},
	profile.Obese1: {
		Risks:           []string{"Type 2 diabetes", "Cardiovascular disease", "Joint problems", "Metabolic syndrome"},
		Recommendations: []string{"Medical consultation", "Structured weight loss program", "Low-impact exercise", "Dietary counseling"},
	},
	profile.Obese2: {
		Risks:           []string{"Severe cardiovascular risk", "Type 2 diabetes", "Sleep disorders", "Joint degeneration"},
		Recommendations: []string{"Medical supervision required", "Gradual weight loss", "Water-based exercises", "Psychological support"},
	},
	profile.Obese3: {
		Risks:           []string{"Life-threatening conditions", "Severe diabetes risk", "Cardiovascular failure", "Mobility issues"},
		Recommendations: []string{"Immediate medical attention", "Bariatric consultation", "Supervised exercise", "Comprehensive health plan"},
	},
}

// Risks returns the risk profile for a BMI category. Categories without
// an entry (normal weight, or anything unknown) get empty lists.
func Risks(cat profile.BMICategory) RiskProfile {
	rp, ok := riskTable[cat]
	if !ok {
		return RiskProfile{Risks: []string{}, Recommendations: []string{}}
	}
	return RiskProfile{
		Risks:           append([]string(nil), rp.Risks...),
		Recommendations: append([]string(nil), rp.Recommendations...),
	}
}

// FoodGuide groups food suggestions by role in the diet.
type FoodGuide struct {
	Proteins   []string `json:"proteins"`
	Carbs      []string `json:"carbs"`
	Fats       []string `json:"fats"`
	Vegetables []string `json:"vegetables"`
	Fruits     []string `json:"fruits"`
}

// FoodSuggestions returns food picks for a profile, substituting the
// protein list for vegetarian or vegan restrictions. Vegetarian is
// checked first, matching the original table order.
func FoodSuggestions(p profile.Profile) FoodGuide {
	guide := FoodGuide{
		Carbs:      []string{"Brown rice", "Oats", "Sweet potato", "Quinoa", "Whole grain bread"},
		Fats:       []string{"Avocado", "Nuts", "Olive oil", "Seeds", "Fatty fish"},
		Vegetables: []string{"Broccoli", "Spinach", "Bell peppers", "Cauliflower", "Zucchini"},
		Fruits:     []string{"Berries", "Apples", "Oranges", "Bananas", "Kiwi"},
	}

	switch {
	case p.HasRestriction("vegetarian"):
		guide.Proteins = []string{"Tofu", "Legumes", "Quinoa", "Greek yogurt", "Eggs"}
	case p.HasRestriction("vegan"):
		guide.Proteins = []string{"Tofu", "Legumes", "Quinoa", "Tempeh", "Seitan"}
	default:
		guide.Proteins = []string{"Chicken breast", "Fish", "Lean beef", "Eggs", "Greek yogurt"}
	}
	return guide
}

// MealSlot is a named meal with its recommended time window.
type MealSlot struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

// MealSchedule is an ordered meal timing template with a closing note.
type MealSchedule struct {
	Slots []MealSlot `json:"slots"`
	Notes string     `json:"notes"`
}

// MealTiming returns the meal schedule template for the profile's
// goals, in the same precedence order as the macro split.
func MealTiming(p profile.Profile) MealSchedule {
	switch {
	case p.HasGoal(profile.GoalWeightLoss):
		return MealSchedule{
			Slots: []MealSlot{
				{Name: "breakfast", Time: "7:00-8:00 AM"},
				{Name: "snack_1", Time: "10:00 AM (optional)"},
				{Name: "lunch", Time: "12:30-1:30 PM"},
				{Name: "snack_2", Time: "3:30 PM (protein-based)"},
				{Name: "dinner", Time: "6:30-7:30 PM"},
			},
			Notes: "Avoid eating 3 hours before bed",
		}
	case p.HasGoal(profile.GoalMuscleGain):
		return MealSchedule{
			Slots: []MealSlot{
				{Name: "breakfast", Time: "7:00 AM"},
				{Name: "snack_1", Time: "10:00 AM"},
				{Name: "lunch", Time: "1:00 PM"},
				{Name: "pre_workout", Time: "3:30 PM"},
				{Name: "post_workout", Time: "Within 30 min after training"},
				{Name: "dinner", Time: "7:00 PM"},
				{Name: "before_bed", Time: "9:30 PM (casein protein)"},
			},
			Notes: "Frequent protein intake for muscle synthesis",
		}
	default:
		return MealSchedule{
			Slots: []MealSlot{
				{Name: "breakfast", Time: "7:00-9:00 AM"},
				{Name: "lunch", Time: "12:00-1:30 PM"},
				{Name: "snack", Time: "3:00-4:00 PM (optional)"},
				{Name: "dinner", Time: "6:30-8:00 PM"},
			},
			Notes: "Maintain consistent meal times",
		}
	}
}

var interpretations = map[profile.BMICategory]string{
	profile.Underweight: "You're underweight. Focus on healthy weight gain through balanced nutrition and strength training.",
	profile.Normal:      "You're in a healthy weight range. Maintain this through balanced diet and regular exercise.",
	profile.Overweight:  "You're slightly overweight. A modest caloric deficit and increased activity can help.",
	profile.Obese1:      "You're in the obese range. Significant lifestyle changes are recommended for health improvement.",
	profile.Obese2:      "You're severely obese. Medical supervision is strongly recommended for safe weight loss.",
	profile.Obese3:      "You're morbidly obese. Immediate medical intervention is necessary for health preservation.",
}

// InterpretBMI returns the fixed interpretation line for a category.
func InterpretBMI(cat profile.BMICategory) string {
	if s, ok := interpretations[cat]; ok {
		return s
	}
	return "Unable to interpret BMI category"
}

var quotes = []string{
	"Every workout counts, no matter how small!",
	"You're not just building a better body, you're building a better life.",
	"Progress is progress, no matter how slow.",
	"The only bad workout is the one that didn't happen.",
	"Your future self will thank you for starting today.",
}

// Quotes returns the fixed motivational quote list in stable order.
func Quotes() []string {
	return append([]string(nil), quotes...)
}
