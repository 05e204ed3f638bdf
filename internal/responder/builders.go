package responder

import (
	"fmt"
	"math"
	"strings"

	"github.com/imfiit/fitcoach/internal/knowledge"
	"github.com/imfiit/fitcoach/internal/metrics"
	"github.com/imfiit/fitcoach/internal/plan"
	"github.com/imfiit/fitcoach/internal/profile"
)

// Two hydration coefficients survive from the original templates. They
// are intentionally distinct constants: the diet plan quotes a lower
// daily baseline than the dedicated hydration guide.
const (
	dietPlanHydrationLPerKg = 0.033
	baselineHydrationLPerKg = 0.035
	exerciseHydrationLPerKg = 0.005 // per hour of training
)

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func bullets(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("• ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}

func numbered(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return b.String()
}

func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func goalNames(p profile.Profile) []string {
	names := make([]string, len(p.Goals))
	for i, g := range p.Goals {
		names[i] = string(g)
	}
	return names
}

func greeting(p profile.Profile) Response {
	bmr := metrics.BMR(p)
	return Response{
		Text: fmt.Sprintf(
			"Hello! I'm your fitness coach. Based on your profile, your BMI is %.2f (%s). "+
				"How can I help you today? I can provide diet plans, workout routines, health advice, and track your progress.",
			p.BMI, p.BMICategory),
		Suggestions: []string{
			"Show me my diet plan",
			"Create a workout routine",
			"What are my health risks?",
			"How can I lose weight?",
		},
		Data: map[string]any{
			"bmi":      p.BMI,
			"category": string(p.BMICategory),
			"bmr":      bmr,
		},
	}
}

func bmiQuery(p profile.Profile) Response {
	ideal := profile.IdealWeightRange(p.Height)
	risks := knowledge.Risks(p.BMICategory)

	var b strings.Builder
	b.WriteString("Your BMI Analysis:\n\n")
	fmt.Fprintf(&b, "📊 Current BMI: %.2f\n", p.BMI)
	fmt.Fprintf(&b, "📈 Category: %s\n", titleCase(string(p.BMICategory)))
	fmt.Fprintf(&b, "⚖️ Current Weight: %g kg\n", p.Weight)
	fmt.Fprintf(&b, "📏 Height: %g cm\n", p.Height)
	fmt.Fprintf(&b, "🎯 Ideal Weight Range: %g-%g kg\n\n", ideal.MinKg, ideal.MaxKg)
	b.WriteString(knowledge.InterpretBMI(p.BMICategory))
	b.WriteString("\n\n⚠️ Potential Health Risks:\n")
	b.WriteString(bullets(risks.Risks))
	b.WriteString("\n✅ Recommendations:\n")
	b.WriteString(bullets(risks.Recommendations))

	return Response{
		Text: b.String(),
		Data: map[string]any{
			"bmi":             p.BMI,
			"category":        string(p.BMICategory),
			"ideal_range":     ideal,
			"risks":           risks.Risks,
			"recommendations": risks.Recommendations,
		},
	}
}

func dietPlan(p profile.Profile) Response {
	bmr := metrics.BMR(p)
	tdee := metrics.TDEE(p, bmr)
	macros := metrics.MacroSplit(p, tdee)
	timing := knowledge.MealTiming(p)
	foods := knowledge.FoodSuggestions(p)
	waterL := round1(p.Weight * dietPlanHydrationLPerKg)

	var b strings.Builder
	b.WriteString("Your Personalized Nutrition Plan:\n\n")
	b.WriteString("🔥 Daily Calorie Targets:\n")
	fmt.Fprintf(&b, "• BMR (Basal Metabolic Rate): %d calories\n", bmr)
	fmt.Fprintf(&b, "• TDEE (Total Daily Energy): %d calories\n", tdee)
	fmt.Fprintf(&b, "• Target Intake: %d calories\n\n", macros.Calories)
	b.WriteString("🥗 Macronutrient Distribution:\n")
	fmt.Fprintf(&b, "• Protein: %dg (%d calories)\n", macros.ProteinG, macros.ProteinG*4)
	fmt.Fprintf(&b, "• Carbohydrates: %dg (%d calories)\n", macros.CarbsG, macros.CarbsG*4)
	fmt.Fprintf(&b, "• Fats: %dg (%d calories)\n\n", macros.FatG, macros.FatG*9)
	b.WriteString("⏰ Meal Timing:\n")
	for _, slot := range timing.Slots {
		fmt.Fprintf(&b, "• %s: %s\n", slot.Name, slot.Time)
	}
	fmt.Fprintf(&b, "💡 %s\n\n", timing.Notes)
	b.WriteString("🍽️ Recommended Foods:\n")
	fmt.Fprintf(&b, "Proteins: %s\n", strings.Join(foods.Proteins[:3], ", "))
	fmt.Fprintf(&b, "Carbs: %s\n", strings.Join(foods.Carbs[:3], ", "))
	fmt.Fprintf(&b, "Healthy Fats: %s\n", strings.Join(foods.Fats[:3], ", "))
	b.WriteString("Vegetables: Unlimited green vegetables\n\n")
	fmt.Fprintf(&b, "💧 Hydration: Aim for %gL of water daily\n\n", waterL)
	b.WriteString("Would you like a detailed meal plan for the week?")

	return Response{
		Text: b.String(),
		Data: map[string]any{
			"bmr":              bmr,
			"tdee":             tdee,
			"macros":           macros,
			"meal_timing":      timing,
			"food_suggestions": foods,
		},
	}
}

func workoutPlan(p profile.Profile) Response {
	weekly := plan.Weekly(p)

	var b strings.Builder
	b.WriteString("Your Personalized Workout Plan:\n\n")
	fmt.Fprintf(&b, "🎯 Overview: %s\n\n", weekly.Overview)
	b.WriteString("📅 Weekly Schedule:\n")
	for _, day := range weekly.Days {
		fmt.Fprintf(&b, "\n%s:\n", day.Label)
		if day.Name != "" {
			fmt.Fprintf(&b, "  • Name: %s\n", day.Name)
		}
		if day.Type != "" {
			fmt.Fprintf(&b, "  • Type: %s\n", day.Type)
		}
		if day.Muscles != "" {
			fmt.Fprintf(&b, "  • Muscles: %s\n", day.Muscles)
		}
		if day.Focus != "" {
			fmt.Fprintf(&b, "  • Focus: %s\n", day.Focus)
		}
		if day.Intensity != "" {
			fmt.Fprintf(&b, "  • Intensity: %s\n", day.Intensity)
		}
		fmt.Fprintf(&b, "  • Duration: %s\n", day.Duration)
		if len(day.Exercises) > 0 {
			fmt.Fprintf(&b, "  • Exercises: %s\n", strings.Join(day.Exercises, ", "))
		}
		if day.Sets != "" {
			fmt.Fprintf(&b, "  • Sets: %s\n", day.Sets)
		}
		if day.Reps != "" {
			fmt.Fprintf(&b, "  • Reps: %s\n", day.Reps)
		}
		if day.Rest != "" {
			fmt.Fprintf(&b, "  • Rest: %s\n", day.Rest)
		}
		if day.Notes != "" {
			fmt.Fprintf(&b, "  • Notes: %s\n", day.Notes)
		}
	}
	b.WriteString("\n📈 Progression Tips:\n")
	b.WriteString(bullets(weekly.ProgressionTips))
	b.WriteString("\n🔄 Recovery Advice:\n")
	b.WriteString(bullets(weekly.RecoveryAdvice))
	b.WriteString("\nStart with this plan and adjust based on how your body responds. Need help with exercise form or modifications?")

	return Response{
		Text: b.String(),
		Data: map[string]any{"plan": weekly},
	}
}

func healthRisk(p profile.Profile) Response {
	risks := knowledge.Risks(p.BMICategory)
	actions := priorityActions(p)

	var b strings.Builder
	fmt.Fprintf(&b, "Health Risk Assessment for BMI %.2f:\n\n", p.BMI)
	b.WriteString("⚠️ Potential Health Risks:\n")
	b.WriteString(bullets(risks.Risks))
	b.WriteString("\n🛡️ Prevention Strategies:\n")
	b.WriteString(bullets(risks.Recommendations))
	b.WriteString("\n🎯 Priority Actions:\n")
	b.WriteString(numbered(actions))
	b.WriteString("\n⚕️ Medical Advice:\n")

	switch p.BMICategory {
	case profile.Obese2, profile.Obese3:
		b.WriteString("⚠️ IMPORTANT: Please consult with a healthcare provider before starting any exercise program. Medical supervision is strongly recommended for your BMI category.")
	case profile.Obese1:
		b.WriteString("Consider consulting with a healthcare provider for a comprehensive health assessment and personalized guidance.")
	default:
		b.WriteString("Regular health check-ups are recommended to monitor your progress and overall health status.")
	}

	return Response{
		Text: b.String(),
		Data: map[string]any{
			"risks":            risks.Risks,
			"recommendations":  risks.Recommendations,
			"priority_actions": actions,
		},
	}
}

func progressTracking(p profile.Profile) Response {
	text := `Progress Tracking Guidelines:

📊 What to Track:
• Weight: Weekly (same day, same time, preferably morning)
• Body Measurements: Bi-weekly (waist, hips, chest, arms, thighs)
• Photos: Weekly (front, side, back views)
• Performance: Each workout (weights lifted, reps, duration)
• Energy Levels: Daily (1-10 scale)
• Sleep Quality: Daily (hours and quality)

📈 Expected Progress Timeline:
• Week 1-2: Energy improvements, better sleep
• Week 3-4: 1-2 kg weight change, strength gains
• Month 2: Visible body changes, 2-4 kg total change
• Month 3: Significant improvements in all metrics

💡 Tips for Accurate Tracking:
• Use the same scale at the same time of day
• Take measurements at the same body points
• Log immediately after workouts
• Be patient - progress isn't always linear

Would you like me to help you set specific tracking goals?`

	return Response{
		Text: text,
		Data: map[string]any{
			"metrics":  []string{"weight", "measurements", "photos", "performance", "energy", "sleep"},
			"timeline": progressTimeline(),
		},
	}
}

func (r *Responder) motivation(p profile.Profile) Response {
	quotes := knowledge.Quotes()
	quote := quotes[r.rng.Intn(len(quotes))]

	var b strings.Builder
	b.WriteString("💪 Motivation Boost:\n\n")
	fmt.Fprintf(&b, "%q\n\n", quote)
	b.WriteString("Remember why you started:\n")
	b.WriteString(bullets([]string{
		"Your health is an investment, not an expense",
		"Small consistent actions lead to big results",
		fmt.Sprintf("You're already %s level - that's progress!", p.FitnessLevel),
		"Every healthy choice is a victory",
	}))
	b.WriteString("\n🎯 Your Goals:\n")
	var goalLines []string
	for _, g := range p.Goals {
		goalLines = append(goalLines, titleCase(string(g)))
	}
	b.WriteString(bullets(goalLines))
	fmt.Fprintf(&b,
		"\n📊 You've already taken the first step by being here. Your BMI of %.2f is just a number - what matters is the direction you're heading.\n\n",
		p.BMI)
	b.WriteString("Need help overcoming a specific challenge? Let me know what's holding you back, and I'll help you push through!")

	return Response{
		Text: b.String(),
		Data: map[string]any{
			"quote": quote,
			"goals": goalNames(p),
		},
	}
}

func nutritionInfo(p profile.Profile) Response {
	text := `Nutrition Fundamentals:

🥗 Macronutrients:
• Proteins (4 cal/g): Build & repair muscle, satiety
  - Sources: Meat, fish, eggs, legumes, dairy
  - Need: 1.6-2.2g per kg body weight

• Carbohydrates (4 cal/g): Primary energy source
  - Sources: Grains, fruits, vegetables
  - Focus on complex carbs for sustained energy

• Fats (9 cal/g): Hormone production, nutrient absorption
  - Sources: Nuts, oils, avocado, fatty fish
  - Need: 20-35% of total calories

💊 Key Micronutrients:
• Vitamin D: Bone health, immunity
• Iron: Oxygen transport
• Calcium: Bone strength
• B12: Energy metabolism
• Omega-3: Heart & brain health

🍽️ Portion Control Tips:
• Protein: Palm-sized portion
• Carbs: Cupped hand portion
• Fats: Thumb-sized portion
• Vegetables: 2 fist-sized portions

Need specific food recommendations or have dietary restrictions?`

	return Response{
		Text: text,
		Data: map[string]any{
			"macros_info": map[string]any{
				"protein_per_kg":  1.8,
				"fat_percentage":  25,
				"carb_percentage": 45,
			},
		},
	}
}

func goalSetting(p profile.Profile) Response {
	var b strings.Builder
	b.WriteString("Goal Setting Strategy:\n\n")
	b.WriteString("📋 Current Goals:\n")
	var goalLines []string
	for _, g := range p.Goals {
		goalLines = append(goalLines, titleCase(string(g)))
	}
	b.WriteString(bullets(goalLines))
	b.WriteString(`
🎯 SMART Goal Framework:
• Specific: Clear and well-defined
• Measurable: Track with numbers
• Achievable: Realistic for your level
• Relevant: Aligned with your values
• Time-bound: Set deadlines

`)
	fmt.Fprintf(&b, "📊 Based on your BMI (%.2f), here are realistic targets:\n", p.BMI)
	b.WriteString(`
Short-term (4 weeks):
• Weight change: 2-4 kg
• Exercise: 3-4 sessions/week
• Daily steps: 8,000-10,000

Medium-term (12 weeks):
• Weight change: 6-12 kg
• Body fat: -3-5%
• Strength: +20-30% on major lifts

Long-term (6 months):
• Total transformation possible
• Sustainable habits established
• Health markers improved

Would you like to adjust your goals or add specific targets?`)

	return Response{
		Text: b.String(),
		Data: map[string]any{
			"current_goals": goalNames(p),
			"suggested_targets": map[string]string{
				"short_term":  "2-4 kg in 4 weeks",
				"medium_term": "6-12 kg in 12 weeks",
				"long_term":   "Complete transformation in 6 months",
			},
		},
	}
}

func supplementInfo(p profile.Profile) Response {
	text := `Supplement Guide:

🏃 Basic Supplements:
• Multivitamin: Fill nutritional gaps
• Vitamin D3: 1000-2000 IU daily
• Omega-3: 1-2g EPA/DHA daily
• Probiotics: Gut health support

💪 Performance Supplements:
• Whey Protein: 20-40g post-workout
• Creatine: 5g daily (most researched)
• Caffeine: 100-200mg pre-workout
• Beta-Alanine: 2-5g daily for endurance

🎯 Goal-Specific:
For Weight Loss:
• Green tea extract
• Fiber supplements
• CLA (limited evidence)

For Muscle Gain:
• Casein protein (before bed)
• BCAAs (if low protein intake)
• HMB (for muscle preservation)

⚠️ Important Notes:
• Supplements don't replace good nutrition
• Consult healthcare provider before starting
• Buy from reputable brands only
• Start with basics, add others gradually

Need specific supplement recommendations for your goals?`

	primaryGoal := "general"
	if len(p.Goals) > 0 {
		primaryGoal = string(p.Goals[0])
	}
	return Response{
		Text: text,
		Data: map[string]any{
			"basic":         []string{"Multivitamin", "Vitamin D3", "Omega-3"},
			"performance":   []string{"Whey Protein", "Creatine", "Caffeine"},
			"goal_specific": primaryGoal,
		},
	}
}

func injuryPrevention(p profile.Profile) Response {
	text := `Injury Prevention Guidelines:

🛡️ Before Exercise:
• Warm-up: 5-10 minutes gradual movement
• Dynamic stretching: Leg swings, arm circles
• Activation: Light sets of planned exercises
• Proper hydration: Drink 500ml water

⚠️ During Exercise:
• Focus on form over weight/speed
• Use full range of motion
• Control the eccentric (lowering) phase
• Stop if you feel sharp pain
• Breathe properly (exhale on exertion)

🔄 After Exercise:
• Cool down: 5-10 minutes light cardio
• Static stretching: Hold 20-30 seconds
• Foam rolling: Target tight areas
• Proper nutrition: Protein within 2 hours

🚫 Common Mistakes to Avoid:
• Progressing too quickly (10% rule)
• Ignoring pain signals
• Poor form when fatigued
• Inadequate recovery time
• Neglecting mobility work

💡 Recovery Protocol:
• Sleep: 7-9 hours minimum
• Rest days: 1-2 per week
• Active recovery: Light walking/swimming
• Massage/stretching: Regular practice

Having any specific pain or discomfort?`

	return Response{
		Text: text,
		Data: map[string]any{
			"warm_up_time":       "5-10 minutes",
			"cool_down_time":     "5-10 minutes",
			"rest_days_per_week": "1-2",
		},
	}
}

func recovery(p profile.Profile) Response {
	text := `Recovery Optimization:

😴 Sleep Optimization:
• Target: 7-9 hours nightly
• Consistent schedule (same bedtime)
• Dark, cool room (18-20°C)
• No screens 1 hour before bed
• Avoid caffeine after 2 PM

🍽️ Nutrition for Recovery:
• Post-workout: Protein + carbs within 2 hours
• Daily protein: 1.6-2.2g per kg body weight
• Anti-inflammatory foods: Berries, fatty fish
• Hydration: 35-40ml per kg body weight

🧘 Active Recovery Methods:
• Light walking: 20-30 minutes
• Swimming: Low-impact full body
• Yoga: Flexibility and relaxation
• Foam rolling: 10-15 minutes daily
• Stretching: Focus on tight areas

🛁 Recovery Tools:
• Ice baths: 10-15 min at 10-15°C
• Contrast showers: Alternate hot/cold
• Compression garments: During/after exercise
• Massage: Weekly if possible
• Sauna: 15-20 minutes post-workout

📊 Signs You Need More Recovery:
• Declining performance
• Persistent fatigue
• Mood changes
• Poor sleep quality
• Elevated resting heart rate

Need a specific recovery plan for your training schedule?`

	return Response{
		Text: text,
		Data: map[string]any{
			"sleep_hours":      "7-9",
			"protein_per_kg":   "1.6-2.2g",
			"hydration_per_kg": "35-40ml",
		},
	}
}

func sleepAdvice(p profile.Profile) Response {
	text := `Sleep Optimization for Fitness:

😴 Sleep's Impact on Fitness:
• Muscle recovery and growth
• Hormone regulation (HGH, testosterone)
• Energy restoration
• Mental focus and motivation
• Appetite regulation

🕐 Optimal Sleep Schedule:
• Duration: 7-9 hours minimum
• Consistency: Same bedtime/wake time
• Best hours: 10 PM - 6 AM (circadian alignment)

🛏️ Sleep Hygiene Tips:
• Temperature: 18-20°C (65-68°F)
• Darkness: Blackout curtains/eye mask
• Quiet: Earplugs or white noise
• Comfort: Quality mattress/pillows
• No devices: 1 hour before bed

📱 Evening Routine (9 PM onwards):
1. Dim lights throughout house
2. Light stretching or meditation
3. Warm shower or bath
4. Read or journal
5. Deep breathing exercises

🍽️ Nutrition for Better Sleep:
• Last meal: 3 hours before bed
• Avoid: Caffeine after 2 PM
• Avoid: Alcohol (disrupts REM sleep)
• Try: Magnesium supplement
• Try: Chamomile tea

💪 Exercise Timing:
• Morning: Boosts energy all day
• Afternoon: Peak performance time
• Evening: Finish 3+ hours before bed

Having trouble with sleep quality?`

	return Response{
		Text: text,
		Data: map[string]any{
			"optimal_hours": "7-9",
			"room_temp":     "18-20°C",
			"meal_cutoff":   "3 hours before bed",
		},
	}
}

func hydration(p profile.Profile) Response {
	dailyL := round1(p.Weight * baselineHydrationLPerKg)
	exerciseL := round1(p.Weight * exerciseHydrationLPerKg)

	var b strings.Builder
	b.WriteString("Hydration Guidelines:\n\n")
	b.WriteString("💧 Daily Water Intake:\n")
	fmt.Fprintf(&b, "• Baseline: %gL per day\n", dailyL)
	fmt.Fprintf(&b, "• Exercise days: +%gL per hour\n", exerciseL)
	b.WriteString("• Hot weather: +20-30% more\n")
	fmt.Fprintf(&b, "• Total: %gL on training days\n", round1(dailyL+exerciseL))
	b.WriteString(`
⏰ Hydration Schedule:
• Wake up: 500ml immediately
• Morning: 750ml before lunch
• Afternoon: 750ml before 3 PM
• Evening: 500ml before 7 PM
• Pre-workout: 500ml (30 min before)
• During workout: 200ml every 20 min
• Post-workout: 150% of fluid lost

📊 Hydration Status Check:
• Urine color: Pale yellow is ideal
• Thirst: Don't wait until thirsty
• Energy: Dehydration causes fatigue
• Performance: 2% loss = 10% performance drop

🥤 Electrolyte Balance:
• Sodium: 1.5-2g on heavy training days
• Potassium: From fruits/vegetables
• Magnesium: 400mg daily
• Add pinch of salt to water if sweating heavily

⚠️ Signs of Dehydration:
• Dark urine
• Headaches
• Muscle cramps
• Dizziness
• Dry mouth

Need help creating a hydration schedule?`)

	return Response{
		Text: b.String(),
		Data: map[string]any{
			"daily_intake":       fmt.Sprintf("%gL", dailyL),
			"exercise_addition":  fmt.Sprintf("%gL per hour", exerciseL),
			"total_training_day": fmt.Sprintf("%gL", round1(dailyL+exerciseL)),
		},
	}
}

func general(p profile.Profile) Response {
	var b strings.Builder
	b.WriteString(`I can help you with various fitness topics:

🏃 Fitness Services:
• Personalized diet plans
• Custom workout routines
• Health risk assessment
• Progress tracking strategies
• Supplement recommendations
• Injury prevention tips
• Recovery optimization
• Sleep improvement
• Hydration guidance

📊 Your Current Status:
`)
	fmt.Fprintf(&b, "• BMI: %.2f (%s)\n", p.BMI, p.BMICategory)
	fmt.Fprintf(&b, "• Fitness Level: %s\n", p.FitnessLevel)
	fmt.Fprintf(&b, "• Activity: %s\n", p.ActivityLevel)
	fmt.Fprintf(&b, "• Goals: %s\n\n", strings.Join(goalNames(p), ", "))
	b.WriteString("What specific area would you like help with today?")

	return Response{
		Text: b.String(),
		Data: map[string]any{
			"services": []string{
				"Diet Planning", "Workout Routines", "Health Assessment",
				"Progress Tracking", "Supplements", "Injury Prevention",
				"Recovery", "Sleep", "Hydration",
			},
			"user_status": map[string]any{
				"bmi":           p.BMI,
				"fitness_level": string(p.FitnessLevel),
				"goals":         goalNames(p),
			},
		},
	}
}

// priorityActions derives at most five ordered next steps from the
// profile's BMI category and activity level.
func priorityActions(p profile.Profile) []string {
	var actions []string

	if p.BMICategory == profile.Obese2 || p.BMICategory == profile.Obese3 {
		actions = append(actions, "Consult with a healthcare provider immediately")
	}

	switch p.BMICategory {
	case profile.Underweight:
		actions = append(actions, "Increase caloric intake by 300-500 calories daily")
	case profile.Overweight, profile.Obese1:
		actions = append(actions, "Create a 500 calorie daily deficit for safe weight loss")
	}

	if p.ActivityLevel == profile.ActivitySedentary || p.ActivityLevel == profile.ActivityLight {
		actions = append(actions, "Increase daily activity to at least 30 minutes")
	}

	actions = append(actions,
		"Start tracking food intake and exercise",
		"Establish consistent sleep schedule (7-9 hours)",
		"Increase water intake to 2-3 liters daily",
	)

	if len(actions) > 5 {
		actions = actions[:5]
	}
	return actions
}

// progressTimeline is the fixed expected-results schedule.
func progressTimeline() map[string]string {
	return map[string]string{
		"week_1_2": "Adaptation phase - Focus on building habits",
		"week_3_4": "Initial changes - Energy levels improve, slight weight change",
		"month_2":  "Visible progress - 2-4 kg weight change, strength gains",
		"month_3":  "Significant results - 4-8 kg total change, body composition improvements",
		"month_6":  "Transformation - Major health improvements, sustainable lifestyle established",
	}
}
