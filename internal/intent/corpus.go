package intent

// DefaultCorpus returns the built-in labeled training corpus. It covers
// every intent in the vocabulary with a handful of phrasings each.
func DefaultCorpus() []Sample {
	return []Sample{
		{Text: "hi", Intent: Greeting},
		{Text: "hello", Intent: Greeting},
		{Text: "good morning", Intent: Greeting},
		{Text: "hey there", Intent: Greeting},

		{Text: "what is my bmi", Intent: BMIQuery},
		{Text: "calculate my body mass index", Intent: BMIQuery},
		{Text: "am i overweight", Intent: BMIQuery},
		{Text: "what is a healthy weight for me", Intent: BMIQuery},

		{Text: "i need a diet plan", Intent: DietPlan},
		{Text: "what should i eat", Intent: DietPlan},
		{Text: "create meal plan", Intent: DietPlan},
		{Text: "how many calories should i eat", Intent: DietPlan},

		{Text: "create workout plan", Intent: WorkoutPlan},
		{Text: "exercise routine", Intent: WorkoutPlan},
		{Text: "gym schedule", Intent: WorkoutPlan},
		{Text: "training program", Intent: WorkoutPlan},

		{Text: "what are my health risks", Intent: HealthRisk},
		{Text: "diabetes risk", Intent: HealthRisk},
		{Text: "heart disease concerns", Intent: HealthRisk},
		{Text: "health problems from weight", Intent: HealthRisk},

		{Text: "how do i track my progress", Intent: ProgressTracking},
		{Text: "measure my improvement", Intent: ProgressTracking},
		{Text: "when will i see results", Intent: ProgressTracking},

		{Text: "i feel like giving up", Intent: Motivation},
		{Text: "motivate me to keep going", Intent: Motivation},
		{Text: "i am too tired to work out", Intent: Motivation},

		{Text: "how much protein do i need", Intent: NutritionInfo},
		{Text: "tell me about carbs and fats", Intent: NutritionInfo},
		{Text: "which vitamins matter most", Intent: NutritionInfo},

		{Text: "help me set a goal", Intent: GoalSetting},
		{Text: "what target should i aim for", Intent: GoalSetting},
		{Text: "i want to achieve a transformation", Intent: GoalSetting},

		{Text: "should i take creatine", Intent: SupplementInfo},
		{Text: "is whey protein worth it", Intent: SupplementInfo},
		{Text: "which supplements do you recommend", Intent: SupplementInfo},

		{Text: "how do i avoid injury", Intent: InjuryPrevention},
		{Text: "my knee hurts when i squat", Intent: InjuryPrevention},
		{Text: "is this exercise safe", Intent: InjuryPrevention},

		{Text: "my muscles are sore", Intent: Recovery},
		{Text: "how do i recover faster", Intent: Recovery},
		{Text: "dealing with fatigue after training", Intent: Recovery},

		{Text: "i can't sleep at night", Intent: SleepAdvice},
		{Text: "how many hours of sleep do i need", Intent: SleepAdvice},
		{Text: "tips for better bedtime routine", Intent: SleepAdvice},

		{Text: "how much water should i drink", Intent: Hydration},
		{Text: "am i drinking enough fluids", Intent: Hydration},
		{Text: "hydration during workouts", Intent: Hydration},

		{Text: "tell me something", Intent: General},
		{Text: "what can you do", Intent: General},
		{Text: "not sure where to start", Intent: General},
	}
}
