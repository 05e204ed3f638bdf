package profile

import (
	"errors"
	"testing"
)

func validInput() Input {
	return Input{
		UserID: "u1",
		Age:    30,
		Weight: 85,
		Height: 175,
		Gender: "male",
	}
}

func TestNew_Defaults(t *testing.T) {
	p, err := New(validInput())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.ActivityLevel != ActivityModerate {
		t.Errorf("default activity = %q, want moderate", p.ActivityLevel)
	}
	if p.FitnessLevel != LevelBeginner {
		t.Errorf("default fitness level = %q, want beginner", p.FitnessLevel)
	}
	if len(p.Goals) != 1 || p.Goals[0] != GoalGeneralFitness {
		t.Errorf("default goals = %v, want [general_fitness]", p.Goals)
	}
}

func TestNew_DerivedBMI(t *testing.T) {
	p, err := New(validInput())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// 85 / 1.75² = 27.755... → 27.76
	if p.BMI != 27.76 {
		t.Errorf("BMI = %v, want 27.76", p.BMI)
	}
	if p.BMICategory != Overweight {
		t.Errorf("category = %q, want overweight", p.BMICategory)
	}
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"zero age", func(in *Input) { in.Age = 0 }, "age"},
		{"negative weight", func(in *Input) { in.Weight = -1 }, "weight"},
		{"zero height", func(in *Input) { in.Height = 0 }, "height"},
		{"empty user id", func(in *Input) { in.UserID = "" }, "user_id"},
		{"unknown gender", func(in *Input) { in.Gender = "robot" }, "gender"},
		{"empty gender", func(in *Input) { in.Gender = "" }, "gender"},
		{"unknown activity", func(in *Input) { in.ActivityLevel = "couch" }, "activity_level"},
		{"unknown fitness level", func(in *Input) { in.FitnessLevel = "pro" }, "fitness_level"},
		{"unknown goal", func(in *Input) { in.Goals = []string{"levitation"} }, "goals"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := New(in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestCategorizeBMI_Boundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want BMICategory
	}{
		{10, Underweight},
		{18.49, Underweight},
		{18.5, Normal},
		{24.99, Normal},
		{25, Overweight},
		{29.99, Overweight},
		{30, Obese1},
		{34.99, Obese1},
		{35, Obese2},
		{39.99, Obese2},
		{40, Obese3},
		{55, Obese3},
	}
	for _, tc := range cases {
		if got := CategorizeBMI(tc.bmi); got != tc.want {
			t.Errorf("CategorizeBMI(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestIdealWeightRange(t *testing.T) {
	r := IdealWeightRange(175)
	// 18.5 * 1.75² = 56.65625 → 56.7; 24.9 * 1.75² = 76.25625 → 76.3
	if r.MinKg != 56.7 {
		t.Errorf("MinKg = %v, want 56.7", r.MinKg)
	}
	if r.MaxKg != 76.3 {
		t.Errorf("MaxKg = %v, want 76.3", r.MaxKg)
	}
}

func TestHasGoalAndRestriction(t *testing.T) {
	in := validInput()
	in.Goals = []string{"weight_loss", "endurance"}
	in.DietaryRestrictions = []string{"vegan"}
	p, err := New(in)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !p.HasGoal(GoalWeightLoss) || p.HasGoal(GoalMuscleGain) {
		t.Errorf("HasGoal gave wrong answers for %v", p.Goals)
	}
	if !p.HasRestriction("vegan") || p.HasRestriction("vegetarian") {
		t.Errorf("HasRestriction gave wrong answers for %v", p.DietaryRestrictions)
	}
}
