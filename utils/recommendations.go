package utils

import (
	"math"

	"github.com/Aashu-1911/Fitness-traker/models"
)

// WorkoutRec is one entry of a generated exercise plan.
type WorkoutRec struct {
	Type        models.WorkoutType `json:"type"`
	Duration    int                `json:"duration"` // minutes
	Description string             `json:"description"`
}

// MealPlan lists meal options per slot for a generated diet plan.
type MealPlan struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
	Snacks    []string `json:"snacks"`
}

var exercisePlans = map[models.BMICategory][]WorkoutRec{
	models.BMIUnderweight: {
		{Type: models.WorkoutStrength, Duration: 45, Description: "Full body strength training with compound movements (squats, deadlifts, bench press)"},
		{Type: models.WorkoutYoga, Duration: 30, Description: "Gentle yoga for flexibility and mind-body connection"},
		{Type: models.WorkoutStrength, Duration: 40, Description: "Upper body focused - pull-ups, rows, shoulder press"},
	},
	models.BMINormal: {
		{Type: models.WorkoutCardio, Duration: 30, Description: "Moderate intensity cardio - jogging, cycling, or swimming"},
		{Type: models.WorkoutStrength, Duration: 40, Description: "Full body resistance training with weights"},
		{Type: models.WorkoutFlexibility, Duration: 25, Description: "Stretching and mobility work to prevent injuries"},
	},
	models.BMIOverweight: {
		{Type: models.WorkoutCardio, Duration: 40, Description: "Steady-state cardio - brisk walking, elliptical, or cycling"},
		{Type: models.WorkoutHIIT, Duration: 25, Description: "High-intensity interval training - burpees, jump squats, mountain climbers"},
		{Type: models.WorkoutStrength, Duration: 30, Description: "Circuit training with bodyweight and light weights"},
	},
	models.BMIObese: {
		{Type: models.WorkoutCardio, Duration: 30, Description: "Low-impact cardio - walking, water aerobics, or stationary bike"},
		{Type: models.WorkoutStrength, Duration: 20, Description: "Gentle strength training focusing on major muscle groups"},
		{Type: models.WorkoutFlexibility, Duration: 20, Description: "Gentle stretching and chair yoga for mobility"},
	},
}

// ExercisePlan builds a personalized workout list: a base plan keyed by
// BMI category (falling back to Normal), one goal-specific extra workout,
// then duration scaling by activity level. Deterministic for given inputs.
func ExercisePlan(cat models.BMICategory, goal models.Goal, level models.ActivityLevel) []WorkoutRec {
	base, ok := exercisePlans[cat]
	if !ok {
		base = exercisePlans[models.BMINormal]
	}

	workouts := make([]WorkoutRec, len(base))
	copy(workouts, base)

	switch goal {
	case models.GoalWeightLoss:
		workouts = append(workouts, WorkoutRec{
			Type:        models.WorkoutHIIT,
			Duration:    20,
			Description: "Fat-burning HIIT session - sprint intervals or tabata training",
		})
	case models.GoalMuscleGain:
		workouts = append(workouts, WorkoutRec{
			Type:        models.WorkoutStrength,
			Duration:    50,
			Description: "Progressive overload strength training - focus on hypertrophy (8-12 reps)",
		})
	}

	switch level {
	case models.ActivityLow:
		for i := range workouts {
			workouts[i].Duration = int(math.Round(float64(workouts[i].Duration) * 0.7))
			workouts[i].Description = "Beginner level: " + workouts[i].Description
		}
	case models.ActivityHigh:
		for i := range workouts {
			workouts[i].Duration = int(math.Round(float64(workouts[i].Duration) * 1.2))
			workouts[i].Description = "Advanced level: " + workouts[i].Description
		}
	}

	return workouts
}

var vegPlans = map[models.Goal]MealPlan{
	models.GoalWeightLoss: {
		Breakfast: []string{
			"Oatmeal with berries and chia seeds",
			"Green smoothie with spinach, banana, and protein powder",
			"Whole grain toast with avocado and boiled eggs",
		},
		Lunch: []string{
			"Quinoa salad with mixed vegetables and chickpeas",
			"Brown rice with dal and steamed vegetables",
			"Whole wheat wrap with hummus, veggies, and tofu",
		},
		Dinner: []string{
			"Grilled paneer with roasted vegetables",
			"Vegetable stir-fry with tofu and cauliflower rice",
			"Lentil soup with a side salad",
		},
		Snacks: []string{
			"Greek yogurt with almonds",
			"Apple slices with peanut butter",
			"Mixed nuts and seeds (handful)",
			"Cucumber and carrot sticks with hummus",
		},
	},
	models.GoalMaintain: {
		Breakfast: []string{
			"Whole grain cereal with milk and banana",
			"Vegetable poha with peanuts",
			"Smoothie bowl with fruits, granola, and seeds",
		},
		Lunch: []string{
			"Brown rice with mixed dal and sabzi",
			"Whole wheat roti with paneer curry and salad",
			"Vegetable biryani with raita",
		},
		Dinner: []string{
			"Grilled vegetables with quinoa",
			"Palak paneer with brown rice",
			"Mixed vegetable curry with roti",
		},
		Snacks: []string{
			"Fresh fruit salad",
			"Roasted chickpeas",
			"Whole grain crackers with cheese",
			"Protein shake",
		},
	},
	models.GoalMuscleGain: {
		Breakfast: []string{
			"Protein pancakes with banana and peanut butter",
			"Scrambled eggs (or tofu scramble) with whole grain toast",
			"Oatmeal with protein powder, nuts, and honey",
		},
		Lunch: []string{
			"Brown rice with rajma and paneer",
			"Chickpea pasta with vegetables and olive oil",
			"Quinoa bowl with beans, avocado, and tahini",
		},
		Dinner: []string{
			"Grilled paneer tikka with sweet potato",
			"Lentil curry with brown rice and ghee",
			"Tofu stir-fry with nuts and seeds",
		},
		Snacks: []string{
			"Protein shake with banana",
			"Peanut butter sandwich on whole grain bread",
			"Greek yogurt with granola and berries",
			"Trail mix with dried fruits and nuts",
		},
	},
}

var nonVegPlans = map[models.Goal]MealPlan{
	models.GoalWeightLoss: {
		Breakfast: []string{
			"Scrambled eggs with spinach and whole grain toast",
			"Greek yogurt with berries and protein granola",
			"Egg white omelet with vegetables",
		},
		Lunch: []string{
			"Grilled chicken breast with quinoa and steamed broccoli",
			"Tuna salad with mixed greens and olive oil",
			"Turkey wrap with whole wheat tortilla and veggies",
		},
		Dinner: []string{
			"Baked salmon with roasted vegetables",
			"Grilled chicken with cauliflower rice",
			"Fish curry with brown rice",
		},
		Snacks: []string{
			"Boiled eggs",
			"Greek yogurt",
			"Chicken breast strips",
			"Protein shake",
		},
	},
	models.GoalMaintain: {
		Breakfast: []string{
			"Egg bhurji with whole wheat roti",
			"Chicken sausage with whole grain toast",
			"Protein smoothie with eggs and fruits",
		},
		Lunch: []string{
			"Chicken biryani with raita",
			"Fish curry with brown rice",
			"Grilled chicken salad with quinoa",
		},
		Dinner: []string{
			"Grilled fish with vegetables",
			"Chicken tikka with roti and dal",
			"Mutton curry with brown rice",
		},
		Snacks: []string{
			"Boiled eggs with nuts",
			"Chicken sandwich",
			"Greek yogurt with honey",
			"Protein bar",
		},
	},
	models.GoalMuscleGain: {
		Breakfast: []string{
			"Scrambled eggs (4-5) with whole grain toast and avocado",
			"Protein pancakes with chicken sausage",
			"Egg and cheese omelet with hash browns",
		},
		Lunch: []string{
			"Grilled chicken breast with sweet potato and vegetables",
			"Beef or chicken with brown rice and beans",
			"Salmon with quinoa and avocado",
		},
		Dinner: []string{
			"Grilled steak with roasted potatoes",
			"Chicken curry with brown rice and ghee",
			"Fish with pasta and olive oil",
		},
		Snacks: []string{
			"Protein shake with whole milk",
			"Chicken breast with peanut butter",
			"Boiled eggs (3-4) with nuts",
			"Greek yogurt with granola and honey",
		},
	},
}

// DietPlan builds a meal plan keyed by (dietType, goal) with Maintain as
// the goal fallback. Underweight and Obese profiles get a portion note
// appended to the snacks list.
func DietPlan(cat models.BMICategory, goal models.Goal, diet models.DietType) MealPlan {
	plans := vegPlans
	if diet == models.DietNonVeg {
		plans = nonVegPlans
	}

	plan, ok := plans[goal]
	if !ok {
		plan = plans[models.GoalMaintain]
	}

	// Copy the snacks slice before appending so the shared table is never
	// mutated across requests.
	if cat == models.BMIUnderweight || cat == models.BMIObese {
		note := "Note: Practice portion control for weight management"
		if cat == models.BMIUnderweight {
			note = "Note: Increase portions for weight gain"
		}
		snacks := make([]string, len(plan.Snacks), len(plan.Snacks)+1)
		copy(snacks, plan.Snacks)
		plan.Snacks = append(snacks, note)
	}

	return plan
}
