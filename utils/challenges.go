package utils

import (
	"github.com/Aashu-1911/Fitness-traker/models"
)

// ChallengeTemplate is a generated challenge before it is persisted.
type ChallengeTemplate struct {
	Title       string
	Description string
}

// Picker supplies the random index used to select a challenge from a
// goal's template list. *rand.Rand satisfies it; tests substitute a
// fixed implementation.
type Picker interface {
	Intn(n int) int
}

var dailyChallenges = map[models.Goal][]ChallengeTemplate{
	models.GoalWeightLoss: {
		{Title: "10,000 Steps Challenge", Description: "Walk or run 10,000 steps today. Track your progress and stay active throughout the day!"},
		{Title: "20-Minute HIIT Workout", Description: "Complete a 20-minute High-Intensity Interval Training session. Push yourself with burpees, jump squats, and mountain climbers!"},
		{Title: "No Sugar Day", Description: "Avoid all added sugars today. Opt for natural sweeteners like fruits and stay hydrated!"},
		{Title: "Cardio Blast", Description: "Do 30 minutes of continuous cardio - running, cycling, or swimming. Keep your heart rate elevated!"},
	},
	models.GoalMuscleGain: {
		{Title: "100 Push-ups Challenge", Description: "Complete 100 push-ups throughout the day (can be broken into sets). Focus on proper form!"},
		{Title: "50 Squats with Weight", Description: "Perform 50 weighted squats today. Use dumbbells or a barbell. Build those legs!"},
		{Title: "Protein Power Day", Description: "Consume at least 1.5g of protein per kg of body weight today. Track your protein intake!"},
		{Title: "Upper Body Strength", Description: "Complete 5 sets of pull-ups, rows, and shoulder presses. Maximum muscle engagement!"},
	},
	models.GoalMaintain: {
		{Title: "Balanced Workout Day", Description: "30 minutes cardio + 20 minutes strength training. Keep your fitness balanced!"},
		{Title: "Flexibility Focus", Description: "Complete a 30-minute yoga or stretching session. Improve your flexibility and mobility!"},
		{Title: "Hydration Challenge", Description: "Drink at least 3 liters of water today. Set reminders and carry a water bottle!"},
		{Title: "Active Recovery", Description: "Go for a gentle 45-minute walk or bike ride. Keep moving at a comfortable pace!"},
	},
}

var weeklyChallenges = map[models.Goal][]ChallengeTemplate{
	models.GoalWeightLoss: {
		{Title: "5-Day Cardio Streak", Description: "Complete at least 30 minutes of cardio for 5 days this week. Track your daily sessions!"},
		{Title: "50,000 Steps This Week", Description: "Accumulate 50,000 steps over the next 7 days. Average 7,000+ steps daily!"},
		{Title: "Clean Eating Week", Description: "Follow your diet plan strictly for 7 days. No processed foods, track every meal!"},
		{Title: "Calorie Deficit Challenge", Description: "Maintain a healthy calorie deficit every day this week. Log all your meals and stay within your target!"},
	},
	models.GoalMuscleGain: {
		{Title: "500 Push-ups This Week", Description: "Complete 500 total push-ups across 7 days. Break into manageable sets daily!"},
		{Title: "Progressive Overload Week", Description: "Increase your weights by 5-10% on all strength exercises this week. Track your progress!"},
		{Title: "Protein-Packed Week", Description: "Hit your daily protein target (1.6g/kg body weight) for all 7 days. Meal prep is key!"},
		{Title: "Full Body Split", Description: "Complete 4 full-body strength training sessions this week with progressive resistance!"},
	},
	models.GoalMaintain: {
		{Title: "Balanced Week Challenge", Description: "Complete 3 cardio sessions and 2 strength sessions this week. Keep your routine balanced!"},
		{Title: "Daily Movement Streak", Description: "Be active for at least 30 minutes every single day for 7 days. No rest days!"},
		{Title: "Mindful Eating Week", Description: "Practice portion control and mindful eating for 7 consecutive days. No distractions during meals!"},
		{Title: "Flexibility & Strength", Description: "Alternate between yoga/stretching and strength training for 6 sessions this week!"},
	},
}

// DailyChallenge selects a daily challenge for the given profile data.
// Obese and Underweight categories get a fixed adaptation regardless of
// goal; otherwise one of the goal's templates is picked at random.
func DailyChallenge(cat models.BMICategory, goal models.Goal, p Picker) ChallengeTemplate {
	switch cat {
	case models.BMIObese:
		return ChallengeTemplate{
			Title:       "Low-Impact Cardio Session",
			Description: "20-30 minutes of low-impact cardio like walking, swimming, or cycling. Listen to your body and maintain a steady pace.",
		}
	case models.BMIUnderweight:
		return ChallengeTemplate{
			Title:       "Gentle Strength & Flexibility",
			Description: "30 minutes of light resistance training combined with yoga. Focus on building strength gradually.",
		}
	}
	return pickChallenge(dailyChallenges, goal, p)
}

// WeeklyChallenge is the weekly counterpart of DailyChallenge.
func WeeklyChallenge(cat models.BMICategory, goal models.Goal, p Picker) ChallengeTemplate {
	switch cat {
	case models.BMIObese:
		return ChallengeTemplate{
			Title:       "Consistency Week",
			Description: "Complete at least 20 minutes of low-impact exercise for 5 days this week. Build a sustainable routine!",
		}
	case models.BMIUnderweight:
		return ChallengeTemplate{
			Title:       "Strength Building Week",
			Description: "Complete 4 light resistance training sessions this week. Focus on form and gradual progression!",
		}
	}
	return pickChallenge(weeklyChallenges, goal, p)
}

func pickChallenge(table map[models.Goal][]ChallengeTemplate, goal models.Goal, p Picker) ChallengeTemplate {
	list, ok := table[goal]
	if !ok {
		list = table[models.GoalMaintain]
	}
	return list[p.Intn(len(list))]
}
