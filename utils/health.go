package utils

import (
	"math"

	"github.com/Aashu-1911/Fitness-traker/models"
)

// CalcBMI expects height in centimeters and weight in kilograms.
// Result is rounded to 1 decimal place; the same rounding is used
// everywhere a BMI is stored or returned.
func CalcBMI(heightCm, weightKg float64) float64 {
	h := heightCm / 100.0
	return round1(weightKg / (h * h))
}

// BMICategoryFor buckets a BMI value. Boundaries are inclusive on the
// lower bound, exclusive on the upper.
func BMICategoryFor(bmi float64) models.BMICategory {
	switch {
	case bmi < 18.5:
		return models.BMIUnderweight
	case bmi < 25.0:
		return models.BMINormal
	case bmi < 30.0:
		return models.BMIOverweight
	default:
		return models.BMIObese
	}
}

// RecommendedCalories derives a daily calorie target from activity level
// and goal. The activity level must be one of the enumerated values;
// callers validate input before reaching this point.
func RecommendedCalories(level models.ActivityLevel, goal models.Goal) int {
	var calories float64
	switch level {
	case models.ActivityLow:
		calories = 1800
	case models.ActivityModerate:
		calories = 2200
	case models.ActivityHigh:
		calories = 2600
	}

	switch goal {
	case models.GoalWeightLoss:
		calories *= 0.875
	case models.GoalMuscleGain:
		calories *= 1.15
	}

	return int(math.Round(calories))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
