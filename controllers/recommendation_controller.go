package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aashu-1911/Fitness-traker/models"
	"github.com/Aashu-1911/Fitness-traker/services"
	"github.com/Aashu-1911/Fitness-traker/utils"
)

type RecommendationController struct {
	Profiles *services.ProfileService
	Log      *zap.Logger
}

func NewRecommendationController(profiles *services.ProfileService, log *zap.Logger) *RecommendationController {
	return &RecommendationController{Profiles: profiles, Log: log}
}

func (h *RecommendationController) profileFor(c *gin.Context) (*models.HealthProfile, bool) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return nil, false
	}

	profile, err := h.Profiles.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			fail(c, http.StatusNotFound, "Health profile not found. Please create your profile first.")
			return nil, false
		}
		serverError(c, h.Log, "Server error while generating recommendations", err)
		return nil, false
	}
	return profile, true
}

func dietTypeParam(c *gin.Context) (models.DietType, bool) {
	diet := models.DietType(c.DefaultQuery("dietType", string(models.DietVeg)))
	if !diet.Valid() {
		fail(c, http.StatusBadRequest, `Invalid diet type. Use "veg" or "nonveg".`)
		return "", false
	}
	return diet, true
}

func (h *RecommendationController) GetExercise(c *gin.Context) {
	profile, ok := h.profileFor(c)
	if !ok {
		return
	}

	plan := utils.ExercisePlan(profile.BMICategory, profile.Goals, profile.ActivityLevel)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Personalized exercise plan generated",
		"profile": gin.H{
			"bmiCategory":   profile.BMICategory,
			"goals":         profile.Goals,
			"activityLevel": profile.ActivityLevel,
		},
		"exercisePlan": plan,
		"recommendations": gin.H{
			"totalWorkouts": len(plan),
			"weeklyMinutes": totalMinutes(plan),
			"tip":           goalTip(profile.Goals),
		},
	})
}

func (h *RecommendationController) GetDiet(c *gin.Context) {
	diet, ok := dietTypeParam(c)
	if !ok {
		return
	}
	profile, ok := h.profileFor(c)
	if !ok {
		return
	}

	plan := utils.DietPlan(profile.BMICategory, profile.Goals, diet)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Personalized diet plan generated",
		"profile": gin.H{
			"bmiCategory":         profile.BMICategory,
			"goals":               profile.Goals,
			"recommendedCalories": profile.RecommendedCalories,
		},
		"dietType": diet,
		"dietPlan": plan,
		"recommendations": gin.H{
			"dailyCalories": profile.RecommendedCalories,
			"waterIntake":   "2.5-3 liters per day",
			"mealTiming": gin.H{
				"breakfast": "7:00 AM - 9:00 AM",
				"lunch":     "12:00 PM - 2:00 PM",
				"dinner":    "6:00 PM - 8:00 PM",
				"snacks":    "Between meals as needed",
			},
			"tip": dietTip(profile.Goals),
		},
	})
}

func (h *RecommendationController) GetComplete(c *gin.Context) {
	diet, ok := dietTypeParam(c)
	if !ok {
		return
	}
	profile, ok := h.profileFor(c)
	if !ok {
		return
	}

	exercisePlan := utils.ExercisePlan(profile.BMICategory, profile.Goals, profile.ActivityLevel)
	dietPlan := utils.DietPlan(profile.BMICategory, profile.Goals, diet)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Complete personalized health plan generated",
		"profile": gin.H{
			"name":                profile.Name,
			"age":                 profile.Age,
			"bmi":                 profile.BMI,
			"bmiCategory":         profile.BMICategory,
			"goals":               profile.Goals,
			"activityLevel":       profile.ActivityLevel,
			"recommendedCalories": profile.RecommendedCalories,
		},
		"exercisePlan": gin.H{
			"workouts":      exercisePlan,
			"weeklyMinutes": totalMinutes(exercisePlan),
		},
		"dietPlan": gin.H{
			"type":          diet,
			"meals":         dietPlan,
			"dailyCalories": profile.RecommendedCalories,
		},
		"generalTips": []string{
			"Stay consistent with your routine",
			"Get 7-8 hours of quality sleep",
			"Stay hydrated throughout the day",
			"Track your progress regularly",
			"Listen to your body and adjust as needed",
		},
	})
}

func totalMinutes(plan []utils.WorkoutRec) int {
	total := 0
	for _, w := range plan {
		total += w.Duration
	}
	return total
}

func goalTip(goal models.Goal) string {
	switch goal {
	case models.GoalWeightLoss:
		return "Focus on consistency and gradually increase intensity for best results."
	case models.GoalMuscleGain:
		return "Ensure proper nutrition and rest between strength training sessions."
	default:
		return "Maintain a balanced routine to stay healthy and fit."
	}
}

func dietTip(goal models.Goal) string {
	switch goal {
	case models.GoalWeightLoss:
		return "Focus on portion control and avoid processed foods. Stay hydrated!"
	case models.GoalMuscleGain:
		return "Eat protein-rich meals and maintain a calorie surplus. Don't skip meals!"
	default:
		return "Eat balanced meals with variety. Listen to your body's hunger cues."
	}
}
