package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aashu-1911/Fitness-traker/models"
	"github.com/Aashu-1911/Fitness-traker/services"
)

type LogController struct {
	Svc *services.LogService
	Log *zap.Logger
}

func NewLogController(svc *services.LogService, log *zap.Logger) *LogController {
	return &LogController{Svc: svc, Log: log}
}

// logView is the log shape returned by every logging endpoint.
func logView(l *models.DailyLog) gin.H {
	view := gin.H{
		"date":        l.Date,
		"waterIntake": l.WaterIntake,
		"calories":    l.Calories,
		"workouts":    l.Workouts,
	}
	if l.Weight != nil {
		view["weight"] = *l.Weight
	}
	return view
}

type amountInput struct {
	Amount *float64 `json:"amount"`
}

func (h *LogController) AddWater(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var input amountInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Amount == nil || *input.Amount <= 0 {
		fail(c, http.StatusBadRequest, "Please provide a valid water amount (in ml)")
		return
	}

	log, err := h.Svc.AddWater(c.Request.Context(), userID, *input.Amount)
	if err != nil {
		serverError(c, h.Log, "Server error while logging water intake", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Water intake logged successfully",
		"log":     logView(log),
	})
}

func (h *LogController) AddCalories(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var input amountInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Amount == nil || *input.Amount <= 0 {
		fail(c, http.StatusBadRequest, "Please provide a valid calorie amount")
		return
	}

	log, err := h.Svc.AddCalories(c.Request.Context(), userID, *input.Amount)
	if err != nil {
		serverError(c, h.Log, "Server error while logging calories", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Calories logged successfully",
		"log":     logView(log),
	})
}

type workoutInput struct {
	Name     string   `json:"name"`
	Duration *float64 `json:"duration"`
	Type     string   `json:"type"`
}

func (h *LogController) AddWorkout(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var input workoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Name == "" || input.Duration == nil || input.Type == "" {
		fail(c, http.StatusBadRequest, "Please provide workout name, duration, and type")
		return
	}
	wtype := models.WorkoutType(input.Type)
	if !wtype.Valid() {
		fail(c, http.StatusBadRequest, "Invalid workout type. Must be one of: Cardio, Strength, HIIT, Yoga, Flexibility")
		return
	}
	if *input.Duration <= 0 || *input.Duration != float64(int(*input.Duration)) {
		fail(c, http.StatusBadRequest, "Duration must be a positive number (in minutes)")
		return
	}

	log, err := h.Svc.AddWorkout(c.Request.Context(), userID, input.Name, int(*input.Duration), wtype)
	if err != nil {
		serverError(c, h.Log, "Server error while logging workout", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Workout logged successfully",
		"log":     logView(log),
	})
}

type weightInput struct {
	Weight *float64 `json:"weight"`
}

func (h *LogController) AddWeight(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var input weightInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Weight == nil || *input.Weight <= 0 {
		fail(c, http.StatusBadRequest, "Please provide a valid weight (in kg)")
		return
	}
	if *input.Weight < 20 || *input.Weight > 500 {
		fail(c, http.StatusBadRequest, "Weight must be between 20 and 500 kg")
		return
	}

	log, profile, err := h.Svc.AddWeight(c.Request.Context(), userID, *input.Weight)
	if err != nil {
		serverError(c, h.Log, "Server error while logging weight", err)
		return
	}

	resp := gin.H{
		"success":        true,
		"message":        "Weight logged successfully",
		"log":            logView(log),
		"updatedProfile": nil,
	}
	if profile != nil {
		resp["updatedProfile"] = gin.H{
			"weight":              profile.Weight,
			"bmi":                 profile.BMI,
			"bmiCategory":         profile.BMICategory,
			"recommendedCalories": profile.RecommendedCalories,
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LogController) GetToday(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	log, err := h.Svc.GetOrCreateToday(c.Request.Context(), userID)
	if err != nil {
		serverError(c, h.Log, "Server error while fetching today's log", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "log": logView(log)})
}

func (h *LogController) GetRange(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		fail(c, http.StatusBadRequest, "Please provide startDate and endDate")
		return
	}

	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid startDate. Use YYYY-MM-DD")
		return
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid endDate. Use YYYY-MM-DD")
		return
	}

	logs, err := h.Svc.LogsInRange(c.Request.Context(), userID, start, end, false)
	if err != nil {
		serverError(c, h.Log, "Server error while fetching logs", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(logs), "logs": logs})
}
