package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aashu-1911/Fitness-traker/models"
	"github.com/Aashu-1911/Fitness-traker/services"
)

type HealthController struct {
	Svc *services.ProfileService
	Log *zap.Logger
}

func NewHealthController(svc *services.ProfileService, log *zap.Logger) *HealthController {
	return &HealthController{Svc: svc, Log: log}
}

func (h *HealthController) GetProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	profile, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			fail(c, http.StatusNotFound, "Health profile not found")
			return
		}
		serverError(c, h.Log, "Server error while fetching health profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

type profileBody struct {
	Name             string   `json:"name"`
	Age              *int     `json:"age"`
	Gender           *string  `json:"gender"`
	Height           *float64 `json:"height"`
	Weight           *float64 `json:"weight"`
	ActivityLevel    *string  `json:"activityLevel"`
	Goals            *string  `json:"goals"`
	HealthConditions *string  `json:"healthConditions"`
}

func (h *HealthController) CreateProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var body profileBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Age == nil || body.Gender == nil || body.Height == nil ||
		body.Weight == nil || body.ActivityLevel == nil || body.Goals == nil {
		fail(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}
	if msg := validateProfileFields(&body); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	in := services.ProfileInput{
		Age:              *body.Age,
		Gender:           models.Gender(*body.Gender),
		Height:           *body.Height,
		Weight:           *body.Weight,
		ActivityLevel:    models.ActivityLevel(*body.ActivityLevel),
		Goals:            models.Goal(*body.Goals),
		HealthConditions: conditionsList(body.HealthConditions),
	}

	profile, err := h.Svc.Create(c.Request.Context(), userID, body.Name, in)
	if err != nil {
		if errors.Is(err, services.ErrProfileExists) {
			fail(c, http.StatusBadRequest, "Health profile already exists. Use PUT to update.")
			return
		}
		serverError(c, h.Log, "Server error while creating health profile", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "profile": profile})
}

func (h *HealthController) UpdateProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var body profileBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateProfileFields(&body); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	upd := services.ProfileUpdate{
		Age:    body.Age,
		Height: body.Height,
		Weight: body.Weight,
	}
	if body.Gender != nil {
		g := models.Gender(*body.Gender)
		upd.Gender = &g
	}
	if body.ActivityLevel != nil {
		a := models.ActivityLevel(*body.ActivityLevel)
		upd.ActivityLevel = &a
	}
	if body.Goals != nil {
		g := models.Goal(*body.Goals)
		upd.Goals = &g
	}
	if body.HealthConditions != nil {
		conditions := conditionsList(body.HealthConditions)
		upd.HealthConditions = &conditions
	}

	profile, err := h.Svc.Update(c.Request.Context(), userID, upd)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			fail(c, http.StatusNotFound, "Health profile not found. Please create one first.")
			return
		}
		serverError(c, h.Log, "Server error while updating health profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// validateProfileFields checks whatever fields are present against the
// domain ranges and enumerations, returning a field-specific message.
func validateProfileFields(body *profileBody) string {
	if body.Age != nil && (*body.Age < 1 || *body.Age > 150) {
		return "Age must be between 1 and 150"
	}
	if body.Gender != nil && !models.Gender(*body.Gender).Valid() {
		return "Gender must be one of: Male, Female, Other"
	}
	if body.Height != nil && (*body.Height < 50 || *body.Height > 300) {
		return "Height must be between 50 and 300 cm"
	}
	if body.Weight != nil && (*body.Weight < 20 || *body.Weight > 500) {
		return "Weight must be between 20 and 500 kg"
	}
	if body.ActivityLevel != nil && !models.ActivityLevel(*body.ActivityLevel).Valid() {
		return "Activity level must be one of: Low, Moderate, High"
	}
	if body.Goals != nil && !models.Goal(*body.Goals).Valid() {
		return "Goals must be one of: Weight Loss, Maintain, Muscle Gain"
	}
	return ""
}

func conditionsList(s *string) []string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return []string{}
	}
	return []string{strings.TrimSpace(*s)}
}
