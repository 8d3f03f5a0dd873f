package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aashu-1911/Fitness-traker/services"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
	Log *zap.Logger
}

func NewAnalyticsController(svc *services.AnalyticsService, log *zap.Logger) *AnalyticsController {
	return &AnalyticsController{Svc: svc, Log: log}
}

func (h *AnalyticsController) GetWeightTrend(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	trend, err := h.Svc.WeightTrend(c.Request.Context(), userID, daysParam(c))
	if err != nil {
		serverError(c, h.Log, "Server error while fetching weight trend", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": trend.Data, "stats": trend.Stats})
}

func (h *AnalyticsController) GetWaterTrend(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	trend, err := h.Svc.WaterTrend(c.Request.Context(), userID, daysParam(c))
	if err != nil {
		serverError(c, h.Log, "Server error while fetching water trend", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": trend.Data, "stats": trend.Stats})
}

func (h *AnalyticsController) GetCalorieTrend(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	trend, err := h.Svc.CalorieTrend(c.Request.Context(), userID, daysParam(c))
	if err != nil {
		serverError(c, h.Log, "Server error while fetching calorie trend", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": trend.Data, "stats": trend.Stats})
}

func (h *AnalyticsController) GetWorkoutSummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	summary, err := h.Svc.WorkoutSummary(c.Request.Context(), userID, daysParam(c))
	if err != nil {
		serverError(c, h.Log, "Server error while fetching workout summary", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary.Data, "summary": summary.Summary})
}

func (h *AnalyticsController) GetDashboard(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	dashboard, err := h.Svc.Dashboard(c.Request.Context(), userID, daysParam(c))
	if err != nil {
		serverError(c, h.Log, "Server error while fetching dashboard analytics", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"analytics": dashboard.Analytics,
		"chartData": dashboard.ChartData,
	})
}
