package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aashu-1911/Fitness-traker/models"
	"github.com/Aashu-1911/Fitness-traker/services"
)

type ChallengeController struct {
	Svc *services.ChallengeService
	Log *zap.Logger
}

func NewChallengeController(svc *services.ChallengeService, log *zap.Logger) *ChallengeController {
	return &ChallengeController{Svc: svc, Log: log}
}

func challengeView(ch *models.Challenge) gin.H {
	return gin.H{
		"id":           ch.ID,
		"type":         ch.Type,
		"title":        ch.Title,
		"description":  ch.Description,
		"isCompleted":  ch.IsCompleted,
		"dateAssigned": ch.DateAssigned,
	}
}

func (h *ChallengeController) GetDaily(c *gin.Context) {
	h.getOrCreate(c, models.ChallengeDaily)
}

func (h *ChallengeController) GetWeekly(c *gin.Context) {
	h.getOrCreate(c, models.ChallengeWeekly)
}

func (h *ChallengeController) getOrCreate(c *gin.Context, ctype models.ChallengeType) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	challenge, err := h.Svc.GetOrCreate(c.Request.Context(), userID, ctype)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			fail(c, http.StatusNotFound, "Health profile not found. Please create your profile first.")
			return
		}
		serverError(c, h.Log, "Server error while fetching challenge", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "challenge": challengeView(challenge)})
}

func (h *ChallengeController) Complete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid challenge id")
		return
	}

	challenge, err := h.Svc.Complete(c.Request.Context(), userID, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChallengeNotFound):
			fail(c, http.StatusNotFound, "Challenge not found")
		case errors.Is(err, services.ErrChallengeCompleted):
			fail(c, http.StatusBadRequest, "Challenge already completed")
		default:
			serverError(c, h.Log, "Server error while completing challenge", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Challenge completed successfully!",
		"challenge": challengeView(challenge),
	})
}

func (h *ChallengeController) GetHistory(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var ctype *models.ChallengeType
	if v := c.Query("type"); v != "" {
		t := models.ChallengeType(v)
		if !t.Valid() {
			fail(c, http.StatusBadRequest, "Invalid challenge type. Use Daily or Weekly")
			return
		}
		ctype = &t
	}

	challenges, stats, err := h.Svc.History(c.Request.Context(), userID, daysParam(c), ctype)
	if err != nil {
		serverError(c, h.Log, "Server error while fetching challenge history", err)
		return
	}

	views := make([]gin.H, 0, len(challenges))
	for i := range challenges {
		views = append(views, challengeView(&challenges[i]))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "challenges": views, "stats": stats})
}
