package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aashu-1911/Fitness-traker/services"
)

type AuthController struct {
	Svc *services.AuthService
	Log *zap.Logger
}

func NewAuthController(svc *services.AuthService, log *zap.Logger) *AuthController {
	return &AuthController{Svc: svc, Log: log}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Please provide name, email and a password of at least 6 characters")
		return
	}

	user, err := h.Svc.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			fail(c, http.StatusBadRequest, "Email already registered")
			return
		}
		serverError(c, h.Log, "Server error during registration", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"user":    gin.H{"id": user.PublicID, "name": user.Name, "email": user.Email},
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Please provide email and password")
		return
	}

	token, user, err := h.Svc.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		serverError(c, h.Log, "Server error during login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    gin.H{"id": user.PublicID, "name": user.Name, "email": user.Email},
	})
}
