package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"warung-pos/internal/domain"
	"warung-pos/internal/service/auth"
	"warung-pos/internal/service/settings"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler(svc authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "username and password required")
			return
		}
		result, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		c.JSON(http.StatusOK, gin.H{
			"id":       sess.UserID,
			"name":     sess.Name,
			"username": sess.Username,
			"role":     sess.Role,
		})
	}
}

func setupStatusHandler(svc settingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		required, err := svc.SetupRequired(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"setupRequired": required})
	}
}

func setupHandler(svc settingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in settings.SetupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		admin, err := svc.Setup(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, settings.ErrAlreadySetUp) {
				c.JSON(http.StatusConflict, gin.H{"error": "setup already completed"})
				return
			}
			if errors.Is(err, domain.ErrAlreadyExists) {
				c.JSON(http.StatusConflict, gin.H{"error": "username taken"})
				return
			}
			badRequest(c, err.Error())
			return
		}
		c.JSON(http.StatusCreated, admin)
	}
}
