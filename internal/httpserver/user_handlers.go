package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"warung-pos/internal/domain"
	"warung-pos/internal/service/user"
)

func listUsersHandler(svc userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

func createUserHandler(svc userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				c.JSON(http.StatusConflict, gin.H{"error": "username taken"})
				return
			}
			badRequest(c, err.Error())
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateUserHandler(svc userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		updated, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// deleteUserHandler refuses to let an admin delete their own account.
func deleteUserHandler(svc userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if sess := currentSession(c); sess.UserID == id {
			badRequest(c, "cannot delete your own account")
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
