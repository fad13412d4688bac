package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"warung-pos/internal/domain"
)

// writeError maps repository sentinels onto HTTP statuses; anything
// unrecognized is a 500 with the error text hidden from the client.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
