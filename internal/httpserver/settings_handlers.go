package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warung-pos/internal/service/settings"
)

func settingsHandler(svc settingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Get(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func updateSettingsHandler(svc settingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in settings.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		out, err := svc.Update(c.Request.Context(), in)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func factoryResetHandler(svc settingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.FactoryReset(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "reset"})
	}
}
