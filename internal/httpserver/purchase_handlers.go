package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	purchaserepo "warung-pos/internal/repository/purchase"
	"warung-pos/internal/service/purchase"
)

func listPurchasesHandler(svc purchaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f purchaserepo.ListFilter
		var err error
		if f.From, err = parseTimeParam(c.Query("from")); err != nil {
			badRequest(c, "invalid from")
			return
		}
		if f.To, err = parseTimeParam(c.Query("to")); err != nil {
			badRequest(c, "invalid to")
			return
		}
		f.UserID = c.Query("userId")

		purchases, err := svc.List(c.Request.Context(), f)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"purchases": purchases})
	}
}

func purchaseSummaryHandler(svc purchaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f purchaserepo.ListFilter
		var err error
		if f.From, err = parseTimeParam(c.Query("from")); err != nil {
			badRequest(c, "invalid from")
			return
		}
		if f.To, err = parseTimeParam(c.Query("to")); err != nil {
			badRequest(c, "invalid to")
			return
		}
		summary, err := svc.Summary(c.Request.Context(), f)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func createPurchaseHandler(svc purchaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in purchase.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		sess := currentSession(c)
		created, err := svc.Create(c.Request.Context(), purchase.Recorder{ID: sess.UserID, Name: sess.Name}, in)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updatePurchaseHandler(svc purchaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in purchase.Input
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

func deletePurchaseHandler(svc purchaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
