package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func summaryReportHandler(svc reportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := parseSaleFilter(c)
		if err != nil {
			badRequest(c, err.Error())
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

// profitReportHandler defaults to the current month when no range is given.
func profitReportHandler(svc reportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, err := parseTimeParam(c.Query("from"))
		if err != nil {
			badRequest(c, "invalid from")
			return
		}
		to, err := parseTimeParam(c.Query("to"))
		if err != nil {
			badRequest(c, "invalid to")
			return
		}
		if from.IsZero() && to.IsZero() {
			now := time.Now()
			from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
			to = now
		}

		rep, err := svc.Profit(c.Request.Context(), from, to)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rep)
	}
}
