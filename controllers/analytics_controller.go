package controllers

import (
	"net/http"
	"time"

	"github.com/Sorin-PSP/EatWise-sub000/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

// GET /analytics/progress?date=YYYY-MM-DD
func (a *AnalyticsController) Progress(c *gin.Context) {
	progress, err := a.Analytics.DailyProgress(c.Request.Context(), c.GetUint("userID"), c.GetString("email"), dateParam(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

// GET /analytics/summary?from=YYYY-MM-DD&to=YYYY-MM-DD
// Defaults to the trailing 7 days.
func (a *AnalyticsController) Summary(c *gin.Context) {
	to := c.Query("to")
	from := c.Query("from")
	if to == "" {
		to = time.Now().Format("2006-01-02")
	}
	if from == "" {
		from = time.Now().AddDate(0, 0, -6).Format("2006-01-02")
	}

	summary, err := a.Analytics.Summarize(c.Request.Context(), c.GetUint("userID"), from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
