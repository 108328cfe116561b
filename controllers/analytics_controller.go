package controllers

import (
	"net/http"
	"strconv"

	"github.com/JUN1078/game-based-learning/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

func (ac *AnalyticsController) GameAnalytics(c *gin.Context) {
	out, err := ac.Analytics.GameAnalytics(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (ac *AnalyticsController) Leaderboard(c *gin.Context) {
	limit := 0
	if q := c.Query("limit"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = v
	}

	entries, err := ac.Analytics.Leaderboard(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
