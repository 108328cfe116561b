package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JUN1078/game-based-learning/services"

	"github.com/gin-gonic/gin"
)

type EnergyController struct {
	Energy *services.EnergyService
}

func NewEnergyController(energy *services.EnergyService) *EnergyController {
	return &EnergyController{Energy: energy}
}

// GET /daily/energy?date=2026-03-14&neatAdjustment=250&recoveryModifier=-100
func (ec *EnergyController) Daily(c *gin.Context) {
	date := time.Now()
	if q := c.Query("date"); q != "" {
		// Local zone, so the day window matches the time.Now default.
		parsed, err := time.ParseInLocation("2006-01-02", q, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	neat := services.DefaultNeatAdjustment
	if q := c.Query("neatAdjustment"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "neatAdjustment must be an integer"})
			return
		}
		neat = v
	}

	recovery := services.DefaultRecoveryModifier
	if q := c.Query("recoveryModifier"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "recoveryModifier must be an integer"})
			return
		}
		recovery = v
	}

	report, err := ec.Energy.Daily(c.Request.Context(), c.GetString("userID"), date, neat, recovery)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /weekly/summary?date=2026-03-14  — date anchors the 7-day window
func (ec *EnergyController) Weekly(c *gin.Context) {
	endDate := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.ParseInLocation("2006-01-02", q, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		endDate = parsed
	}

	summary, err := ec.Energy.Weekly(c.Request.Context(), c.GetString("userID"), endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
