package controllers

import (
	"errors"
	"net/http"

	"github.com/JUN1078/game-based-learning/services"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	Attempts *services.AttemptService
}

func NewAttemptController(attempts *services.AttemptService) *AttemptController {
	return &AttemptController{Attempts: attempts}
}

type startAttemptInput struct {
	GameID      string `json:"gameId" binding:"required"`
	TotalLevels int    `json:"totalLevels"`
}

func (ac *AttemptController) Start(c *gin.Context) {
	var input startAttemptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := ac.Attempts.Start(c.Request.Context(), input.GameID, c.GetString("userID"), input.TotalLevels)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, attempt)
}

func (ac *AttemptController) Update(c *gin.Context) {
	var input services.AttemptUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := ac.Attempts.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrAttemptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "attempt not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, attempt)
}

type completeAttemptInput struct {
	Score int `json:"score"`
}

func (ac *AttemptController) Complete(c *gin.Context) {
	var input completeAttemptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := ac.Attempts.Complete(c.Request.Context(), c.Param("id"), input.Score)
	if err != nil {
		if errors.Is(err, services.ErrAttemptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "attempt not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, attempt)
}

func (ac *AttemptController) ListMine(c *gin.Context) {
	attempts, err := ac.Attempts.ListByUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, attempts)
}
