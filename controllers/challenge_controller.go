package controllers

import (
	"errors"
	"net/http"

	"github.com/JUN1078/game-based-learning/services"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	Challenges *services.ChallengeService
}

func NewChallengeController(challenges *services.ChallengeService) *ChallengeController {
	return &ChallengeController{Challenges: challenges}
}

func (cc *ChallengeController) ListByLevel(c *gin.Context) {
	challenges, err := cc.Challenges.ListByLevel(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, challenges)
}

func (cc *ChallengeController) Create(c *gin.Context) {
	var input services.ChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge, err := cc.Challenges.Create(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrLevelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "level not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, challenge)
}

func (cc *ChallengeController) Update(c *gin.Context) {
	var input services.ChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge, err := cc.Challenges.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrChallengeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "challenge not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, challenge)
}

func (cc *ChallengeController) Delete(c *gin.Context) {
	if err := cc.Challenges.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrChallengeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "challenge not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "challenge deleted"})
}
