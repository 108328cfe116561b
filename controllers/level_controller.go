package controllers

import (
	"errors"
	"net/http"

	"github.com/JUN1078/game-based-learning/services"

	"github.com/gin-gonic/gin"
)

type LevelController struct {
	Levels *services.LevelService
}

func NewLevelController(levels *services.LevelService) *LevelController {
	return &LevelController{Levels: levels}
}

func (lc *LevelController) ListByGame(c *gin.Context) {
	levels, err := lc.Levels.ListByGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, levels)
}

func (lc *LevelController) Get(c *gin.Context) {
	level, err := lc.Levels.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrLevelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "level not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, level)
}

func (lc *LevelController) Create(c *gin.Context) {
	var input services.LevelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level, err := lc.Levels.Create(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, level)
}

func (lc *LevelController) Update(c *gin.Context) {
	var input services.LevelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level, err := lc.Levels.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrLevelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "level not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, level)
}

func (lc *LevelController) Delete(c *gin.Context) {
	if err := lc.Levels.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrLevelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "level not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "level deleted"})
}

type reorderInput struct {
	LevelIDs []string `json:"levelIds" binding:"required"`
}

func (lc *LevelController) Reorder(c *gin.Context) {
	var input reorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	levels, err := lc.Levels.Reorder(c.Request.Context(), c.Param("id"), input.LevelIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, levels)
}
