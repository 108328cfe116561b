package controllers

import (
	"errors"
	"net/http"

	"github.com/JUN1078/game-based-learning/services"

	"github.com/gin-gonic/gin"
)

type GameController struct {
	Games *services.GameService
}

func NewGameController(games *services.GameService) *GameController {
	return &GameController{Games: games}
}

func (gc *GameController) List(c *gin.Context) {
	games, err := gc.Games.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, games)
}

func (gc *GameController) Get(c *gin.Context) {
	game, err := gc.Games.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, game)
}

func (gc *GameController) Create(c *gin.Context) {
	var input services.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := gc.Games.Create(c.Request.Context(), input, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, game)
}

func (gc *GameController) Update(c *gin.Context) {
	var input services.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := gc.Games.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, game)
}

func (gc *GameController) Delete(c *gin.Context) {
	if err := gc.Games.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "game deleted"})
}

func (gc *GameController) Publish(c *gin.Context) {
	game, err := gc.Games.Publish(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, game)
}

func (gc *GameController) Duplicate(c *gin.Context) {
	game, err := gc.Games.Duplicate(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, game)
}
