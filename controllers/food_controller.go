package controllers

import (
	"net/http"
	"strconv"

	"github.com/JUN1078/game-based-learning/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Food   *services.FoodService
	Parser *services.ParseService
}

func NewFoodController(food *services.FoodService, parser *services.ParseService) *FoodController {
	return &FoodController{Food: food, Parser: parser}
}

// POST /food/parse
func (fc *FoodController) Parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.RawText == "" && req.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rawText or imageBase64 required"})
		return
	}

	imageURL := resolveImageURL(req.ImageBase64, "food/photo")
	items := fc.Parser.ParseFood(req.RawText, imageURL)
	c.JSON(http.StatusOK, gin.H{"items": items, "imageUrl": imageURL})
}

type logFoodInput struct {
	Items []services.FoodLogItemInput `json:"items" binding:"required,min=1,dive"`
}

// POST /food/log  — persists only user-confirmed items
func (fc *FoodController) Log(c *gin.Context) {
	var input logFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logs, err := fc.Food.LogItems(c.Request.Context(), c.GetString("userID"), input.Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, logs)
}

// GET /food/log?limit=50
func (fc *FoodController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	logs, err := fc.Food.ListByUser(c.Request.Context(), c.GetString("userID"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
