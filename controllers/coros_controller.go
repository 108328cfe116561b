package controllers

import (
	"net/http"
	"strconv"

	"github.com/JUN1078/game-based-learning/services"

	"github.com/gin-gonic/gin"
)

type CorosController struct {
	Coros  *services.CorosService
	Parser *services.ParseService
}

func NewCorosController(coros *services.CorosService, parser *services.ParseService) *CorosController {
	return &CorosController{Coros: coros, Parser: parser}
}

// POST /upload/coros
func (cc *CorosController) Parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.RawText == "" && req.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rawText or imageBase64 required"})
		return
	}

	imageURL := resolveImageURL(req.ImageBase64, "coros/session")
	parsed := cc.Parser.ParseCoros(req.RawText, imageURL)
	c.JSON(http.StatusOK, gin.H{"parsed": parsed, "imageUrl": imageURL})
}

// POST /upload/coros/confirm
func (cc *CorosController) Confirm(c *gin.Context) {
	var input services.CorosUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ActiveCalories == nil || *input.ActiveCalories < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activeCalories is required"})
		return
	}

	upload, err := cc.Coros.Create(c.Request.Context(), c.GetString("userID"), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, upload)
}

// GET /upload/coros?limit=20
func (cc *CorosController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	uploads, err := cc.Coros.ListByUser(c.Request.Context(), c.GetString("userID"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, uploads)
}
