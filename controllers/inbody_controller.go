package controllers

import (
	"net/http"
	"strconv"

	"github.com/JUN1078/game-based-learning/services"
	"github.com/JUN1078/game-based-learning/utils"

	"github.com/gin-gonic/gin"
)

type InBodyController struct {
	InBody *services.InBodyService
	Parser *services.ParseService
}

func NewInBodyController(inBody *services.InBodyService, parser *services.ParseService) *InBodyController {
	return &InBodyController{InBody: inBody, Parser: parser}
}

type parseRequest struct {
	RawText     string `json:"rawText"`
	ImageBase64 string `json:"imageBase64"`
}

// resolveImageURL uploads a base64 payload for a stable URL. If the
// upload fails the data URI itself still works for parsing.
func resolveImageURL(imageBase64, keyPrefix string) string {
	if imageBase64 == "" {
		return ""
	}
	if url, err := utils.UploadBase64ImageToS3(imageBase64, keyPrefix); err == nil {
		return url
	}
	return imageBase64
}

// POST /upload/inbody  — parse only, nothing persisted until confirm
func (ic *InBodyController) Parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.RawText == "" && req.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rawText or imageBase64 required"})
		return
	}

	imageURL := resolveImageURL(req.ImageBase64, "inbody/scan")
	parsed := ic.Parser.ParseInBody(req.RawText, imageURL)
	c.JSON(http.StatusOK, gin.H{"parsed": parsed, "imageUrl": imageURL})
}

// POST /upload/inbody/confirm
func (ic *InBodyController) Confirm(c *gin.Context) {
	var input services.InBodyUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Weight == nil || *input.Weight <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight is required"})
		return
	}

	report, err := ic.InBody.Create(c.Request.Context(), c.GetString("userID"), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, report)
}

// GET /upload/inbody/latest
func (ic *InBodyController) Latest(c *gin.Context) {
	report, err := ic.InBody.Latest(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no report yet"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /upload/inbody?limit=20
func (ic *InBodyController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	reports, err := ic.InBody.ListByUser(c.Request.Context(), c.GetString("userID"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reports)
}
