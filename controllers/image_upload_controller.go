package controllers

import (
	"net/http"

	"github.com/JUN1078/game-based-learning/utils"

	"github.com/gin-gonic/gin"
)

type UploadImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	KeyPrefix   string `json:"key_prefix"`
}

// POST /upload/image  — generic asset upload for game content
func UploadImage(c *gin.Context) {
	var req UploadImageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	prefix := req.KeyPrefix
	if prefix == "" {
		prefix = "general/upload"
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, prefix)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
