package controllers

import (
	"net/http"

	"github.com/JUN1078/game-based-learning/services"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	AI *services.OpenAIService
}

func NewAIController(ai *services.OpenAIService) *AIController {
	return &AIController{AI: ai}
}

// POST /ai/generate-questions
func (ic *AIController) GenerateQuestions(c *gin.Context) {
	var req services.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !ic.AI.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI generation not configured"})
		return
	}

	questions, err := ic.AI.GenerateQuestions(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

type imagePromptInput struct {
	Prompt string `json:"prompt" binding:"required"`
}

// POST /ai/generate-image
func (ic *AIController) GenerateImage(c *gin.Context) {
	var req imagePromptInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !ic.AI.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI generation not configured"})
		return
	}

	url, err := ic.AI.GenerateImage(req.Prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
