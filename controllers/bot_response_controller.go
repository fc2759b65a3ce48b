package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/cornbelt-mill/cornbelt-site-api/config"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
)

// BotResponseRequest represents the request body for bot response writes
type BotResponseRequest struct {
	Keyword      string `json:"keyword" binding:"required"`
	Answer       string `json:"answer" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

// ListBotResponses handles GET /api/admin/bot-responses - rows in match
// precedence order (also read by the chat widget)
func ListBotResponses(c *gin.Context) {
	db := config.GetDB()
	var responses []models.BotResponse
	if err := db.Order("display_order ASC, id ASC").Find(&responses).Error; err != nil {
		dbError(c, "Failed to fetch bot responses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    responses,
	})
}

// CreateBotResponse handles POST /api/admin/bot-responses
func CreateBotResponse(c *gin.Context) {
	var req BotResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	response := models.BotResponse{
		Keyword:      req.Keyword,
		Answer:       req.Answer,
		DisplayOrder: req.DisplayOrder,
	}

	db := config.GetDB()
	if err := db.Create(&response).Error; err != nil {
		dbError(c, "Failed to create bot response")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    response,
	})
}

// UpdateBotResponse handles PUT /api/admin/bot-responses/:id
func UpdateBotResponse(c *gin.Context) {
	db := config.GetDB()
	var response models.BotResponse
	if err := db.First(&response, c.Param("id")).Error; err != nil {
		notFound(c, "BOT_RESPONSE_NOT_FOUND", "Bot response not found")
		return
	}

	var req BotResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	response.Keyword = req.Keyword
	response.Answer = req.Answer
	response.DisplayOrder = req.DisplayOrder

	if err := db.Save(&response).Error; err != nil {
		dbError(c, "Failed to update bot response")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    response,
	})
}

// DeleteBotResponse handles DELETE /api/admin/bot-responses/:id
func DeleteBotResponse(c *gin.Context) {
	db := config.GetDB()
	var response models.BotResponse
	if err := db.First(&response, c.Param("id")).Error; err != nil {
		notFound(c, "BOT_RESPONSE_NOT_FOUND", "Bot response not found")
		return
	}

	if err := db.Delete(&response).Error; err != nil {
		dbError(c, "Failed to delete bot response")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
