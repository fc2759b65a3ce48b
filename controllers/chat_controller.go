package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/cornbelt-mill/cornbelt-site-api/config"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
	"github.com/cornbelt-mill/cornbelt-site-api/services"
)

// ChatMessageRequest represents a message posted from the chat widget
type ChatMessageRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// PostChatMessage handles POST /api/chat - stores the visitor's message,
// picks the automated reply from the bot-response table and stores it as a
// second row. Both rows are returned so the widget can render them.
func PostChatMessage(c *gin.Context) {
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	db := config.GetDB()

	userMessage := models.ChatMessage{
		SessionID: req.SessionID,
		Sender:    models.ChatSenderUser,
		Message:   req.Message,
	}
	if err := db.Create(&userMessage).Error; err != nil {
		dbError(c, "Failed to save message")
		return
	}

	var responses []models.BotResponse
	if err := db.Order("display_order ASC, id ASC").Find(&responses).Error; err != nil {
		dbError(c, "Failed to load bot responses")
		return
	}

	botMessage := models.ChatMessage{
		SessionID: req.SessionID,
		Sender:    models.ChatSenderBot,
		Message:   services.MatchBotResponse(req.Message, responses),
	}
	if err := db.Create(&botMessage).Error; err != nil {
		dbError(c, "Failed to save reply")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"user_message": userMessage,
			"bot_message":  botMessage,
		},
	})
}

// ListChatSessions handles GET /api/admin/chat-sessions - all chat rows
// grouped into conversations by session id, row order preserved
func ListChatSessions(c *gin.Context) {
	db := config.GetDB()
	var rows []models.ChatMessage
	if err := db.Order("id ASC").Find(&rows).Error; err != nil {
		dbError(c, "Failed to fetch chat messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.GroupChatSessions(rows),
	})
}

// GetChatSession handles GET /api/admin/chat/:sessionID - all messages of
// one conversation
func GetChatSession(c *gin.Context) {
	db := config.GetDB()
	var rows []models.ChatMessage
	if err := db.Where("session_id = ?", c.Param("sessionID")).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		dbError(c, "Failed to fetch chat messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rows,
	})
}

// PostAdminChatMessage handles POST /api/admin/chat/:sessionID - lets an
// admin reply inside an existing conversation. No bot reply is generated.
func PostAdminChatMessage(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	message := models.ChatMessage{
		SessionID: c.Param("sessionID"),
		Sender:    models.ChatSenderAdmin,
		Message:   req.Message,
	}

	db := config.GetDB()
	if err := db.Create(&message).Error; err != nil {
		dbError(c, "Failed to save message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    message,
	})
}
