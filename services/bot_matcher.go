package services

import (
	"strings"

	"github.com/cornbelt-mill/cornbelt-site-api/models"
)

// FallbackReply is returned when no keyword matches the visitor's message.
const FallbackReply = "Thanks for reaching out! We'll get back to you shortly. " +
	"For urgent questions, please call us or use the contact form."

// MatchBotResponse scans the bot-response rows in table order and returns
// the answer of the first row whose keyword appears in the message.
// Matching is case-insensitive substring containment; the first match wins
// even when a later row matches more of the message. No match returns
// FallbackReply.
func MatchBotResponse(message string, rows []models.BotResponse) string {
	normalized := strings.ToLower(message)
	for _, row := range rows {
		keyword := strings.ToLower(strings.TrimSpace(row.Keyword))
		if keyword == "" {
			continue
		}
		if strings.Contains(normalized, keyword) {
			return row.Answer
		}
	}
	return FallbackReply
}
