package services

import (
	"testing"

	"github.com/cornbelt-mill/cornbelt-site-api/models"
	"github.com/stretchr/testify/assert"
)

func TestMatchBotResponseFirstMatchWins(t *testing.T) {
	// Table order is precedence order: the broader keyword in row 0 wins
	// over the more specific match in row 1.
	rows := []models.BotResponse{
		{Keyword: "ship", Answer: "We ship across the Midwest."},
		{Keyword: "shipping cost", Answer: "Shipping is $8 flat."},
	}

	reply := MatchBotResponse("what is the shipping cost", rows)
	assert.Equal(t, "We ship across the Midwest.", reply)
}

func TestMatchBotResponseCaseInsensitive(t *testing.T) {
	rows := []models.BotResponse{
		{Keyword: "Hours", Answer: "We're open 8-5 Monday through Saturday."},
	}

	assert.Equal(t, rows[0].Answer, MatchBotResponse("WHAT ARE YOUR HOURS?", rows))
	assert.Equal(t, rows[0].Answer, MatchBotResponse("hours", rows))
}

func TestMatchBotResponseFallback(t *testing.T) {
	rows := []models.BotResponse{
		{Keyword: "flour", Answer: "We mill corn and wheat flour."},
	}

	assert.Equal(t, FallbackReply, MatchBotResponse("do you sell bread?", rows))
}

func TestMatchBotResponseEmptyTable(t *testing.T) {
	assert.Equal(t, FallbackReply, MatchBotResponse("anything", nil))
}

func TestMatchBotResponseSkipsBlankKeywords(t *testing.T) {
	// A blank keyword would otherwise match every message.
	rows := []models.BotResponse{
		{Keyword: "   ", Answer: "should never fire"},
		{Keyword: "price", Answer: "See the products page for prices."},
	}

	assert.Equal(t, "See the products page for prices.", MatchBotResponse("price list?", rows))
	assert.Equal(t, FallbackReply, MatchBotResponse("hello", rows))
}
