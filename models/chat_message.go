package models

import "time"

// Chat message senders.
const (
	ChatSenderUser  = "user"
	ChatSenderBot   = "bot"
	ChatSenderAdmin = "admin"
)

// ChatMessage is a single utterance in the storefront chat widget.
// Messages are append-only and grouped into sessions by SessionID, which is
// generated by the browser once per visitor and reused across messages.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"not null;index" json:"session_id"`
	Sender    string    `gorm:"not null" json:"sender"` // user, bot or admin
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the ChatMessage model
func (ChatMessage) TableName() string {
	return "chat_messages"
}

// ChatSession is a derived view of one widget conversation: all messages
// sharing a session id, in insertion order.
type ChatSession struct {
	SessionID     string        `json:"session_id"`
	Messages      []ChatMessage `json:"messages"`
	LastMessageAt time.Time     `json:"last_message_at"`
}

// GroupChatSessions groups a flat, ordered list of chat rows by session id.
// Row order within each session is preserved and LastMessageAt is taken
// from the final row of the group. Sessions appear in order of their first
// message.
func GroupChatSessions(rows []ChatMessage) []ChatSession {
	index := make(map[string]int)
	sessions := make([]ChatSession, 0)
	for _, row := range rows {
		i, ok := index[row.SessionID]
		if !ok {
			i = len(sessions)
			index[row.SessionID] = i
			sessions = append(sessions, ChatSession{SessionID: row.SessionID})
		}
		sessions[i].Messages = append(sessions[i].Messages, row)
		sessions[i].LastMessageAt = row.CreatedAt
	}
	return sessions
}
