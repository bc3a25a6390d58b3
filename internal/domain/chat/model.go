package chat

import "time"

// Turn maps to the chat_history table. Rows are immutable once written.
type Turn struct {
	ID          int64     `db:"id" json:"id"`
	SessionID   string    `db:"session_id" json:"session_id"`
	UserMessage string    `db:"user_message" json:"user_message"`
	BotResponse string    `db:"bot_response" json:"bot_response"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Reply is the result of one chat exchange.
type Reply struct {
	Response  string
	SessionID string
	Timestamp time.Time
}
