package history

import "time"

// Record is a single transcript row.
type Record struct {
	ID        int64     `json:"id"`
	MessageID string    `json:"message_id"`
	SessionID string    `json:"session_id"`
	Origin    string    `json:"origin"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
