package session

import (
	"time"

	"github.com/google/uuid"
)

// Origin tells who authored a message.
type Origin string

const (
	OriginUser Origin = "user"
	OriginBot  Origin = "bot"
)

// Message is one conversational turn. Sessions only hand out copies.
type Message struct {
	ID     string    `json:"id"`
	Text   string    `json:"text"`
	Origin Origin    `json:"origin"`
	SentAt time.Time `json:"sentAt"`
}

// newMessageID returns a time-ordered UUIDv7, falling back to a random UUID if the
// clock sequence cannot be read.
func newMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
