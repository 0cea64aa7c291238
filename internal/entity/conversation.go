package entity

import "time"

// Message is one entry in a conversation log. Logs are append-only and
// timestamps never decrease in insertion order.
type Message struct {
	ID        string
	Text      string
	Timestamp time.Time
	IsFromMe  bool
}

// Conversation is a message thread between the local user and one
// counterparty. CounterpartyID is a weak reference into the user store;
// the display fields are denormalized so the inbox can render without a
// lookup.
type Conversation struct {
	ID               string
	CounterpartyID   string
	CounterpartyName string
	Avatar           string
	Online           bool
	UnreadCount      int
	Messages         []Message
}

// LastMessage returns the newest message and false when the log is
// empty.
func (c Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}
