package types

type EventName string

const (
	EventMessageNew          EventName = "message:new"
	EventMessageRead         EventName = "message:read"
	EventConversationUpdated EventName = "inbox:conversation_updated"
	EventUnreadSummary       EventName = "inbox:unread_summary"
)

func (n EventName) String() string {
	return string(n)
}

// Event is the frame pushed to real-time clients.
type Event struct {
	Name EventName `json:"event"`
	Data any       `json:"data"`
}

type MessageNewData struct {
	ConversationID string  `json:"conversation_id"`
	Message        Message `json:"message"`
}

type MessageReadData struct {
	ConversationID string `json:"conversation_id"`
	UserID         string `json:"user_id"`
	ReadUpTo       int64  `json:"read_up_to"`
}

type ConversationUpdatedData struct {
	Conversation Conversation `json:"conversation"`
}

type UnreadSummaryData struct {
	UnreadTotal int64 `json:"unread_total"`
}
