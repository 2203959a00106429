package types

import "time"

type MarkRead struct {
	ConversationID string `json:"-"`
	UpToMessageID  *int64 `json:"up_to_message_id"`

	loggedInUserID string
}

func (in *MarkRead) SetLoggedInUserID(userID string) {
	in.loggedInUserID = userID
}

func (in MarkRead) LoggedInUserID() string {
	return in.loggedInUserID
}

func (in *MarkRead) Validate() error {
	if err := ValidConversationID(in.ConversationID); err != nil {
		return err
	}

	// Non positive ids never exist, so they fall back to the latest message.
	if in.UpToMessageID != nil && *in.UpToMessageID < 1 {
		in.UpToMessageID = nil
	}

	return nil
}

type ReadState struct {
	ConversationID string    `json:"conversation_id" db:"conversation_id"`
	UserID         string    `json:"user_id" db:"user_id"`
	ReadUpTo       int64     `json:"read_up_to" db:"last_read_message_id"`
	ReadAt         time.Time `json:"read_at" db:"last_read_at"`
}

type UnreadCount struct {
	ConversationID string `json:"conversation_id" db:"conversation_id"`
	UnreadCount    int64  `json:"unread_count" db:"unread_count"`
}

type UnreadSummary struct {
	UnreadTotal   int64         `json:"unread_total"`
	Conversations []UnreadCount `json:"conversations"`
}

func NewUnreadSummary(counts []UnreadCount) UnreadSummary {
	out := UnreadSummary{Conversations: []UnreadCount{}}
	for _, c := range counts {
		if c.UnreadCount <= 0 {
			continue
		}

		out.UnreadTotal += c.UnreadCount
		out.Conversations = append(out.Conversations, c)
	}
	return out
}
