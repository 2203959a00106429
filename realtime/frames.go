package realtime

import (
	"encoding/json"

	"github.com/nakamauwu/hirechat/errs"
)

const (
	commandJoinConversation  = "join_conversation"
	commandLeaveConversation = "leave_conversation"
)

const codeUnknownCommand errs.Code = "UNKNOWN_COMMAND"

// commandFrame is a client request. Its ID comes back in the ack.
type commandFrame struct {
	ID      string          `json:"id"`
	Command string          `json:"command"`
	Data    json.RawMessage `json:"data"`
}

type conversationData struct {
	ConversationID string `json:"conversation_id"`
}

type ackFrame struct {
	Ack   string    `json:"ack"`
	OK    bool      `json:"ok"`
	Error *ackError `json:"error,omitempty"`
}

type ackError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func nackFrame(frameID string, code errs.Code, msg string) ackFrame {
	return ackFrame{
		Ack:   frameID,
		Error: &ackError{Code: string(code), Message: msg},
	}
}
