package types

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nakamauwu/hirechat/errs"
)

const (
	MaxMessageLength = 4000

	DefaultMessagesPageSize = 50
	MaxMessagesPageSize     = 200
)

type MessageKind string

const (
	MessageKindText   MessageKind = "text"
	MessageKindSystem MessageKind = "system"
)

func (k MessageKind) String() string {
	return string(k)
}

type MessageTemplate string

const MessageTemplateApplicationConfirmation MessageTemplate = "application_confirmation"

// ApplicationConfirmationBody is the body of seeded confirmation messages.
const ApplicationConfirmationBody = "Your application was received. You can use this conversation to talk with the hiring team."

type Message struct {
	ID             int64            `json:"id" db:"id"`
	ConversationID string           `json:"conversation_id" db:"conversation_id"`
	SenderID       *string          `json:"sender_id" db:"sender_id"`
	Kind           MessageKind      `json:"kind" db:"kind"`
	Template       *MessageTemplate `json:"template,omitempty" db:"template"`
	Body           string           `json:"body" db:"body"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	EditedAt       *time.Time       `json:"edited_at,omitempty" db:"edited_at"`
	DeletedAt      *time.Time       `json:"deleted_at,omitempty" db:"deleted_at"`
}

func (m Message) Deleted() bool {
	return m.DeletedAt != nil
}

type CreateMessage struct {
	ConversationID string `json:"-"`
	Body           string `json:"body"`

	loggedInUserID string
}

func (in *CreateMessage) SetLoggedInUserID(userID string) {
	in.loggedInUserID = userID
}

func (in CreateMessage) LoggedInUserID() string {
	return in.loggedInUserID
}

func (in *CreateMessage) Validate() error {
	if err := ValidConversationID(in.ConversationID); err != nil {
		return err
	}

	in.Body = strings.TrimSpace(in.Body)

	if in.Body == "" {
		return errs.MessageEmpty
	}

	if utf8.RuneCountInString(in.Body) > MaxMessageLength {
		return errs.MessageTooLong
	}

	return nil
}

type ListMessages struct {
	ConversationID string
	Page           uint
	PageSize       uint

	loggedInUserID string
}

func (in *ListMessages) SetLoggedInUserID(userID string) {
	in.loggedInUserID = userID
}

func (in ListMessages) LoggedInUserID() string {
	return in.loggedInUserID
}

// Validate also applies page defaults.
// Page sizes above the maximum are clamped.
func (in *ListMessages) Validate() error {
	if err := ValidConversationID(in.ConversationID); err != nil {
		return err
	}

	if in.Page == 0 {
		in.Page = 1
	}

	if in.PageSize == 0 {
		in.PageSize = DefaultMessagesPageSize
	}

	if in.PageSize > MaxMessagesPageSize {
		in.PageSize = MaxMessagesPageSize
	}

	// The offset must fit a signed INT8.
	if in.Page-1 > math.MaxInt64/in.PageSize {
		return errs.NewInvalidArgumentError(errs.CodeValidationFailed, "Page", "page overflow")
	}

	return nil
}

// Offset of the page counting from the newest message.
func (in ListMessages) Offset() uint {
	return (in.Page - 1) * in.PageSize
}

type MessagesPage struct {
	Items    []Message `json:"items"`
	Page     uint      `json:"page"`
	PageSize uint      `json:"page_size"`
	HasMore  bool      `json:"has_more"`
}

// CreatedMessage is a persisted message plus the conversation state it produced.
type CreatedMessage struct {
	Message      Message      `json:"message"`
	Conversation Conversation `json:"conversation"`
}
