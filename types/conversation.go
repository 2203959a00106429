package types

import (
	"strings"
	"time"

	"github.com/nakamauwu/hirechat/errs"
	"github.com/nakamauwu/hirechat/id"
	"github.com/nakamauwu/hirechat/validator"
)

type ConversationKind string

const (
	ConversationKindJobThread     ConversationKind = "job_thread"
	ConversationKindDirectThread  ConversationKind = "direct_thread"
	ConversationKindSupportThread ConversationKind = "support_thread"
)

func (k ConversationKind) String() string {
	return string(k)
}

func (k ConversationKind) Valid() bool {
	switch k {
	case ConversationKindJobThread, ConversationKindDirectThread, ConversationKindSupportThread:
		return true
	}
	return false
}

type ConversationStatus string

const (
	ConversationStatusActive   ConversationStatus = "active"
	ConversationStatusArchived ConversationStatus = "archived"
	ConversationStatusClosed   ConversationStatus = "closed"
)

func (s ConversationStatus) String() string {
	return string(s)
}

func (s ConversationStatus) Valid() bool {
	switch s {
	case ConversationStatusActive, ConversationStatusArchived, ConversationStatusClosed:
		return true
	}
	return false
}

type Conversation struct {
	ID            string             `json:"id" db:"id"`
	Kind          ConversationKind   `json:"kind" db:"kind"`
	IdentityKey   string             `json:"-" db:"identity_key"`
	JobPostingID  *string            `json:"job_posting_id,omitempty" db:"job_posting_id"`
	CandidateID   *string            `json:"candidate_id,omitempty" db:"candidate_id"`
	Title         *string            `json:"title,omitempty" db:"title"`
	Status        ConversationStatus `json:"status" db:"status"`
	LastMessageID int64              `json:"last_message_id" db:"last_message_id"`
	CreatedAt     time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" db:"updated_at"`

	// UnreadCount is set for the viewer when they participate.
	UnreadCount  *int64        `json:"unread_count,omitempty" db:"unread_count"`
	Participants []Participant `json:"participants,omitempty" db:"-"`
}

// ResolvedConversation is the result of a create-or-get.
type ResolvedConversation struct {
	Conversation
	Created bool `json:"created"`
}

type CreateConversation struct {
	Identity ConversationIdentity
	Title    *string
}

func (in CreateConversation) Validate() error {
	if in.Identity == nil {
		return errs.NewInvalidArgumentError(errs.CodeInvalidIdentity, "Identity", "identity is required")
	}
	return in.Identity.Validate()
}

type CreateJobThread struct {
	JobPostingID string `json:"job_posting_id"`
	CandidateID  string `json:"candidate_id"`

	loggedInUserID string
}

func (in *CreateJobThread) SetLoggedInUserID(userID string) {
	in.loggedInUserID = userID
}

func (in CreateJobThread) LoggedInUserID() string {
	return in.loggedInUserID
}

func (in *CreateJobThread) Validate() error {
	in.JobPostingID = strings.TrimSpace(in.JobPostingID)
	in.CandidateID = strings.TrimSpace(in.CandidateID)
	return JobThread{JobPostingID: in.JobPostingID, CandidateID: in.CandidateID}.Validate()
}

type CreateDirectThread struct {
	UserID string `json:"user_id"`

	loggedInUserID string
}

func (in *CreateDirectThread) SetLoggedInUserID(userID string) {
	in.loggedInUserID = userID
}

func (in CreateDirectThread) LoggedInUserID() string {
	return in.loggedInUserID
}

func (in *CreateDirectThread) Validate() error {
	in.UserID = strings.TrimSpace(in.UserID)
	return NewDirectThread(in.loggedInUserID, in.UserID).Validate()
}

type ListConversations struct {
	Kind     *ConversationKind
	Query    *string
	All      bool
	PageArgs PageArgs

	loggedInUserID string
}

func (in *ListConversations) SetLoggedInUserID(userID string) {
	in.loggedInUserID = userID
}

func (in ListConversations) LoggedInUserID() string {
	return in.loggedInUserID
}

func (in *ListConversations) Validate() error {
	v := validator.New()

	if in.Kind != nil {
		v.Check(in.Kind.Valid(), "Kind", "Kind is invalid")
	}

	if in.Query != nil {
		*in.Query = strings.TrimSpace(*in.Query)
		if *in.Query == "" {
			in.Query = nil
		}
	}

	if err := in.PageArgs.Validate(); err != nil {
		return err
	}

	return v.AsError()
}

type UpdateConversation struct {
	ConversationID string             `json:"-"`
	Status         ConversationStatus `json:"status"`
}

func (in UpdateConversation) Validate() error {
	v := validator.New()

	v.Check(id.Valid(in.ConversationID), "ConversationID", "Conversation ID is invalid")
	v.Check(in.Status.Valid(), "Status", "Status is invalid")

	return v.AsError()
}

func ValidConversationID(s string) error {
	if !id.Valid(s) {
		return errs.NewInvalidArgumentError(errs.CodeValidationFailed, "ConversationID", "Conversation ID is invalid")
	}
	return nil
}
