package types

import (
	"strings"

	"github.com/nakamauwu/hirechat/errs"
)

// ConversationIdentity is the business key that maps to exactly one conversation.
// Implemented by [JobThread], [DirectThread] and [SupportThread].
type ConversationIdentity interface {
	Kind() ConversationKind
	// Key is the stored unique identity key.
	Key() string
	Validate() error
}

type JobThread struct {
	JobPostingID string
	CandidateID  string
}

func (JobThread) Kind() ConversationKind { return ConversationKindJobThread }

func (t JobThread) Key() string {
	return "job:" + t.JobPostingID + ":" + t.CandidateID
}

func (t JobThread) Validate() error {
	if !validIdentityPart(t.JobPostingID) {
		return errs.NewInvalidArgumentError(errs.CodeInvalidIdentity, "JobPostingID", "job posting ID is invalid")
	}
	if !validIdentityPart(t.CandidateID) {
		return errs.NewInvalidArgumentError(errs.CodeInvalidIdentity, "CandidateID", "candidate ID is invalid")
	}
	return nil
}

// DirectThread is an unordered pair of users.
// Use [NewDirectThread] so both orders yield the same identity.
type DirectThread struct {
	LowUserID  string
	HighUserID string
}

func NewDirectThread(userA, userB string) DirectThread {
	if userB < userA {
		userA, userB = userB, userA
	}
	return DirectThread{LowUserID: userA, HighUserID: userB}
}

func (DirectThread) Kind() ConversationKind { return ConversationKindDirectThread }

func (t DirectThread) Key() string {
	return "direct:" + t.LowUserID + ":" + t.HighUserID
}

func (t DirectThread) Validate() error {
	if !validIdentityPart(t.LowUserID) || !validIdentityPart(t.HighUserID) {
		return errs.NewInvalidArgumentError(errs.CodeInvalidIdentity, "UserID", "user ID is invalid")
	}
	if t.LowUserID == t.HighUserID {
		return errs.NewInvalidArgumentError(errs.CodeInvalidIdentity, "UserID", "cannot start a conversation with yourself")
	}
	if t.HighUserID < t.LowUserID {
		return errs.NewInvalidArgumentError(errs.CodeInvalidIdentity, "UserID", "user pair is not normalized")
	}
	return nil
}

type SupportThread struct {
	UserID string
}

func (SupportThread) Kind() ConversationKind { return ConversationKindSupportThread }

func (t SupportThread) Key() string {
	return "support:" + t.UserID
}

func (t SupportThread) Validate() error {
	if !validIdentityPart(t.UserID) {
		return errs.NewInvalidArgumentError(errs.CodeInvalidIdentity, "UserID", "user ID is invalid")
	}
	return nil
}

// validIdentityPart rejects separators so keys can't collide.
func validIdentityPart(s string) bool {
	return strings.TrimSpace(s) != "" && !strings.Contains(s, ":")
}
