package types

import "time"

type JobPostingState string

const (
	JobPostingStateDraft  JobPostingState = "draft"
	JobPostingStateOpen   JobPostingState = "open"
	JobPostingStateClosed JobPostingState = "closed"
)

// JobPosting as seen by the messaging core.
// Either CompanyID or OwnerUserID is set.
type JobPosting struct {
	ID          string          `db:"id"`
	Title       string          `db:"title"`
	State       JobPostingState `db:"state"`
	CompanyID   *string         `db:"company_id"`
	OwnerUserID *string         `db:"owner_user_id"`
	Deleted     bool            `db:"deleted"`
}

type Candidate struct {
	ID      string  `db:"id"`
	UserID  *string `db:"user_id"`
	Deleted bool    `db:"deleted"`
}

// ApplicationActivity tells the application tracking side
// that a job thread got a new message.
type ApplicationActivity struct {
	JobPostingID   string    `json:"job_posting_id"`
	CandidateID    string    `json:"candidate_id"`
	ConversationID string    `json:"conversation_id"`
	MessageID      int64     `json:"message_id"`
	SenderID       *string   `json:"sender_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}
