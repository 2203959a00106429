package service

import (
	"context"

	"github.com/nakamauwu/hirechat/types"
)

//go:generate go tool moq -out mocks_test.go . JobPostings CompanyRoster Candidates ActivitySink Publisher

type JobPostings interface {
	JobPosting(ctx context.Context, jobPostingID string) (types.JobPosting, error)
}

type CompanyRoster interface {
	// CompanyStaff returns the active staff user IDs.
	CompanyStaff(ctx context.Context, companyID string) ([]string, error)
}

type Candidates interface {
	Candidate(ctx context.Context, candidateID string) (types.Candidate, error)
}

// ActivitySink is told about new messages on job threads.
type ActivitySink interface {
	MessageActivity(ctx context.Context, activity types.ApplicationActivity) error
}

// Publisher delivers real-time events.
// Conversation events reach connections that joined the conversation room,
// user events reach every connection of the user.
type Publisher interface {
	PublishToConversation(ctx context.Context, conversationID string, ev types.Event) error
	PublishToUser(ctx context.Context, userID string, ev types.Event) error
}

type discardActivity struct{}

func (discardActivity) MessageActivity(context.Context, types.ApplicationActivity) error {
	return nil
}

type discardPublisher struct{}

func (discardPublisher) PublishToConversation(context.Context, string, types.Event) error {
	return nil
}

func (discardPublisher) PublishToUser(context.Context, string, types.Event) error {
	return nil
}
