package service

import (
	"context"
	"fmt"

	"github.com/nakamauwu/hirechat/types"
)

// SendMessage appends a message to the conversation.
// Admins that don't participate yet are joined first.
func (svc *Service) SendMessage(ctx context.Context, in types.CreateMessage) (types.CreatedMessage, error) {
	var out types.CreatedMessage

	if err := in.Validate(); err != nil {
		return out, err
	}

	caller, err := principalFromContext(ctx)
	if err != nil {
		return out, err
	}

	in.SetLoggedInUserID(caller.UserID)

	if _, err := svc.ensureAccess(ctx, in.ConversationID, caller, accessWrite); err != nil {
		return out, err
	}

	out, err = svc.Cockroach.CreateMessage(ctx, in)
	if err != nil {
		return out, err
	}

	svc.fanoutMessage(out)

	if out.Conversation.Kind == types.ConversationKindJobThread {
		svc.notifyActivity(out)
	}

	return out, nil
}

func (svc *Service) notifyActivity(created types.CreatedMessage) {
	conv := created.Conversation
	if conv.JobPostingID == nil || conv.CandidateID == nil {
		return
	}

	activity := types.ApplicationActivity{
		JobPostingID:   *conv.JobPostingID,
		CandidateID:    *conv.CandidateID,
		ConversationID: conv.ID,
		MessageID:      created.Message.ID,
		SenderID:       created.Message.SenderID,
		OccurredAt:     created.Message.CreatedAt,
	}

	svc.background(func(ctx context.Context) error {
		if err := svc.ActivitySink.MessageActivity(ctx, activity); err != nil {
			return fmt.Errorf("notify application activity: %w", err)
		}
		return nil
	})
}

// Messages returns a page of messages in chronological order.
// Page 1 holds the newest ones.
func (svc *Service) Messages(ctx context.Context, in types.ListMessages) (types.MessagesPage, error) {
	var out types.MessagesPage

	if err := in.Validate(); err != nil {
		return out, err
	}

	caller, err := principalFromContext(ctx)
	if err != nil {
		return out, err
	}

	in.SetLoggedInUserID(caller.UserID)

	if _, err := svc.ensureAccess(ctx, in.ConversationID, caller, accessRead); err != nil {
		return out, err
	}

	return svc.Cockroach.Messages(ctx, in)
}
