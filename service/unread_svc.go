package service

import (
	"context"

	"github.com/nakamauwu/hirechat/types"
)

// MarkRead moves the read cursor of the logged in user forward.
// Admins that don't participate yet are joined first.
func (svc *Service) MarkRead(ctx context.Context, in types.MarkRead) (types.ReadState, error) {
	var out types.ReadState

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

	out, err = svc.Cockroach.MarkRead(ctx, in)
	if err != nil {
		return out, err
	}

	svc.fanoutRead(out)

	return out, nil
}

func (svc *Service) UnreadCount(ctx context.Context, conversationID string) (types.UnreadCount, error) {
	out := types.UnreadCount{ConversationID: conversationID}

	if err := types.ValidConversationID(conversationID); err != nil {
		return out, err
	}

	caller, err := principalFromContext(ctx)
	if err != nil {
		return out, err
	}

	if _, err := svc.ensureAccess(ctx, conversationID, caller, accessRead); err != nil {
		return out, err
	}

	out.UnreadCount, err = svc.Cockroach.UnreadCount(ctx, conversationID, caller.UserID)
	return out, err
}

// UnreadSummary adds up the unread messages of every active membership
// of the logged in user.
func (svc *Service) UnreadSummary(ctx context.Context) (types.UnreadSummary, error) {
	var out types.UnreadSummary

	caller, err := principalFromContext(ctx)
	if err != nil {
		return out, err
	}

	counts, err := svc.Cockroach.UnreadCounts(ctx, caller.UserID)
	if err != nil {
		return out, err
	}

	return types.NewUnreadSummary(counts), nil
}
