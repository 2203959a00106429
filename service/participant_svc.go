package service

import (
	"context"

	"github.com/nakamauwu/hirechat/auth"
	"github.com/nakamauwu/hirechat/errs"
	"github.com/nakamauwu/hirechat/types"
)

type accessMode int

const (
	// accessRead lets admins observe without joining.
	accessRead accessMode = iota
	// accessWrite makes admins active participants before writing.
	accessWrite
)

func principalFromContext(ctx context.Context) (auth.Principal, error) {
	p, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return p, errs.Unauthenticated
	}
	return p, nil
}

// ensureAccess checks the conversation exists and the caller is an
// active participant of it. Admins are let through. With accessWrite
// they are also joined as admin participants.
func (svc *Service) ensureAccess(ctx context.Context, conversationID string, caller auth.Principal, mode accessMode) (types.Conversation, error) {
	conv, err := svc.Cockroach.Conversation(ctx, conversationID)
	if err != nil {
		return conv, err
	}

	p, ok, err := svc.Cockroach.Participant(ctx, conversationID, caller.UserID)
	if err != nil {
		return conv, err
	}

	if ok && p.Active {
		return conv, nil
	}

	if !caller.IsAdmin() {
		return conv, errs.Forbidden
	}

	if mode == accessWrite {
		_, err = svc.Cockroach.SyncParticipants(ctx, conversationID, []types.DesiredParticipant{
			{UserID: caller.UserID, Role: types.RoleAdmin},
		})
		if err != nil {
			return conv, err
		}
	}

	return conv, nil
}

// JoinConversation makes the logged in admin an active participant.
// Non admin callers only succeed when they already participate.
func (svc *Service) JoinConversation(ctx context.Context, conversationID string) (types.Participant, error) {
	var out types.Participant

	if err := types.ValidConversationID(conversationID); err != nil {
		return out, err
	}

	caller, err := principalFromContext(ctx)
	if err != nil {
		return out, err
	}

	if _, err := svc.ensureAccess(ctx, conversationID, caller, accessWrite); err != nil {
		return out, err
	}

	out, _, err = svc.Cockroach.Participant(ctx, conversationID, caller.UserID)
	if err != nil {
		return out, err
	}

	svc.fanoutConversationUpdated(conversationID)

	return out, nil
}

// AuthorizeRoom tells whether the logged in user may receive the real-time
// events of a conversation. It never joins the caller.
func (svc *Service) AuthorizeRoom(ctx context.Context, conversationID string) error {
	if err := types.ValidConversationID(conversationID); err != nil {
		return err
	}

	caller, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	_, err = svc.ensureAccess(ctx, conversationID, caller, accessRead)
	return err
}
