package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nakamauwu/hirechat/types"
	"golang.org/x/sync/errgroup"
)

// fanoutConcurrency bounds the per participant publishes of one fan-out.
const fanoutConcurrency = 8

// fanoutMessage publishes message:new to the conversation room and
// refreshes the inbox of every active participant.
// It runs in the background, after the write committed.
func (svc *Service) fanoutMessage(created types.CreatedMessage) {
	svc.background(func(ctx context.Context) error {
		conversationID := created.Conversation.ID

		errRoom := svc.Publisher.PublishToConversation(ctx, conversationID, types.Event{
			Name: types.EventMessageNew,
			Data: types.MessageNewData{
				ConversationID: conversationID,
				Message:        created.Message,
			},
		})
		if errRoom != nil {
			errRoom = fmt.Errorf("publish %s: %w", types.EventMessageNew, errRoom)
		}

		return errors.Join(errRoom, svc.publishInboxes(ctx, conversationID))
	})
}

// fanoutRead publishes message:read to the conversation room
// and the refreshed unread summary to the reader.
func (svc *Service) fanoutRead(state types.ReadState) {
	svc.background(func(ctx context.Context) error {
		errRoom := svc.Publisher.PublishToConversation(ctx, state.ConversationID, types.Event{
			Name: types.EventMessageRead,
			Data: types.MessageReadData{
				ConversationID: state.ConversationID,
				UserID:         state.UserID,
				ReadUpTo:       state.ReadUpTo,
			},
		})
		if errRoom != nil {
			errRoom = fmt.Errorf("publish %s: %w", types.EventMessageRead, errRoom)
		}

		return errors.Join(errRoom, svc.publishUnreadSummary(ctx, state.UserID))
	})
}

func (svc *Service) fanoutConversationUpdated(conversationID string) {
	svc.background(func(ctx context.Context) error {
		return svc.publishInboxes(ctx, conversationID)
	})
}

func (svc *Service) publishInboxes(ctx context.Context, conversationID string) error {
	userIDs, err := svc.Cockroach.ActiveParticipantIDs(ctx, conversationID)
	if err != nil {
		return err
	}

	// A failing participant does not cancel the others.
	var g errgroup.Group
	g.SetLimit(fanoutConcurrency)
	for _, userID := range userIDs {
		g.Go(func() error {
			return svc.publishInbox(ctx, conversationID, userID)
		})
	}
	return g.Wait()
}

// publishInbox sends the conversation as the user sees it
// followed by their unread summary.
func (svc *Service) publishInbox(ctx context.Context, conversationID, userID string) error {
	conv, err := svc.Cockroach.ConversationForViewer(ctx, conversationID, userID)
	if err != nil {
		return err
	}

	err = svc.Publisher.PublishToUser(ctx, userID, types.Event{
		Name: types.EventConversationUpdated,
		Data: types.ConversationUpdatedData{Conversation: conv},
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", types.EventConversationUpdated, err)
	}

	return svc.publishUnreadSummary(ctx, userID)
}

func (svc *Service) publishUnreadSummary(ctx context.Context, userID string) error {
	counts, err := svc.Cockroach.UnreadCounts(ctx, userID)
	if err != nil {
		return err
	}

	summary := types.NewUnreadSummary(counts)
	err = svc.Publisher.PublishToUser(ctx, userID, types.Event{
		Name: types.EventUnreadSummary,
		Data: types.UnreadSummaryData{UnreadTotal: summary.UnreadTotal},
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", types.EventUnreadSummary, err)
	}

	return nil
}
