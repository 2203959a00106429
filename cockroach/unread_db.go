package cockroach

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nakamauwu/hirechat/errs"
	"github.com/nakamauwu/hirechat/types"
	"github.com/nicolasparada/go-db"
)

// MarkRead advances the read cursor of the logged in user.
// The target is UpToMessageID when it exists in the conversation,
// the latest message otherwise. The cursor never moves backwards.
func (c *Cockroach) MarkRead(ctx context.Context, in types.MarkRead) (types.ReadState, error) {
	const query = `
		UPDATE participants
		SET last_read_message_id = GREATEST(participants.last_read_message_id, COALESCE(
				(SELECT messages.id FROM messages WHERE messages.conversation_id = @conversation_id AND messages.id = @up_to_message_id),
				(SELECT conversations.last_message_id FROM conversations WHERE conversations.id = @conversation_id)
			)),
			last_read_at = now(),
			updated_at = now()
		WHERE participants.conversation_id = @conversation_id
			AND participants.user_id = @user_id
		RETURNING conversation_id, user_id, last_read_message_id, last_read_at`

	args := pgx.StrictNamedArgs{
		"conversation_id":  in.ConversationID,
		"user_id":          in.LoggedInUserID(),
		"up_to_message_id": in.UpToMessageID,
	}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.ReadState])
	if db.IsNotFoundError(err) {
		return out, errs.Forbidden
	}

	if err != nil {
		return out, fmt.Errorf("sql update read cursor: %w", err)
	}

	return out, nil
}

// sqlUnreadJoin joins the messages a participant has not read.
// System messages without sender count, soft deleted ones don't.
const sqlUnreadJoin = `
	INNER JOIN messages ON messages.conversation_id = participants.conversation_id
		AND messages.id > participants.last_read_message_id
		AND (messages.sender_id IS NULL OR messages.sender_id <> participants.user_id)
		AND messages.deleted_at IS NULL`

// UnreadCount for the user in a conversation.
// It is zero when the user does not participate.
func (c *Cockroach) UnreadCount(ctx context.Context, conversationID, userID string) (int64, error) {
	const query = `
		SELECT count(messages.id)
		FROM participants
		` + sqlUnreadJoin + `
		WHERE participants.conversation_id = @conversation_id
			AND participants.user_id = @user_id`

	args := pgx.StrictNamedArgs{
		"conversation_id": conversationID,
		"user_id":         userID,
	}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowTo[int64])
	if err != nil {
		return 0, fmt.Errorf("sql select unread count: %w", err)
	}

	return out, nil
}

// UnreadCounts of every active conversation of the user with unread messages,
// computed in a single grouped query.
func (c *Cockroach) UnreadCounts(ctx context.Context, userID string) ([]types.UnreadCount, error) {
	const query = `
		SELECT participants.conversation_id, count(messages.id) AS unread_count
		FROM participants
		` + sqlUnreadJoin + `
		WHERE participants.user_id = @user_id
			AND participants.active
		GROUP BY participants.conversation_id
		ORDER BY participants.conversation_id`

	args := pgx.StrictNamedArgs{"user_id": userID}
	out, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.UnreadCount])
	if err != nil {
		return nil, fmt.Errorf("sql select unread counts: %w", err)
	}

	return out, nil
}
