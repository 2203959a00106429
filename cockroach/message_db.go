package cockroach

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nakamauwu/hirechat/errs"
	"github.com/nakamauwu/hirechat/types"
	"github.com/nicolasparada/go-db"
)

// Soft deleted messages keep their place with an empty body.
const sqlMessageCols = `
	messages.conversation_id,
	messages.id,
	messages.sender_id,
	messages.kind,
	messages.template,
	CASE WHEN messages.deleted_at IS NULL THEN messages.body ELSE '' END AS body,
	messages.created_at,
	messages.edited_at,
	messages.deleted_at`

// CreateMessage appends a text message from the logged in user.
// The id is the next value of the conversation sequence, allocated
// under the conversation row lock together with the updated_at bump.
func (c *Cockroach) CreateMessage(ctx context.Context, in types.CreateMessage) (types.CreatedMessage, error) {
	var out types.CreatedMessage
	return out, c.db.RunTx(ctx, func(ctx context.Context) error {
		conversation, err := c.nextMessageID(ctx, in.ConversationID)
		if err != nil {
			return err
		}

		msg, err := c.insertMessage(ctx, conversation.ID, conversation.LastMessageID, new(in.LoggedInUserID()), in.Body)
		if err != nil {
			return err
		}

		out.Conversation = conversation
		out.Message = msg
		return nil
	})
}

func (c *Cockroach) nextMessageID(ctx context.Context, conversationID string) (types.Conversation, error) {
	query := `
		UPDATE conversations
		SET last_message_id = last_message_id + 1,
			updated_at = now()
		WHERE id = @conversation_id
		RETURNING ` + strings.ReplaceAll(sqlConversationCols, "conversations.", "")

	args := pgx.StrictNamedArgs{"conversation_id": conversationID}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Conversation])
	if db.IsNotFoundError(err) {
		return out, errs.ConversationNotFound
	}

	if err != nil {
		return out, fmt.Errorf("sql update conversation message sequence: %w", err)
	}

	return out, nil
}

func (c *Cockroach) insertMessage(ctx context.Context, conversationID string, messageID int64, senderID *string, body string) (types.Message, error) {
	query := `
		INSERT INTO messages (conversation_id, id, sender_id, kind, body)
		VALUES (@conversation_id, @message_id, @sender_id, @kind, @body)
		RETURNING ` + strings.ReplaceAll(sqlMessageCols, "messages.", "")

	args := pgx.StrictNamedArgs{
		"conversation_id": conversationID,
		"message_id":      messageID,
		"sender_id":       senderID,
		"kind":            types.MessageKindText,
		"body":            body,
	}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Message])
	if err != nil {
		return out, fmt.Errorf("sql insert message: %w", err)
	}

	return out, nil
}

// Messages returns one page in chronological order.
// Page 1 holds the newest messages.
func (c *Cockroach) Messages(ctx context.Context, in types.ListMessages) (types.MessagesPage, error) {
	out := types.MessagesPage{
		Items:    []types.Message{},
		Page:     in.Page,
		PageSize: in.PageSize,
	}

	query := `
		SELECT ` + sqlMessageCols + `
		FROM messages
		WHERE messages.conversation_id = @conversation_id
		ORDER BY messages.id DESC
		LIMIT @limit
		OFFSET @offset`

	args := pgx.StrictNamedArgs{
		"conversation_id": in.ConversationID,
		"limit":           in.PageSize + 1, // +1 to check if there are older messages
		"offset":          in.Offset(),
	}
	items, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Message])
	if err != nil {
		return out, fmt.Errorf("sql select messages: %w", err)
	}

	if uint(len(items)) > in.PageSize {
		out.HasMore = true
		items = items[:in.PageSize]
	}

	slices.Reverse(items)
	if items != nil {
		out.Items = items
	}

	return out, nil
}

func (c *Cockroach) MessageExists(ctx context.Context, conversationID string, messageID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM messages
			WHERE conversation_id = @conversation_id
				AND id = @message_id
		)`

	args := pgx.StrictNamedArgs{
		"conversation_id": conversationID,
		"message_id":      messageID,
	}
	exists, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowTo[bool])
	if err != nil {
		return false, fmt.Errorf("sql select message exists: %w", err)
	}

	return exists, nil
}
