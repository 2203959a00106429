package cockroach

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nakamauwu/hirechat/errs"
	"github.com/nakamauwu/hirechat/id"
	"github.com/nakamauwu/hirechat/types"
	"github.com/nicolasparada/go-db"
)

// likeEscaper quotes the pattern characters of ILIKE so user input matches literally.
// Backslash is the default escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

const sqlConversationCols = `
	conversations.id,
	conversations.kind,
	conversations.identity_key,
	conversations.job_posting_id,
	conversations.candidate_id,
	conversations.title,
	conversations.status,
	conversations.last_message_id,
	conversations.created_at,
	conversations.updated_at`

// CreateOrGetConversation resolves the identity to its single conversation,
// creating it on first contact and reactivating it when closed.
// Concurrent callers with the same identity get the same row.
func (c *Cockroach) CreateOrGetConversation(ctx context.Context, in types.CreateConversation) (types.ResolvedConversation, error) {
	var out types.ResolvedConversation

	query := `
		INSERT INTO conversations (id, kind, identity_key, job_posting_id, candidate_id, title)
		VALUES (@conversation_id, @kind, @identity_key, @job_posting_id, @candidate_id, @title)
		ON CONFLICT (identity_key) DO UPDATE
		SET status = CASE WHEN conversations.status = @closed THEN @active ELSE conversations.status END,
			title = COALESCE(conversations.title, excluded.title),
			updated_at = CASE WHEN conversations.status = @closed THEN now() ELSE conversations.updated_at END
		RETURNING ` + strings.ReplaceAll(sqlConversationCols, "conversations.", "")

	conversationID := id.Generate()
	args := pgx.StrictNamedArgs{
		"conversation_id": conversationID,
		"kind":            in.Identity.Kind(),
		"identity_key":    in.Identity.Key(),
		"job_posting_id":  nil,
		"candidate_id":    nil,
		"title":           in.Title,
		"closed":          types.ConversationStatusClosed,
		"active":          types.ConversationStatusActive,
	}

	if t, ok := in.Identity.(types.JobThread); ok {
		args["job_posting_id"] = t.JobPostingID
		args["candidate_id"] = t.CandidateID
	}

	rows, err := c.db.Query(ctx, query, args)
	if err != nil {
		return out, fmt.Errorf("sql upsert conversation: %w", err)
	}

	out.Conversation, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[types.Conversation])
	if err != nil {
		return out, fmt.Errorf("sql collect upserted conversation: %w", err)
	}

	out.Created = out.Conversation.ID == conversationID

	return out, nil
}

func (c *Cockroach) Conversation(ctx context.Context, conversationID string) (types.Conversation, error) {
	query := `SELECT ` + sqlConversationCols + ` FROM conversations WHERE conversations.id = @conversation_id`
	args := pgx.StrictNamedArgs{"conversation_id": conversationID}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Conversation])
	if db.IsNotFoundError(err) {
		return out, errs.ConversationNotFound
	}

	if err != nil {
		return out, fmt.Errorf("sql select conversation: %w", err)
	}

	return out, nil
}

// ConversationForViewer is like [Cockroach.Conversation]
// but also fills the viewer unread count when they participate.
func (c *Cockroach) ConversationForViewer(ctx context.Context, conversationID, viewerID string) (types.Conversation, error) {
	query := `
		SELECT ` + sqlConversationCols + `, ` + sqlViewerUnreadCount + `
		FROM conversations
		LEFT JOIN participants ON participants.conversation_id = conversations.id
			AND participants.user_id = @viewer_id
			AND participants.active
		WHERE conversations.id = @conversation_id`
	args := pgx.StrictNamedArgs{
		"conversation_id": conversationID,
		"viewer_id":       viewerID,
	}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Conversation])
	if db.IsNotFoundError(err) {
		return out, errs.ConversationNotFound
	}

	if err != nil {
		return out, fmt.Errorf("sql select conversation for viewer: %w", err)
	}

	return out, nil
}

// sqlViewerUnreadCount requires participants joined for @viewer_id.
const sqlViewerUnreadCount = `
	CASE WHEN participants.user_id IS NULL THEN NULL ELSE (
		SELECT count(*)
		FROM messages
		WHERE messages.conversation_id = conversations.id
			AND messages.id > participants.last_read_message_id
			AND (messages.sender_id IS NULL OR messages.sender_id <> participants.user_id)
			AND messages.deleted_at IS NULL
	) END AS unread_count`

// Conversations lists the inbox of the viewer, most recently updated first.
// With All set it lists every conversation instead.
func (c *Cockroach) Conversations(ctx context.Context, in types.ListConversations) (types.Page[types.Conversation], error) {
	var out types.Page[types.Conversation]

	args := pgx.StrictNamedArgs{"viewer_id": in.LoggedInUserID()}
	var filters []string

	join := "INNER JOIN participants ON participants.conversation_id = conversations.id AND participants.user_id = @viewer_id AND participants.active"
	if in.All {
		join = "LEFT " + join
	}

	if in.Kind != nil {
		filters = append(filters, "conversations.kind = @kind")
		args["kind"] = *in.Kind
	}

	if in.Query != nil {
		filters = append(filters, "conversations.title ILIKE '%' || @query::STRING || '%'")
		args["query"] = likeEscaper.Replace(*in.Query)
	}

	keyset, err := newInboxKeyset(in.PageArgs)
	if err != nil {
		return out, err
	}

	filters = keyset.filter(filters, args)

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM conversations
		%s
		%s
		%s`,
		sqlConversationCols,
		sqlViewerUnreadCount,
		join,
		where(filters),
		keyset.orderAndLimit(),
	)

	items, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Conversation])
	if err != nil {
		return out, fmt.Errorf("sql select conversations: %w", err)
	}

	return keyset.paginate(items)
}

func (c *Cockroach) UpdateConversation(ctx context.Context, in types.UpdateConversation) (types.Conversation, error) {
	query := `
		UPDATE conversations
		SET status = @status,
			updated_at = now()
		WHERE id = @conversation_id
		RETURNING ` + strings.ReplaceAll(sqlConversationCols, "conversations.", "")

	args := pgx.StrictNamedArgs{
		"conversation_id": in.ConversationID,
		"status":          in.Status,
	}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Conversation])
	if db.IsNotFoundError(err) {
		return out, errs.ConversationNotFound
	}

	if err != nil {
		return out, fmt.Errorf("sql update conversation status: %w", err)
	}

	return out, nil
}
