package cockroach

import (
	"context"
	"fmt"

	crdbpgx "github.com/cockroachdb/cockroach-go/v2/crdb/crdbpgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nakamauwu/hirechat/types"
)

// sqlBackfillScope limits job threads to the ones visible to @user_id.
const sqlBackfillScope = `(
	candidates.user_id = @user_id
	OR EXISTS (
		SELECT 1 FROM participants
		WHERE participants.conversation_id = conversations.id
			AND participants.user_id = @user_id
	)
)`

// UnseededJobThreads are job threads without any message yet.
// A nil userID means every job thread.
func (c *Cockroach) UnseededJobThreads(ctx context.Context, userID *string) ([]types.BackfillTarget, error) {
	args := pgx.StrictNamedArgs{"kind": types.ConversationKindJobThread}
	filters := []string{
		"conversations.kind = @kind",
		"conversations.last_message_id = 0",
	}

	if userID != nil {
		filters = append(filters, sqlBackfillScope)
		args["user_id"] = *userID
	}

	query := `
		SELECT conversations.id AS conversation_id, candidates.user_id AS candidate_user_id
		FROM conversations
		LEFT JOIN candidates ON candidates.id = conversations.candidate_id
		` + where(filters) + `
		ORDER BY conversations.id`

	out, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.BackfillTarget])
	if err != nil {
		return nil, fmt.Errorf("sql select unseeded job threads: %w", err)
	}

	return out, nil
}

// SeedConfirmation inserts the application confirmation as message 1.
// It only happens while the conversation has no messages, so running it
// again, or concurrently, seeds nothing. Each call is its own retried transaction.
func (c *Cockroach) SeedConfirmation(ctx context.Context, target types.BackfillTarget) (bool, error) {
	var seeded bool
	err := crdbpgx.ExecuteTx(ctx, c.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		seeded = false

		tag, err := tx.Exec(ctx, `
			UPDATE conversations
			SET last_message_id = 1
			WHERE id = @conversation_id
				AND last_message_id = 0
		`, pgx.StrictNamedArgs{"conversation_id": target.ConversationID})
		if err != nil {
			return fmt.Errorf("sql claim conversation sequence: %w", err)
		}

		if tag.RowsAffected() == 0 {
			return nil
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO messages (conversation_id, id, sender_id, kind, template, body, created_at)
			SELECT id, 1, @sender_id, @kind, @template, @body, created_at
			FROM conversations
			WHERE id = @conversation_id
		`, pgx.StrictNamedArgs{
			"conversation_id": target.ConversationID,
			"sender_id":       target.CandidateUserID,
			"kind":            types.MessageKindSystem,
			"template":        types.MessageTemplateApplicationConfirmation,
			"body":            types.ApplicationConfirmationBody,
		})
		if err != nil {
			return fmt.Errorf("sql insert confirmation message: %w", err)
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return seeded, nil
}

// AttributeConfirmations sets the candidate user as sender of
// confirmation messages stored without one.
// A nil userID means every job thread.
func (c *Cockroach) AttributeConfirmations(ctx context.Context, userID *string) (int64, error) {
	args := pgx.StrictNamedArgs{
		"kind":     types.ConversationKindJobThread,
		"template": types.MessageTemplateApplicationConfirmation,
	}
	filters := []string{
		"messages.sender_id IS NULL",
		"messages.template = @template",
		"conversations.id = messages.conversation_id",
		"conversations.kind = @kind",
		"candidates.id = conversations.candidate_id",
		"candidates.user_id IS NOT NULL",
	}

	if userID != nil {
		filters = append(filters, sqlBackfillScope)
		args["user_id"] = *userID
	}

	query := `
		UPDATE messages
		SET sender_id = candidates.user_id
		FROM conversations, candidates
		` + where(filters)

	tag, err := c.db.Exec(ctx, query, args)
	if err != nil {
		return 0, fmt.Errorf("sql attribute confirmation messages: %w", err)
	}

	return tag.RowsAffected(), nil
}
