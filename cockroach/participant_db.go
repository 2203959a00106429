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

const sqlParticipantCols = `
	conversation_id,
	user_id,
	role,
	active,
	last_read_message_id,
	last_read_at,
	created_at,
	updated_at`

// SyncParticipants upserts the desired members of a conversation.
// Duplicated users keep their highest ranked role and stored roles are
// only ever raised, so an admin is never downgraded by a later sync.
// Members not in desired are left untouched.
func (c *Cockroach) SyncParticipants(ctx context.Context, conversationID string, desired []types.DesiredParticipant) ([]types.Participant, error) {
	desired = types.DedupeParticipants(desired)
	out := make([]types.Participant, 0, len(desired))

	return out, c.db.RunTx(ctx, func(ctx context.Context) error {
		out = out[:0]
		if _, err := c.Conversation(ctx, conversationID); err != nil {
			return err
		}

		for _, d := range desired {
			p, err := c.upsertParticipant(ctx, conversationID, d)
			if err != nil {
				return err
			}

			out = append(out, p)
		}
		return nil
	})
}

func (c *Cockroach) upsertParticipant(ctx context.Context, conversationID string, d types.DesiredParticipant) (types.Participant, error) {
	query := `
		INSERT INTO participants (conversation_id, user_id, role, role_rank)
		VALUES (@conversation_id, @user_id, @role, @role_rank)
		ON CONFLICT (conversation_id, user_id) DO UPDATE
		SET role = CASE WHEN excluded.role_rank > participants.role_rank THEN excluded.role ELSE participants.role END,
			role_rank = GREATEST(participants.role_rank, excluded.role_rank),
			active = true,
			updated_at = now()
		RETURNING ` + sqlParticipantCols

	args := pgx.StrictNamedArgs{
		"conversation_id": conversationID,
		"user_id":         d.UserID,
		"role":            d.Role,
		"role_rank":       d.Role.Rank(),
	}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Participant])
	if db.IsForeignKeyViolationError(err, "conversation_id") {
		return out, errs.ConversationNotFound
	}

	if err != nil {
		return out, fmt.Errorf("sql upsert participant: %w", err)
	}

	return out, nil
}

// Participant returns the membership of the user.
// The boolean is false when the user never joined.
func (c *Cockroach) Participant(ctx context.Context, conversationID, userID string) (types.Participant, bool, error) {
	query := `
		SELECT ` + sqlParticipantCols + `
		FROM participants
		WHERE conversation_id = @conversation_id
			AND user_id = @user_id`

	args := pgx.StrictNamedArgs{
		"conversation_id": conversationID,
		"user_id":         userID,
	}
	out, err := pgxutil.SelectRow(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Participant])
	if db.IsNotFoundError(err) {
		return out, false, nil
	}

	if err != nil {
		return out, false, fmt.Errorf("sql select participant: %w", err)
	}

	return out, true, nil
}

func (c *Cockroach) Participants(ctx context.Context, conversationID string) ([]types.Participant, error) {
	query := `
		SELECT ` + sqlParticipantCols + `
		FROM participants
		WHERE conversation_id = @conversation_id
		ORDER BY created_at ASC, user_id ASC`

	args := pgx.StrictNamedArgs{"conversation_id": conversationID}
	out, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowToStructByNameLax[types.Participant])
	if err != nil {
		return nil, fmt.Errorf("sql select participants: %w", err)
	}

	return out, nil
}

// ActiveParticipantIDs are the user IDs a conversation fans out to.
func (c *Cockroach) ActiveParticipantIDs(ctx context.Context, conversationID string) ([]string, error) {
	const query = `
		SELECT user_id
		FROM participants
		WHERE conversation_id = @conversation_id
			AND active
		ORDER BY user_id`

	args := pgx.StrictNamedArgs{"conversation_id": conversationID}
	out, err := pgxutil.Select(ctx, c.db, query, []any{args}, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("sql select active participant ids: %w", err)
	}

	return out, nil
}
