package cockroach

import (
	"fmt"
	"slices"
	"time"

	"github.com/btcsuite/btcutil/base58"
	"github.com/nakamauwu/hirechat/errs"
	"github.com/nakamauwu/hirechat/types"
	"github.com/vmihailenco/msgpack/v5"
)

const defaultInboxPageSize = 20

var errInvalidCursor = errs.NewInvalidArgumentError(errs.CodeInvalidCursor, "Cursor", "invalid cursor")

// inboxCursor points at a conversation in the inbox order
// (updated_at DESC, id DESC).
type inboxCursor struct {
	ID        string    `msgpack:"i"`
	UpdatedAt time.Time `msgpack:"u"`
}

func encodeInboxCursor(c types.Conversation) (string, error) {
	b, err := msgpack.Marshal(inboxCursor{ID: c.ID, UpdatedAt: c.UpdatedAt})
	if err != nil {
		return "", fmt.Errorf("msgpack marshal cursor: %w", err)
	}

	return base58.Encode(b), nil
}

func decodeInboxCursor(s string) (inboxCursor, error) {
	var c inboxCursor

	b := base58.Decode(s)
	if len(b) == 0 {
		return c, errInvalidCursor
	}

	if err := msgpack.Unmarshal(b, &c); err != nil || c.ID == "" {
		return c, errInvalidCursor
	}

	return c, nil
}

// inboxKeyset is a decoded inbox page request.
type inboxKeyset struct {
	size      uint
	backwards bool
	after     *inboxCursor
	before    *inboxCursor
}

func newInboxKeyset(in types.PageArgs) (inboxKeyset, error) {
	ks := inboxKeyset{
		size:      defaultInboxPageSize,
		backwards: in.IsBackwards(),
	}

	if ks.backwards && in.Last != nil {
		ks.size = *in.Last
	} else if !ks.backwards && in.First != nil {
		ks.size = *in.First
	}
	ks.size = min(ks.size, types.MaxPageSize)

	if in.After != nil {
		c, err := decodeInboxCursor(*in.After)
		if err != nil {
			return ks, fmt.Errorf("decode after cursor: %w", err)
		}
		ks.after = &c
	}

	if in.Before != nil {
		c, err := decodeInboxCursor(*in.Before)
		if err != nil {
			return ks, fmt.Errorf("decode before cursor: %w", err)
		}
		ks.before = &c
	}

	return ks, nil
}

// filter adds the keyset condition, if any, to filters and args.
func (ks inboxKeyset) filter(filters []string, args map[string]any) []string {
	switch {
	case ks.after != nil:
		args["after_updated_at"] = ks.after.UpdatedAt
		args["after_id"] = ks.after.ID
		return append(filters, "(conversations.updated_at, conversations.id) < (@after_updated_at, @after_id)")
	case ks.before != nil:
		args["before_updated_at"] = ks.before.UpdatedAt
		args["before_id"] = ks.before.ID
		return append(filters, "(conversations.updated_at, conversations.id) > (@before_updated_at, @before_id)")
	}
	return filters
}

// orderAndLimit fetches one extra row to know whether there is another page.
func (ks inboxKeyset) orderAndLimit() string {
	dir := "DESC"
	if ks.backwards {
		dir = "ASC"
	}
	return fmt.Sprintf("ORDER BY conversations.updated_at %s, conversations.id %s LIMIT %d", dir, dir, ks.size+1)
}

// paginate trims the extra row, restores the inbox order
// and fills the page info.
func (ks inboxKeyset) paginate(items []types.Conversation) (types.Page[types.Conversation], error) {
	var page types.Page[types.Conversation]

	more := uint(len(items)) > ks.size
	if more {
		items = items[:ks.size]
	}

	if ks.backwards {
		slices.Reverse(items)
		page.PageInfo.HasPreviousPage = more
		page.PageInfo.HasNextPage = ks.before != nil
	} else {
		page.PageInfo.HasNextPage = more
		page.PageInfo.HasPreviousPage = ks.after != nil
	}

	page.Items = items
	if len(items) == 0 {
		return page, nil
	}

	start, err := encodeInboxCursor(items[0])
	if err != nil {
		return page, fmt.Errorf("encode start cursor: %w", err)
	}

	end, err := encodeInboxCursor(items[len(items)-1])
	if err != nil {
		return page, fmt.Errorf("encode end cursor: %w", err)
	}

	page.PageInfo.StartCursor = &start
	page.PageInfo.EndCursor = &end

	return page, nil
}
