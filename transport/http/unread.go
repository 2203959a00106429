package http

import (
	"net/http"

	"github.com/matryer/way"
	"github.com/nakamauwu/hirechat/types"
)

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	var in types.MarkRead
	if err := decodeOptionalBody(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	ctx := r.Context()
	in.ConversationID = way.Param(ctx, "conversation_id")
	out, err := h.Service.MarkRead(ctx, in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *Handler) unreadCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.Service.UnreadCount(ctx, way.Param(ctx, "conversation_id"))
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *Handler) unreadSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.Service.UnreadSummary(ctx)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	if out.Conversations == nil {
		out.Conversations = []types.UnreadCount{} // non null array
	}

	h.respond(w, out, http.StatusOK)
}

func (h *Handler) backfill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.Service.Backfill(ctx, types.Backfill{
		All: r.URL.Query().Get("scope") == "all",
	})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}
