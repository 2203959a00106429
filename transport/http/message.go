package http

import (
	"net/http"

	"github.com/matryer/way"
	"github.com/nakamauwu/hirechat/types"
)

func (h *Handler) messages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := parseUintParam(q, "page")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	pageSize, err := parseUintParam(q, "page_size")
	if err != nil {
		h.respondErr(w, err)
		return
	}

	ctx := r.Context()
	out, err := h.Service.Messages(ctx, types.ListMessages{
		ConversationID: way.Param(ctx, "conversation_id"),
		Page:           page,
		PageSize:       pageSize,
	})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	if out.Items == nil {
		out.Items = []types.Message{} // non null array
	}

	h.respond(w, out, http.StatusOK)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var in types.CreateMessage
	if err := decodeBody(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	ctx := r.Context()
	in.ConversationID = way.Param(ctx, "conversation_id")
	out, err := h.Service.SendMessage(ctx, in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusCreated)
}
