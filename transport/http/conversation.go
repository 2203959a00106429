package http

import (
	"net/http"

	"github.com/matryer/way"
	"github.com/nakamauwu/hirechat/errs"
	"github.com/nakamauwu/hirechat/types"
)

func (h *Handler) conversations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pageArgs, err := parsePageArgs(q)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	in := types.ListConversations{
		PageArgs: pageArgs,
		All:      q.Get("scope") == "all",
	}

	if q.Has("kind") {
		in.Kind = new(types.ConversationKind(q.Get("kind")))
	}

	if q.Has("q") {
		in.Query = new(q.Get("q"))
	}

	ctx := r.Context()
	page, err := h.Service.Conversations(ctx, in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	if page.Items == nil {
		page.Items = []types.Conversation{} // non null array
	}

	h.respond(w, page, http.StatusOK)
}

type createConversationReqBody struct {
	Kind         types.ConversationKind `json:"kind"`
	JobPostingID string                 `json:"job_posting_id"`
	CandidateID  string                 `json:"candidate_id"`
	UserID       string                 `json:"user_id"`
}

func (h *Handler) createConversation(w http.ResponseWriter, r *http.Request) {
	var body createConversationReqBody
	if err := decodeBody(r, &body); err != nil {
		h.respondErr(w, err)
		return
	}

	ctx := r.Context()

	var (
		out types.ResolvedConversation
		err error
	)
	switch body.Kind {
	case types.ConversationKindJobThread:
		out, err = h.Service.CreateJobThread(ctx, types.CreateJobThread{
			JobPostingID: body.JobPostingID,
			CandidateID:  body.CandidateID,
		})
	case types.ConversationKindDirectThread:
		out, err = h.Service.CreateDirectThread(ctx, types.CreateDirectThread{
			UserID: body.UserID,
		})
	case types.ConversationKindSupportThread:
		out, err = h.Service.CreateSupportThread(ctx)
	default:
		err = errs.NewInvalidArgumentError(errs.CodeValidationFailed, "Kind", "Kind is invalid")
	}
	if err != nil {
		h.respondErr(w, err)
		return
	}

	statusCode := http.StatusOK
	if out.Created {
		statusCode = http.StatusCreated
	}

	h.respond(w, out, statusCode)
}

func (h *Handler) conversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conversationID := way.Param(ctx, "conversation_id")
	out, err := h.Service.Conversation(ctx, conversationID)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *Handler) updateConversation(w http.ResponseWriter, r *http.Request) {
	var in types.UpdateConversation
	if err := decodeBody(r, &in); err != nil {
		h.respondErr(w, err)
		return
	}

	ctx := r.Context()
	in.ConversationID = way.Param(ctx, "conversation_id")
	out, err := h.Service.SetConversationStatus(ctx, in)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}

func (h *Handler) joinConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conversationID := way.Param(ctx, "conversation_id")
	out, err := h.Service.JoinConversation(ctx, conversationID)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	h.respond(w, out, http.StatusOK)
}
