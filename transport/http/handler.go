package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/matryer/way"
	"github.com/nakamauwu/hirechat/auth"
	"github.com/nakamauwu/hirechat/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate go tool moq -out service_mock_test.go . Service

// Service is the messaging core as seen by the HTTP handlers.
// *service.Service implements it.
type Service interface {
	CreateJobThread(ctx context.Context, in types.CreateJobThread) (types.ResolvedConversation, error)
	CreateDirectThread(ctx context.Context, in types.CreateDirectThread) (types.ResolvedConversation, error)
	CreateSupportThread(ctx context.Context) (types.ResolvedConversation, error)
	Conversation(ctx context.Context, conversationID string) (types.Conversation, error)
	Conversations(ctx context.Context, in types.ListConversations) (types.Page[types.Conversation], error)
	SetConversationStatus(ctx context.Context, in types.UpdateConversation) (types.Conversation, error)
	JoinConversation(ctx context.Context, conversationID string) (types.Participant, error)
	SendMessage(ctx context.Context, in types.CreateMessage) (types.CreatedMessage, error)
	Messages(ctx context.Context, in types.ListMessages) (types.MessagesPage, error)
	MarkRead(ctx context.Context, in types.MarkRead) (types.ReadState, error)
	UnreadCount(ctx context.Context, conversationID string) (types.UnreadCount, error)
	UnreadSummary(ctx context.Context) (types.UnreadSummary, error)
	Backfill(ctx context.Context, in types.Backfill) (types.BackfillResult, error)
}

// Handler serves the JSON API, the websocket gateway and the metrics.
type Handler struct {
	Service  Service
	Verifier auth.Verifier
	// Gateway serves GET /ws. Optional.
	Gateway     http.Handler
	ErrorLogger *slog.Logger

	handler http.Handler
	once    sync.Once
}

func (h *Handler) init() {
	if h.ErrorLogger == nil {
		h.ErrorLogger = slog.Default()
	}

	r := way.NewRouter()

	r.HandleFunc(http.MethodGet, "/api/conversations", h.conversations)
	r.HandleFunc(http.MethodPost, "/api/conversations", h.createConversation)
	r.HandleFunc(http.MethodGet, "/api/conversations/:conversation_id", h.conversation)
	r.HandleFunc(http.MethodPatch, "/api/conversations/:conversation_id", h.updateConversation)
	r.HandleFunc(http.MethodPost, "/api/conversations/:conversation_id/join", h.joinConversation)
	r.HandleFunc(http.MethodGet, "/api/conversations/:conversation_id/messages", h.messages)
	r.HandleFunc(http.MethodPost, "/api/conversations/:conversation_id/messages", h.sendMessage)
	r.HandleFunc(http.MethodPost, "/api/conversations/:conversation_id/read", h.markRead)
	r.HandleFunc(http.MethodGet, "/api/conversations/:conversation_id/unread", h.unreadCount)
	r.HandleFunc(http.MethodGet, "/api/unread_summary", h.unreadSummary)
	r.HandleFunc(http.MethodPost, "/api/backfill", h.backfill)

	if h.Gateway != nil {
		// The gateway authenticates during the handshake itself.
		r.Handle(http.MethodGet, "/ws", h.Gateway)
	}

	r.Handle(http.MethodGet, "/metrics", promhttp.Handler())
	r.NotFound = http.HandlerFunc(h.notFound)

	h.handler = h.withPrincipal(r)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.once.Do(h.init)
	h.handler.ServeHTTP(w, r)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.respondErr(w, errRouteNotFound)
}
