// Package realtime pushes conversation events to websocket clients.
//
// Every connection receives the events of its user. Conversation events
// reach only the connections that joined the conversation room.
// Events travel through a [Broker] so every gateway instance
// delivers to its own connections.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nakamauwu/hirechat/auth"
	"github.com/nakamauwu/hirechat/errs"
	"github.com/nakamauwu/hirechat/metrics"
	"github.com/nakamauwu/hirechat/types"
)

const defaultCommandTimeout = 5 * time.Second

// Authorizer decides whether the principal in ctx
// may receive the events of a conversation.
type Authorizer interface {
	AuthorizeRoom(ctx context.Context, conversationID string) error
}

type AuthorizerFunc func(ctx context.Context, conversationID string) error

func (f AuthorizerFunc) AuthorizeRoom(ctx context.Context, conversationID string) error {
	return f(ctx, conversationID)
}

type Config struct {
	Verifier   auth.Verifier
	Authorizer Authorizer
	Broker     Broker
	Logger     *slog.Logger
	// AllowedOrigins of browser clients. Empty means same origin only,
	// "*" allows any.
	AllowedOrigins []string
	CommandTimeout time.Duration
}

type Gateway struct {
	verifier       auth.Verifier
	authorizer     Authorizer
	broker         Broker
	logger         *slog.Logger
	commandTimeout time.Duration
	upgrader       websocket.Upgrader
	router         *router
}

func NewGateway(cfg Config) *Gateway {
	g := &Gateway{
		verifier:       cfg.Verifier,
		authorizer:     cfg.Authorizer,
		broker:         cfg.Broker,
		logger:         cfg.Logger,
		commandTimeout: cfg.CommandTimeout,
		router:         newRouter(),
	}

	if g.broker == nil {
		g.broker = NewMemoryBroker()
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.commandTimeout <= 0 {
		g.commandTimeout = defaultCommandTimeout
	}

	g.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin(cfg.AllowedOrigins),
	}

	return g
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		// gorilla default: same origin.
		return nil
	}

	allowedMap := make(map[string]bool, len(allowed))
	for _, origin := range allowed {
		allowedMap[origin] = true
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || allowedMap["*"] || allowedMap[origin]
	}
}

// Start subscribes the gateway to the broker until ctx is done.
func (g *Gateway) Start(ctx context.Context) error {
	return g.broker.Subscribe(ctx, g.deliver)
}

// Close disconnects every local connection.
func (g *Gateway) Close() {
	g.router.closeAll()
}

func (g *Gateway) PublishToConversation(ctx context.Context, conversationID string, ev types.Event) error {
	return g.publish(ctx, roomChannel(conversationID), ev)
}

func (g *Gateway) PublishToUser(ctx context.Context, userID string, ev types.Event) error {
	return g.publish(ctx, userChannel(userID), ev)
}

func (g *Gateway) publish(ctx context.Context, channel string, ev types.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("json marshal %s event: %w", ev.Name, err)
	}

	if err := g.broker.Publish(ctx, channel, payload); err != nil {
		return err
	}

	metrics.RecordPublished(ev.Name.String())
	return nil
}

// deliver writes a broker payload to the local connections of the channel.
func (g *Gateway) deliver(channel string, payload []byte) {
	var conns []*Connection
	if conversationID, ok := strings.CutPrefix(channel, roomChannelPrefix); ok {
		conns = g.router.roomConns(conversationID)
	} else if userID, ok := strings.CutPrefix(channel, userChannelPrefix); ok {
		conns = g.router.userConns(userID)
	}

	for _, conn := range conns {
		if err := conn.Send(payload); err != nil {
			metrics.DroppedDeliveries.Inc()
		}
	}
}

func tokenFromRequest(r *http.Request) string {
	if token := auth.BearerToken(r.Header.Get("Authorization")); token != "" {
		return token
	}
	return r.URL.Query().Get("access_token")
}

// ServeHTTP authenticates the request, upgrades it
// and serves client commands until the client goes away.
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := tokenFromRequest(r)
	if token == "" {
		metrics.RejectedHandshakes.WithLabelValues("missing_token").Inc()
		writeUnauthenticated(w, "missing access token")
		return
	}

	principal, err := g.verifier.Verify(r.Context(), token)
	if err != nil {
		metrics.RejectedHandshakes.WithLabelValues("invalid_token").Inc()
		writeUnauthenticated(w, "invalid access token")
		return
	}

	ws, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the response.
		g.logger.Debug("websocket upgrade", "err", err)
		return
	}

	conn := newConnection(principal.UserID, ws)
	g.router.attach(conn)
	defer func() {
		g.router.detach(conn)
		conn.Close(websocket.CloseNormalClosure, "session closed")
	}()

	ctx := auth.ContextWithPrincipal(r.Context(), principal)
	g.readLoop(ctx, conn)
}

func writeUnauthenticated(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": ackError{Code: string(errs.CodeUnauthenticated), Message: msg},
	})
}

func (g *Gateway) readLoop(ctx context.Context, conn *Connection) {
	ws := conn.ws
	ws.SetReadLimit(maxFrameSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) &&
				!errors.Is(err, websocket.ErrCloseSent) {
				g.logger.Debug("websocket read", "user_id", conn.UserID, "err", err)
			}
			return
		}

		_ = ws.SetReadDeadline(time.Now().Add(pongWait))

		var frame commandFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			g.reply(conn, nackFrame("", errs.CodeValidationFailed, "invalid frame"))
			continue
		}

		g.reply(conn, g.handleCommand(ctx, conn, frame))
	}
}

func (g *Gateway) handleCommand(ctx context.Context, conn *Connection, frame commandFrame) ackFrame {
	switch frame.Command {
	case commandJoinConversation:
		return g.handleJoin(ctx, conn, frame)
	case commandLeaveConversation:
		return g.handleLeave(conn, frame)
	}
	return nackFrame(frame.ID, codeUnknownCommand, "unknown command")
}

func (g *Gateway) handleJoin(ctx context.Context, conn *Connection, frame commandFrame) ackFrame {
	var data conversationData
	if err := json.Unmarshal(frame.Data, &data); err != nil || data.ConversationID == "" {
		return nackFrame(frame.ID, errs.CodeValidationFailed, "conversation_id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, g.commandTimeout)
	defer cancel()

	if err := g.authorizer.AuthorizeRoom(ctx, data.ConversationID); err != nil {
		return g.errorAck(frame.ID, err)
	}

	if !g.router.join(data.ConversationID, conn) {
		return nackFrame(frame.ID, errs.CodeInternal, "connection closed")
	}

	return ackFrame{Ack: frame.ID, OK: true}
}

func (g *Gateway) handleLeave(conn *Connection, frame commandFrame) ackFrame {
	var data conversationData
	if err := json.Unmarshal(frame.Data, &data); err != nil || data.ConversationID == "" {
		return nackFrame(frame.ID, errs.CodeValidationFailed, "conversation_id is required")
	}

	g.router.leave(data.ConversationID, conn)
	return ackFrame{Ack: frame.ID, OK: true}
}

func (g *Gateway) errorAck(frameID string, err error) ackFrame {
	var e *errs.Error
	if errors.As(err, &e) {
		return nackFrame(frameID, e.Code, e.Message)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return nackFrame(frameID, errs.CodeInternal, "command timed out")
	}

	g.logger.Error("realtime command", "err", err)
	return nackFrame(frameID, errs.CodeInternal, "internal error")
}

func (g *Gateway) reply(conn *Connection, ack ackFrame) {
	payload, err := json.Marshal(ack)
	if err != nil {
		g.logger.Error("json marshal ack", "err", err)
		return
	}

	if err := conn.Send(payload); err != nil {
		metrics.DroppedDeliveries.Inc()
	}
}

// connectionCount is the number of local connections of the user.
func (g *Gateway) connectionCount(userID string) int {
	return len(g.router.userConns(userID))
}
