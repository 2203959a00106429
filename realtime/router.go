package realtime

import (
	"sync"

	"github.com/nakamauwu/hirechat/metrics"
)

// router tracks the local connections by user and by conversation room.
// Every connection is reachable through its user channel;
// rooms hold only the connections that joined them.
type router struct {
	mu        sync.RWMutex
	conns     map[string]*Connection            // connID -> connection
	users     map[string]map[string]*Connection // userID -> connID -> connection
	rooms     map[string]map[string]*Connection // conversationID -> connID -> connection
	connRooms map[string]map[string]struct{}    // connID -> conversationIDs
}

func newRouter() *router {
	return &router{
		conns:     make(map[string]*Connection),
		users:     make(map[string]map[string]*Connection),
		rooms:     make(map[string]map[string]*Connection),
		connRooms: make(map[string]map[string]struct{}),
	}
}

func (r *router) attach(conn *Connection) {
	r.mu.Lock()
	r.conns[conn.ID] = conn

	userConns := r.users[conn.UserID]
	if userConns == nil {
		userConns = make(map[string]*Connection)
		r.users[conn.UserID] = userConns
	}
	userConns[conn.ID] = conn
	r.mu.Unlock()

	metrics.RecordConnectionOpened()
	conn.start()
}

func (r *router) detach(conn *Connection) {
	r.mu.Lock()
	_, ok := r.conns[conn.ID]
	if ok {
		delete(r.conns, conn.ID)

		if userConns := r.users[conn.UserID]; userConns != nil {
			delete(userConns, conn.ID)
			if len(userConns) == 0 {
				delete(r.users, conn.UserID)
			}
		}

		for roomID := range r.connRooms[conn.ID] {
			r.leaveLocked(roomID, conn.ID)
		}
		delete(r.connRooms, conn.ID)
	}
	r.mu.Unlock()

	if ok {
		metrics.RecordConnectionClosed()
	}
}

// join reports false when the connection is no longer attached.
func (r *router) join(conversationID string, conn *Connection) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conns[conn.ID]; !ok {
		return false
	}

	room := r.rooms[conversationID]
	if room == nil {
		room = make(map[string]*Connection)
		r.rooms[conversationID] = room
		metrics.JoinedRooms.Inc()
	}
	room[conn.ID] = conn

	memberships := r.connRooms[conn.ID]
	if memberships == nil {
		memberships = make(map[string]struct{})
		r.connRooms[conn.ID] = memberships
	}
	memberships[conversationID] = struct{}{}
	return true
}

func (r *router) leave(conversationID string, conn *Connection) {
	r.mu.Lock()
	r.leaveLocked(conversationID, conn.ID)
	r.mu.Unlock()
}

func (r *router) leaveLocked(conversationID, connID string) {
	room := r.rooms[conversationID]
	if room == nil {
		return
	}

	delete(room, connID)
	if len(room) == 0 {
		delete(r.rooms, conversationID)
		metrics.JoinedRooms.Dec()
	}

	if memberships, ok := r.connRooms[connID]; ok {
		delete(memberships, conversationID)
		if len(memberships) == 0 {
			delete(r.connRooms, connID)
		}
	}
}

// roomConns and userConns return snapshots,
// so sends happen without holding the lock.
func (r *router) roomConns(conversationID string) []*Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return snapshot(r.rooms[conversationID])
}

func (r *router) userConns(userID string) []*Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return snapshot(r.users[userID])
}

func (r *router) closeAll() {
	r.mu.Lock()
	conns := snapshot(r.conns)
	r.mu.Unlock()

	for _, conn := range conns {
		conn.Close(1001, "server shutdown")
		r.detach(conn)
	}
}

func snapshot(m map[string]*Connection) []*Connection {
	out := make([]*Connection, 0, len(m))
	for _, conn := range m {
		out = append(out, conn)
	}
	return out
}
