// Package registry tracks which connections belong to which rooms and fans
// envelopes out to room members.
package registry

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Meetz016/chatapp-backend/domain"
)

type room struct {
	members map[string]domain.Connection
}

// roster returns the member display names, sorted. Callers must hold the
// registry lock.
func (r *room) roster() []string {
	names := make([]string, 0, len(r.members))
	for _, m := range r.members {
		names = append(names, m.Name())
	}
	sort.Strings(names)
	return names
}

// Registry maps room ids to member sets. A single lock guards both maps;
// membership changes and their announcements happen under it, so every
// recipient observes room events in mutation order. Deliveries are
// non-blocking enqueues, so the lock is never held across slow I/O.
type Registry struct {
	mu     sync.RWMutex
	rooms  map[string]*room
	byConn map[string]string
}

func New() *Registry {
	return &Registry{
		rooms:  make(map[string]*room),
		byConn: make(map[string]string),
	}
}

// newRoomID generates a short room id from the first group of a v4 UUID,
// re-rolling on collision. Callers must hold the registry lock.
func (g *Registry) newRoomID() string {
	for {
		id := uuid.New().String()[:8]
		if _, taken := g.rooms[id]; !taken {
			return id
		}
	}
}

func (g *Registry) CreateRoom(conn domain.Connection, name string, farewell domain.AnnounceFunc) string {
	g.mu.Lock()
	g.leaveLocked(conn, farewell)
	conn.SetName(name)

	id := g.newRoomID()
	g.rooms[id] = &room{members: map[string]domain.Connection{conn.ID(): conn}}
	g.byConn[conn.ID()] = id
	g.mu.Unlock()

	slog.Info("room created", "room", id, "clientId", conn.ID())
	return id
}

func (g *Registry) JoinRoom(roomID string, conn domain.Connection, name string, welcome, farewell domain.AnnounceFunc) bool {
	g.mu.Lock()
	r, exists := g.rooms[roomID]
	if !exists {
		g.mu.Unlock()
		return false
	}

	if current := g.byConn[conn.ID()]; current != roomID {
		g.leaveLocked(conn, farewell)
	}
	conn.SetName(name)
	r.members[conn.ID()] = conn
	g.byConn[conn.ID()] = roomID
	count := len(r.members)

	if welcome != nil {
		if data := welcome(r.roster()); data != nil {
			for id, m := range r.members {
				if id == conn.ID() {
					continue
				}
				g.deliver(id, m, data)
			}
		}
	}
	g.mu.Unlock()

	slog.Info("client joined room", "room", roomID, "clientId", conn.ID(), "members", count)
	return true
}

func (g *Registry) LeaveRoom(conn domain.Connection, farewell domain.AnnounceFunc) bool {
	g.mu.Lock()
	left := g.leaveLocked(conn, farewell)
	g.mu.Unlock()
	return left
}

// leaveLocked removes conn from its room, announces to the remaining members
// and reclaims the room when it empties. Callers must hold the registry lock.
func (g *Registry) leaveLocked(conn domain.Connection, farewell domain.AnnounceFunc) bool {
	roomID, ok := g.byConn[conn.ID()]
	if !ok {
		return false
	}
	delete(g.byConn, conn.ID())

	r := g.rooms[roomID]
	delete(r.members, conn.ID())

	if len(r.members) == 0 {
		delete(g.rooms, roomID)
		slog.Info("room removed", "room", roomID)
		return true
	}

	if farewell != nil {
		if data := farewell(r.roster()); data != nil {
			for id, m := range r.members {
				g.deliver(id, m, data)
			}
		}
	}
	slog.Info("client left room", "room", roomID, "clientId", conn.ID(), "members", len(r.members))
	return true
}

func (g *Registry) RoomOf(conn domain.Connection) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	roomID, ok := g.byConn[conn.ID()]
	return roomID, ok
}

func (g *Registry) Broadcast(roomID string, data []byte, exclude domain.Connection) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r, exists := g.rooms[roomID]
	if !exists {
		return false
	}
	for id, m := range r.members {
		if exclude != nil && id == exclude.ID() {
			continue
		}
		g.deliver(id, m, data)
	}
	return true
}

// deliver enqueues best-effort; a closed or saturated peer just misses the
// message and is cleaned up by its own close path.
func (g *Registry) deliver(id string, conn domain.Connection, data []byte) {
	if err := conn.Send(data); err != nil {
		slog.Debug("dropped message", "clientId", id, "error", err)
	}
}

func (g *Registry) Stats() (rooms, clients int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms), len(g.byConn)
}
