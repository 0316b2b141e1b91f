// Package protocol decodes inbound envelopes and dispatches them to the room
// registry.
package protocol

import (
	"encoding/json"
	"log/slog"

	"github.com/Meetz016/chatapp-backend/domain"
)

type Handler struct {
	registry domain.Registry
}

func NewHandler(r domain.Registry) *Handler {
	return &Handler{registry: r}
}

func (h *Handler) Handle(conn domain.Connection, data []byte) {
	var req domain.Request
	if err := json.Unmarshal(data, &req); err != nil {
		slog.Warn("invalid payload", "clientId", conn.ID(), "error", err)
		h.sendError(conn, "invalid payload", "message format is incorrect")
		return
	}

	switch req.Type {
	case domain.KindCreate:
		h.handleCreate(conn, req)
	case domain.KindJoin:
		h.handleJoin(conn, req)
	case domain.KindChat:
		h.handleChat(conn, req)
	default:
		slog.Debug("unrecognized message type", "clientId", conn.ID(), "type", req.Type)
	}
}

func (h *Handler) handleCreate(conn domain.Connection, req domain.Request) {
	if req.Username == "" {
		h.sendError(conn, "no username provided", "username is required")
		return
	}

	farewell := presenceAnnouncement(domain.KindUserLeft, conn.Name())
	roomID := h.registry.CreateRoom(conn, req.Username, farewell)

	h.send(conn, domain.Response{
		Type:    domain.KindRoomCreated,
		Data:    domain.RoomData{RoomID: roomID},
		Message: "room created",
	})
}

func (h *Handler) handleJoin(conn domain.Connection, req domain.Request) {
	if req.RoomID == "" {
		h.sendError(conn, "no room id provided", "room_id is required")
		return
	}
	if req.Username == "" {
		h.sendError(conn, "no username provided", "username is required")
		return
	}

	// The registry applies the display name only once the room lookup
	// succeeds; a failed join leaves the connection untouched.
	farewell := presenceAnnouncement(domain.KindUserLeft, conn.Name())
	welcome := presenceAnnouncement(domain.KindUserJoined, req.Username)

	if !h.registry.JoinRoom(req.RoomID, conn, req.Username, welcome, farewell) {
		h.sendError(conn, "invalid room id", "provide a valid room id")
		return
	}

	h.send(conn, domain.Response{
		Type:    domain.KindRoomJoined,
		Data:    domain.RoomData{RoomID: req.RoomID},
		Message: "room joined",
	})
}

func (h *Handler) handleChat(conn domain.Connection, req domain.Request) {
	roomID, ok := h.registry.RoomOf(conn)
	if !ok {
		h.sendError(conn, "not in a room", "create or join a room first")
		return
	}
	if req.Message == "" {
		h.sendError(conn, "no message provided", "message content is empty")
		return
	}

	data := marshal(domain.Response{
		Type:    domain.KindChat,
		Data:    domain.ChatData{Message: req.Message, Sender: conn.Name()},
		Message: "new message",
	})
	if data == nil {
		return
	}
	// Every member hears the chat, the sender included, so clients render
	// their own messages through the same path.
	if !h.registry.Broadcast(roomID, data, nil) {
		h.sendError(conn, "invalid room id", "provide a valid room id")
	}
}

// HandleClose runs when a connection's transport closes. A connection that
// never joined a room needs no teardown, and no reply is attempted since the
// channel is gone.
func (h *Handler) HandleClose(conn domain.Connection) {
	h.registry.LeaveRoom(conn, presenceAnnouncement(domain.KindUserLeft, conn.Name()))
}

// presenceAnnouncement builds an AnnounceFunc carrying the acting user's name
// and the roster the registry hands it at mutation time.
func presenceAnnouncement(kind, username string) domain.AnnounceFunc {
	verb := "joined"
	if kind == domain.KindUserLeft {
		verb = "left"
	}
	return func(roster []string) []byte {
		return marshal(domain.Response{
			Type:    kind,
			Data:    domain.PresenceData{Username: username, AllUsers: roster},
			Message: username + " has " + verb + " the room",
		})
	}
}

func (h *Handler) send(conn domain.Connection, resp domain.Response) {
	data := marshal(resp)
	if data == nil {
		return
	}
	if err := conn.Send(data); err != nil {
		slog.Debug("reply dropped", "clientId", conn.ID(), "error", err)
	}
}

func (h *Handler) sendError(conn domain.Connection, message, detail string) {
	h.send(conn, domain.Response{Type: domain.KindError, Message: message, Error: detail})
}

func marshal(resp domain.Response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error("marshal response", "type", resp.Type, "error", err)
		return nil
	}
	return data
}
