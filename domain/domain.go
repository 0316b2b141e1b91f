package domain

// Inbound message kinds.
const (
	KindCreate = "create"
	KindJoin   = "join"
	KindChat   = "chat"
)

// Outbound message kinds.
const (
	KindRoomCreated = "roomCreated"
	KindRoomJoined  = "roomJoined"
	KindUserJoined  = "userJoined"
	KindUserLeft    = "userLeft"
	KindError       = "error"
)

// Request is the envelope clients send. Only Type is always present; the
// other fields are required per kind.
type Request struct {
	Type     string `json:"type"`
	Username string `json:"username,omitempty"`
	RoomID   string `json:"room_id,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Response is the envelope sent back to clients. Data is nil on errors.
type Response struct {
	Type    string `json:"type"`
	Data    any    `json:"data"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// RoomData is the payload of roomCreated and roomJoined responses.
type RoomData struct {
	RoomID string `json:"roomId"`
}

// PresenceData is the payload of userJoined and userLeft responses.
// AllUsers is the room roster after the membership change.
type PresenceData struct {
	Username string   `json:"username"`
	AllUsers []string `json:"allUsers"`
}

// ChatData is the payload of chat responses.
type ChatData struct {
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

// Connection is one client session over a bidirectional channel. Send must
// never block; it enqueues and reports an error when the peer cannot accept
// more data.
type Connection interface {
	ID() string
	Name() string
	SetName(name string)
	Send(data []byte) error
	Close() error
}

// AnnounceFunc builds the payload announcing a membership change. It is
// invoked with the post-mutation roster while the registry still holds the
// room, so announcements reach recipients in mutation order. A nil return
// suppresses the announcement.
type AnnounceFunc func(roster []string) []byte

// Registry owns the room to members mapping.
type Registry interface {
	// CreateRoom makes a fresh room with conn as its only member, stores name
	// as its display name and returns the generated room id. A connection
	// already in a room leaves it first; farewell, when non-nil, builds the
	// payload delivered to that room.
	CreateRoom(conn Connection, name string, farewell AnnounceFunc) string

	// JoinRoom adds conn to the named room under the display name and
	// delivers welcome to the other members. farewell covers the room conn
	// leaves, if any. Reports false without mutating anything, the display
	// name included, when the room does not exist.
	JoinRoom(roomID string, conn Connection, name string, welcome, farewell AnnounceFunc) bool

	// LeaveRoom removes conn from its room and delivers farewell to the
	// remaining members. Reports false when conn is not in a room.
	LeaveRoom(conn Connection, farewell AnnounceFunc) bool

	// RoomOf reports the room conn currently belongs to.
	RoomOf(conn Connection) (string, bool)

	// Broadcast delivers data to every member of the room, skipping exclude
	// when non-nil. Reports false when the room does not exist.
	Broadcast(roomID string, data []byte, exclude Connection) bool

	Stats() (rooms, clients int)
}

// MessageHandler processes inbound payloads and connection teardown.
type MessageHandler interface {
	Handle(conn Connection, data []byte)
	HandleClose(conn Connection)
}
