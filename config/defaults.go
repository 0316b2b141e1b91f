package config

// Default values for optional configuration fields.
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultReadBufferSize  = 1024
	DefaultWriteBufferSize = 1024
	DefaultMaxMessageSize  = 4096
	DefaultSendQueueSize   = 256
)

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.WebSocket.ReadBufferSize == 0 {
		c.WebSocket.ReadBufferSize = DefaultReadBufferSize
	}
	if c.WebSocket.WriteBufferSize == 0 {
		c.WebSocket.WriteBufferSize = DefaultWriteBufferSize
	}
	if c.WebSocket.MaxMessageSize == 0 {
		c.WebSocket.MaxMessageSize = DefaultMaxMessageSize
	}
	if c.WebSocket.SendQueueSize == 0 {
		c.WebSocket.SendQueueSize = DefaultSendQueueSize
	}
}
