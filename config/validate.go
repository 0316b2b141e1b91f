package config

import (
	"errors"
	"fmt"
)

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate checks that all values are within usable bounds.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if _, ok := validLogLevels[c.Log.Level]; !ok {
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	if c.WebSocket.ReadBufferSize < 1 {
		return errors.New("websocket.read_buffer_size must be >= 1")
	}
	if c.WebSocket.WriteBufferSize < 1 {
		return errors.New("websocket.write_buffer_size must be >= 1")
	}
	if c.WebSocket.MaxMessageSize < 1 {
		return errors.New("websocket.max_message_size must be >= 1")
	}
	if c.WebSocket.SendQueueSize < 1 {
		return errors.New("websocket.send_queue_size must be >= 1")
	}
	return nil
}
