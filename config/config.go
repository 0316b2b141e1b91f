// Package config resolves server settings from an optional YAML file and the
// environment.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	WebSocket WebSocketConfig `yaml:"websocket"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type WebSocketConfig struct {
	ReadBufferSize  int   `yaml:"read_buffer_size"`
	WriteBufferSize int   `yaml:"write_buffer_size"`
	MaxMessageSize  int64 `yaml:"max_message_size"`
	SendQueueSize   int   `yaml:"send_queue_size"`
}

// FromEnv builds a config from defaults plus the PORT and LOG_LEVEL
// environment variables. Values that would fail Validate keep the default,
// so the result always validates.
func FromEnv() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	if port := os.Getenv("PORT"); port != "" {
		if parsed, err := strconv.Atoi(port); err == nil && parsed >= 1 && parsed <= 65535 {
			cfg.Server.Port = parsed
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if _, ok := validLogLevels[level]; ok {
			cfg.Log.Level = level
		}
	}
	return cfg
}
