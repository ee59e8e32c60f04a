package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Redis   RedisConfig   `yaml:"redis"`
	Content ContentConfig `yaml:"content"`
	Room    RoomConfig    `yaml:"room"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// ContentConfig 游戏内容文件配置
type ContentConfig struct {
	GamePath   string `yaml:"game_path"`   // 游戏定义文件
	TriviaPath string `yaml:"trivia_path"` // 答题题库文件
}

// RoomConfig 房间配置
type RoomConfig struct {
	IdleTimeout int `yaml:"idle_timeout"` // 空闲房间超时（分钟）
}

// IdleTimeoutDuration 返回空闲房间超时时长
func (c *RoomConfig) IdleTimeoutDuration() time.Duration {
	return time.Duration(c.IdleTimeout) * time.Minute
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 1790
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Content.GamePath == "" {
		cfg.Content.GamePath = "configs/game.yaml"
	}
	if cfg.Content.TriviaPath == "" {
		cfg.Content.TriviaPath = "configs/trivia.yaml"
	}
	if cfg.Room.IdleTimeout == 0 {
		cfg.Room.IdleTimeout = 120
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 1790,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Content: ContentConfig{
			GamePath:   "configs/game.yaml",
			TriviaPath: "configs/trivia.yaml",
		},
		Room: RoomConfig{
			IdleTimeout: 120,
		},
	}
}
