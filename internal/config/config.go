package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	TikTok    TikTokConfig    `mapstructure:"tiktok"`
	Shortener ShortenerConfig `mapstructure:"shortener"`
	Discord   DiscordConfig   `mapstructure:"discord"`
	Bloom     BloomConfig     `mapstructure:"bloom"`
	RocketMQ  RocketMQConfig  `mapstructure:"rocketmq"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
	Redis RedisConfig `mapstructure:"redis"`
}

// MySQLConfig represents MySQL configuration
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// TikTokConfig represents the upstream metadata API configuration
type TikTokConfig struct {
	VideoAPIBase   string `mapstructure:"video_api_base"`
	MusicAPIBase   string `mapstructure:"music_api_base"`
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// ShortenerConfig represents short-URL store configuration. Variant is
// either "local" (self-hosted slugs, permanent dedup) or "remote"
// (external shortening service, TTL-based expiry).
type ShortenerConfig struct {
	Variant        string `mapstructure:"variant"`
	Domain         string `mapstructure:"domain"`
	RemoteEndpoint string `mapstructure:"remote_endpoint"`
	RemoteToken    string `mapstructure:"remote_token"`
	TTLDays        int    `mapstructure:"ttl_days"`
	MaxSlugRetries int    `mapstructure:"max_slug_retries"`
}

// DiscordConfig represents the chat gateway configuration
type DiscordConfig struct {
	Token string `mapstructure:"token"`
}

// BloomConfig represents Bloom Filter configuration
type BloomConfig struct {
	Capacity  int64   `mapstructure:"capacity"`
	ErrorRate float64 `mapstructure:"error_rate"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// Global config instance
var cfg *Config

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	cfg.Database.Redis.Password = expandEnv(cfg.Database.Redis.Password)
	cfg.Database.MySQL.DSN = expandEnv(cfg.Database.MySQL.DSN)
	cfg.Shortener.RemoteToken = expandEnv(cfg.Shortener.RemoteToken)
	cfg.Discord.Token = expandEnv(cfg.Discord.Token)

	return cfg, nil
}

// Get returns the global config instance
func Get() *Config {
	return cfg
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("tiktok.video_api_base", "https://api2.musical.ly")
	v.SetDefault("tiktok.music_api_base", "https://tiktok.com")
	v.SetDefault("tiktok.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:97.0) Gecko/20100101 Firefox/97.0")
	v.SetDefault("tiktok.timeout_seconds", 2)
	v.SetDefault("shortener.variant", "local")
	v.SetDefault("shortener.ttl_days", 3)
	v.SetDefault("shortener.max_slug_retries", 100)
	v.SetDefault("bloom.capacity", 1000000000)
	v.SetDefault("bloom.error_rate", 0.01)
	v.SetDefault("rocketmq.topic", "usage_events")
	v.SetDefault("rocketmq.group", "snaptok_consumer_group")
}

// expandEnv expands environment variables in the string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envKey := s[2 : len(s)-1]
		return viper.GetString(envKey)
	}
	return s
}
