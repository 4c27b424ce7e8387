package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Global Variables
const DEFAULT_TABLE_NAME string = "converted_data"
const DEFAULT_FREE_RECORD_LIMIT int = 100
const DEFAULT_LISTEN_ADDR string = ":8080"
const DEFAULT_MAX_CONNECTIONS int = 256
const DEFAULT_RATE_LIMIT_PER_SEC float64 = 20
const DEFAULT_RATE_LIMIT_BURST int = 40
const DEFAULT_CACHE_HOST string = "localhost"
const DEFAULT_CACHE_PORT string = "6379"
const CACHE_KEY_USAGE_PREFIX string = "USAGE_"
const CACHE_KEY_UNLOCK_PREFIX string = "UNLOCK_"

type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Cache  CacheConfig  `yaml:"cache"`
}

type ServerConfig struct {
	ListenAddr      string  `yaml:"listen_addr"`
	MaxConnections  int     `yaml:"max_connections"`
	RatePerSec      float64 `yaml:"rate_per_sec"`
	RateBurst       int     `yaml:"rate_burst"`
	FreeRecordLimit int     `yaml:"free_record_limit"`
}

type StoreConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type CacheConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// LoadConfig reads the YAML config file and applies env overrides for
// the store and cache endpoints. Missing server fields fall back to the
// package defaults. An empty path yields a default config.
func LoadConfig(configPath string) (*Config, error) {
	var config Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	config.applyDefaults()
	config.applyEnv()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = DEFAULT_LISTEN_ADDR
	}
	if c.Server.MaxConnections == 0 {
		c.Server.MaxConnections = DEFAULT_MAX_CONNECTIONS
	}
	if c.Server.RatePerSec == 0 {
		c.Server.RatePerSec = DEFAULT_RATE_LIMIT_PER_SEC
	}
	if c.Server.RateBurst == 0 {
		c.Server.RateBurst = DEFAULT_RATE_LIMIT_BURST
	}
	if c.Server.FreeRecordLimit == 0 {
		c.Server.FreeRecordLimit = DEFAULT_FREE_RECORD_LIMIT
	}
	if c.Cache.Host == "" {
		c.Cache.Host = DEFAULT_CACHE_HOST
	}
	if c.Cache.Port == "" {
		c.Cache.Port = DEFAULT_CACHE_PORT
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PGHOST"); v != "" {
		c.Store.Host = v
	}
	if v := os.Getenv("PGPORT"); v != "" {
		c.Store.Port = v
	}
	if v := os.Getenv("PGUSER"); v != "" {
		c.Store.User = v
	}
	if v := os.Getenv("PGPASSWORD"); v != "" {
		c.Store.Password = v
	}
	if v := os.Getenv("PGDATABASE"); v != "" {
		c.Store.DBName = v
	}
	if v := os.Getenv("REDISHOST"); v != "" {
		c.Cache.Host = v
	}
	if v := os.Getenv("REDISPORT"); v != "" {
		c.Cache.Port = v
	}
}
