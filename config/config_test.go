package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Server.ListenAddr != DEFAULT_LISTEN_ADDR {
		t.Errorf("ListenAddr = %v, want %v", cfg.Server.ListenAddr, DEFAULT_LISTEN_ADDR)
	}
	if cfg.Server.FreeRecordLimit != DEFAULT_FREE_RECORD_LIMIT {
		t.Errorf("FreeRecordLimit = %v, want %v", cfg.Server.FreeRecordLimit, DEFAULT_FREE_RECORD_LIMIT)
	}
	if cfg.Server.MaxConnections != DEFAULT_MAX_CONNECTIONS {
		t.Errorf("MaxConnections = %v, want %v", cfg.Server.MaxConnections, DEFAULT_MAX_CONNECTIONS)
	}
}

func TestLoadConfigFile(t *testing.T) {
	content := `
server:
  listen_addr: ":9090"
  free_record_limit: 5
store:
  host: dbhost
  dbname: jsonconv
cache:
  host: cachehost
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Server.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %v, want :9090", cfg.Server.ListenAddr)
	}
	if cfg.Server.FreeRecordLimit != 5 {
		t.Errorf("FreeRecordLimit = %v, want 5", cfg.Server.FreeRecordLimit)
	}
	if cfg.Store.Host != "dbhost" {
		t.Errorf("Store.Host = %v, want dbhost", cfg.Store.Host)
	}
	// Unset fields still fall back.
	if cfg.Server.RateBurst != DEFAULT_RATE_LIMIT_BURST {
		t.Errorf("RateBurst = %v, want %v", cfg.Server.RateBurst, DEFAULT_RATE_LIMIT_BURST)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PGHOST", "pg-from-env")
	t.Setenv("REDISHOST", "redis-from-env")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Store.Host != "pg-from-env" {
		t.Errorf("Store.Host = %v, want pg-from-env", cfg.Store.Host)
	}
	if cfg.Cache.Host != "redis-from-env" {
		t.Errorf("Cache.Host = %v, want redis-from-env", cfg.Cache.Host)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("no/such/config.yaml"); err == nil {
		t.Errorf("LoadConfig() expected an error for a missing file")
	}
}
