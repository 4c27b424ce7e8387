package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wayming/jsonconv/config"
	"github.com/wayming/jsonconv/testcommon"
)

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		ListenAddr:      ":0",
		MaxConnections:  4,
		RatePerSec:      100,
		RateBurst:       100,
		FreeRecordLimit: testFreeLimit,
	}
}

func TestServerHealthRoute(t *testing.T) {
	f := testcommon.NewMockTestFixture(t)
	defer f.Teardown(t)

	server := NewServer(testServerConfig(), f.StoreMock(), f.CacheMock())
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestServerRateLimit(t *testing.T) {
	f := testcommon.NewMockTestFixture(t)
	defer f.Teardown(t)

	cfg := testServerConfig()
	cfg.RatePerSec = 1
	cfg.RateBurst = 1
	server := NewServer(cfg, f.StoreMock(), f.CacheMock())

	// First request consumes the burst, the second is rejected before it
	// reaches the handler.
	codes := make([]int, 2)
	for i := range codes {
		req := httptest.NewRequest(http.MethodPost, "/api/convert", nil)
		w := httptest.NewRecorder()
		server.Routes().ServeHTTP(w, req)
		codes[i] = w.Code
	}

	if codes[0] == http.StatusTooManyRequests {
		t.Errorf("first request was rate limited")
	}
	if codes[1] != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want %d", codes[1], http.StatusTooManyRequests)
	}
}
