package service

import (
	"net"
	"net/http"

	"golang.org/x/net/netutil"
	"golang.org/x/time/rate"

	"github.com/wayming/jsonconv/cache"
	"github.com/wayming/jsonconv/config"
	"github.com/wayming/jsonconv/dbstore"
	"github.com/wayming/jsonconv/jclogger"
)

// Server hosts the conversion endpoints behind a global rate limiter and
// a listener capped to a fixed number of concurrent connections.
type Server struct {
	cfg     config.ServerConfig
	svc     *ConvertService
	limiter *rate.Limiter
}

func NewServer(cfg config.ServerConfig, store dbstore.ConversionStore, cacheManager cache.ICacheManager) *Server {
	return &Server{
		cfg:     cfg,
		svc:     NewConvertService(store, cacheManager, cfg.FreeRecordLimit),
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.RateBurst),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/convert", s.limit(s.svc.HandleConvert))
	mux.HandleFunc("/api/unlock/", s.limit(s.svc.HandleUnlock))
	mux.HandleFunc("/api/download/", s.limit(s.svc.HandleDownload))
	mux.HandleFunc("/api/conversions", s.limit(s.svc.HandleHistory))
	mux.HandleFunc("/health", s.svc.HandleHealth)
	return mux
}

func (s *Server) limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, NewServiceError("too many requests", http.StatusTooManyRequests))
			return
		}
		next(w, r)
	}
}

func (s *Server) ListenAndServe() error {
	listener, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return err
	}
	listener = netutil.LimitListener(listener, s.cfg.MaxConnections)

	jclogger.JCLoggerInstance.Printf("Listening on %s (max %d connections)", s.cfg.ListenAddr, s.cfg.MaxConnections)
	return http.Serve(listener, s.Routes())
}
