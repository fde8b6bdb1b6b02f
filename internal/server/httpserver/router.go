package httpserver

import (
	"fmt"
	"net/http"

	"github.com/yndnr/tabsample/internal/core/domain"
	"github.com/yndnr/tabsample/internal/telemetry/logger"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Metrics serves /metrics. Nil leaves the route unregistered.
	Metrics http.Handler

	// Ready reports readiness for /readyz. Nil means always ready.
	Ready func() error

	// Logger for request logging. Nil uses the default logger.
	Logger logger.Logger
}

// NewRouter creates the router with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	mux := http.NewServeMux()
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics)
	}
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if cfg.Ready != nil {
			if err := cfg.Ready(); err != nil {
				writeError(w, http.StatusServiceUnavailable, domain.ErrNotReady.WithCause(err))
				return
			}
		}
		fmt.Fprintln(w, "ready")
	})

	// Order: Recover -> RequestID -> Access -> mux
	return Chain(mux,
		Recover(log),
		RequestID(),
		Access(log),
	)
}
