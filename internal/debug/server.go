package debug

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/spacehole-rogue/starfield/internal/logs"
	"github.com/spacehole-rogue/starfield/internal/world"
)

// Routes builds the read-only inspector API over p.
func Routes(p *Publisher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(accessLog)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/snapshot", func(w http.ResponseWriter, r *http.Request) {
		snap := p.Latest()
		if snap == nil {
			respondError(w, http.StatusServiceUnavailable, "no snapshot published yet")
			return
		}
		respondJSON(w, http.StatusOK, snap)
	})
	r.Get("/stars/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "star id must be an integer")
			return
		}
		snap := p.Latest()
		if snap == nil {
			respondError(w, http.StatusServiceUnavailable, "no snapshot published yet")
			return
		}
		star, ok := snap.Star(world.ID(id))
		if !ok {
			respondError(w, http.StatusNotFound, fmt.Sprintf("no star %d", id))
			return
		}
		respondJSON(w, http.StatusOK, star)
	})
	return r
}

// Serve runs the inspector on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, h http.Handler, readTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("debug listen %s: %w", addr, err)
	}
	return serve(ctx, ln, h, readTimeout)
}

func serve(ctx context.Context, ln net.Listener, h http.Handler, readTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: readTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      readTimeout,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	logs.Info("debug inspector listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errc:
		return fmt.Errorf("debug server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("debug shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("debug server: %w", err)
	}
	logs.Info("debug inspector stopped")
	return nil
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logs.Debug("debug request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)))
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logs.Warn("encode debug response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
