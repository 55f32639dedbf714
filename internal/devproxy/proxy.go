// Package devproxy serves a local frontend build and forwards API calls to
// the X-UAV backend, so the browser sees a single origin during development.
package devproxy

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/CannonJunior/x-uav/internal/config"
)

// Options configures the proxy handler.
type Options struct {
	Target    string // backend root, e.g. http://localhost:8877
	Prefix    string // path prefix forwarded unchanged, e.g. /api
	StaticDir string // optional directory served for every other path
	Logger    zerolog.Logger
}

// NewHandler builds the router. Requests under Prefix are forwarded with the
// Host header rewritten to the target; the rest is served from StaticDir or 404.
func NewHandler(o Options) (http.Handler, error) {
	target, err := url.Parse(o.Target)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid proxy target %q", o.Target)
	}
	prefix := "/" + strings.Trim(o.Prefix, "/")
	if prefix == "/" {
		return nil, fmt.Errorf("proxy prefix must not be the root path")
	}

	log := o.Logger
	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Error().Err(err).Str("path", r.URL.Path).Msg("backend unreachable")
			writeJSONError(w, http.StatusBadGateway, "backend unreachable")
		},
	}

	root := mux.NewRouter()
	root.Use(Recover(log), AccessLog(log))
	// Match the prefix itself and everything below it, but not /apiary.
	root.Path(prefix).Handler(proxy)
	root.PathPrefix(prefix + "/").Handler(proxy)

	if o.StaticDir != "" {
		info, err := os.Stat(o.StaticDir)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("static dir %q is not a directory", o.StaticDir)
		}
		root.PathPrefix("/").Handler(http.FileServer(http.Dir(o.StaticDir)))
	} else {
		root.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSONError(w, http.StatusNotFound, "not found")
		})
	}
	return root, nil
}

// Run serves the proxy on cfg.ProxyListen until ctx is cancelled, then shuts
// down gracefully within cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	ln, err := net.Listen("tcp", cfg.ProxyListen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.ProxyListen, err)
	}
	return Serve(ctx, ln, cfg, log)
}

// Serve is Run on an existing listener.
func Serve(ctx context.Context, ln net.Listener, cfg *config.Config, log zerolog.Logger) error {
	handler, err := NewHandler(Options{
		Target:    cfg.ProxyTarget,
		Prefix:    cfg.ProxyPrefix,
		StaticDir: cfg.ProxyStaticDir,
		Logger:    log,
	})
	if err != nil {
		_ = ln.Close()
		return err
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.HTTPReadTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", ln.Addr().String()).
			Str("target", cfg.ProxyTarget).
			Str("prefix", cfg.ProxyPrefix).
			Str("static_dir", cfg.ProxyStaticDir).
			Msg("Dev proxy starting")
		if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down dev proxy")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Dev proxy forced to shutdown")
			return err
		}
		log.Info().Msg("Dev proxy exited")
		return nil
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		log.Error().Stack().Err(err).Msg("Dev proxy failed")
		return err
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}
