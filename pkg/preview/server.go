// Package preview serves the spliced HTML document over a local HTTP
// server so the generated diagram can be checked in a browser.
package preview

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// shutdownTimeout bounds graceful shutdown after the context ends.
const shutdownTimeout = 5 * time.Second

// NewHandler builds the preview router. The target document is re-read
// on every request with caching disabled so the browser always shows
// the latest splice.
func NewHandler(htmlPath string, logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		data, err := os.ReadFile(htmlPath)
		if err != nil {
			logger.Error("read target", "path", htmlPath, "err", err)
			http.Error(w, "target document unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(data)
	})

	return r
}

// Serve runs the preview server on addr until the context is cancelled,
// then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("preview server listening", "addr", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			srv.Close()
			return err
		}
		logger.Info("preview server stopped")
		return ctx.Err()
	}
}
