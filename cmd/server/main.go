// server runs the tictacgo web front end: one human seat per game
// against the built-in opponent, with live updates over SSE and
// websockets.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bitboardgames/tictacgo/internal/app"
	"github.com/bitboardgames/tictacgo/internal/config"
	"github.com/bitboardgames/tictacgo/internal/web"
)

var flagAddr = flag.String("addr", "", "Listen address (overrides config)")

func main() {
	flag.Parse()

	cfg, err := config.Init()
	if err != nil {
		log.Fatalf("[server] config: %v", err)
	}
	addr := cfg.ListenAddr
	if *flagAddr != "" {
		addr = *flagAddr
	}

	svc := app.NewService()
	svc.SetMarks(cfg.Marks())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Mount("/", web.NewServer(svc))

	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] listening on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-sigCtx.Done():
		log.Printf("[server] shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[server] listen: %v", err)
		}
		return
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[server] shutdown: %v", err)
	}
}
