package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/comigor/portfolio-bot/internal/api"
	"github.com/comigor/portfolio-bot/internal/config"
	"github.com/comigor/portfolio-bot/internal/history"
	"github.com/comigor/portfolio-bot/internal/logger"
	"github.com/comigor/portfolio-bot/internal/mcpserver"
	"github.com/comigor/portfolio-bot/internal/reply"
	"github.com/comigor/portfolio-bot/internal/session"
	"github.com/comigor/portfolio-bot/pkg/tools"
)

const version = "0.1.0"

func main() {
	mcpMode := flag.Bool("mcp", false, "serve the bot as MCP tools over stdio instead of HTTP")
	flag.Parse()
	if *mcpMode {
		logger.UseWriter(os.Stderr)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.L.Warn("failed to load .env file", "error", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.L.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel)

	cat, err := cfg.BuildCatalog()
	if err != nil {
		logger.L.Error("invalid reply catalog", "error", err)
		os.Exit(1)
	}
	selector := reply.NewSelector(cat, reply.NewSource(cfg.Chatbot.Seed))

	if *mcpMode {
		manager := tools.NewToolManager()
		manager.RegisterTool(tools.NewClassifyTool())
		manager.RegisterTool(tools.NewAskTool(selector))
		if err := mcpserver.ServeStdio(mcpserver.New(manager, version)); err != nil {
			logger.L.Error("mcp server stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionCfg := session.Config{
		DelayBase:   cfg.Chatbot.TypingDelayBase,
		DelaySpread: cfg.Chatbot.TypingDelaySpread,
	}
	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			logger.L.Warn("transcript disabled", "error", err)
		} else {
			defer store.Close()
			sessionCfg.Recorder = store
		}
	}

	sessions := session.NewManager(selector, sessionCfg)
	defer sessions.CloseAll()
	sessions.StartSweeper(ctx, cfg.Chatbot.SweepInterval, cfg.Chatbot.SessionTTL)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(sessions),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.L.Info("starting server", "address", srv.Addr)
	if err := runServer(ctx, srv); err != nil {
		logger.L.Error("server error", "error", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
