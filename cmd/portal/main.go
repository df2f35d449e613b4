package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/bpohire/portal/internal/config"
	"github.com/bpohire/portal/internal/credstore"
	"github.com/bpohire/portal/internal/handler"
	"github.com/bpohire/portal/internal/listing"
	"github.com/bpohire/portal/internal/repository"
	"github.com/bpohire/portal/internal/session"
	"github.com/bpohire/portal/internal/transport"
)

func main() {
	/**********************************************
	 * Logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * Configuration
	 **********************************************/
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		return
	}

	/**********************************************
	 * Credential store
	 **********************************************/
	var creds credstore.Store
	switch cfg.Credentials.Store {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Credentials.Redis.Host, cfg.Credentials.Redis.Port),
			Password: cfg.Credentials.Redis.Password,
			DB:       0,
		})

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Credentials.Redis.OperationTimeout)*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			cancel()
			logger.Error("failed to reach the credential redis", "error", err)
			return
		}
		cancel()

		creds = credstore.NewRedisStore(rdb, cfg.Credentials.Redis.KeyPrefix, time.Duration(cfg.Credentials.Redis.OperationTimeout)*time.Second)
	case "file":
		creds = credstore.NewFileStore(cfg.Credentials.FilePath)
	default:
		logger.Error("unknown credential store", "store", cfg.Credentials.Store)
		return
	}

	/**********************************************
	 * Backend client and stores
	 **********************************************/
	client := transport.New(cfg.Backend.BaseURL, time.Duration(cfg.Backend.RequestTimeout)*time.Second, creds)
	repo := repository.NewRepository(client)

	sess := session.NewStore(repo, creds)
	lst := listing.NewStore(repo)

	// Any 401 from any backend call tears the session down; the next gated
	// request gets redirected to login by the guard.
	client.OnUnauthorized(func() {
		logger.Info("backend rejected the credential, forcing logout")
		sess.Logout()
	})

	/**********************************************
	 * Session bootstrap
	 **********************************************/
	// Restore must finish before the server accepts requests so the route
	// guard never decides against a session that is still UNKNOWN.
	restoreCtx, cancelRestore := context.WithTimeout(context.Background(), time.Duration(cfg.Backend.RequestTimeout)*time.Second)
	sess.Restore(restoreCtx)
	cancelRestore()
	logger.Info("session restored", "state", sess.State())

	/**********************************************
	 * Handler
	 **********************************************/
	h, err := handler.NewHandler(cfg, repo, sess, lst)
	if err != nil {
		logger.Error("failed to create handler", "error", err)
		return
	}
	h.RegisterRoutes()

	/**********************************************
	 * HTTP server
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      h.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting portal", "port", cfg.Server.Port, "backend", cfg.Backend.BaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
