// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	nuts "github.com/vaudience/go-nuts"

	"github.com/beehively/hub/api"
	"github.com/beehively/hub/internal/apiary"
	"github.com/beehively/hub/internal/auth"
	"github.com/beehively/hub/internal/config"
	"github.com/beehively/hub/internal/database"
	"github.com/beehively/hub/internal/firmware"
	"github.com/beehively/hub/internal/hubservice"
	"github.com/beehively/hub/internal/repository/mongodb"
)

const initTimeout = 30 * time.Second

// Server represents our HTTP server
type Server struct {
	config *config.Config
	srv    *http.Server
	store  *database.Store
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{config: cfg}
}

// Start initializes the store, schema, cache and routes, then begins
// listening for requests
func (s *Server) Start() error {
	svc, err := s.initializeHubService()
	if err != nil {
		return err
	}

	router := api.NewRouter(svc)
	handler := handlers.RecoveryHandler()(handlers.CombinedLoggingHandler(os.Stdout, router))

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// initializeHubService connects the store, provisions the schema, loads the
// apiary registry and builds the auth cache. Every failure here is fatal:
// the service must not serve traffic with a partial schema or cache.
func (s *Server) initializeHubService() (*hubservice.HubService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	store, err := database.Connect(ctx, s.config.Mongo)
	if err != nil {
		return nil, fmt.Errorf("connecting to store: %w", err)
	}
	s.store = store

	registry, err := apiary.LoadRegistry(s.config.Apiaries.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading apiary registry: %w", err)
	}

	existing, err := store.ListCollectionNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	if err := database.EnsureSchema(ctx, store.Database(), existing, registry.EveryBridge()); err != nil {
		return nil, fmt.Errorf("provisioning schema: %w", err)
	}

	cache, err := auth.BuildCache(ctx, mongodb.NewDeviceRepository(store))
	if err != nil {
		return nil, fmt.Errorf("building auth cache: %w", err)
	}

	fw, err := firmware.NewStore(s.config.Firmware.BasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing firmware store: %w", err)
	}

	svc := hubservice.New(
		cache,
		registry,
		mongodb.NewReadingRepository(store),
		mongodb.NewPingRepository(store),
		fw,
	)
	if err := svc.Validate(); err != nil {
		return nil, err
	}
	return svc, nil
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	if err := s.store.Close(ctx); err != nil {
		nuts.L.Errorf("[Server] Error closing store: %v", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}
