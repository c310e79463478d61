package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gig-hire/internal/auth"
	"gig-hire/internal/config"
	"gig-hire/internal/db"
	hiring "gig-hire/internal/hiringService"
	model "gig-hire/internal/models"
	"gig-hire/internal/notify"
	"gig-hire/internal/presence"
	"gig-hire/internal/realtime"
	"gig-hire/internal/repository"
	"gig-hire/internal/server"
	"gig-hire/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func main() {
	if err := run(); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}
	if err := utils.SetLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	registry := presence.New()
	defer registry.Close()

	authority := auth.NewJWTAuthority(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	hub := realtime.NewHub(registry, authority, realtime.Options{
		OutboxSize:     cfg.Realtime.OutboxSize,
		WriteTimeout:   cfg.Realtime.WriteTimeout,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		CookieName:     cfg.Auth.CookieName,
	})
	defer hub.Close()

	dispatcherOpts := []notify.Option{notify.WithRelayTimeout(cfg.Relay.PublishTimeout)}
	var relay *notify.RedisRelay
	if cfg.Relay.Enabled {
		rdb, err := db.ConnectRedis(ctx, cfg.Relay.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()

		relay = notify.NewRedisRelay(rdb, cfg.Relay.Channel, utils.GenerateID())
		dispatcherOpts = append(dispatcherOpts, notify.WithRelay(relay))
	}
	dispatcher := notify.NewDispatcher(registry, hub, dispatcherOpts...)

	if relay != nil {
		go func() {
			if err := relay.Run(ctx, dispatcher.DeliverLocal); err != nil && !errors.Is(err, context.Canceled) {
				utils.Error("relay stopped", map[string]any{"error": err.Error()})
			}
		}()
	}

	service := hiring.NewHiringService(store, dispatcher)
	router := server.SetupRouter(server.Deps{
		Service:        service,
		Verifier:       authority,
		CookieName:     cfg.Auth.CookieName,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		WebSocket:      hub.ServeWS,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Info("Starting gig-hire server", map[string]any{
			"addr":  cfg.Server.Addr,
			"store": cfg.Store.Driver,
			"relay": cfg.Relay.Enabled,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	utils.Info("Shutting down", map[string]any{"timeout": cfg.Server.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore returns the configured gig store and a function releasing it
func openStore(ctx context.Context, cfg config.StoreConfig) (repository.GigStore, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		sqlDB, err := db.ConnectPostgres(ctx, cfg.DatabaseURL, db.PoolOptions{
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewPostgresRepo(sqlDB)
		if cfg.Migrate {
			if err := repo.Migrate(ctx); err != nil {
				sqlDB.Close()
				return nil, nil, err
			}
		}
		return repo, func() { sqlDB.Close() }, nil

	default:
		repo := repository.NewMemoryRepo()
		if cfg.SeedDemo {
			prepopulateGigs(repo)
		}
		return repo, func() {}, nil
	}
}

// prepopulateGigs adds sample gigs to the in-memory repo
func prepopulateGigs(repo *repository.MemoryRepo) {
	now := time.Now().UTC()
	gigs := []model.Gig{
		{GigID: "gig1", OwnerID: "client1", Title: "Logo design", Description: "Vector logo for a bakery", Budget: decimal.NewFromInt(300)},
		{GigID: "gig2", OwnerID: "client1", Title: "Landing page", Description: "Single page site with a contact form", Budget: decimal.NewFromInt(800)},
		{GigID: "gig3", OwnerID: "client2", Title: "Data cleanup", Description: "Deduplicate a 10k row spreadsheet", Budget: decimal.NewFromInt(150)},
	}

	for i, gig := range gigs {
		gig.Status = model.GigOpen
		gig.CreatedAt = now.Add(-time.Duration(i) * time.Minute)
		repo.AddGig(gig)
	}
}
