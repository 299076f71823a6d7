package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwhitmire55/cryptfolio/internal/app"
	"github.com/bwhitmire55/cryptfolio/internal/config"
	"github.com/bwhitmire55/cryptfolio/internal/platform"
	"github.com/bwhitmire55/cryptfolio/internal/scheduler"
	"github.com/bwhitmire55/cryptfolio/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] cryptfolio starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init store
	var st store.Store
	if cfg.Database.SQLitePath != "" {
		sq, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using in-memory store: %v", err)
			st = store.NewMemoryStore()
		} else {
			st = sq
			defer sq.Close()
		}
	} else {
		st = store.NewMemoryStore()
	}

	// Init app
	ttl, err := cfg.SnapshotTTL()
	if err != nil {
		ttl = 5 * time.Minute
	}
	a := app.New(st, platform.NewRegistry(), ttl)
	if err := a.LoadConnections(); err != nil {
		log.Fatalf("[FATAL] load connections: %v", err)
	}
	log.Printf("[INFO] %d platform(s) connected", len(a.Handles()))

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.New(ctx, a)
	if err := sched.Register(cfg.Sync.Cron); err != nil {
		log.Fatalf("[FATAL] register sync task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if cfg.Sync.OnStart {
		log.Println("[INFO] sync on start enabled, running now")
		go sched.RunSyncNow()
	}

	log.Println("[INFO] cryptfolio is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] cryptfolio stopped")
}
