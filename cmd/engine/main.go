package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"careermatch-engine/internal/config"
	"careermatch-engine/internal/embeddings"
	"careermatch-engine/internal/events"
	httpserver "careermatch-engine/internal/http"
	"careermatch-engine/internal/httpapi"
	"careermatch-engine/internal/index"
	"careermatch-engine/internal/resume"
	"careermatch-engine/internal/scheduler"
	"careermatch-engine/internal/secrets"
	"careermatch-engine/internal/sources"
	"careermatch-engine/internal/store"
)

func main() {
	// Data dir: env if provided (a desktop shell can pass one), else local.
	dataDir := os.Getenv("CAREERMATCH_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; a second instance would fight over the
	// archive and the config file.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("instance lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine is already running in %s", dataDir)
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	archive, err := store.OpenArchive(filepath.Join(dataDir, "careermatch.db"))
	if err != nil {
		log.Fatalf("archive open failed: %v", err)
	}
	defer archive.Close()

	hub := events.NewHub()

	limiter := sources.NewHostLimiter(2, 4)
	fetchers := buildFetchers(cfg, limiter)

	provider, err := embeddings.NewFromConfig(embeddings.Config{
		Provider: cfg.Embeddings.Provider,
		Model:    cfg.Embeddings.Model,
		BaseURL:  cfg.Embeddings.BaseURL,
		APIKey:   os.Getenv("CAREERMATCH_EMBEDDINGS_KEY"),
	})
	if err != nil {
		log.Fatalf("embeddings config: %v", err)
	}

	js := store.New(store.Options{
		Fetchers:       fetchers,
		Builder:        index.Builder{Provider: provider},
		Archive:        archive,
		SourceTimeout:  time.Duration(cfg.Refresh.SourceTimeoutSeconds) * time.Second,
		PerSourceLimit: cfg.Refresh.PerSourceLimit,
		OnRefreshed: func(added int) {
			hub.Broadcast(events.TypeJobsRefreshed, map[string]any{"count": added})
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go scheduler.Every(ctx, time.Duration(cfg.Refresh.IntervalSeconds)*time.Second, "refresh", func(ctx context.Context) error {
		_, err := js.Refresh(ctx)
		if err == store.ErrRefreshInProgress {
			return nil
		}
		return err
	})

	mux := httpapi.NewMux(httpapi.Deps{
		Store:       js,
		Archive:     archive,
		Hub:         hub,
		Extractor:   resume.PlainTextExtractor{},
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Cors,
		httpapi.Recover,
		httpapi.AccessLog,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	log.Fatal(httpserver.Start(addr, handler))
}

// buildFetchers assembles the enabled sources in priority order; dedup
// during a refresh keeps the first source that reported a job.
func buildFetchers(cfg config.Config, limiter *sources.HostLimiter) []sources.Fetcher {
	var fetchers []sources.Fetcher

	if cfg.Sources.RemoteOK.Enabled {
		fetchers = append(fetchers, sources.NewRemoteOK(limiter))
	}

	if cfg.Sources.Adzuna.Enabled {
		appID, appKey := adzunaCredentials(cfg)
		if appID == "" || appKey == "" {
			log.Printf("[engine] adzuna enabled but no credentials found, skipping source")
		} else {
			fetchers = append(fetchers, sources.NewAdzuna(appID, appKey, cfg.Sources.Adzuna.Countries, limiter))
		}
	}

	if len(fetchers) == 0 {
		log.Printf("[engine] no sources enabled, refreshes will serve sample data")
	}
	return fetchers
}

// adzunaCredentials resolves the Adzuna app id and key: config file first,
// then env, then the OS keychain.
func adzunaCredentials(cfg config.Config) (string, string) {
	appID := cfg.Sources.Adzuna.AppID
	appKey := cfg.Sources.Adzuna.AppKey

	if appID == "" {
		appID = os.Getenv("ADZUNA_APP_ID")
	}
	if appKey == "" {
		appKey = os.Getenv("ADZUNA_APP_KEY")
	}

	if appID == "" || appKey == "" {
		if id, key, err := secrets.GetAdzunaCredentials(); err == nil {
			appID, appKey = id, key
		}
	}
	return appID, appKey
}
