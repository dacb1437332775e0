package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/autofounder/deck-backend/config"
	"github.com/autofounder/deck-backend/internal/auth"
	"github.com/autofounder/deck-backend/internal/bootstrap"
	cronjob "github.com/autofounder/deck-backend/internal/cron"
	"github.com/autofounder/deck-backend/internal/deck/builder"
	"github.com/autofounder/deck-backend/internal/deck/repository"
	"github.com/autofounder/deck-backend/internal/deck/service"
	"github.com/autofounder/deck-backend/internal/deck/transport"
	"github.com/autofounder/deck-backend/internal/enhance"
	"github.com/autofounder/deck-backend/internal/export"
	"github.com/autofounder/deck-backend/internal/images"
	"github.com/autofounder/deck-backend/internal/investors"
)

const serviceName = "deck-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	// The archive is optional; without a DSN the service runs on Redis
	// alone and listing/history endpoints return empty results.
	var archive *repository.ArchiveRepo
	if cfg.Database.DSN != "" {
		if err := bootstrap.Migrate(ctx, cfg.Database.DSN); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer pool.Close()
		archive = repository.NewArchiveRepo(pool)

		cronjob.NewScheduler(archive, cfg.App.DeckTTL).Start()
	} else {
		log.Println("DB_DSN not set, deck archive disabled")
	}

	var enhancer enhance.Enhancer = enhance.Noop{}
	if cfg.Gemini.APIKey != "" {
		g, err := enhance.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Printf("gemini unavailable, running without enhancement: %v", err)
		} else {
			enhancer = g
		}
	}

	store := transport.NewRedisStore(rdb, cfg.App.DeckTTL)
	bus := transport.NewRedisBus(rdb)
	publisher := transport.NewPublisher(store, bus, cfg.Server.ViewerBaseURL)
	resolver := transport.NewResolver(store, bus, cfg.App.ResolveTimeout)

	deckService := service.NewDeckService(builder.New(enhancer), publisher, resolver, archive)

	imageClient := images.NewClient(cfg.Pixabay.APIKey, enhancer)
	exporter := export.NewExporter(imageClient)

	var uploader *export.Uploader
	if cfg.S3.Bucket != "" {
		uploader, err = export.NewUploader(ctx, cfg.S3)
		if err != nil {
			log.Fatalf("s3: %v", err)
		}
	}

	deps := bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Redis:       rdb,
		DeckService: deckService,
		Exporter:    exporter,
		Uploader:    uploader,
		Matcher:     investors.NewMatcher(enhancer),
	}
	if archive != nil {
		deps.DB = archive.Pool()
	}
	if cfg.Firebase.CredentialsPath != "" {
		authClient, err := auth.InitializeFirebase(&cfg.Firebase)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
		deps.AuthClient = authClient
	} else {
		log.Println("FIREBASE_CREDENTIALS_PATH not set, using development identity")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: bootstrap.BuildRouter(deps),
	}

	go func() {
		log.Printf("%s listening on :%s", serviceName, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
