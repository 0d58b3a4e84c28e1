package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"centring-backend/internal/auth"
	"centring-backend/internal/backup"
	"centring-backend/internal/config"
	"centring-backend/internal/directory"
	"centring-backend/internal/handlers"
	"centring-backend/internal/health"
	h "centring-backend/internal/http"
	"centring-backend/internal/middleware"
	"centring-backend/internal/monitoring"
	"centring-backend/internal/recordstore"
	"centring-backend/internal/services"
)

func main() {
	cfg := config.Load()

	// Directory storage: Redis when configured, file otherwise. A failed
	// Redis connection degrades to the file store instead of aborting.
	var dirStore directory.Store
	if cfg.Directory.Backend == "redis" {
		redisStore, err := directory.NewRedisStore(cfg.Directory.RedisHost, cfg.Directory.RedisPort, cfg.Directory.StorageKey)
		if err != nil {
			log.Printf("[Directory] Redis unavailable, falling back to file store: %v", err)
			dirStore = directory.NewFileStore(cfg.Directory.FilePath)
		} else {
			log.Printf("[Directory] Using Redis store at %s:%d", cfg.Directory.RedisHost, cfg.Directory.RedisPort)
			dirStore = redisStore
			defer redisStore.Close()
		}
	} else {
		dirStore = directory.NewFileStore(cfg.Directory.FilePath)
		log.Printf("[Directory] Using file store at %s", cfg.Directory.FilePath)
	}

	// Record store client
	storeClient := recordstore.NewClient(cfg.RecordStore.BaseURL, time.Duration(cfg.RecordStore.TimeoutSeconds)*time.Second)
	log.Printf("[RecordStore] Using %s", cfg.RecordStore.BaseURL)

	// Services
	directoryService := services.NewDirectoryService(dirStore)
	recordService := services.NewRecordService(storeClient, directoryService)
	summaryService := services.NewSummaryService(recordService)
	exportService := services.NewExportService()

	jwtManager := auth.NewJWTManager(cfg)

	// Health checker
	healthChecker := health.NewHealthChecker(storeClient, dirStore)

	// Handlers
	recordHandler := handlers.NewRecordHandler(recordService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	summaryHandler := handlers.NewSummaryHandler(recordService, summaryService)
	exportHandler := handlers.NewExportHandler(recordService, exportService)
	authHandler := handlers.NewAuthHandler(cfg, jwtManager)
	pageHandler := handlers.NewPageHandler()
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		recordHandler,
		directoryHandler,
		summaryHandler,
		exportHandler,
		authHandler,
		pageHandler,
		healthHandler,
	)

	corsMiddleware := middleware.NewCORS(cfg)

	// Wrap with panic recovery and metrics middleware
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	// Monitoring dashboard on a side port
	monitoringServer := monitoring.NewMonitoringServer(healthChecker, cfg.Monitoring.Port)
	go monitoringServer.Start()

	// Directory snapshots to R2
	if cfg.Backup.Enabled {
		scheduler := backup.NewScheduler(cfg, dirStore)
		scheduler.Start()
		defer scheduler.Stop()
	} else {
		log.Println("[R2 Backup] Disabled, directory snapshots off")
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
