// Command levquantd is the Levquant case service.
// It serves the case/analysis REST API, the append-only journal, and a
// health check, persisting to Postgres and archiving analyses to blob
// storage.
package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/levquant/levquant/internal/api"
	"github.com/levquant/levquant/internal/archive"
	"github.com/levquant/levquant/internal/casefile"
	"github.com/levquant/levquant/internal/journal"
	"github.com/levquant/levquant/internal/platform"
)

type config struct {
	Port           string
	DatabaseURL    string
	APIKey         string
	StorageBackend string
	StoragePath    string
	Bucket         string
	Region         string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
}

func loadConfig() config {
	return config{
		Port:           envOrDefault("PORT", "8088"),
		DatabaseURL:    envOrDefault("DATABASE_URL", "postgres://localhost:5432/levquant?sslmode=disable"),
		APIKey:         os.Getenv("LEVQUANT_API_KEY"),
		StorageBackend: envOrDefault("STORAGE_BACKEND", "local"),
		StoragePath:    envOrDefault("LOCAL_STORAGE_PATH", "/tmp/levquant-data"),
		Bucket:         os.Getenv("STORAGE_BUCKET"),
		Region:         os.Getenv("AWS_REGION"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
	}
}

func main() {
	cfg := loadConfig()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if err := platform.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	handler := api.NewHandler(db, casefile.NewService(db), journal.NewPostgresStore(db), storage)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	root := api.CORS(api.APIKeyAuth(cfg.APIKey)(mux))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: root,
	}

	go func() {
		log.Printf("starting levquantd on :%s (storage=%s)", cfg.Port, cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func newStorage(ctx context.Context, cfg config) (archive.StorageClient, error) {
	switch cfg.StorageBackend {
	case "s3":
		return archive.NewS3Storage(ctx, archive.S3Config{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case "gcs":
		return archive.NewGCSStorage(ctx, cfg.Bucket)
	default:
		return archive.NewLocalStorage(cfg.StoragePath), nil
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
