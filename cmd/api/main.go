package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barbeariadobeco/barbearia-api/internal/config"
	dbpkg "github.com/barbeariadobeco/barbearia-api/internal/db"
	"github.com/barbeariadobeco/barbearia-api/internal/logger"
	"github.com/barbeariadobeco/barbearia-api/internal/middleware"
	"github.com/barbeariadobeco/barbearia-api/internal/routes"
	"github.com/barbeariadobeco/barbearia-api/internal/storage"
)

func main() {

	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	store := newImageStore(cfg, log)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, store, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

func newImageStore(cfg *config.Config, log *zap.Logger) storage.ImageStore {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3Store(
			cfg.AWSRegion,
			cfg.S3Bucket,
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccess,
		)
	}

	store, err := storage.NewLocalStore(cfg.ImagesDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatal("failed to init image storage", zap.Error(err))
	}
	return store
}
