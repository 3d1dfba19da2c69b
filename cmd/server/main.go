package main

import (
	"errors"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dataset_explorer/api"
	"dataset_explorer/internal/config"
	"dataset_explorer/internal/dataset"
)

// Main function to set up and run the dashboard server.
func main() {
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	storage, err := dataset.LoadCSV(cfg.DataPath)
	if errors.Is(err, os.ErrNotExist) {
		logger.Fatal("dataset not found, run `go run ./cmd/generate` first",
			zap.String("path", cfg.DataPath))
	}
	if err != nil {
		logger.Fatal("failed to load dataset", zap.String("path", cfg.DataPath), zap.Error(err))
	}
	logger.Info("dataset loaded",
		zap.String("path", cfg.DataPath),
		zap.Int("rows", storage.Len()),
		zap.Int64("size_bytes", storage.SizeBytes()),
	)

	// The manifest is optional; hand-placed CSVs simply have no provenance.
	var manifest *dataset.Manifest
	if m, err := dataset.ReadManifest(dataset.ManifestPath(cfg.DataPath)); err == nil {
		manifest = &m
	}

	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	api.InitRoutes(r, storage, manifest, logger)

	logger.Info("server running", zap.String("port", cfg.AppPort))
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logger.Fatal("error trying to start server", zap.Error(err))
	}
}
