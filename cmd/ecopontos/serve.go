package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecopontos/internal/assets"
	"ecopontos/internal/db"
	"ecopontos/internal/registry"
	"ecopontos/internal/server"
	"ecopontos/internal/storage"
	"ecopontos/internal/store"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	categoryRepo := store.NewCategoryRepository(pool)
	pointRepo := store.NewPointRepository(pool)

	reg := registry.New(logger, categoryRepo, pointRepo, assets.NewResolver(config.PublicBaseURL))

	uploads, err := buildStorage(ctx, config.StorageBackend, config.UploadDir, config.S3Bucket)
	if err != nil {
		return err
	}

	srv, err := server.New(config, logger, reg, uploads)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}

func buildStorage(ctx context.Context, backend, uploadDir, bucket string) (storage.Storage, error) {
	if backend == "s3" {
		awsConfig, err := loadAWSConfig(ctx)
		if err != nil {
			return nil, err
		}
		return storage.NewS3Storage(s3.NewFromConfig(awsConfig), bucket), nil
	}

	return storage.NewDiskStorage(uploadDir)
}
