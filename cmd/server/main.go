package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"s3m/internal/config"
	"s3m/internal/handler"
	"s3m/internal/router"
	"s3m/internal/service"
	"s3m/internal/storage"

	"github.com/gin-gonic/gin"
)

// @title           S3M API
// @version         1.0
// @description     A small service that generates pre-signed S3 URLs for uploads and downloads.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/s3m

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Println("Configuration loaded")

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// S3 clients; the bucket reachability check happens here, so a bad
	// bucket, region, or credential set stops the process before it serves.
	s3Client, err := storage.NewS3Client(context.Background(), storage.Options{
		AccessKeyID:     cfg.AccessKeyID,
		SecretAccessKey: cfg.SecretAccessKey,
		Bucket:          cfg.BucketName,
		Endpoint:        cfg.BucketEndpoint,
		Region:          cfg.BucketRegion,
	})
	if err != nil {
		log.Fatalf("Failed to initialize S3 client: %v", err)
	}

	// Service layer
	presignService := service.NewPresignService(s3Client.Presign(), s3Client.Bucket(), cfg.KeyPrefix)

	// Handler layer
	presignHandler := handler.NewPresignHandler(presignService)

	// Router
	r := router.Setup(&router.Config{
		PresignHandler:  presignHandler,
		EnableEndpoints: cfg.AutoEndpoint,
	})
	if cfg.AutoEndpoint {
		log.Println("Built-in /api/s3m endpoints enabled")
	}

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
