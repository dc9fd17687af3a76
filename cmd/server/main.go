// Package main initializes and starts the photo-sharing HTTP server,
// setting up configuration, logging, the JSON-file-backed stores,
// services, handlers and routing.
package main

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yisusboy23/servidor/internal/config"
	"github.com/yisusboy23/servidor/internal/logger"
	"github.com/yisusboy23/servidor/internal/models"
	"github.com/yisusboy23/servidor/internal/repository"
	"github.com/yisusboy23/servidor/internal/server/handler/http"
	"github.com/yisusboy23/servidor/internal/service"
	"github.com/yisusboy23/servidor/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// A .env file is optional; flags and the environment still apply.
	_ = godotenv.Load()

	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Make sure the uploads directory exists before serving it.
	if err := os.MkdirAll(options.UploadsDir, 0o755); err != nil {
		zapLogger.Fatal("cannot create uploads directory", zap.Error(err))
	}

	// Open the three collections from their backing files.
	users, err := store.Open[models.User](filepath.Join(options.DataDir, "users.json"), zapLogger)
	if err != nil {
		zapLogger.Fatal("cannot open users store", zap.Error(err))
	}
	posts, err := store.Open[models.Post](filepath.Join(options.DataDir, "posts.json"), zapLogger)
	if err != nil {
		zapLogger.Fatal("cannot open posts store", zap.Error(err))
	}
	likes, err := store.Open[models.LikeEntry](filepath.Join(options.DataDir, "likes.json"), zapLogger)
	if err != nil {
		zapLogger.Fatal("cannot open likes store", zap.Error(err))
	}

	// Initialize repositories over the collections.
	userRepo := repository.NewUserRepository(users)
	postRepo := repository.NewPostRepository(posts)
	likeRepo := repository.NewLikeRepository(likes)

	// Initialize business-logic services.
	userService := service.NewUserService(userRepo, bcrypt.DefaultCost)
	likeService := service.NewLikeService(likeRepo, userRepo)
	postService := service.NewPostService(postRepo, likeRepo, options.UploadsDir, zapLogger)

	// Create HTTP handlers.
	userHandler := &http.UserHandler{UserService: userService}
	postHandler := &http.PostHandler{
		PostService:    postService,
		UploadsDir:     options.UploadsDir,
		MaxUploadBytes: options.MaxUploadBytes,
	}
	likeHandler := &http.LikeHandler{LikeService: likeService}
	dataHandler := &http.DataHandler{
		UserService: userService,
		PostService: postService,
		Likes:       likeService,
	}

	// Build the router with middleware and routes.
	router := http.NewRouter(userHandler, postHandler, likeHandler, dataHandler, zapLogger, options.UploadsDir)

	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	// Serve until interrupted, then drain and flush the stores.
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zapLogger.Info("starting HTTP server", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	<-done
	zapLogger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zapLogger.Error("shutdown error", zap.Error(err))
	}

	for name, flush := range map[string]func() error{
		"users": users.Flush,
		"posts": posts.Flush,
		"likes": likes.Flush,
	} {
		if err := flush(); err != nil {
			zapLogger.Error("final flush failed", zap.String("store", name), zap.Error(err))
		}
	}
}
