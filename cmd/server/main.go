package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ripplehq/ripple/internal/config"
	"github.com/ripplehq/ripple/internal/database"
	postgresrepo "github.com/ripplehq/ripple/internal/repository/postgres"
	"github.com/ripplehq/ripple/internal/service"
	"github.com/ripplehq/ripple/internal/transport/http/handlers"
	"github.com/ripplehq/ripple/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Database
	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal("schema setup failed", zap.Error(err))
	}
	logger.Info("connected to database", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)

	// Services
	resolver := service.NewResolver(userRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	postService := service.NewPostService(postRepo, resolver)
	profileService := service.NewProfileService(userRepo, resolver)
	relationshipService := service.NewRelationshipService(userRepo, resolver)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	postHandler := handlers.NewPostHandler(postService, logger)
	userHandler := handlers.NewUserHandler(profileService, relationshipService, postService, logger)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/posts", postHandler.Feed)
	mux.HandleFunc("GET /api/v1/posts/{id}", postHandler.Get)
	mux.HandleFunc("GET /api/v1/users", userHandler.Search)
	mux.HandleFunc("GET /api/v1/users/{id}", userHandler.GetProfile)
	mux.HandleFunc("GET /api/v1/users/{id}/posts", userHandler.ListPosts)

	// Protected - Posts
	mux.Handle("POST /api/v1/posts", auth(http.HandlerFunc(postHandler.Create)))
	mux.Handle("DELETE /api/v1/posts/{id}", auth(http.HandlerFunc(postHandler.Delete)))
	mux.Handle("PUT /api/v1/posts/{id}/like", auth(http.HandlerFunc(postHandler.ToggleLike)))
	mux.Handle("POST /api/v1/posts/{id}/comments", auth(http.HandlerFunc(postHandler.AddComment)))

	// Protected - Users
	mux.Handle("PUT /api/v1/users/profile", auth(http.HandlerFunc(userHandler.UpdateProfile)))
	mux.Handle("PUT /api/v1/users/{id}/connect", auth(http.HandlerFunc(userHandler.ToggleConnection)))
	mux.Handle("GET /api/v1/users/{id}/connection-status", auth(http.HandlerFunc(userHandler.ConnectionStatus)))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Info("starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, middleware.CORS(cfg.AllowedOrigin)(mux)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
