package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"uniportal/internal/config"
	"uniportal/internal/db"
	"uniportal/internal/handlers"
	mw "uniportal/internal/middleware"
	"uniportal/internal/storage"
)

func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}
	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	dbConn, err := sqlx.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to open db", zap.Error(err))
	}
	dbConn.SetMaxOpenConns(10)
	dbConn.SetConnMaxLifetime(2 * time.Hour)
	if err = dbConn.Ping(); err != nil {
		logger.Fatal("failed to ping db", zap.Error(err))
	}
	if err := db.RunMigrations(dbConn); err != nil {
		logger.Fatal("failed migrations", zap.Error(err))
	}

	store := storage.NewPostgres(dbConn)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(store, logger)
	blogHandler := handlers.NewBlogHandler(store, logger)
	adminHandler := handlers.NewAdminHandler(store, logger)
	contentHandler := handlers.NewContentHandler(store, logger)
	authMW := mw.NewAuthMiddleware([]byte(cfg.JWTSecret))

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", contentHandler.Health)
		api.Get("/blog/posts", blogHandler.ListPosts)
		api.Get("/blog/posts/{id}", blogHandler.GetPost)
		api.Get("/blog/posts/{id}/comments", blogHandler.ListComments)
		api.Get("/notifications/active", contentHandler.ActiveNotifications)
		api.Get("/resource-cards", contentHandler.ActiveResourceCards)

		api.Group(func(pr chi.Router) {
			pr.Use(authMW.RequireAuth)
			pr.Get("/auth/user", authHandler.GetUser)
			pr.Post("/blog/posts/{id}/rate", blogHandler.RatePost)
			pr.Post("/blog/posts/{id}/comment", blogHandler.AddComment)
			pr.Get("/admin/check", adminHandler.Check)
			pr.Get("/admin/notifications", adminHandler.ListNotifications)
			pr.Post("/admin/notifications", adminHandler.CreateNotification)
			pr.Put("/admin/notifications/{id}", adminHandler.UpdateNotification)
			pr.Get("/admin/resource-cards", adminHandler.ListResourceCards)
			pr.Put("/admin/resource-cards/{id}", adminHandler.UpdateResourceCard)
			pr.Post("/admin/blog/posts", adminHandler.CreatePost)
		})
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info("server stopped")
}
