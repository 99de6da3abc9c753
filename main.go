package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogify/config"
	"blogify/handlers"
	"blogify/repositories"
	"blogify/services"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type storage struct {
	posts repositories.PostRepository
	users repositories.UserRepository
	ping  handlers.Pinger
	close func()
}

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg)

	// Initialize database
	store, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer store.close()

	// Initialize services
	creds := services.NewCredentialStore(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.BcryptCost)
	authService := services.NewAuthService(store.users, creds)
	userService := services.NewUserService(store.users)
	postService := services.NewPostService(store.posts, store.users, cfg.PostsPageSize)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(handlers.RouterDeps{
		AuthService:         authService,
		PostService:         postService,
		UserService:         userService,
		Credentials:         creds,
		Ping:                store.ping,
		Logger:              logger,
		Production:          cfg.IsProduction(),
		AuthRateLimit:       cfg.AuthRateLimit,
		RequestTimeout:      cfg.DBTimeout,
		EnforceActiveStatus: cfg.EnforceActiveStatus,
	})

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsHandler(router),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func openStorage(cfg config.Config) (*storage, error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client, err := config.InitMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.DBName)
		if err := repositories.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}

		return &storage{
			posts: repositories.NewMongoPostRepository(db),
			users: repositories.NewMongoUserRepository(db),
			ping: func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			},
			close: func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := client.Disconnect(ctx); err != nil {
					slog.Error("mongo disconnect", "error", err)
				}
			},
		}, nil

	case config.DriverPostgres:
		db, err := config.InitPostgres(cfg)
		if err != nil {
			return nil, err
		}
		if err := repositories.AutoMigrate(db); err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}

		return &storage{
			posts: repositories.NewGormPostRepository(db),
			users: repositories.NewGormUserRepository(db),
			ping:  sqlDB.PingContext,
			close: func() {
				if err := sqlDB.Close(); err != nil {
					slog.Error("postgres close", "error", err)
				}
			},
		}, nil

	case config.DriverMemory:
		slog.Warn("using in-memory storage, data is lost on restart")
		return &storage{
			posts: repositories.NewMemoryPostRepository(),
			users: repositories.NewMemoryUserRepository(),
			close: func() {},
		}, nil
	}

	return nil, errors.New("unsupported DB_DRIVER " + cfg.DBDriver)
}
