// @title Event API
// @version 1.0
// @description Events, invitations, RSVPs and reviews.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"eventapi/config"
	_ "eventapi/docs"
	authadapter "eventapi/internal/adapters/auth"
	"eventapi/internal/adapters/email"
	deliveryhttp "eventapi/internal/delivery/http"
	"eventapi/internal/delivery/http/controllers"
	"eventapi/internal/delivery/http/middleware"
	"eventapi/internal/repository/postgres"
	"eventapi/internal/services"
)

const tokenIssuer = "eventapi"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		return err
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Info("database ready")

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	rsvpRepo := postgres.NewRSVPRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	profileRepo := postgres.NewProfileRepository(db)

	// Adapters
	hasher := authadapter.NewBcryptHasher(bcrypt.DefaultCost)
	jwtManager := authadapter.NewJWTManager(cfg.JWTSecret, tokenIssuer)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return err
	}

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	authService := services.NewAuthService(userRepo, hasher, jwtManager, cfg.JWTExpiry, cfg.JWTRefreshTTL, cfg.ServiceTimeout)
	profileService := services.NewProfileService(profileRepo, cfg.ServiceTimeout)
	eventService := services.NewEventService(eventRepo, userRepo, emailService, cfg.AppBaseURL, logger, cfg.ServiceTimeout)
	rsvpService := services.NewRSVPService(rsvpRepo, eventRepo, cfg.ServiceTimeout)
	reviewService := services.NewReviewService(reviewRepo, eventRepo, cfg.ServiceTimeout)

	// HTTP
	router := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Auth:    controllers.NewAuthController(logger, authService),
		Profile: controllers.NewProfileController(logger, profileService),
		Event:   controllers.NewEventController(logger, eventService),
		RSVP:    controllers.NewRSVPController(logger, rsvpService),
		Review:  controllers.NewReviewController(logger, reviewService),
	}, jwtManager, db, logger)

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return err
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return err
		}
		logger.Info("rate limiter using redis store")
	}
	store, err := middleware.NewLimiterStore(redisClient)
	if err != nil {
		return err
	}
	handler, err := deliveryhttp.NewHandler(router, deliveryhttp.HandlerOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimit:      cfg.RateLimit,
		LimiterStore:   store,
		Verifier:       jwtManager,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
