package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"varsha-travels/internal/config"
	"varsha-travels/internal/events"
	handlers "varsha-travels/internal/handlers/shared"
	"varsha-travels/internal/middleware"
	"varsha-travels/internal/models"
	"varsha-travels/internal/repositories/interfaces"
	"varsha-travels/internal/repositories/mongodb"
	"varsha-travels/internal/services"
	"varsha-travels/internal/utils"
	"varsha-travels/pkg/broker"
	"varsha-travels/pkg/cache"
	"varsha-travels/pkg/database"
	"varsha-travels/pkg/logger"
	"varsha-travels/pkg/sms"
	"varsha-travels/pkg/storage"
	"varsha-travels/pkg/websocket"
	"varsha-travels/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.Log.Level),
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		AppName:    utils.AppName,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database
	mongo, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		if err := mongo.Close(); err != nil {
			appLogger.WithError(err).Warn("Failed to close MongoDB connection")
		}
	}()

	readiness := map[string]handlers.Pinger{"mongodb": mongo}

	migrator := database.NewMigrator(mongo.Database, mongodb.Migrations(), appLogger.Infof)
	if err := migrator.Up(ctx); err != nil {
		appLogger.WithError(err).Fatal("Failed to run migrations")
	}

	// Redis is optional; without it lists are not cached and the settings
	// bootstrap runs unlocked.
	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedisCache(&cache.RedisConfig{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			KeyPrefix:    cfg.Redis.KeyPrefix,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unavailable, continuing without cache")
			redisCache = nil
		} else {
			defer redisCache.Close()
			readiness["redis"] = redisCache
		}
	}

	// Image storage
	provider, err := storage.NewProvider(ctx, storageConfig(cfg.Storage))
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize image storage")
	}
	appLogger.WithField("provider", provider.Name()).Info("Image storage ready")

	// Resource events
	publishers := []events.Publisher{}
	var wsHandler *websocket.Handler
	if cfg.Events.WebSocket.Enabled {
		ws := cfg.Events.WebSocket
		wsHandler = websocket.NewHandler(ctx, websocket.Options{
			ReadBufferSize:  ws.ReadBufferSize,
			WriteBufferSize: ws.WriteBufferSize,
			PingInterval:    ws.PingInterval,
			PongTimeout:     ws.PongTimeout,
			MaxConnections:  ws.MaxConnections,
			AllowedOrigins:  ws.AllowedOrigins,
		}, appLogger)
		publishers = append(publishers, events.NewWebSocketPublisher(wsHandler.GetHub()))
	}
	if cfg.Events.Kafka.Enabled() {
		producer, err := broker.NewProducer(cfg.Events.Kafka.Brokers, cfg.Events.Kafka.Topic, cfg.Events.Kafka.WriteTimeout)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to create Kafka producer")
		}
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			appLogger.WithError(err).Warn("Kafka broker unreachable at startup")
		}
		appLogger.WithField("topic", producer.Topic()).Info("Publishing resource events to Kafka")
		publishers = append(publishers, events.NewKafkaPublisher(producer))
		readiness["kafka"] = handlers.PingFunc(producer.CheckConnection)
	}
	publisher := events.NewFanout(appLogger, publishers...)

	// Services
	janitor := services.NewImageJanitor(provider, utils.ImageDeleteTimeout, appLogger)
	notifier := services.NewNotifier(smsProvider(ctx, cfg.SMS, appLogger), cfg.SMS.AlertTo, appLogger)
	deps := services.Deps{
		Janitor:   janitor,
		Publisher: publisher,
		Notifier:  notifier,
		Logger:    appLogger,
	}

	plain := []mongodb.Option{mongodb.WithLogger(appLogger)}
	listCache := plain
	if redisCache != nil {
		listCache = repoOptions(redisCache, cfg.Redis.ListTTL, appLogger)
	}

	destinationService := services.NewDestinationService(
		mongodb.NewRepository[*models.Destination](mongo.Database, models.CollectionDestinations, listCache...), deps)
	vehicleService := services.NewVehicleService(
		mongodb.NewRepository[*models.Vehicle](mongo.Database, models.CollectionVehicles, listCache...), deps)
	reviewService := services.NewReviewService(
		mongodb.NewRepository[*models.Review](mongo.Database, models.CollectionReviews, listCache...), deps)
	bookingService := services.NewBookingService(
		mongodb.NewRepository[*models.Booking](mongo.Database, models.CollectionBookings, plain...), deps)
	messageService := services.NewContactMessageService(
		mongodb.NewRepository[*models.ContactMessage](mongo.Database, models.CollectionContactMessages, plain...), deps)

	var locker services.Locker
	if redisCache != nil {
		locker = redisCache
	}
	settingsService := services.NewContactSettingsService(
		mongodb.NewRepository[*models.ContactSettings](mongo.Database, models.CollectionContactSettings, plain...),
		locker, cfg.Redis.LockTTL, deps)

	authService := services.NewAuthService(services.AuthConfig{
		Email:     cfg.Admin.Email,
		Password:  cfg.Admin.Password,
		JWTSecret: cfg.Admin.JWTSecret,
		TokenTTL:  cfg.Admin.TokenTTL,
	}, appLogger)
	if !cfg.Admin.Configured() {
		appLogger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, admin login will fail")
	}
	if cfg.App.IsProduction() && !cfg.Admin.RequireAuth {
		appLogger.Warn("ADMIN_REQUIRE_AUTH is off, admin routes are open")
	}
	uploadService := services.NewUploadService(provider, cfg.App.UploadFolder, cfg.App.UploadMaxWidth, cfg.App.UploadMaxPixels, appLogger)

	// Handlers
	h := &routes.Handlers{
		Destinations:    handlers.NewResourceHandler[*models.Destination, models.DestinationInput, models.DestinationPatch](destinationService, handlers.DestinationMessages, appLogger),
		Vehicles:        handlers.NewResourceHandler[*models.Vehicle, models.VehicleInput, models.VehiclePatch](vehicleService, handlers.VehicleMessages, appLogger),
		Reviews:         handlers.NewResourceHandler[*models.Review, models.ReviewInput, services.NoUpdate](reviewService, handlers.ReviewMessages, appLogger),
		Bookings:        handlers.NewResourceHandler[*models.Booking, models.BookingInput, models.BookingStatusUpdate](bookingService, handlers.BookingMessages, appLogger),
		ContactMessages: handlers.NewResourceHandler[*models.ContactMessage, models.ContactMessageInput, models.ContactMessageUpdate](messageService, handlers.ContactMessages, appLogger),
		ContactSettings: handlers.NewContactSettingsHandler(settingsService, appLogger),
		Auth:            handlers.NewAuthHandler(authService, appLogger),
		Upload:          handlers.NewUploadHandler(uploadService, cfg.App.UploadMaxBytes, appLogger),
	}
	if wsHandler != nil {
		h.Events = wsHandler.HandleWebSocket
	}
	h.Ready = handlers.NewReadinessHandler(readiness, 3*time.Second, appLogger).Ready

	// Initialize Gin router
	if !cfg.App.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = appLogger.Writer()
	router := gin.New()
	router.MaxMultipartMemory = cfg.App.UploadMaxBytes

	// Global middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))
	router.Use(middleware.RecoveryMiddleware(appLogger))
	router.Use(middleware.CORSMiddleware(cfg.App.CORSOrigins))
	router.NoRoute(middleware.NoRouteHandler())

	if local, ok := provider.(*storage.LocalStorage); ok {
		router.Static("/uploads", local.BasePath())
	}

	adminOnly := middleware.AdminRequired(authService, cfg.Admin.RequireAuth)
	routes.SetupRoutes(router, h, adminOnly, middleware.TokenFromQuery(), adminOnly)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}

	go func() {
		appLogger.WithField("addr", server.Addr).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.WithError(err).Error("Server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Warn("Server shutdown did not complete cleanly")
	}

	// let background image deletes and SMS alerts finish before closing
	janitor.Wait()
	notifier.Wait()
	if closer, ok := provider.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}

func storageConfig(s *config.StorageConfig) storage.Config {
	return storage.Config{
		Provider:            s.Provider,
		CloudinaryURL:       s.Cloudinary.URL,
		CloudinaryCloudName: s.Cloudinary.CloudName,
		CloudinaryAPIKey:    s.Cloudinary.APIKey,
		CloudinaryAPISecret: s.Cloudinary.APISecret,
		LocalBasePath:       s.Local.BasePath,
		LocalBaseURL:        s.Local.BaseURL,
		AWSRegion:           s.AWS.Region,
		AWSBucket:           s.AWS.Bucket,
		AWSAccessKeyID:      s.AWS.AccessKeyID,
		AWSSecretAccessKey:  s.AWS.SecretAccessKey,
		AWSCDNDomain:        s.AWS.CDNDomain,
		GCSBucket:           s.GCP.Bucket,
		GCSCredentialsFile:  s.GCP.CredentialsFile,
		GCSCDNDomain:        s.GCP.CDNDomain,
	}
}

// smsProvider returns nil when alerts are disabled or misconfigured.
func smsProvider(ctx context.Context, cfg *config.SMSConfig, log *logger.Logger) sms.SMSProvider {
	if !cfg.Enabled() {
		return nil
	}

	switch cfg.Provider {
	case "twilio":
		t := cfg.Twilio
		if t.AccountSID == "" || t.AuthToken == "" || t.FromNumber == "" {
			log.Warn("SMS_PROVIDER=twilio but Twilio credentials are incomplete, alerts disabled")
			return nil
		}
		return sms.NewTwilioProvider(t.AccountSID, t.AuthToken, t.FromNumber)
	case "sns":
		provider, err := sms.NewAWSSNSProvider(ctx, cfg.AWS.Region, cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, cfg.SenderID)
		if err != nil {
			log.WithError(err).Warn("Failed to create SNS client, alerts disabled")
			return nil
		}
		return provider
	default:
		log.WithField("provider", cfg.Provider).Warn("Unknown SMS provider, alerts disabled")
		return nil
	}
}

// repoOptions enables the read-through list cache for public collections.
func repoOptions(c interfaces.CacheService, ttl time.Duration, log *logger.Logger) []mongodb.Option {
	return []mongodb.Option{mongodb.WithLogger(log), mongodb.WithListCache(c, ttl)}
}
