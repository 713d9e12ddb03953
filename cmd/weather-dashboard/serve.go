package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	_ "weather-dashboard/docs"
	"weather-dashboard/internal/application/controller"
	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/application/processor"
	"weather-dashboard/internal/application/schedule"
	"weather-dashboard/internal/domain/gateway/cache"
	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/gateway/queue"
	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/internal/domain/usecase/auth"
	"weather-dashboard/internal/domain/usecase/favorite"
	"weather-dashboard/internal/domain/usecase/health"
	"weather-dashboard/internal/domain/usecase/settings"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/internal/infra/aws"
	gormdb "weather-dashboard/internal/infra/database/gorm"
	"weather-dashboard/internal/infra/database/sqlc"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"
	"weather-dashboard/pkg/resource"
	"weather-dashboard/pkg/sqs"
)

const refreshWorkerName = "favorites-refresh"

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the refresh worker and the refresh schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	dsn := gormdb.DSN()
	gormDB, err := gormdb.Open(dsn)
	if err != nil {
		return err
	}
	if err := gormdb.Migrate(gormDB); err != nil {
		return err
	}

	sqlDB, err := sqlc.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	redisClient, err := redis.NewClient(newRedisConfig())
	if err != nil {
		return err
	}
	defer redisClient.Close()
	if err := redisClient.Ping(ctx); err != nil {
		log.Warn("Redis is not reachable, cache and sessions will fail until it is", zap.Error(err))
	}

	// Init Gateways
	userGateway := db.NewGormUserGateway(gormDB)
	favoriteGateway := db.NewSQLCFavoriteGateway(sqlDB)
	dbHealthGateway := db.NewGormHealthDBGateway(gormDB)
	sessionGateway := session.NewRedisSessionGateway(redisClient, resource.GetDuration("app.session.ttl"))
	readingCache := cache.NewRedisReadingCache(redisClient, resource.GetDuration("app.weather.cache-ttl"))
	cacheHealthGateway := cache.NewRedisHealthGateway(redisClient)
	queueHealthGateway := queue.NewQueueHealthGateway()
	weatherGateway := newWeatherGateway("", 0)

	refreshEnabled := resource.GetBool("app.weather.refresh.enabled")
	refreshQueue := resource.GetString("app.weather.refresh.queue")

	var sqsClient sqs.SQSClient
	var queueSender queue.Sender
	if refreshEnabled {
		awsConfig, err := aws.LoadConfig(ctx)
		if err != nil {
			return err
		}
		sqsClient = aws.NewSqsClient(awsConfig)
		queueSender = aws.NewSQSSenderAdapter(sqsClient)
	}

	// Init UseCase
	authUseCase := auth.NewAuthUseCase(userGateway, sessionGateway, bcrypt.DefaultCost)
	settingsUseCase := settings.NewSettingsUseCase(userGateway)
	favoriteUseCase := favorite.NewFavoriteUseCase(favoriteGateway)
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, cacheHealthGateway, queueHealthGateway)
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, weather.Options{
		QueueName:       refreshQueue,
		BatchSize:       resource.GetInt("app.weather.refresh.batch-size"),
		ReadingCache:    readingCache,
		FavoriteGateway: favoriteGateway,
		QueueSender:     queueSender,
	})

	// Init Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.SetupRequestLogger(e)
	e.Use(echomw.Recover())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	sessionConfig := middleware.SessionConfig{
		CookieName: resource.GetStringOrDefault("app.session.cookie-name", "weather_session"),
		TTL:        resource.GetDuration("app.session.ttl"),
		Secure:     resource.GetBool("app.session.secure-cookie"),
	}
	api := e.Group(resource.GetString("app.server.context-path"))
	api.Use(middleware.Session(authUseCase, sessionConfig))

	// Init Controller
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewAuthController(api, authUseCase, sessionConfig).InitAuthRoutes()
	controller.NewSettingsController(api, settingsUseCase).InitSettingsRoutes()
	controller.NewFavoriteController(api, favoriteUseCase).InitFavoriteRoutes()
	controller.NewWeatherController(api, weatherUseCase, settingsUseCase).InitWeatherRoutes()

	// Init Worker and Schedule
	var scheduler *schedule.RefreshScheduler
	if refreshEnabled {
		worker, err := sqs.NewWorker(ctx, sqsClient, refreshQueue, processor.NewRefreshProcessor(weatherUseCase), &sqs.WorkerConfig{
			PoolSize: resource.GetInt("app.weather.refresh.worker-pool-size"),
			LogLevel: sqs.ErrorLevel,
		})
		if err != nil {
			return err
		}
		queueHealthGateway.RegisterWorker(refreshWorkerName, worker)
		go worker.Start(ctx)

		scheduler = schedule.NewRefreshScheduler(weatherUseCase, redisClient,
			resource.GetString("app.weather.refresh.cron"), resource.GetDuration("app.weather.refresh.lock-ttl"))
		if err := scheduler.Start(); err != nil {
			return err
		}
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			serverErr <- err
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		return err
	}

	log.Info(msg.GetMessage("app.shutdown"))
	if scheduler != nil {
		scheduler.Stop()
	}
	queueHealthGateway.UnregisterWorker(refreshWorkerName)

	timeout := resource.GetDuration("app.server.shutdown-timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
