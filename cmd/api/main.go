package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "campustasks/internal/adapter/db"
	googleadapter "campustasks/internal/adapter/google"
	httpadapter "campustasks/internal/adapter/http"
	"campustasks/internal/adapter/http/handlers"
	httpmiddleware "campustasks/internal/adapter/http/middleware"
	mailadapter "campustasks/internal/adapter/mail"
	openaiadapter "campustasks/internal/adapter/openai"
	"campustasks/internal/app/jobs"
	"campustasks/internal/app/service"
	"campustasks/internal/config"
	"campustasks/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	scheduleRepository := dbadapter.NewScheduleRepository(db)

	reasoningGateway := openaiadapter.NewClient(cfg)
	mailer := mailadapter.NewSMTPMailer(cfg)

	assistantService := service.NewAssistantService(reasoningGateway, taskRepository, scheduleRepository)
	taskService := service.NewTaskService(taskRepository, assistantService)
	scheduleService := service.NewScheduleService(scheduleRepository, taskRepository, reasoningGateway)
	authService := service.NewAuthService(userRepository, cfg.JwtSecret, cfg.JwtTTL)
	googleService := googleadapter.NewService(cfg, userRepository, scheduleRepository)
	notificationService := service.NewNotificationService(userRepository, taskRepository, mailer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := jobs.NewScheduler(notificationService)
	if err := scheduler.Start(ctx); err != nil {
		logger.Fatal("failed to start job scheduler", zap.Error(err))
	}
	defer scheduler.Stop()

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:        handlers.NewHealthHandler(db),
		Auth:          handlers.NewAuthHandler(authService),
		Tasks:         handlers.NewTaskHandler(taskService),
		Schedule:      handlers.NewScheduleHandler(scheduleService),
		Assistant:     handlers.NewAssistantHandler(assistantService),
		Google:        handlers.NewGoogleHandler(googleService),
		Notifications: handlers.NewNotificationHandler(notificationService),
	}, authService)

	addr := ":" + cfg.AppPort
	server := &http.Server{Addr: addr, Handler: r}

	go func() {
		logger.Info("starting server", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("forced shutdown", zap.Error(err))
	}
}
