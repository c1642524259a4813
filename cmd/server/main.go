package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/MadhavSinha007/CrimeFile/internal/config"
	"github.com/MadhavSinha007/CrimeFile/internal/controllers"
	"github.com/MadhavSinha007/CrimeFile/internal/database"
	"github.com/MadhavSinha007/CrimeFile/internal/models"
	"github.com/MadhavSinha007/CrimeFile/internal/profile"
	"github.com/MadhavSinha007/CrimeFile/internal/services"
	"github.com/MadhavSinha007/CrimeFile/internal/validator"
)

func main() {
	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	if err := db.AutoMigrate(&models.Crime{}, &models.Officer{}, &models.Suspect{}, &models.Victim{}); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	val := validator.New()

	crimeCtrl := controllers.NewCrimeController(services.NewCrimeService(db), val)
	officerCtrl := controllers.NewOfficerController(services.NewOfficerService(db), val)
	suspectCtrl := controllers.NewSuspectController(services.NewSuspectService(db), val)
	victimCtrl := controllers.NewVictimController(services.NewVictimService(db), val)

	// The profile feature only runs when a key is configured.
	var profiler *profile.Profiler
	if cfg.GeminiAPIKey != "" {
		profiler, err = profile.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Fatal("failed to initialise profile service", zap.Error(err))
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, profile endpoint disabled")
	}
	profileCtrl := controllers.NewProfileController(profiler)

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	root := e.Group("")
	crimeCtrl.Register(root)
	officerCtrl.Register(root)
	suspectCtrl.Register(root)
	victimCtrl.Register(root)
	profileCtrl.Register(root)

	e.GET("/check", func(c echo.Context) error {
		return c.String(http.StatusOK, "Yep, It works")
	})

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.HTTPAddr))
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
