package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"childcare_backend/internals/configs"
	database "childcare_backend/internals/databases"
	driftService "childcare_backend/internals/features/moderation/drift/service"
	helper "childcare_backend/internals/helpers"
	"childcare_backend/internals/helpers/dbtime"
	middlewares "childcare_backend/internals/middlewares"
	routes "childcare_backend/internals/route"
	"childcare_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	dbtime.SetDefaultLocation(dbtime.LoadDefaultLocation(configs.Timezone))

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		ErrorHandler:            helper.FromFiberError,
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	if configs.DBAutoMigrate {
		if err := database.AutoMigrate(database.DB); err != nil {
			log.Fatalf("❌ auto-migrate: %v", err)
		}
		log.Println("✅ schema migrated")
	}
	if configs.RunSeeds {
		seeds.RunAllSeeds(database.DB)
	}
	database.WarmUpQueries()

	svc := routes.NewServices(database.DB)
	routes.SetupRoutes(app, svc)

	// ⏱ drift polling after DB is ready
	poller := driftService.NewPoller(svc.Drift, driftService.CronScheduler{}, driftService.PollerConfig{
		InitialDelay:   configs.DriftInitialDelay,
		Interval:       configs.DriftPollInterval,
		ObserveTimeout: configs.DriftObserveTimeout,
	})
	poller.Start()

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s", configs.Port)
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	poller.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
