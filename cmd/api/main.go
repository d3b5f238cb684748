package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staff-scheduler/config"
	"staff-scheduler/internal/logging"
	"staff-scheduler/internal/mailer"
	"staff-scheduler/internal/realtime"
	"staff-scheduler/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	log.Info("Connecting to database...")
	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Database connection failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewHub(log)
	go hub.Run(ctx)

	mail := mailer.New(mailer.Options{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	}, log)

	services := routes.NewServices(db, cfg, log, hub, mail)

	app := fiber.New(fiber.Config{
		AppName:   "staff-scheduler",
		BodyLimit: 12 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	// Middleware Global
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins, AllowCredentials: cfg.CORSOrigins != "*"}))
	app.Use(logger.New(logger.Config{Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n"}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.Setup(app, services)

	mux := http.NewServeMux()
	mux.Handle("/ws", realtime.ServeWS(hub, services.Tokens, cfg.SessionCookie, cfg.CORSOrigins))
	wsServer := &http.Server{
		Addr:              ":" + cfg.WSPort,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.WSPort).Info("WebSocket server listening")
		if err := wsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("WebSocket server stopped")
		}
	}()

	go func() {
		log.WithField("port", cfg.AppPort).Info("HTTP server listening")
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			log.WithError(err).Error("HTTP server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("WebSocket server shutdown")
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithError(err).Warn("HTTP server shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
