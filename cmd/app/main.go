package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ZencrowWebsite/database"
	"ZencrowWebsite/internal/config"
	"ZencrowWebsite/pkg/log"
	"ZencrowWebsite/pkg/redis"
	"ZencrowWebsite/pkg/smtp"
	validatorPkg "ZencrowWebsite/pkg/validator"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn(log.Fields{"error": err.Error()}, "No .env file loaded, using process environment")
	}
	logger := log.NewLogger()

	fiberApp := config.NewFiber(logger)
	smtpConfig := smtp.LoadConfig()
	smtpMailer := smtp.New(smtpConfig)

	options := []config.ServerOption{
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validatorPkg.New()),
		config.WithDatabase(database.LoadConfig()),
		config.WithSMTPMailer(smtpMailer, smtpConfig),
		config.WithCookieKey(os.Getenv("COOKIE_SECRET")),
		config.WithMiddleware(),
		config.WithUtils(),
	}
	if redis.Enabled() {
		options = append(options, config.WithRedisServer(redis.New()))
	}

	server, err := config.NewServer(options...)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}
