package config

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"ZencrowWebsite/database"
	blogHandler "ZencrowWebsite/internal/api/blog/handler"
	blogRepository "ZencrowWebsite/internal/api/blog/repository"
	blogService "ZencrowWebsite/internal/api/blog/service"
	catalogHandler "ZencrowWebsite/internal/api/catalog/handler"
	catalogService "ZencrowWebsite/internal/api/catalog/service"
	contactHandler "ZencrowWebsite/internal/api/contact/handler"
	contactService "ZencrowWebsite/internal/api/contact/service"
	pagesHandler "ZencrowWebsite/internal/api/pages/handler"
	"ZencrowWebsite/internal/middleware"
	"ZencrowWebsite/pkg/flash"
	"ZencrowWebsite/pkg/redis"
	"ZencrowWebsite/pkg/smtp"
	"ZencrowWebsite/pkg/utils"
	validatorPkg "ZencrowWebsite/pkg/validator"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const serviceName = "zencrow-website"

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	redisServer redis.IRedis
	smtpMailer  smtp.ItfSmtp
	smtpConfig  smtp.Config
	cookieKey   string
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log)
	}
	if server.validator == nil {
		server.validator = validatorPkg.New()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.smtpMailer == nil {
		server.smtpMailer = smtp.New(server.smtpConfig)
	}
	if server.cookieKey == "" {
		server.cookieKey = encryptcookie.GenerateKey()
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects and brings the schema up to date before serving.
func WithDatabase(cfg database.Config) ServerOption {
	return func(s *Server) error {
		db, err := database.New(cfg)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		applied, err := database.MigrateUp(db)
		if err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		if s.log != nil {
			s.log.WithFields(logrus.Fields{
				"driver":  db.DriverName(),
				"applied": applied,
			}).Info("Database ready")
		}

		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp, cfg smtp.Config) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		s.smtpConfig = cfg
		return nil
	}
}

// WithCookieKey sets the base64 encoded 32-byte key that encrypts cookies.
// An empty key falls back to a per-process random key, so pending flash
// messages do not survive a restart.
func WithCookieKey(key string) ServerOption {
	return func(s *Server) error {
		if key == "" {
			if s.log != nil {
				s.log.Warn("COOKIE_SECRET not set, using a per-process cookie key")
			}
			s.cookieKey = encryptcookie.GenerateKey()
			return nil
		}

		raw, err := base64.StdEncoding.DecodeString(key)
		if err != nil || len(raw) != 32 {
			return fmt.Errorf("cookie key must be 32 bytes encoded as base64")
		}
		s.cookieKey = key
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Flash messages live in Redis when it is configured, in a cookie otherwise.
	var flashStore flash.Store
	if s.redisServer != nil {
		flashStore = flash.NewRedisStore(s.redisServer, s.utils)
	} else {
		flashStore = flash.NewCookieStore()
	}

	// Catalog
	catalogServices := catalogService.NewCatalogService()
	catalogHandlers := catalogHandler.New(s.log, s.middleware, catalogServices)
	pagesHandlers := pagesHandler.New(s.log, catalogServices)

	// Blog
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.NewBlogService(s.log, blogRepo)
	blogHandlers := blogHandler.New(s.log, s.middleware, blogServices)

	// Contact
	contactServices := contactService.NewContactService(s.log, s.validator, s.smtpMailer, s.smtpConfig)
	contactHandlers := contactHandler.New(s.log, s.middleware, contactServices, flashStore)

	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.engine.Use(encryptcookie.New(encryptcookie.Config{Key: s.cookieKey}))

	s.setupHealthCheck()
	s.handlers = append(s.handlers, pagesHandlers, catalogHandlers, blogHandlers, contactHandlers)

	for _, h := range s.handlers {
		h.Start(s.engine)
	}
}

func (s *Server) Run() error {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	s.log.Infof("Listening on :%s", port)
	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.engine.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format("2006-01-02T15:04:05.000000"),
			"service":   serviceName,
		})
	})
}
