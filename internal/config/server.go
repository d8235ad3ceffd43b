package config

import (
	"context"
	"fmt"
	"os"

	"github.com/Abdouldav-cyber/chat/database/postgres"
	authHandler "github.com/Abdouldav-cyber/chat/internal/api/auth/handler"
	authRepository "github.com/Abdouldav-cyber/chat/internal/api/auth/repository"
	authService "github.com/Abdouldav-cyber/chat/internal/api/auth/service"
	chatHandler "github.com/Abdouldav-cyber/chat/internal/api/chat/handler"
	chatRepository "github.com/Abdouldav-cyber/chat/internal/api/chat/repository"
	chatService "github.com/Abdouldav-cyber/chat/internal/api/chat/service"
	notificationHandler "github.com/Abdouldav-cyber/chat/internal/api/notification/handler"
	notificationRepository "github.com/Abdouldav-cyber/chat/internal/api/notification/repository"
	notificationService "github.com/Abdouldav-cyber/chat/internal/api/notification/service"
	requestHandler "github.com/Abdouldav-cyber/chat/internal/api/request/handler"
	requestRepository "github.com/Abdouldav-cyber/chat/internal/api/request/repository"
	requestService "github.com/Abdouldav-cyber/chat/internal/api/request/service"
	"github.com/Abdouldav-cyber/chat/internal/middleware"
	"github.com/Abdouldav-cyber/chat/pkg/bcrypt"
	"github.com/Abdouldav-cyber/chat/pkg/nlp"
	"github.com/Abdouldav-cyber/chat/pkg/redis"
	"github.com/Abdouldav-cyber/chat/pkg/s3"
	"github.com/Abdouldav-cyber/chat/pkg/smtp"
	"github.com/Abdouldav-cyber/chat/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	handlers    []handler
	redisServer redis.IRedis
	smtpMailer  smtp.ItfSmtp
	s3Client    s3.ItfS3
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

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
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

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
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

// WithS3Client is optional wiring. The classifier resolver only needs it
// when model artifacts live in a bucket instead of a local directory.
func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Chat Domain
	chatRepo := chatRepository.New(s.db, s.log)
	engineStore := chatRepository.NewEngineStore(chatRepo, s.redisServer, s.log)
	catalog := nlp.NewHandle(engineStore, s.log)

	if err := catalog.Reload(context.Background()); err != nil {
		s.log.Errorf("Failed to load intent catalog: %v", err)
	}
	s.subscribeCatalogReload(catalog)

	annotator := nlp.NewAnnotator(os.Getenv("CHAT_LEXICON_PATH"), s.log)
	resolver := s.newResolver(catalog, annotator)
	engine := nlp.NewEngine(s.log, catalog, resolver, nlp.NewExtractor(annotator), engineStore, engineStore)

	chatServices := chatService.NewChatService(s.log, chatRepo, engine, catalog, s.redisServer, s.utils)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	// Notification Domain
	notificationRepo := notificationRepository.New(s.db, s.log)
	notificationServices := notificationService.NewNotificationService(s.log, notificationRepo, s.smtpMailer, s.utils)
	notificationHandlers := notificationHandler.New(s.log, s.validator, s.middleware, notificationServices)

	// HR Request Domain
	requestRepo := requestRepository.New(s.db, s.log)
	requestServices := requestService.NewRequestService(s.log, requestRepo, authRepo, notificationServices, s.redisServer, s.utils)
	requestHandlers := requestHandler.New(s.log, s.validator, s.middleware, requestServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, chatHandlers, notificationHandlers, requestHandlers)
}

// newResolver picks the resolution strategy from CHAT_RESOLVER. The
// lexical scorer is the default and needs no trained artifacts.
func (s *Server) newResolver(catalog *nlp.Handle, annotator nlp.Annotator) nlp.Resolver {
	if os.Getenv("CHAT_RESOLVER") == "classifier" {
		return nlp.NewStatisticalClassifier(s.artifactStore(), s.log)
	}
	return nlp.NewLexicalScorer(catalog, annotator, nlp.DefaultConfig())
}

func (s *Server) artifactStore() nlp.ArtifactStore {
	if dir := os.Getenv("CHAT_MODEL_DIR"); dir != "" {
		return nlp.FileStore{Dir: dir}
	}
	if s.s3Client != nil {
		return s.s3Client
	}
	return nlp.FileStore{Dir: "models"}
}

// subscribeCatalogReload keeps all instances serving the same intent set.
// Each intent mutation publishes on the reload channel after committing.
func (s *Server) subscribeCatalogReload(catalog *nlp.Handle) {
	if s.redisServer == nil {
		return
	}

	s.redisServer.Subscribe(context.Background(), redis.ChannelIntentsReload, func(payload string) {
		if err := catalog.Reload(context.Background()); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": payload,
				"error":      err.Error(),
			}).Error("Failed to reload intent catalog")
			return
		}
		s.log.WithFields(logrus.Fields{
			"request_id": payload,
		}).Info("Intent catalog reloaded")
	})
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
