package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snaptok/internal/bot"
	"snaptok/internal/config"
	"snaptok/internal/handler"
	"snaptok/internal/mq"
	"snaptok/internal/repository"
	"snaptok/internal/service"
	"snaptok/internal/tiktok"
	"snaptok/pkg/middleware"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SnapTok API
// @version 1.0
// @description TikTok link conversion service with a chat gateway and short link API

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	mysqlRepo := repository.NewMySQLRepository(&cfg.Database.MySQL)
	defer mysqlRepo.Close()

	// Initialize MQ (optional, can be nil)
	var mqProducer *mq.Producer
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		}
	}

	// Initialize services
	var store service.ShortURLStore
	var localShortener *service.LocalShortener
	switch cfg.Shortener.Variant {
	case "remote":
		store = service.NewRemoteShortener(mysqlRepo, redisRepo,
			cfg.Shortener.RemoteEndpoint, cfg.Shortener.RemoteToken, cfg.Shortener.TTLDays)
		log.Info().Str("endpoint", cfg.Shortener.RemoteEndpoint).Msg("Using remote shortener")
	default:
		bloomSvc := service.NewBloomService(redisRepo.GetClient(), &cfg.Bloom)
		localShortener = service.NewLocalShortener(mysqlRepo, redisRepo, bloomSvc,
			getDomain(cfg), cfg.Shortener.MaxSlugRetries)
		store = localShortener
	}

	guildSvc := service.NewGuildConfigService(mysqlRepo)
	usageSvc := service.NewUsageService(mysqlRepo, producerOrNil(mqProducer))

	tiktokClient := tiktok.NewClient(
		cfg.TikTok.VideoAPIBase,
		cfg.TikTok.MusicAPIBase,
		cfg.TikTok.UserAgent,
		time.Duration(cfg.TikTok.TimeoutSeconds)*time.Second,
	)

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		generateHandler := handler.NewGenerateHandler(store)
		v1.POST("/shortlink/generate", generateHandler.Generate)
	}

	// Redirect handler, only meaningful when this process owns the slugs
	if localShortener != nil {
		redirectHandler := handler.NewRedirectHandler(localShortener)
		router.GET("/:slug", redirectHandler.Redirect)
	}

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", handler.Health)

	// Start MQ consumer if configured
	var mqConsumer *mq.Consumer
	if cfg.RocketMQ.NameServer != "" {
		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, msg *mq.UsageMessage) error {
			return mysqlRepo.SaveUsageRecord(ctx, service.UsageRecordFromMessage(msg))
		})

		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Connect the chat gateway
	session, err := startDiscord(cfg, tiktokClient, store, guildSvc, usageSvc)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Discord")
	}
	defer session.Close()

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Close producer
	if mqProducer != nil {
		mqProducer.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// startDiscord opens the gateway session, wires the event handlers, and
// registers the slash commands.
func startDiscord(
	cfg *config.Config,
	tiktokClient *tiktok.Client,
	store service.ShortURLStore,
	guildSvc service.GuildConfigServiceInterface,
	usageSvc service.UsageServiceInterface,
) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("failed to open gateway: %w", err)
	}

	botHandler := bot.NewHandler(tiktokClient, store, guildSvc, usageSvc, session.State.User.ID)

	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		botHandler.HandleMessage(s, m)
	})
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		botHandler.HandleInteraction(s, i)
	})

	if _, err := session.ApplicationCommandBulkOverwrite(session.State.User.ID, "", bot.Commands); err != nil {
		log.Warn().Err(err).Msg("Failed to register slash commands")
	}

	log.Info().Str("user_id", session.State.User.ID).Msg("Connected to Discord")

	return session, nil
}

// producerOrNil avoids handing a typed nil pointer to an interface field
func producerOrNil(p *mq.Producer) mq.ProducerInterface {
	if p == nil {
		return nil
	}
	return p
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// getDomain returns the base URL short links are built on
func getDomain(cfg *config.Config) string {
	if cfg.Shortener.Domain != "" {
		return cfg.Shortener.Domain
	}
	if port := cfg.Server.Port; port != 80 && port != 443 {
		return fmt.Sprintf("http://localhost:%d", port)
	}
	return "http://localhost"
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
