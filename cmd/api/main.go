package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hackflow/hackflow-api/config"
	"github.com/hackflow/hackflow-api/internal/cache"
	"github.com/hackflow/hackflow-api/internal/chat"
	"github.com/hackflow/hackflow-api/internal/handlers"
	"github.com/hackflow/hackflow-api/internal/middleware"
	"github.com/hackflow/hackflow-api/internal/repository"
	"github.com/hackflow/hackflow-api/internal/services"
	"github.com/hackflow/hackflow-api/pkg/db"
	"github.com/hackflow/hackflow-api/pkg/elevenlabs"
	"github.com/hackflow/hackflow-api/pkg/github"
	"github.com/hackflow/hackflow-api/pkg/httpclient"
	"github.com/hackflow/hackflow-api/pkg/jwt"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"github.com/hackflow/hackflow-api/pkg/metrics"
	"github.com/hackflow/hackflow-api/pkg/perplexity"
	"github.com/hackflow/hackflow-api/pkg/profiling"
	"github.com/hackflow/hackflow-api/pkg/storage"
	"github.com/hackflow/hackflow-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

type repositories struct {
	ideas    repository.IdeaRepository
	messages repository.MessageRepository
	profiles repository.TeamProfileRepository
	ping     func(ctx context.Context) error
}

// openRepositories connects to Postgres, or falls back to process memory
// when DB_WORK_OFFLINE is set
func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, *pgxpool.Pool, error) {
	if cfg.Database.WorkOffline {
		logger.Warn("DB_WORK_OFFLINE is set: data is kept in memory and lost on restart")
		store := repository.NewMemoryStore()
		return &repositories{
			ideas:    store.Ideas(),
			messages: store.Messages(),
			profiles: store.Profiles(),
		}, nil, nil
	}

	pool, err := db.NewPool(ctx, db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return nil, nil, err
	}

	return &repositories{
		ideas:    repository.NewPostgresIdeaRepository(pool),
		messages: repository.NewPostgresMessageRepository(pool),
		profiles: repository.NewPostgresTeamProfileRepository(pool),
		ping:     pool.Ping,
	}, pool, nil
}

// newBroker shares chat rooms over NATS when NATS_URL is set
func newBroker(cfg *config.Config) (chat.Broker, func(), error) {
	if cfg.Chat.NATSURL == "" {
		return chat.NewLocalBroker(), func() {}, nil
	}

	nc, err := chat.ConnectNATS(cfg.Chat.NATSURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Chat rooms shared over NATS", zap.String("url", nc.ConnectedUrl()))

	return chat.NewNATSBroker(nc), func() {
		if drainErr := nc.Drain(); drainErr != nil {
			logger.Error("Failed to drain NATS connection", zap.Error(drainErr))
		}
	}, nil
}

func newProfileSource(ctx context.Context, cfg *config.Config) services.ProfileSource {
	if cfg.GitHub.Token == "" {
		logger.Info("GITHUB_API_TOKEN not set: team matching uses the built-in roster")
		return nil
	}

	client, err := github.NewClient(ctx, cfg.GitHub.Token)
	if err != nil {
		logger.Warn("GitHub client unavailable", zap.Error(err))
		return nil
	}
	return cache.NewProfileCache(client, cfg.Cache.GitHubProfileTTLSeconds)
}

func newAudioUploader(cfg *config.Config) services.AudioUploader {
	if !cfg.StorageEnabled() {
		logger.Info("Object storage not configured: narration is returned inline")
		return nil
	}

	client, err := storage.NewClient(storage.Config{
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		BucketName:      cfg.Storage.BucketName,
		Endpoint:        cfg.Storage.Endpoint,
		Region:          cfg.Storage.Region,
		PublicBaseURL:   cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize object storage client", zap.Error(err))
	}
	return client
}

func newSessionVerifier(cfg *config.Config) *jwt.SessionVerifier {
	if cfg.Auth.ClerkJWTKey == "" {
		return nil
	}

	verifier, err := jwt.NewSessionVerifier(cfg.Auth.ClerkJWTKey, cfg.Auth.ClerkIssuer)
	if err != nil {
		logger.Fatal("Failed to parse CLERK_JWT_KEY", zap.Error(err))
	}
	return verifier
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting HackFlow API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(tracing.Settings{
		ServiceName:       cfg.Observability.ServiceName,
		ServiceNamespace:  cfg.Observability.ServiceNamespace,
		ServiceVersion:    cfg.Observability.ServiceVersion,
		ServiceInstanceID: cfg.Observability.ServiceInstanceID,
		Environment:       cfg.Server.AppEnv,
		Endpoint:          cfg.Observability.ExporterEndpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(shutdownCtx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	stopProfiler, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer stopProfiler()

	metrics.RecordInfrastructureMetrics()

	// NOTE: migrations run separately via the migrate command
	repos, pool, err := openRepositories(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	defer db.Close(pool)

	broker, closeBroker, err := newBroker(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer closeBroker()

	hub, err := chat.NewHub(broker, repos.messages)
	if err != nil {
		logger.Fatal("Failed to start chat hub", zap.Error(err))
	}
	defer func() {
		if closeErr := hub.Close(); closeErr != nil {
			logger.Error("Failed to close chat hub", zap.Error(closeErr))
		}
	}()

	// External integrations
	httpClient := httpclient.NewStandardClient()
	llm := perplexity.NewClient(perplexity.Config{
		APIKey:  cfg.Perplexity.APIKey,
		BaseURL: cfg.Perplexity.BaseURL,
		Model:   cfg.Perplexity.Model,
	}, httpclient.NewClientWithTimeout(time.Duration(cfg.Perplexity.TimeoutSeconds)*time.Second))
	if !llm.Configured() {
		logger.Warn("PERPLEXITY_API_KEY not set: AI features answer 503")
	}
	speech := elevenlabs.NewClient(elevenlabs.Config{
		APIKey:  cfg.ElevenLabs.APIKey,
		BaseURL: cfg.ElevenLabs.BaseURL,
		VoiceID: cfg.ElevenLabs.VoiceID,
		ModelID: cfg.ElevenLabs.ModelID,
	}, httpclient.NewClientWithTimeout(2*time.Minute))

	// Initialize services
	ideaService := services.NewIdeaService(llm, repos.ideas, cfg, httpClient)
	messageService := services.NewMessageService(repos.messages, hub)
	teamProfileService := services.NewTeamProfileService(repos.profiles)
	matchingService := services.NewMatchingService(newProfileSource(ctx, cfg))
	researchService := services.NewResearchService(llm)
	sustainabilityService := services.NewSustainabilityService(llm)
	launchpadService := services.NewLaunchpadService(llm, speech, newAudioUploader(cfg), cfg.RevenueCat.APIKey)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(repos.ping)
	ideaHandler := handlers.NewIdeaHandler(ideaService)
	messageHandler := handlers.NewMessageHandler(messageService)
	teamProfileHandler := handlers.NewTeamProfileHandler(teamProfileService)
	matchingHandler := handlers.NewMatchingHandler(matchingService)
	researchHandler := handlers.NewResearchHandler(researchService)
	sustainabilityHandler := handlers.NewSustainabilityHandler(sustainabilityService)
	launchpadHandler := handlers.NewLaunchpadHandler(launchpadService)
	socketHandler := handlers.NewSocketHandler(hub, cfg.SocketOrigins())

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // Clerk session cookie
		MaxAge:           12 * time.Hour,
	}))

	generalRateLimiter := middleware.NewRateLimiter(ctx, 50, 100)
	aiRateLimiter := middleware.NewRateLimiter(ctx, 1, 5)
	socketRateLimiter := middleware.NewRateLimiter(ctx, 2, 10)

	verifier := newSessionVerifier(cfg)

	api := router.Group("/api")
	api.Use(middleware.BodySizeLimitMiddleware(1 << 20))

	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// A nil *jwt.SessionVerifier must not reach the interface parameter
	socketSession := middleware.OptionalSessionMiddleware(nil)
	if verifier != nil {
		socketSession = middleware.OptionalSessionMiddleware(verifier)
	}
	api.GET("/socket", socketRateLimiter.Middleware(), socketSession, socketHandler.Connect)

	ai := api.Group("", aiRateLimiter.Middleware())
	ai.POST("/perplexity", ideaHandler.GenerateIdea)
	ai.POST("/analyzeProject", researchHandler.AnalyzeProject)
	ai.POST("/findHackathons", researchHandler.FindHackathons)
	ai.POST("/sustainability/analyze", sustainabilityHandler.Analyze)
	ai.POST("/launchpad/pitch", launchpadHandler.Pitch)
	ai.POST("/launchpad/video", launchpadHandler.Video)
	ai.POST("/launchpad/monetization", launchpadHandler.Monetization)

	public := api.Group("", generalRateLimiter.Middleware())
	public.GET("/sustainability/data", sustainabilityHandler.Data)
	public.GET("/teamMatching", matchingHandler.TeamMatching)
	public.GET("/mentorship", matchingHandler.Mentorship)
	public.GET("/messages", messageHandler.ListMessages)
	public.GET("/teamProfile", teamProfileHandler.ListProfiles)

	if verifier == nil {
		logger.Warn("Session routes disabled: CLERK_JWT_KEY not configured")
	} else {
		protected := api.Group("", generalRateLimiter.Middleware(), middleware.ClerkSessionMiddleware(verifier))
		protected.GET("/ideas", ideaHandler.ListIdeas)
		protected.POST("/ideas", ideaHandler.CreateIdea)
		protected.POST("/messages", messageHandler.CreateMessage)
		protected.POST("/teamProfile", teamProfileHandler.CreateProfile)
	}

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		// AI generations and narration can take well over a minute
		WriteTimeout:   3 * time.Minute,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
