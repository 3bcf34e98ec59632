package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Auth          AuthConfig
	Perplexity    PerplexityConfig
	ElevenLabs    ElevenLabsConfig
	RevenueCat    RevenueCatConfig
	GitHub        GitHubConfig
	Storage       StorageConfig
	Chat          ChatConfig
	EventTriggers EventTriggersConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
	Cache         CacheConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URL         string
	MaxConns    int32
	MinConns    int32
	WorkOffline bool
}

// AuthConfig holds Clerk settings. JWTKey is the PEM public key Clerk
// publishes for networkless session verification.
type AuthConfig struct {
	ClerkJWTKey         string
	ClerkSecretKey      string
	ClerkPublishableKey string
	ClerkIssuer         string
}

type PerplexityConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

type ElevenLabsConfig struct {
	APIKey  string
	BaseURL string
	VoiceID string
	ModelID string
}

type RevenueCatConfig struct {
	APIKey string
}

type GitHubConfig struct {
	Token string
}

type StorageConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Endpoint        string
	Region          string
	PublicBaseURL   string
}

type ChatConfig struct {
	SocketURL string
	NATSURL   string
}

type EventTriggersConfig struct {
	IdeaCreatedTriggerURL string
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

type CacheConfig struct {
	GitHubProfileTTLSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "/app/logs")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 1)
	v.SetDefault("PERPLEXITY_BASE_URL", "https://api.perplexity.ai")
	v.SetDefault("PERPLEXITY_MODEL", "sonar")
	v.SetDefault("PERPLEXITY_TIMEOUT_SECONDS", 60)
	v.SetDefault("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io")
	v.SetDefault("ELEVENLABS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM")
	v.SetDefault("ELEVENLABS_MODEL_ID", "eleven_multilingual_v2")
	v.SetDefault("O11Y_BE_SERVICE_NAME", "hackflow-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "hackflow")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "hackflow-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,goroutines")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)
	v.SetDefault("GITHUB_PROFILE_CACHE_TTL", 900) // 15 minutes in seconds

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	allowedOrigins := splitList(v.GetString("ALLOWED_CORS_ORIGINS"))

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			AllowedOrigins: allowedOrigins,
		},
		Database: DatabaseConfig{
			URL:         v.GetString("DATABASE_URL"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			MinConns:    v.GetInt32("DB_MIN_CONNS"),
			WorkOffline: v.GetBool("DB_WORK_OFFLINE"),
		},
		Auth: AuthConfig{
			ClerkJWTKey:         v.GetString("CLERK_JWT_KEY"),
			ClerkSecretKey:      v.GetString("CLERK_SECRET_KEY"),
			ClerkPublishableKey: v.GetString("NEXT_PUBLIC_CLERK_PUBLISHABLE_KEY"),
			ClerkIssuer:         v.GetString("CLERK_ISSUER"),
		},
		Perplexity: PerplexityConfig{
			APIKey:         v.GetString("PERPLEXITY_API_KEY"),
			BaseURL:        v.GetString("PERPLEXITY_BASE_URL"),
			Model:          v.GetString("PERPLEXITY_MODEL"),
			TimeoutSeconds: v.GetInt("PERPLEXITY_TIMEOUT_SECONDS"),
		},
		ElevenLabs: ElevenLabsConfig{
			APIKey:  v.GetString("ELEVENLABS_API_KEY"),
			BaseURL: v.GetString("ELEVENLABS_BASE_URL"),
			VoiceID: v.GetString("ELEVENLABS_VOICE_ID"),
			ModelID: v.GetString("ELEVENLABS_MODEL_ID"),
		},
		RevenueCat: RevenueCatConfig{
			APIKey: v.GetString("REVENUECAT_API_KEY"),
		},
		GitHub: GitHubConfig{
			Token: v.GetString("GITHUB_API_TOKEN"),
		},
		Storage: StorageConfig{
			AccessKeyID:     v.GetString("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("STORAGE_SECRET_ACCESS_KEY"),
			BucketName:      v.GetString("STORAGE_BUCKET_NAME"),
			Endpoint:        v.GetString("STORAGE_ENDPOINT"),
			Region:          v.GetString("STORAGE_REGION"),
			PublicBaseURL:   v.GetString("STORAGE_PUBLIC_BASE_URL"),
		},
		Chat: ChatConfig{
			SocketURL: v.GetString("NEXT_PUBLIC_SOCKET_URL"),
			NATSURL:   v.GetString("NATS_URL"),
		},
		EventTriggers: EventTriggersConfig{
			IdeaCreatedTriggerURL: v.GetString("IDEA_CREATED_TRIGGER_URL"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
		Cache: CacheConfig{
			GitHubProfileTTLSeconds: v.GetInt("GITHUB_PROFILE_CACHE_TTL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set.
// Third-party API keys are optional: the features that need them answer 503.
func (c *Config) Validate() error {
	if !c.Database.WorkOffline && c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required when not in offline mode")
	}

	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}

	if c.Storage.AccessKeyID != "" && c.Storage.BucketName == "" {
		return fmt.Errorf("STORAGE_BUCKET_NAME is required when storage credentials are set")
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}

// StorageEnabled reports whether object storage credentials are present
func (c *Config) StorageEnabled() bool {
	return c.Storage.AccessKeyID != "" && c.Storage.SecretAccessKey != ""
}

// SocketOrigins returns origins allowed to open chat sockets: the CORS list
// plus the public socket URL when it is set.
func (c *Config) SocketOrigins() []string {
	origins := append([]string{}, c.Server.AllowedOrigins...)
	if c.Chat.SocketURL != "" {
		origins = append(origins, strings.TrimRight(c.Chat.SocketURL, "/"))
	}
	return origins
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
