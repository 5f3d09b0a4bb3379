package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultUserAgent is the default User-Agent string sent with all upstream requests.
const DefaultUserAgent = "ShowGraph/1.0 (+https://github.com/Belphemur/ShowGraph)"

// DefaultUpstreamBaseURL is the TVmaze REST API root.
const DefaultUpstreamBaseURL = "https://api.tvmaze.com"

// DefaultScheduleDate is the day served by the schedule query when none is configured.
const DefaultScheduleDate = "2023-01-01"

type Config struct {
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	UpstreamBaseURL       string `mapstructure:"upstream_base_url"`
	ScheduleDate          string `mapstructure:"schedule_date"`  // YYYY-MM-DD
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "30s", "1m", etc.
	UserAgent             string `mapstructure:"user_agent"`
	GraphiQL              bool   `mapstructure:"graphiql"`
	Server                struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	RateLimit struct {
		Requests uint   `mapstructure:"requests"` // 0 disables the limiter
		Period   string `mapstructure:"period"`
		MaxWait  string `mapstructure:"max_wait"`
	} `mapstructure:"rate_limit"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	LogLevel string `mapstructure:"log_level"`
	Cache    struct {
		Enabled  bool   `mapstructure:"enabled"`
		Provider string `mapstructure:"provider"` // "memory" or "redis"
		Size     int    `mapstructure:"size"`     // Maximum number of entries in the LRU cache
		TTL      string `mapstructure:"ttl"`      // Go duration string like "5m", "1h", etc.
		Redis    struct {
			Address  string `mapstructure:"address"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
		} `mapstructure:"redis"`
	} `mapstructure:"cache"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	Health struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"health"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	level := zerolog.InfoLevel
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)

	logger.Info().Str("level", level.String()).Msg("Logging configured")
	globalConfig = config
	logger.Info().Msg("Configuration loaded successfully")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 4000)
	v.SetDefault("server.address", "")
	v.SetDefault("upstream_base_url", DefaultUpstreamBaseURL)
	v.SetDefault("schedule_date", DefaultScheduleDate)
	v.SetDefault("client_timeout", "30s")
	v.SetDefault("graphiql", true)
	v.SetDefault("rate_limit.requests", 20)
	v.SetDefault("rate_limit.period", "10s")
	v.SetDefault("rate_limit.max_wait", "5s")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.provider", "memory")
	v.SetDefault("cache.size", 500)
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("health.enabled", false)
	v.SetDefault("health.port", 4001)
	v.SetDefault("sentry.environment", "production")
}

func LoadConfig() (*Config, error) {
	return loadConfig(viper.New())
}

func loadConfig(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("sentry.dsn", "SENTRY_DSN", "APP_SENTRY_DSN")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.UpstreamBaseURL == "" {
		config.UpstreamBaseURL = DefaultUpstreamBaseURL
	}
	config.UpstreamBaseURL = strings.TrimRight(config.UpstreamBaseURL, "/")
	if config.ScheduleDate == "" {
		config.ScheduleDate = DefaultScheduleDate
	}

	return &config, nil
}

func GetConfig() *Config {
	return globalConfig
}

func GetUserAgent() string {
	if globalConfig != nil && globalConfig.UserAgent != "" {
		return globalConfig.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	return logger
}
