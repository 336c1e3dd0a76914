package config

import (
	"context"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EngineADK    = "adk"
	EngineVertex = "vertex"
)

const (
	DefaultSearchBaseURL  = "https://api.search.brave.com/res/v1/web/search"
	DefaultWeatherBaseURL = "https://api.weatherbit.io/v2.0/current"
	DefaultNewsBaseURL    = "https://gnews.io/api/v4/search"
	DefaultPlacesBaseURL  = "https://maps.googleapis.com/maps/api/geocode/json"
)

type Config struct {
	Port        string
	LogLevel    string
	LogFormat   string
	FrontendURL string

	Engine        string
	GeminiAPIKey  string
	GeminiModel   string
	ProjectID     string
	Region        string
	MaxToolRounds int

	AdapterTimeout time.Duration
	Search         AdapterConfig
	Weather        AdapterConfig
	News           AdapterConfig
	Places         AdapterConfig
}

type AdapterConfig struct {
	BaseURL string
	APIKey  string
}

// New reads the process environment, after merging an optional .env file.
// Missing credentials are not an error here; they fail at call time.
func New() *Config {
	_ = godotenv.Load()
	return fromViper(newViper())
}

// Load is New plus resolution of sm:// credential references.
func Load(ctx context.Context) (*Config, error) {
	cfg := New()
	if !cfg.hasSecretRefs() {
		return cfg, nil
	}

	src, err := NewSecretManagerSource(ctx)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if err := cfg.ResolveSecrets(ctx, src); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("LOGLEVEL", "info")
	v.SetDefault("LOGFORMAT", "json")
	v.SetDefault("AGENTENGINE", EngineADK)
	v.SetDefault("GEMINIMODEL", "gemini-2.0-flash")
	v.SetDefault("REGION", "us-central1")
	v.SetDefault("MAXTOOLROUNDS", 5)
	v.SetDefault("ADAPTERTIMEOUT", "0s")
	v.SetDefault("SEARCH_BASE_URL", DefaultSearchBaseURL)
	v.SetDefault("WEATHER_BASE_URL", DefaultWeatherBaseURL)
	v.SetDefault("NEWS_BASE_URL", DefaultNewsBaseURL)
	v.SetDefault("PLACES_BASE_URL", DefaultPlacesBaseURL)
	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:           v.GetString("PORT"),
		LogLevel:       v.GetString("LOGLEVEL"),
		LogFormat:      v.GetString("LOGFORMAT"),
		FrontendURL:    v.GetString("FRONTEND_URL"),
		Engine:         strings.ToLower(v.GetString("AGENTENGINE")),
		GeminiAPIKey:   v.GetString("GEMINI_API_KEY"),
		GeminiModel:    v.GetString("GEMINIMODEL"),
		ProjectID:      v.GetString("PROJECTID"),
		Region:         v.GetString("REGION"),
		MaxToolRounds:  v.GetInt("MAXTOOLROUNDS"),
		AdapterTimeout: v.GetDuration("ADAPTERTIMEOUT"),
		Search: AdapterConfig{
			BaseURL: v.GetString("SEARCH_BASE_URL"),
			APIKey:  v.GetString("SEARCH_API_KEY"),
		},
		Weather: AdapterConfig{
			BaseURL: v.GetString("WEATHER_BASE_URL"),
			APIKey:  v.GetString("WEATHERBIT_API_KEY"),
		},
		News: AdapterConfig{
			BaseURL: v.GetString("NEWS_BASE_URL"),
			APIKey:  v.GetString("GNEWS_API_KEY"),
		},
		Places: AdapterConfig{
			BaseURL: v.GetString("PLACES_BASE_URL"),
			APIKey:  v.GetString("GPLACES_API_KEY"),
		},
	}
}
