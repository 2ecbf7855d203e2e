package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the assistant service
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Server    ServerConfig    `mapstructure:"server"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Search    SearchConfig    `mapstructure:"search"`
	Scrape    ScrapeConfig    `mapstructure:"scrape"`
	Retrieval RetrievalConfig `mapstructure:"retrieval"`
	Session   SessionConfig   `mapstructure:"session"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// LLMConfig contains language-model provider settings. The same provider
// serves both intent classification and answer generation.
type LLMConfig struct {
	Provider     string        `mapstructure:"provider"` // gemini, openai
	GeminiAPIKey string        `mapstructure:"gemini_api_key"`
	OpenAIAPIKey string        `mapstructure:"openai_api_key"`
	Model        string        `mapstructure:"model"`
	Temperature  float64       `mapstructure:"temperature"`
	MaxTokens    int           `mapstructure:"max_tokens"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

func (c LLMConfig) Validate() error {
	switch c.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("llm.provider must be gemini or openai, got %q", c.Provider)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be > 0")
	}
	return nil
}

// SearchConfig contains web search settings. APIKey and EngineID are the two
// credentials of the Google Custom Search API; serper only needs APIKey.
type SearchConfig struct {
	Provider string        `mapstructure:"provider"` // googlecse, serper
	APIKey   string        `mapstructure:"api_key"`
	EngineID string        `mapstructure:"engine_id"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

func (c SearchConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("search.timeout must be > 0")
	}
	return nil
}

// ScrapeConfig contains page scraping settings. MinDelay/MaxDelay bound the
// randomized politeness delay applied before every fetch.
type ScrapeConfig struct {
	Fetcher      string        `mapstructure:"fetcher"` // static, chromedp
	Timeout      time.Duration `mapstructure:"timeout"`
	PerPageChars int           `mapstructure:"per_page_chars"`
	MinDelay     time.Duration `mapstructure:"min_delay"`
	MaxDelay     time.Duration `mapstructure:"max_delay"`
}

func (c ScrapeConfig) Validate() error {
	if c.PerPageChars <= 0 {
		return fmt.Errorf("scrape.per_page_chars must be > 0")
	}
	if c.MinDelay < 0 || c.MaxDelay < c.MinDelay {
		return fmt.Errorf("scrape delays invalid: min=%s max=%s", c.MinDelay, c.MaxDelay)
	}
	return nil
}

// RetrievalConfig bounds a single retrieval cycle
type RetrievalConfig struct {
	TargetScrapes int `mapstructure:"target_scrapes"`
	MaxURLs       int `mapstructure:"max_urls"`
	TotalChars    int `mapstructure:"total_chars"`
}

func (c RetrievalConfig) Validate() error {
	if c.TargetScrapes <= 0 {
		return fmt.Errorf("retrieval.target_scrapes must be > 0")
	}
	if c.MaxURLs < c.TargetScrapes {
		return fmt.Errorf("retrieval.max_urls (%d) must be >= target_scrapes (%d)", c.MaxURLs, c.TargetScrapes)
	}
	if c.TotalChars <= 0 {
		return fmt.Errorf("retrieval.total_chars must be > 0")
	}
	return nil
}

// SessionConfig selects the transcript store backend
type SessionConfig struct {
	Store string        `mapstructure:"store"` // inmemory, redis
	TTL   time.Duration `mapstructure:"ttl"`
	Redis RedisConfig   `mapstructure:"redis"`
}

// RedisConfig contains redis connection settings for the redis session store
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c SessionConfig) Validate() error {
	switch c.Store {
	case "inmemory":
	case "redis":
		if strings.TrimSpace(c.Redis.Addr) == "" {
			return fmt.Errorf("session.redis.addr required when session.store is redis")
		}
	default:
		return fmt.Errorf("session.store must be inmemory or redis, got %q", c.Store)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("session.ttl must be > 0")
	}
	return nil
}

// LoadConfig loads config from an optional file, applying defaults and
// environment overrides (WEBSAGE_* plus the bare credential names).
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")

	v.SetDefault("general.debug", false)
	v.SetDefault("general.log_level", "info")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.model", "gemini-1.5-flash")
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.max_tokens", 1024)
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("search.provider", "googlecse")
	v.SetDefault("search.timeout", 10*time.Second)
	v.SetDefault("scrape.fetcher", "static")
	v.SetDefault("scrape.timeout", 7*time.Second)
	v.SetDefault("scrape.per_page_chars", 1500)
	v.SetDefault("scrape.min_delay", time.Second)
	v.SetDefault("scrape.max_delay", 3*time.Second)
	v.SetDefault("retrieval.target_scrapes", 3)
	v.SetDefault("retrieval.max_urls", 7)
	v.SetDefault("retrieval.total_chars", 5000)
	v.SetDefault("session.store", "inmemory")
	v.SetDefault("session.ttl", 48*time.Hour)
	v.SetDefault("session.redis.db", 0)

	if path == "" {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("WEBSAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// credential names kept from the original deployment surface
	_ = v.BindEnv("llm.gemini_api_key", "WEBSAGE_LLM_GEMINI_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("llm.openai_api_key", "WEBSAGE_LLM_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("search.api_key", "WEBSAGE_SEARCH_API_KEY", "GOOGLE_SEARCH_API_KEY")
	_ = v.BindEnv("search.engine_id", "WEBSAGE_SEARCH_ENGINE_ID", "GOOGLE_SEARCH_CX")

	if err := v.ReadInConfig(); err != nil {
		// config file is optional; env + defaults cover everything
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && path != "" {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.LLM.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Search.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Scrape.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Retrieval.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Session.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
