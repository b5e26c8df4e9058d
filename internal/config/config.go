package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultUserAgent is the browser identity sent with every outbound fetch.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Config holds the full application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Fetch     FetchConfig     `yaml:"fetch" mapstructure:"fetch"`
	Extract   ExtractConfig   `yaml:"extract" mapstructure:"extract"`
	Search    SearchConfig    `yaml:"search" mapstructure:"search"`
	Jina      JinaConfig      `yaml:"jina" mapstructure:"jina"`
	LLM       LLMConfig       `yaml:"llm" mapstructure:"llm"`
	Groq      GroqConfig      `yaml:"groq" mapstructure:"groq"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Session   SessionConfig   `yaml:"session" mapstructure:"session"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// FetchConfig configures outbound page fetches.
type FetchConfig struct {
	TimeoutSecs  int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	UserAgent    string `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64  `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// ExtractConfig configures page text extraction.
type ExtractConfig struct {
	MaxContentLength int `yaml:"max_content_length" mapstructure:"max_content_length"`
}

// SearchConfig configures the search adapter.
type SearchConfig struct {
	Provider   string `yaml:"provider" mapstructure:"provider"`
	BaseURL    string `yaml:"base_url" mapstructure:"base_url"`
	NumResults int    `yaml:"num_results" mapstructure:"num_results"`
}

// JinaConfig holds Jina AI Search settings.
type JinaConfig struct {
	Key           string `yaml:"key" mapstructure:"key"`
	SearchBaseURL string `yaml:"search_base_url" mapstructure:"search_base_url"`
}

// LLMConfig holds chat completion parameters shared by all providers.
type LLMConfig struct {
	DefaultModel string  `yaml:"default_model" mapstructure:"default_model"`
	Temperature  float64 `yaml:"temperature" mapstructure:"temperature"`
	MaxTokens    int64   `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// GroqConfig holds settings for the OpenAI-compatible Groq endpoint.
type GroqConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key    string   `yaml:"key" mapstructure:"key"`
	Models []string `yaml:"models" mapstructure:"models"`
}

// StoreConfig configures the session store backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// SessionConfig configures session identification.
type SessionConfig struct {
	CookieName string `yaml:"cookie_name" mapstructure:"cookie_name"`
}

// HasLLMKey reports whether at least one chat provider is configured.
func (c *Config) HasLLMKey() bool {
	return c.Groq.Key != "" || c.Anthropic.Key != ""
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PAGECHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 5001)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("fetch.timeout_secs", 10)
	v.SetDefault("fetch.user_agent", DefaultUserAgent)
	v.SetDefault("fetch.max_body_bytes", 5*1024*1024)
	v.SetDefault("extract.max_content_length", 10000)
	v.SetDefault("search.provider", "duckduckgo")
	v.SetDefault("search.base_url", "https://html.duckduckgo.com/html/")
	v.SetDefault("search.num_results", 3)
	v.SetDefault("jina.search_base_url", "https://s.jina.ai")
	v.SetDefault("llm.default_model", "mixtral-8x7b-32768")
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.max_tokens", 1024)
	v.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("anthropic.models", []string{"claude-haiku-4-5-20251001", "claude-sonnet-4-5-20250929"})
	v.SetDefault("store.driver", "memory")
	v.SetDefault("session.cookie_name", "pagechat_session")

	// Secrets have no default, so AutomaticEnv alone would not surface them
	// through Unmarshal.
	for _, key := range []string{"groq.key", "anthropic.key", "jina.key", "store.database_url"} {
		if err := v.BindEnv(key); err != nil {
			return nil, eris.Wrapf(err, "config: bind env %s", key)
		}
	}

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

// Validate checks the settings a command mode depends on. Mode is "serve"
// for the HTTP API, "ask" for one-shot questions, or "scrape" for commands
// that never call a chat provider.
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "serve":
		if c.Server.Port <= 0 {
			errs = append(errs, "server.port must be > 0")
		}
		if !c.HasLLMKey() {
			errs = append(errs, "groq.key or anthropic.key is required")
		}
		errs = append(errs, c.validateStore()...)
	case "ask":
		if !c.HasLLMKey() {
			errs = append(errs, "groq.key or anthropic.key is required")
		}
	case "scrape":
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if c.Extract.MaxContentLength <= 0 {
		errs = append(errs, "extract.max_content_length must be > 0")
	}
	if c.Search.NumResults < 1 || c.Search.NumResults > 10 {
		errs = append(errs, "search.num_results must be between 1 and 10")
	}
	switch c.Search.Provider {
	case "duckduckgo":
	case "jina":
		if c.Jina.Key == "" {
			errs = append(errs, "jina.key is required when search.provider is jina")
		}
	default:
		errs = append(errs, "search.provider must be duckduckgo or jina")
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (c *Config) validateStore() []string {
	switch c.Store.Driver {
	case "memory":
		return nil
	case "sqlite", "postgres":
		if c.Store.DatabaseURL == "" {
			return []string{"store.database_url is required for driver " + c.Store.Driver}
		}
		return nil
	default:
		return []string{"store.driver must be memory, sqlite or postgres"}
	}
}
