package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Support orchestrator specifics
	Backend      BackendConfig
	VectorStore  VectorStoreConfig
	Embedding    EmbeddingConfig
	Retrieval    RetrievalConfig
	Conversation ConversationConfig
	Knowledge    KnowledgeConfig
	RateLimit    RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points at the orders/accounts/diagnostics REST API.
type BackendConfig struct {
	BaseURL          string
	DefaultAccountID string // stopgap used by the account specialist when no id is present in the query
	MockEnabled      bool   // serve the fixture endpoints from this process
}

type VectorStoreConfig struct {
	URL        string
	VectorSize int
}

type EmbeddingConfig struct {
	APIKey string
	Model  string
}

type RetrievalConfig struct {
	TopK int
}

// ConversationConfig bounds the in-memory conversation store.
type ConversationConfig struct {
	MaxEntries int
	TTL        string
}

type KnowledgeConfig struct {
	DataDir string
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	// CONFIG_PATH points at an explicit config file (used by cmd/indexer).
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Backend API
	cfg.Backend.BaseURL = viper.GetString("backend.base_url")
	cfg.Backend.DefaultAccountID = viper.GetString("backend.default_account_id")
	cfg.Backend.MockEnabled = viper.GetBool("backend.mock_enabled")
	if backendURL := viper.GetString("backend_base_url"); backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}

	// Vector store
	cfg.VectorStore.URL = viper.GetString("vectorstore.url")
	cfg.VectorStore.VectorSize = viper.GetInt("vectorstore.vector_size")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.VectorStore.URL = qdrantURL
	}

	// Embedding
	cfg.Embedding.APIKey = expandEnvVar(viper.GetString("embedding.api_key"))
	cfg.Embedding.Model = viper.GetString("embedding.model")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Embedding.APIKey = voyageKey
	}

	// Retrieval
	cfg.Retrieval.TopK = viper.GetInt("retrieval.top_k")

	// Conversation store
	cfg.Conversation.MaxEntries = viper.GetInt("conversation.max_entries")
	cfg.Conversation.TTL = viper.GetString("conversation.ttl")

	// Knowledge base
	cfg.Knowledge.DataDir = viper.GetString("knowledge.data_dir")
	if dataDir := viper.GetString("data_dir"); dataDir != "" {
		cfg.Knowledge.DataDir = dataDir
	}

	// Rate limiting
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Fall back to a single local Ollama provider so the service can run
	// without a config file, honoring OLLAMA_BASE_URL / MODEL_NAME env vars.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
			Name:     "ollama",
			Enabled:  true,
			Priority: 1,
			BaseURL:  viper.GetString("ollama_base_url"),
			Model:    viper.GetString("model_name"),
		})
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backend.base_url", "http://localhost:8080")
	viper.SetDefault("backend.default_account_id", "ACC-1111")
	viper.SetDefault("backend.mock_enabled", true)

	viper.SetDefault("vectorstore.url", "http://localhost:6333")
	viper.SetDefault("vectorstore.vector_size", 1024)

	viper.SetDefault("embedding.model", "voyage-3")

	viper.SetDefault("retrieval.top_k", 3)

	viper.SetDefault("conversation.max_entries", 1000)
	viper.SetDefault("conversation.ttl", "1h")

	viper.SetDefault("knowledge.data_dir", "data")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_min", 60)

	viper.SetDefault("ollama_base_url", "http://localhost:11434")
	viper.SetDefault("model_name", "gemma3:1b")

	// LLM defaults. Retry attempts default to 1: failures degrade to the
	// fallback answer path instead of being retried.
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		// Unresolved placeholder reads as "not configured", so callers can
		// key optional features off an empty value.
		return ""
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
