package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates every setting the service reads at startup.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	LLM    LLMConfig
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

// DBConfig locates the sqlite database file.
type DBConfig struct {
	Path string
}

// LLMConfig holds completion model credentials and limits. The API key is
// required; starting without it is a fatal condition.
type LLMConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	llm, err := loadLLMConfig()
	if err != nil {
		return nil, err
	}

	db := DBConfig{Path: getEnvOrDefault("MEDCHAT_DB_PATH", "./medchat.db")}

	return &Config{Server: server, DB: db, LLM: llm}, nil
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// allow ":8080" or "127.0.0.1:8080" verbatim
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

func loadLLMConfig() (LLMConfig, error) {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return LLMConfig{}, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	maxTokens := 1500
	if raw := strings.TrimSpace(os.Getenv("COMPLETION_MAX_TOKENS")); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val <= 0 {
			return LLMConfig{}, fmt.Errorf("invalid COMPLETION_MAX_TOKENS value %q", raw)
		}
		maxTokens = val
	}

	return LLMConfig{
		APIKey:    apiKey,
		Model:     getEnvOrDefault("COMPLETION_MODEL", "gpt-4o-mini"),
		MaxTokens: maxTokens,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
