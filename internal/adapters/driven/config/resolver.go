package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/subosito/gotenv"

	"github.com/MullaAhmed/claude-skill-generator/internal/core/ports/driven"
)

// Credential sources, in precedence order.
const (
	// ConfigFileName is the JSON config file, relative to the working dir.
	ConfigFileName = ".claude/config.json"

	// DotenvFileName is the dotenv file, relative to the working dir.
	DotenvFileName = ".env"

	// EnvGitHubToken is the environment variable for the hosting API token.
	EnvGitHubToken = "GITHUB_TOKEN"

	// EnvFirecrawlKey is the environment variable for the Firecrawl key.
	EnvFirecrawlKey = "FIRECRAWL_API_KEY"
)

// Ensure Config implements the interface.
var _ driven.TokenProvider = Config{}

// Config holds resolved credentials. Both fields may be empty: the
// verifier then runs unauthenticated and the enhanced-fetch path is
// skipped.
type Config struct {
	// GitHubToken authenticates hosting API calls.
	GitHubToken string

	// FirecrawlAPIKey authenticates enhanced-fetch scrapes.
	FirecrawlAPIKey string
}

// GetToken implements driven.TokenProvider for the hosting API client.
func (c Config) GetToken(_ context.Context) (string, error) {
	return c.GitHubToken, nil
}

// jsonConfig is the shape of .claude/config.json.
type jsonConfig struct {
	FirecrawlAPIKey string `json:"firecrawl_api_key"`
	GitHubToken     string `json:"github_token"`
}

// Resolve builds a Config from the sources under dir, first match winning
// per key. Missing or unreadable sources are skipped silently; absence of
// all of them is a valid configuration.
func Resolve(dir string) Config {
	var cfg Config

	if fromFile, err := loadJSON(filepath.Join(dir, ConfigFileName)); err == nil {
		cfg.GitHubToken = fromFile.GitHubToken
		cfg.FirecrawlAPIKey = fromFile.FirecrawlAPIKey
	}

	dotenv := loadDotenv(filepath.Join(dir, DotenvFileName))
	if cfg.GitHubToken == "" {
		cfg.GitHubToken = dotenv[EnvGitHubToken]
	}
	if cfg.FirecrawlAPIKey == "" {
		cfg.FirecrawlAPIKey = dotenv[EnvFirecrawlKey]
	}

	if cfg.GitHubToken == "" {
		cfg.GitHubToken = strings.TrimSpace(os.Getenv(EnvGitHubToken))
	}
	if cfg.FirecrawlAPIKey == "" {
		cfg.FirecrawlAPIKey = strings.TrimSpace(os.Getenv(EnvFirecrawlKey))
	}

	return cfg
}

// loadJSON reads and parses the JSON config file.
func loadJSON(path string) (jsonConfig, error) {
	var cfg jsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	cfg.GitHubToken = strings.TrimSpace(cfg.GitHubToken)
	cfg.FirecrawlAPIKey = strings.TrimSpace(cfg.FirecrawlAPIKey)
	return cfg, nil
}

// loadDotenv parses a dotenv file, returning an empty map when the file is
// missing or malformed.
func loadDotenv(path string) map[string]string {
	f, err := os.Open(path)
	if err != nil {
		return map[string]string{}
	}
	defer f.Close()

	env, err := gotenv.StrictParse(f)
	if err != nil {
		return map[string]string{}
	}

	for key, value := range env {
		env[key] = strings.TrimSpace(value)
	}
	return env
}
