// Package config provides configuration loading and validation for the
// content service: an optional JSON config file overridden by environment
// variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Environment variable names recognized at startup.
const (
	EnvGeminiAPIKey       = "GEMINI_API_KEY"
	EnvShopifyStoreName   = "SHOPIFY_STORE_NAME"
	EnvShopifyAccessToken = "SHOPIFY_ACCESS_TOKEN"
)

// ConfigurationError indicates a required credential or setting is absent.
// It is distinct from pipeline errors: configuration fails fast, before any
// generation work starts.
type ConfigurationError struct {
	Name string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Name)
}

// AutoPostSettings drives the autopost command's random blog configuration.
type AutoPostSettings struct {
	IntervalMinutes  int      `json:"interval_minutes,omitempty" validate:"omitempty,gte=1"`
	Topics           []string `json:"topics,omitempty"`
	Tones            []string `json:"tones,omitempty"`
	ContentTemplates []string `json:"content_templates,omitempty"`
	AuthorPersonas   []string `json:"author_personas,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
}

// Config is the service configuration. All fields are optional in the file;
// credentials may instead arrive via environment variables, which win.
type Config struct {
	GeminiAPIKey       string           `json:"gemini_api_key,omitempty"`
	ShopifyStoreName   string           `json:"shopify_store_name,omitempty"`
	ShopifyAccessToken string           `json:"shopify_access_token,omitempty"`
	RetryLimit         int              `json:"retry_limit,omitempty" validate:"gte=0,lte=5"`
	AutoPost           AutoPostSettings `json:"auto_post,omitempty"`
}

// Default returns the built-in configuration: one validation retry and the
// stock Chamkili topic rotation.
func Default() *Config {
	return &Config{
		RetryLimit: 1,
		AutoPost: AutoPostSettings{
			IntervalMinutes: 10,
			Topics: []string{
				"Best Korean Skincare Routine for Pakistani Skin",
				"How to Get Rid of Dark Spots Naturally in Pakistan",
				"Vitamin C Serum Benefits for Oily Skin",
				"Niacinamide vs Hyaluronic Acid: Which is Better",
				"Summer Skincare Tips for Hot Pakistani Weather",
			},
			Tones:            []string{"Warm & Friendly", "Professional", "Empathetic"},
			ContentTemplates: []string{"Standard Blog Post", "Step-by-Step Guide", "Product Deep Dive"},
			AuthorPersonas:   []string{"Beauty Guru", "The Dermatologist", "Skincare Scientist"},
			Keywords:         []string{"skincare routine Pakistan", "glowing skin tips", "Pakistani beauty"},
		},
	}
}

// Load reads configuration from an optional JSON file, merges it over the
// defaults, then applies environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides credentials with environment values when set.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvGeminiAPIKey); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv(EnvShopifyStoreName); v != "" {
		c.ShopifyStoreName = v
	}
	if v := os.Getenv(EnvShopifyAccessToken); v != "" {
		c.ShopifyAccessToken = v
	}
}

// Validate checks structural constraints on the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// RequireGemini fails with a ConfigurationError when no Gemini key is set.
func (c *Config) RequireGemini() error {
	if c.GeminiAPIKey == "" {
		return &ConfigurationError{Name: EnvGeminiAPIKey}
	}
	return nil
}

// RequireShopify fails with a ConfigurationError naming the first missing
// Shopify credential.
func (c *Config) RequireShopify() error {
	if c.ShopifyStoreName == "" {
		return &ConfigurationError{Name: EnvShopifyStoreName}
	}
	if c.ShopifyAccessToken == "" {
		return &ConfigurationError{Name: EnvShopifyAccessToken}
	}
	return nil
}
