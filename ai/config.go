// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import "errors"

// DefaultEmbeddingModel matches the model used to build the similarity
// index. Query vectors must come from the same model or nearest-neighbor
// scores are meaningless.
const DefaultEmbeddingModel = "text-embedding-3-large"

// Config holds configuration for the embedding service client.
type Config struct {
	// APIKey authenticates against the embedding service.
	APIKey string

	// Host is an optional base URL override for OpenAI-compatible
	// services. Empty means the provider's default endpoint.
	Host string

	// Model is the embedding model identifier.
	// Default: text-embedding-3-large
	Model string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAPIKey sets the embedding service API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithHost sets a base URL override for OpenAI-compatible services.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the embedding model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// DefaultConfig returns a Config with the default embedding model and no
// credentials. An API key must be supplied before the config validates.
func DefaultConfig() *Config {
	return &Config{
		Model: DefaultEmbeddingModel,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is valid and complete.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("ai config: APIKey is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	return nil
}
