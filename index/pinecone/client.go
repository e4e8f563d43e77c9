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


package pinecone

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pinecone-io/go-pinecone/v3/pinecone"
	"github.com/poiesic/compsearch/core"
	"github.com/poiesic/compsearch/index"
)

// Metadata keys stored with each vector at ingestion time.
const (
	metaName     = "company_name"
	metaExchange = "company_exchange"
	metaTicker   = "company_ticker"
	metaCountry  = "country"
	metaIndustry = "industry"
	metaSector   = "sector"
)

// Config holds connection settings for a Pinecone index.
type Config struct {
	// APIKey authenticates against the Pinecone API.
	APIKey string

	// Host is the index host URL, e.g. "my-index-abc123.svc.pinecone.io".
	Host string

	// Namespace is the index namespace to query. Empty means the default
	// namespace.
	Namespace string
}

// Validate checks that the configuration is complete.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("pinecone config: APIKey is required")
	}
	if c.Host == "" {
		return errors.New("pinecone config: Host is required")
	}
	return nil
}

// Client implements index.Index against a Pinecone index.
type Client struct {
	conn   *pinecone.IndexConnection
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// newClient is an internal constructor that returns the concrete type.
func newClient(config *Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: config.APIKey,
	})
	if err != nil {
		return nil, err
	}

	conn, err := pc.Index(pinecone.NewIndexConnParams{
		Host:      config.Host,
		Namespace: config.Namespace,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{
		conn:   conn,
		logger: slog.Default().With("component", "pinecone-index"),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewClient connects to the configured Pinecone index.
//
// Returns index.Index interface to enforce abstraction.
func NewClient(config *Config, opts ...Option) (index.Index, error) {
	return newClient(config, opts...)
}

// Query returns up to topK nearest candidates satisfying filter.
func (c *Client) Query(ctx context.Context, vector []float32, filter index.Filter, topK int) ([]index.Match, error) {
	if len(vector) == 0 {
		return nil, index.ErrEmptyVector
	}
	if topK <= 0 {
		return nil, index.ErrInvalidTopK
	}

	metadataFilter, err := buildFilter(filter)
	if err != nil {
		return nil, err
	}

	res, err := c.conn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(topK),
		MetadataFilter:  metadataFilter,
		IncludeMetadata: true,
	})
	if err != nil {
		c.logger.Error("index query failed", "err", err)
		return nil, err
	}

	matches := make([]index.Match, 0, len(res.Matches))
	for _, m := range res.Matches {
		if m == nil || m.Vector == nil {
			continue
		}

		var md map[string]any
		if m.Vector.Metadata != nil {
			md = m.Vector.Metadata.AsMap()
		}

		matches = append(matches, index.Match{
			ID:    m.Vector.Id,
			Score: m.Score,
			Company: core.Company{
				Name:     metaString(md, metaName),
				Exchange: metaString(md, metaExchange),
				Ticker:   metaString(md, metaTicker),
				Country:  metaString(md, metaCountry),
				Industry: metaString(md, metaIndustry),
				Sector:   metaString(md, metaSector),
			},
		})
	}

	c.logger.Debug("index query complete", "requested", topK, "matches", len(matches))
	return matches, nil
}

// Close releases the underlying index connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func metaString(md map[string]any, key string) string {
	if md == nil {
		return ""
	}
	s, _ := md[key].(string)
	return s
}
