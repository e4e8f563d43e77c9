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


package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/poiesic/compsearch/ai"
	"github.com/poiesic/compsearch/ai/openai"
	"github.com/poiesic/compsearch/api"
	"github.com/poiesic/compsearch/findata/yahoo"
	"github.com/poiesic/compsearch/index/pinecone"
	"github.com/poiesic/compsearch/search"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "compsearchd",
		Usage: "Semantic comparable-company search service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP search API",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "Address to listen on",
						Value: ":8080",
					},
					&cli.StringFlag{
						Name:     "openai-api-key",
						Usage:    "OpenAI API key for query embeddings",
						EnvVars:  []string{"OPENAI_API_KEY"},
						Required: true,
					},
					&cli.StringFlag{
						Name:    "embedding-host",
						Usage:   "Base URL override for OpenAI-compatible embedding services",
						EnvVars: []string{"EMBEDDING_HOST"},
					},
					&cli.StringFlag{
						Name:    "embedding-model",
						Usage:   "Embedding model name; must match the index contents",
						Value:   ai.DefaultEmbeddingModel,
						EnvVars: []string{"EMBEDDING_MODEL"},
					},
					&cli.StringFlag{
						Name:     "pinecone-api-key",
						Usage:    "Pinecone API key",
						EnvVars:  []string{"PINECONE_API_KEY"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "pinecone-index-host",
						Usage:    "Pinecone index host URL",
						EnvVars:  []string{"PINECONE_INDEX_HOST"},
						Required: true,
					},
					&cli.StringFlag{
						Name:    "pinecone-namespace",
						Usage:   "Pinecone index namespace",
						EnvVars: []string{"PINECONE_NAMESPACE"},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	var level slog.Level
	switch strings.ToLower(c.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level: %s", c.String("log-level"))
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

// serveCommand constructs the three adapters once, injects them into the
// searcher, and serves HTTP until the process exits. All configuration is
// immutable after this point.
func serveCommand(c *cli.Context) error {
	embedder, err := openai.NewEmbedder(ai.NewConfig(
		ai.WithAPIKey(c.String("openai-api-key")),
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(c.String("embedding-model")),
	))
	if err != nil {
		return fmt.Errorf("creating embedder: %w", err)
	}

	idx, err := pinecone.NewClient(&pinecone.Config{
		APIKey:    c.String("pinecone-api-key"),
		Host:      c.String("pinecone-index-host"),
		Namespace: c.String("pinecone-namespace"),
	})
	if err != nil {
		return fmt.Errorf("connecting to index: %w", err)
	}

	provider, err := yahoo.NewClient(yahoo.DefaultConfig())
	if err != nil {
		return fmt.Errorf("creating financial data client: %w", err)
	}

	searcher, err := search.NewSearcher(embedder, idx, provider)
	if err != nil {
		return fmt.Errorf("creating searcher: %w", err)
	}
	defer searcher.Release()

	server, err := api.NewServer(searcher)
	if err != nil {
		return err
	}

	addr := c.String("listen")
	slog.Info("compsearchd listening", "addr", addr)
	return http.ListenAndServe(addr, server.Handler())
}
