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
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/textgraph"
	"github.com/poiesic/textgraph/core"
	"github.com/poiesic/textgraph/embed"
	"github.com/poiesic/textgraph/ident"
	"github.com/poiesic/textgraph/pipeline"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "textgraph",
		Usage: "Text-to-knowledge-graph ingestion pipeline",
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
				Name:      "ingest",
				Usage:     "Ingest text files into graph artifacts",
				ArgsUsage: "FILE [FILE...]",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "segment-size",
						Usage: "Number of sentences per segment",
						Value: 5,
					},
					&cli.BoolFlag{
						Name:  "deterministic-ids",
						Usage: "Derive identifiers from content so re-ingestion is idempotent",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for parallel ingestion",
					},
					&cli.IntFlag{
						Name:  "max-terms",
						Usage: "Salient terms extracted per sentence",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name (embeddings disabled when empty)",
					},
					&cli.StringFlag{
						Name:  "enricher-model",
						Usage: "Chat model assigning entity type tags (defaults to embedding setup)",
					},
				},
			},
			{
				Name:      "script",
				Usage:     "Print the stored graph-creation script of a document",
				ArgsUsage: "DOCUMENT_ID",
				Action:    scriptCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List stored documents",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.Args().Len() == 0 {
		return fmt.Errorf("at least one input file is required")
	}

	var ingestorOpts []textgraph.IngestorOption
	if model := c.String("embedding-model"); model != "" {
		embedOpts := []embed.ConfigOption{
			embed.WithHost(c.String("embedding-host")),
			embed.WithEmbeddingModel(model),
		}
		if enricherModel := c.String("enricher-model"); enricherModel != "" {
			embedOpts = append(embedOpts, embed.WithEnricherModel(enricherModel))
		}
		ingestorOpts = append(ingestorOpts, textgraph.WithEmbedding(embed.NewConfig(embedOpts...)))
	}

	ingestor, err := textgraph.NewIngestor(c.String("db"), ingestorOpts...)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer ingestor.Close()

	pipelineOpts := []pipeline.Option{
		pipeline.WithSegmentSize(c.Int("segment-size")),
	}
	if c.Bool("deterministic-ids") {
		pipelineOpts = append(pipelineOpts, pipeline.WithAllocatorMode(ident.ModeContentSeeded))
	}
	if size := c.Int("pool-size"); size > 0 {
		pipelineOpts = append(pipelineOpts, pipeline.WithPoolSize(size))
	}
	if n := c.Int("max-terms"); n > 0 {
		pipelineOpts = append(pipelineOpts, pipeline.WithMaxTerms(n))
	}

	p, err := ingestor.NewPipeline(pipelineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Release()

	requests := make([]pipeline.Request, 0, c.Args().Len())
	for _, path := range c.Args().Slice() {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		requests = append(requests, pipeline.Request{
			Title:  title,
			Source: path,
			Text:   string(data),
		})
	}

	artifacts, batchErr := p.IngestAll(ctx, requests)
	for _, artifact := range artifacts {
		fmt.Printf("%s\t%s\t%d sentences\t%d entities\n",
			artifact.Document.Id,
			artifact.Document.Title,
			len(artifact.Sentences),
			len(artifact.Entities))
	}
	if batchErr != nil {
		return fmt.Errorf("batch completed with failures: %w", batchErr)
	}
	return nil
}

func scriptCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.Args().Len() != 1 {
		return fmt.Errorf("exactly one document identifier is required")
	}

	ingestor, err := textgraph.NewIngestor(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer ingestor.Close()

	script, err := ingestor.ArtifactRepository().GetScript(ctx, core.ID(c.Args().First()))
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}

	fmt.Print(script)
	return nil
}

func listCommand(c *cli.Context) error {
	ctx := context.Background()

	ingestor, err := textgraph.NewIngestor(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer ingestor.Close()

	docs, err := ingestor.ArtifactRepository().ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	for _, doc := range docs {
		fmt.Printf("%s\t%s\t%s\t%d tokens\n",
			doc.Id,
			doc.Title,
			doc.IngestedAt.Format("2006-01-02 15:04:05"),
			doc.TokenCount)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
