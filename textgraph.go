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


package textgraph

import (
	"log/slog"

	"github.com/poiesic/textgraph/embed"
	"github.com/poiesic/textgraph/embed/openai"
	"github.com/poiesic/textgraph/pipeline"
	"github.com/poiesic/textgraph/storage"
	"github.com/poiesic/textgraph/storage/badger"
)

// Ingestor wires the storage backend, repositories and optional embedding
// provider into a ready-to-use entry point for ingestion pipelines.
type Ingestor struct {
	backend      *badger.Backend
	artifactRepo storage.ArtifactRepository
	vectorRepo   storage.VectorRepository
	provider     embed.Provider // nil when embedding is disabled
	logger       *slog.Logger
}

// IngestorOption configures an Ingestor.
type IngestorOption func(*ingestorOptions)

type ingestorOptions struct {
	embedConfig *embed.Config
}

// WithEmbedding enables the OpenAI-compatible embedding and enrichment
// provider using the given configuration. Without this option pipelines run
// without embeddings and with the default entity type tag.
func WithEmbedding(config *embed.Config) IngestorOption {
	return func(o *ingestorOptions) {
		o.embedConfig = config
	}
}

// NewIngestor opens the artifact store at filePath and builds the
// repositories and, optionally, the embedding provider.
func NewIngestor(filePath string, opts ...IngestorOption) (*Ingestor, error) {
	options := &ingestorOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create artifact repository
	artifactRepo, err := badger.NewArtifactRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create vector repository
	vectorRepo, err := badger.NewVectorRepository(backend)
	if err != nil {
		artifactRepo.Close()
		backend.Close()
		return nil, err
	}

	// Create embedding provider only when configured
	var provider embed.Provider
	if options.embedConfig != nil {
		provider, err = openai.NewProvider(options.embedConfig)
		if err != nil {
			vectorRepo.Close()
			artifactRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Ingestor{
		backend:      backend,
		artifactRepo: artifactRepo,
		vectorRepo:   vectorRepo,
		provider:     provider,
		logger:       slog.Default(),
	}, nil
}

// Close tears down the provider, repositories and backend in reverse order
// of construction.
func (in *Ingestor) Close() error {
	if in.provider != nil {
		if err := in.provider.Close(); err != nil {
			in.logger.Error("error closing embedding provider", "err", err)
		}
	}

	if err := in.vectorRepo.Close(); err != nil {
		in.logger.Error("error closing vector repository", "err", err)
		return err
	}
	if err := in.artifactRepo.Close(); err != nil {
		in.logger.Error("error closing artifact repository", "err", err)
		return err
	}

	if err := in.backend.Close(); err != nil {
		in.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ArtifactRepository exposes the artifact store.
func (in *Ingestor) ArtifactRepository() storage.ArtifactRepository {
	return in.artifactRepo
}

// VectorRepository exposes the vector store.
func (in *Ingestor) VectorRepository() storage.VectorRepository {
	return in.vectorRepo
}

// NewPipeline builds an ingestion pipeline over the ingestor's stores and
// provider. Additional options may override the wiring.
func (in *Ingestor) NewPipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	wired := []pipeline.Option{
		pipeline.WithVectorStore(in.vectorRepo),
	}
	if in.provider != nil {
		wired = append(wired, pipeline.WithProvider(in.provider))
	}
	wired = append(wired, opts...)
	return pipeline.NewPipeline(in.artifactRepo, wired...)
}
