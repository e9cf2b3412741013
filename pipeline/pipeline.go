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


package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/textgraph/classify"
	"github.com/poiesic/textgraph/core"
	"github.com/poiesic/textgraph/embed"
	"github.com/poiesic/textgraph/entity"
	"github.com/poiesic/textgraph/graph"
	"github.com/poiesic/textgraph/ident"
	"github.com/poiesic/textgraph/segment"
	"github.com/poiesic/textgraph/storage"
	"github.com/tmc/langchaingo/llms"
)

const (
	// embedMaxAttempts bounds the retries on embedding-provider calls.
	embedMaxAttempts = 3
	// embedBaseDelay is the initial backoff delay for embedding retries.
	embedBaseDelay = 500 * time.Millisecond
	// tokenCountModel selects the tokenizer used for the document
	// token-count hint. The hint is advisory only.
	tokenCountModel = "gpt-4"
)

// Pipeline turns raw documents into graph artifacts: segmentation, identifier
// allocation, entity registration, classification, artifact assembly, and
// the final store write. One Pipeline serves many documents; every document
// run gets its own allocator and registry, so runs never share mutable state.
type Pipeline struct {
	artifacts  storage.ArtifactRepository
	vectors    storage.VectorRepository // optional
	embedder   embed.Embedder           // optional
	enricher   embed.TermEnricher       // optional
	classifier *classify.Classifier
	builder    *graph.Builder
	mode       ident.Mode
	segSize    int
	maxTerms   int
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithSegmentSize sets how many consecutive sentences form one segment.
// Default is segment.DefaultSize.
func WithSegmentSize(size int) Option {
	return func(p *Pipeline) error {
		if size >= 1 {
			p.segSize = size
		}
		return nil
	}
}

// WithAllocatorMode selects the identifier allocation mode. ModeWallClock
// (the default) gives every run fresh identifiers; ModeContentSeeded makes
// re-ingestion of byte-identical content idempotent.
func WithAllocatorMode(mode ident.Mode) Option {
	return func(p *Pipeline) error {
		p.mode = mode
		return nil
	}
}

// WithMaxTerms sets how many salient terms are extracted per sentence.
func WithMaxTerms(n int) Option {
	return func(p *Pipeline) error {
		if n >= 1 {
			p.maxTerms = n
		}
		return nil
	}
}

// WithPoolSize sets the worker pool size for batch ingestion.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithVectorStore sets the repository that receives embedding vectors.
// Without one, vectors are discarded and only handles are recorded.
func WithVectorStore(repo storage.VectorRepository) Option {
	return func(p *Pipeline) error {
		p.vectors = repo
		return nil
	}
}

// WithProvider wires an embedding provider: its embedder supplies sentence
// and entity vectors, its enricher assigns entity type tags.
func WithProvider(provider embed.Provider) Option {
	return func(p *Pipeline) error {
		if provider != nil {
			p.embedder = provider.Embedder()
			p.enricher = provider.Enricher()
		}
		return nil
	}
}

// WithEmbedder sets the sentence/entity embedder directly.
func WithEmbedder(embedder embed.Embedder) Option {
	return func(p *Pipeline) error {
		p.embedder = embedder
		return nil
	}
}

// WithEnricher sets the entity type-tag enricher directly.
func WithEnricher(enricher embed.TermEnricher) Option {
	return func(p *Pipeline) error {
		p.enricher = enricher
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an ingestion pipeline writing to the given artifact
// repository.
func NewPipeline(artifacts storage.ArtifactRepository, opts ...Option) (*Pipeline, error) {
	if artifacts == nil {
		return nil, ErrArtifactRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		artifacts: artifacts,
		mode:      ident.ModeWallClock,
		segSize:   segment.DefaultSize,
		maxTerms:  entity.DefaultMaxTerms,
		pool:      pool,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	p.logger = p.logger.With("component", "pipeline")
	p.classifier = classify.New(classify.WithLogger(p.logger))
	p.builder = graph.NewBuilder(graph.WithLogger(p.logger))

	return p, nil
}

// Request describes one document to ingest.
type Request struct {
	Title  string
	Source string
	Text   string
}

// docContext derives the parent-context string for identifier allocation.
func (r Request) docContext(fingerprint core.Fingerprint) string {
	ctx := strings.TrimSpace(r.Title)
	if r.Source != "" {
		if ctx != "" {
			ctx += "|"
		}
		ctx += r.Source
	}
	if ctx == "" {
		ctx = string(fingerprint)
	}
	return ctx
}

// Ingest runs one document through the full pipeline and stores the
// resulting artifact. The run is single-pass and strictly ordered: sentences
// are registered in document order because entity dedup is first-occurrence
// wins. Any error aborts this document only; nothing partial is written.
func (p *Pipeline) Ingest(ctx context.Context, req Request) (*core.Artifact, error) {
	started := time.Now()

	fingerprint := core.FingerprintBytes([]byte(req.Text))
	docContext := req.docContext(fingerprint)

	segmenter := segment.New(segment.WithSize(p.segSize))
	sentences, groups, err := segmenter.Split(req.Text)
	if err != nil {
		return nil, fmt.Errorf("segmenting %q: %w", docContext, err)
	}

	allocator := ident.NewAllocator(p.mode, fingerprint)
	docID, err := allocator.Next(ident.KindDocument, docContext)
	if err != nil {
		return nil, err
	}

	registryOpts := []entity.Option{
		entity.WithMaxTerms(p.maxTerms),
		entity.WithLogger(p.logger),
	}
	if p.enricher != nil {
		registryOpts = append(registryOpts, entity.WithEnricher(p.enricher))
	}
	registry, err := entity.NewRegistry(allocator, p.classifier, docContext, registryOpts...)
	if err != nil {
		return nil, err
	}

	segmentRecs := make([]core.Segment, 0, len(groups))
	sentenceRecs := make([]core.Sentence, 0, len(sentences))

	for gi, group := range groups {
		segID, err := allocator.Next(ident.KindSegment, docContext)
		if err != nil {
			return nil, err
		}
		segContext := docContext + "_seg" + strconv.Itoa(gi)

		sentenceIDs := make([]core.ID, 0, len(group))
		groupText := make([]string, 0, len(group))
		for _, si := range group {
			senID, err := allocator.Next(ident.KindSentence, segContext)
			if err != nil {
				return nil, err
			}
			sentenceIDs = append(sentenceIDs, senID)
			groupText = append(groupText, sentences[si])

			sentenceRecs = append(sentenceRecs, core.Sentence{
				Id:       senID,
				Ordinal:  si,
				Concepts: p.classifier.Profile(sentences[si]),
			})

			for _, term := range registry.ExtractTerms(sentences[si]) {
				if _, err := registry.Register(ctx, senID, term); err != nil {
					return nil, err
				}
			}
		}

		segmentRecs = append(segmentRecs, core.Segment{
			Id:          segID,
			Ordinal:     gi,
			KeyTerms:    registry.ExtractTerms(strings.Join(groupText, " ")),
			SentenceIds: sentenceIDs,
		})
	}

	result := p.classifier.Classify(req.Text)
	entities := registry.Entities()

	if p.embedder != nil {
		if err := p.attachEmbeddings(ctx, sentences, sentenceRecs, entities); err != nil {
			return nil, err
		}
	}

	document := core.Document{
		Id:          docID,
		Title:       req.Title,
		Source:      req.Source,
		Fingerprint: fingerprint,
		IngestedAt:  time.Now().UTC(),
		TokenCount:  llms.CountTokens(tokenCountModel, req.Text),
		Topics:      result.Topics,
		Styles:      result.Styles,
	}

	artifact, err := p.builder.Build(document, segmentRecs, sentenceRecs, entities, registry.Mentions())
	if err != nil {
		return nil, err
	}

	if err := p.artifacts.PutArtifact(ctx, artifact); err != nil {
		return nil, err
	}

	p.logger.Info("document ingested",
		"document", docID,
		"sentences", len(sentenceRecs),
		"segments", len(segmentRecs),
		"entities", len(entities),
		"elapsed", time.Since(started))

	return artifact, nil
}

// attachEmbeddings embeds all sentences and entity labels in two batch
// calls, records the handles on the model, and writes the raw vectors to
// the vector store if one is configured.
func (p *Pipeline) attachEmbeddings(ctx context.Context, sentences []string, sentenceRecs []core.Sentence, entities []core.Entity) error {
	model := p.embedder.Model()

	texts := make([]string, 0, len(sentences)+len(entities))
	texts = append(texts, sentences...)
	for i := range entities {
		texts = append(texts, entities[i].Label)
	}

	var vectors [][]float32
	err := embed.RetryWithBackoff(ctx, func() error {
		var embedErr error
		vectors, embedErr = p.embedder.EmbedTexts(ctx, texts)
		return embedErr
	}, embedMaxAttempts, embedBaseDelay)
	if err != nil {
		return fmt.Errorf("embedding %d texts: %w", len(texts), err)
	}
	if len(vectors) != len(texts) {
		return fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(texts))
	}

	records := make([]*core.VectorRecord, 0, len(texts))
	for i := range sentenceRecs {
		handle := embed.HandleFor(model, sentences[i])
		sentenceRecs[i].Embedding = handle
		records = append(records, &core.VectorRecord{
			Model:  handle.Model,
			Key:    handle.Key,
			Values: vectors[i],
		})
	}
	for i := range entities {
		handle := embed.HandleFor(model, entities[i].Label)
		entities[i].Embeddings = append(entities[i].Embeddings, handle)
		records = append(records, &core.VectorRecord{
			Model:  handle.Model,
			Key:    handle.Key,
			Values: vectors[len(sentences)+i],
		})
	}

	if p.vectors == nil {
		return nil
	}
	return p.vectors.PutVectors(ctx, records...)
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
