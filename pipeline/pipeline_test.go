package pipeline

import (
	"context"
	"testing"

	"github.com/poiesic/textgraph/core"
	"github.com/poiesic/textgraph/embed/mock"
	"github.com/poiesic/textgraph/ident"
	"github.com/poiesic/textgraph/segment"
	"github.com/poiesic/textgraph/storage"
	badgerstore "github.com/poiesic/textgraph/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T, opts ...Option) (*Pipeline, storage.ArtifactRepository, storage.VectorRepository) {
	t.Helper()

	artifactRepo, vectorRepo, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		vectorRepo.Close()
		artifactRepo.Close()
		backend.Close()
	})

	p, err := NewPipeline(artifactRepo, opts...)
	require.NoError(t, err)
	t.Cleanup(p.Release)

	return p, artifactRepo, vectorRepo
}

func TestNewPipelineRequiresRepository(t *testing.T) {
	_, err := NewPipeline(nil)
	assert.ErrorIs(t, err, ErrArtifactRepositoryRequired)
}

func TestIngestThreeSentenceScenario(t *testing.T) {
	p, artifactRepo, _ := newTestPipeline(t)
	ctx := context.Background()

	artifact, err := p.Ingest(ctx, Request{
		Title: "cats and dogs",
		Text:  "猫が座った。犬が走った。猫が笑った。",
	})
	require.NoError(t, err)

	// 3 sentences, default segment size 5: one segment holding all three
	require.Len(t, artifact.Sentences, 3)
	require.Len(t, artifact.Segments, 1)
	assert.Equal(t, 0, artifact.Segments[0].Ordinal)
	assert.Len(t, artifact.Segments[0].SentenceIds, 3)

	// sentence ordinals are document-global and strictly increasing
	for i, sentence := range artifact.Sentences {
		assert.Equal(t, i, sentence.Ordinal)
	}

	// 猫 deduplicates into one entity with two mentions, 犬 into one with one
	var cat, dog *core.Entity
	for i := range artifact.Entities {
		switch artifact.Entities[i].Label {
		case "猫":
			cat = &artifact.Entities[i]
		case "犬":
			dog = &artifact.Entities[i]
		}
	}
	require.NotNil(t, cat)
	require.NotNil(t, dog)

	mentionCount := make(map[core.ID]int)
	for _, m := range artifact.Mentions {
		mentionCount[m.EntityId]++
	}
	assert.Equal(t, 2, mentionCount[cat.Id])
	assert.Equal(t, 1, mentionCount[dog.Id])

	// identifier kinds are recoverable from the strings
	kind, ok := ident.KindOf(artifact.Document.Id)
	require.True(t, ok)
	assert.Equal(t, ident.KindDocument, kind)
	kind, ok = ident.KindOf(cat.Id)
	require.True(t, ok)
	assert.Equal(t, ident.KindEntity, kind)

	// classification populated the document record
	assert.Len(t, artifact.Document.Topics, 3)
	assert.Len(t, artifact.Document.Styles, 3)
	assert.NotEmpty(t, artifact.Document.Fingerprint)
	assert.NotEmpty(t, artifact.Script)

	// the artifact was persisted
	stored, err := artifactRepo.GetArtifact(ctx, artifact.Document.Id)
	require.NoError(t, err)
	assert.Equal(t, artifact, stored)
}

func TestIngestEmptyInputWritesNothing(t *testing.T) {
	p, artifactRepo, _ := newTestPipeline(t)
	ctx := context.Background()

	_, err := p.Ingest(ctx, Request{Title: "empty", Text: "   \n  "})
	require.Error(t, err)
	assert.ErrorIs(t, err, segment.ErrEmptyInput)

	docs, err := artifactRepo.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestIngestContentSeededIsIdempotent(t *testing.T) {
	p, artifactRepo, _ := newTestPipeline(t, WithAllocatorMode(ident.ModeContentSeeded))
	ctx := context.Background()

	req := Request{Title: "stable", Text: "猫が座った。犬が走った。"}

	first, err := p.Ingest(ctx, req)
	require.NoError(t, err)
	second, err := p.Ingest(ctx, req)
	require.NoError(t, err)

	// byte-identical input reproduces identical identifiers, so the second
	// run replaces the first artifact instead of adding one
	assert.Equal(t, first.Document.Id, second.Document.Id)
	assert.Equal(t, first.Script, second.Script)

	docs, err := artifactRepo.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestIngestWallClockProducesFreshIdentifiers(t *testing.T) {
	p, artifactRepo, _ := newTestPipeline(t)
	ctx := context.Background()

	req := Request{Title: "fresh", Text: "猫が座った。"}

	first, err := p.Ingest(ctx, req)
	require.NoError(t, err)
	second, err := p.Ingest(ctx, req)
	require.NoError(t, err)

	assert.NotEqual(t, first.Document.Id, second.Document.Id)

	docs, err := artifactRepo.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestIngestWithEmbeddingProvider(t *testing.T) {
	provider := mock.NewMockProvider()

	artifactRepo, vectorRepo, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		vectorRepo.Close()
		artifactRepo.Close()
		backend.Close()
	})

	p, err := NewPipeline(artifactRepo,
		WithProvider(provider),
		WithVectorStore(vectorRepo),
	)
	require.NoError(t, err)
	t.Cleanup(p.Release)

	ctx := context.Background()
	artifact, err := p.Ingest(ctx, Request{Title: "embedded", Text: "猫が座った。犬が走った。"})
	require.NoError(t, err)

	// every sentence carries a handle and its vector is retrievable
	for _, sentence := range artifact.Sentences {
		require.False(t, sentence.Embedding.IsZero())
		assert.Equal(t, "mock-embedder", sentence.Embedding.Model)

		record, err := vectorRepo.GetVector(ctx, sentence.Embedding)
		require.NoError(t, err)
		assert.NotEmpty(t, record.Values)
	}

	// entities carry handles and enricher-assigned type tags
	for _, ent := range artifact.Entities {
		require.Len(t, ent.Embeddings, 1)
		assert.NotEqual(t, "", ent.Type)

		_, err := vectorRepo.GetVector(ctx, ent.Embeddings[0])
		require.NoError(t, err)
	}
}

func TestIngestWithoutEmbedderLeavesHandlesEmpty(t *testing.T) {
	p, _, _ := newTestPipeline(t)

	artifact, err := p.Ingest(context.Background(), Request{Title: "plain", Text: "猫が座った。"})
	require.NoError(t, err)

	for _, sentence := range artifact.Sentences {
		assert.True(t, sentence.Embedding.IsZero())
	}
	for _, ent := range artifact.Entities {
		assert.Empty(t, ent.Embeddings)
		assert.Equal(t, "term", ent.Type)
	}
}

func TestRequestDocContext(t *testing.T) {
	fp := core.Fingerprint("abc")

	assert.Equal(t, "title|path.txt", Request{Title: "title", Source: "path.txt"}.docContext(fp))
	assert.Equal(t, "title", Request{Title: "title"}.docContext(fp))
	assert.Equal(t, "path.txt", Request{Source: "path.txt"}.docContext(fp))
	assert.Equal(t, "abc", Request{}.docContext(fp))
}
