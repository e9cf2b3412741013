package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/textgraph/classify"
	"github.com/poiesic/textgraph/core"
	"github.com/poiesic/textgraph/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArtifactFixture(docID core.ID, script string) *core.Artifact {
	weights := classify.UniformConcepts()
	return &core.Artifact{
		Document: core.Document{
			Id:          docID,
			Title:       "fixture",
			Fingerprint: core.FingerprintBytes([]byte(string(docID) + " content")),
			IngestedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			TokenCount:  8,
			Topics:      []core.CategoryScore{{Category: "nature", Score: 1}},
			Styles:      []core.CategoryScore{{Category: "narrative", Score: 1}},
		},
		Segments: []core.Segment{
			{Id: docID + "-seg-0", Ordinal: 0, SentenceIds: []core.ID{docID + "-sen-0"}},
		},
		Sentences: []core.Sentence{
			{Id: docID + "-sen-0", Ordinal: 0, Concepts: weights},
		},
		Entities: []core.Entity{
			{Id: docID + "-ent-0", Label: "cat", Type: "animal", Concepts: weights},
		},
		Mentions: []core.Mention{
			{SentenceId: docID + "-sen-0", EntityId: docID + "-ent-0", Surface: "cat", Concept: "entity", Weight: 1},
		},
		Script: script,
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	artifactRepo, vectorRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { vectorRepo.Close(); artifactRepo.Close(); backend.Close() }()

	ctx := context.Background()
	artifact := newArtifactFixture("doc-1", "CREATE ...;")

	require.NoError(t, artifactRepo.PutArtifact(ctx, artifact))

	got, err := artifactRepo.GetArtifact(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, artifact, got)
}

func TestPutArtifactReplacesWholesale(t *testing.T) {
	artifactRepo, vectorRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { vectorRepo.Close(); artifactRepo.Close(); backend.Close() }()

	ctx := context.Background()

	first := newArtifactFixture("doc-1", "first script")
	require.NoError(t, artifactRepo.PutArtifact(ctx, first))

	second := newArtifactFixture("doc-1", "second script")
	second.Entities = nil
	second.Mentions = nil
	require.NoError(t, artifactRepo.PutArtifact(ctx, second))

	got, err := artifactRepo.GetArtifact(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "second script", got.Script)
	assert.Empty(t, got.Entities)
	assert.Empty(t, got.Mentions)
}

func TestGetArtifactNotFound(t *testing.T) {
	artifactRepo, vectorRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { vectorRepo.Close(); artifactRepo.Close(); backend.Close() }()

	_, err = artifactRepo.GetArtifact(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetScript(t *testing.T) {
	artifactRepo, vectorRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { vectorRepo.Close(); artifactRepo.Close(); backend.Close() }()

	ctx := context.Background()
	require.NoError(t, artifactRepo.PutArtifact(ctx, newArtifactFixture("doc-1", "the script")))

	script, err := artifactRepo.GetScript(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "the script", script)

	_, err = artifactRepo.GetScript(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListDocuments(t *testing.T) {
	artifactRepo, vectorRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { vectorRepo.Close(); artifactRepo.Close(); backend.Close() }()

	ctx := context.Background()

	docs, err := artifactRepo.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	require.NoError(t, artifactRepo.PutArtifact(ctx, newArtifactFixture("doc-b", "s")))
	require.NoError(t, artifactRepo.PutArtifact(ctx, newArtifactFixture("doc-a", "s")))

	docs, err = artifactRepo.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// listing is ordered by document identifier
	assert.Equal(t, core.ID("doc-a"), docs[0].Id)
	assert.Equal(t, core.ID("doc-b"), docs[1].Id)
}

func TestDeleteArtifact(t *testing.T) {
	artifactRepo, vectorRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { vectorRepo.Close(); artifactRepo.Close(); backend.Close() }()

	ctx := context.Background()
	require.NoError(t, artifactRepo.PutArtifact(ctx, newArtifactFixture("doc-1", "s")))

	require.NoError(t, artifactRepo.DeleteArtifact(ctx, "doc-1"))

	_, err = artifactRepo.GetArtifact(ctx, "doc-1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	docs, err := artifactRepo.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	err = artifactRepo.DeleteArtifact(ctx, "doc-1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPutArtifactRejectsInvalidDocument(t *testing.T) {
	artifactRepo, vectorRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { vectorRepo.Close(); artifactRepo.Close(); backend.Close() }()

	artifact := newArtifactFixture("doc-1", "s")
	artifact.Document.Fingerprint = ""

	err = artifactRepo.PutArtifact(context.Background(), artifact)
	assert.ErrorIs(t, err, core.ErrInvalidDocument)
}
