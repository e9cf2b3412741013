package badger

import (
	"context"
	"testing"

	"github.com/poiesic/textgraph/core"
	"github.com/poiesic/textgraph/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorRoundTrip(t *testing.T) {
	artifactRepo, vectorRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { vectorRepo.Close(); artifactRepo.Close(); backend.Close() }()

	ctx := context.Background()
	record := &core.VectorRecord{
		Model:  "ruri-v3",
		Key:    "abc123",
		Values: []float32{0.1, 0.2, 0.3},
	}

	require.NoError(t, vectorRepo.PutVectors(ctx, record))
	assert.False(t, record.InsertedAt.IsZero())

	got, err := vectorRepo.GetVector(ctx, core.EmbeddingHandle{Model: "ruri-v3", Key: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, record.Values, got.Values)
	assert.Equal(t, "ruri-v3", got.Model)
}

func TestGetVectorNotFound(t *testing.T) {
	artifactRepo, vectorRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { vectorRepo.Close(); artifactRepo.Close(); backend.Close() }()

	_, err = vectorRepo.GetVector(context.Background(), core.EmbeddingHandle{Model: "ruri-v3", Key: "missing"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = vectorRepo.GetVector(context.Background(), core.EmbeddingHandle{})
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

func TestPutVectorsRejectsIncompleteRecord(t *testing.T) {
	artifactRepo, vectorRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { vectorRepo.Close(); artifactRepo.Close(); backend.Close() }()

	err = vectorRepo.PutVectors(context.Background(), &core.VectorRecord{Key: "orphan"})
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

func TestFindSimilarVectors(t *testing.T) {
	artifactRepo, vectorRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { vectorRepo.Close(); artifactRepo.Close(); backend.Close() }()

	ctx := context.Background()
	records := []*core.VectorRecord{
		{Model: "ruri-v3", Key: "close", Values: []float32{1.0, 0.0, 0.0}},
		{Model: "ruri-v3", Key: "near", Values: []float32{0.9, 0.1, 0.0}},
		{Model: "ruri-v3", Key: "far", Values: []float32{0.0, 0.0, 1.0}},
		{Model: "other-model", Key: "close", Values: []float32{1.0, 0.0, 0.0}},
	}
	require.NoError(t, vectorRepo.PutVectors(ctx, records...))

	query := []float32{1.0, 0.0, 0.0}

	results, err := vectorRepo.FindSimilar(ctx, "ruri-v3", query, 0.5, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// sorted by similarity descending, other models never included
	assert.Equal(t, "close", results[0].Record.Key)
	assert.Equal(t, "near", results[1].Record.Key)
	for _, match := range results {
		assert.Equal(t, "ruri-v3", match.Record.Model)
	}

	limited, err := vectorRepo.FindSimilar(ctx, "ruri-v3", query, 0.5, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	_, err = vectorRepo.FindSimilar(ctx, "", query, 0.5, 10)
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}
