package pipeline

import (
	"context"
	"testing"

	"github.com/poiesic/textgraph/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestAllIsolatesFailures(t *testing.T) {
	p, artifactRepo, _ := newTestPipeline(t, WithPoolSize(2))
	ctx := context.Background()

	requests := []Request{
		{Title: "first", Text: "猫が座った。"},
		{Title: "broken", Text: "   "},
		{Title: "third", Text: "犬が走った。"},
	}

	artifacts, err := p.IngestAll(ctx, requests)

	// one document failed, the batch still completed the others
	require.Error(t, err)
	assert.ErrorIs(t, err, segment.ErrEmptyInput)
	assert.Contains(t, err.Error(), "broken")
	require.Len(t, artifacts, 2)

	assert.Equal(t, "first", artifacts[0].Document.Title)
	assert.Equal(t, "third", artifacts[1].Document.Title)

	docs, listErr := artifactRepo.ListDocuments(ctx)
	require.NoError(t, listErr)
	assert.Len(t, docs, 2)
}

func TestIngestAllEmptyBatch(t *testing.T) {
	p, _, _ := newTestPipeline(t)

	artifacts, err := p.IngestAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestIngestAllAllSucceed(t *testing.T) {
	p, _, _ := newTestPipeline(t, WithPoolSize(4))

	requests := []Request{
		{Title: "a", Text: "The river flows through the forest."},
		{Title: "b", Text: "The machine learns from data."},
		{Title: "c", Text: "猫が笑った。"},
	}

	artifacts, err := p.IngestAll(context.Background(), requests)
	require.NoError(t, err)
	require.Len(t, artifacts, 3)

	// request order is preserved
	assert.Equal(t, "a", artifacts[0].Document.Title)
	assert.Equal(t, "b", artifacts[1].Document.Title)
	assert.Equal(t, "c", artifacts[2].Document.Title)
}
