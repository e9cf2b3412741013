package textgraph

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/textgraph/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIngestor(t *testing.T) {
	t.Run("create new store", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		ingestor, err := NewIngestor(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, ingestor)
		defer ingestor.Close()

		// Verify components are initialized
		assert.NotNil(t, ingestor.ArtifactRepository())
		assert.NotNil(t, ingestor.VectorRepository())
		assert.NotNil(t, ingestor.backend)
		assert.Nil(t, ingestor.provider)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a store at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		ingestor, err := NewIngestor(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, ingestor)
	})
}

func TestIngestor_Close(t *testing.T) {
	tmpDir := t.TempDir()
	ingestor, err := NewIngestor(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, ingestor)

	err = ingestor.Close()
	assert.NoError(t, err)
}

func TestIngestor_NewPipeline(t *testing.T) {
	tmpDir := t.TempDir()
	ingestor, err := NewIngestor(tmpDir)
	require.NoError(t, err)
	defer ingestor.Close()

	p, err := ingestor.NewPipeline()
	require.NoError(t, err)
	require.NotNil(t, p)
	defer p.Release()

	// the wired pipeline can ingest end to end against the opened store
	artifact, err := p.Ingest(context.Background(), pipeline.Request{Title: "wired", Text: "猫が座った。"})
	require.NoError(t, err)

	stored, err := ingestor.ArtifactRepository().GetArtifact(context.Background(), artifact.Document.Id)
	require.NoError(t, err)
	assert.Equal(t, artifact.Script, stored.Script)
}
