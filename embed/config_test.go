package embed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.EnricherHost)
		assert.NotEmpty(t, cfg.EmbeddingModel)
		assert.NotEmpty(t, cfg.EnricherModel)
	})

	t.Run("options override defaults", func(t *testing.T) {
		cfg := NewConfig(
			WithHost("http://models.internal:8000"),
			WithEmbeddingModel("ruri-v3"),
			WithEnricherModel("qwen2.5:7b"),
		)
		assert.Equal(t, "http://models.internal:8000", cfg.EmbeddingHost)
		assert.Equal(t, "http://models.internal:8000", cfg.EnricherHost)
		assert.Equal(t, "ruri-v3", cfg.EmbeddingModel)
		assert.Equal(t, "qwen2.5:7b", cfg.EnricherModel)
	})
}

func TestConfigNormalize(t *testing.T) {
	cfg := NewConfig(
		WithEmbeddingHost("http://localhost:11434/"),
		WithEnricherHost("http://localhost:9100"),
	)
	cfg.Normalize()
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://localhost:9100/v1", cfg.EnricherHost)

	// already normalized hosts are untouched
	cfg.Normalize()
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, NewConfig().Validate())

	cfg := NewConfig()
	cfg.EmbeddingModel = ""
	assert.Error(t, cfg.Validate())

	cfg = NewConfig()
	cfg.EmbeddingHost = ""
	assert.Error(t, cfg.Validate())
}

func TestHandleFor(t *testing.T) {
	a := HandleFor("ruri-v3", "猫が座った。")
	b := HandleFor("ruri-v3", "猫が座った。")
	c := HandleFor("qwen3-embedding", "猫が座った。")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Key, c.Key)
	assert.Equal(t, "ruri-v3", a.Model)
	assert.NotEmpty(t, a.Key)
}
