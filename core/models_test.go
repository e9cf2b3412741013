package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintBytes(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := FingerprintBytes([]byte("猫が座った。犬が走った。"))
		b := FingerprintBytes([]byte("猫が座った。犬が走った。"))
		assert.Equal(t, a, b)
		assert.Len(t, string(a), 64) // 32 bytes hex-encoded
	})

	t.Run("different content different fingerprint", func(t *testing.T) {
		a := FingerprintBytes([]byte("first document"))
		b := FingerprintBytes([]byte("second document"))
		assert.NotEqual(t, a, b)
	})

	t.Run("empty input still hashes", func(t *testing.T) {
		a := FingerprintBytes(nil)
		b := FingerprintBytes([]byte{})
		assert.Equal(t, a, b)
		assert.NotEmpty(t, a)
	})
}

func TestConceptWeightsDominant(t *testing.T) {
	t.Run("picks highest weight", func(t *testing.T) {
		w := ConceptWeights{
			"temporal": 0.1,
			"spatial":  0.2,
			"entity":   0.5,
			"action":   0.2,
		}
		assert.Equal(t, "entity", w.Dominant())
	})

	t.Run("ties broken by canonical key order", func(t *testing.T) {
		w := ConceptWeights{
			"action":  0.5,
			"spatial": 0.5,
		}
		// spatial precedes action in ConceptKeys
		assert.Equal(t, "spatial", w.Dominant())
	})

	t.Run("uniform distribution yields first key", func(t *testing.T) {
		w := ConceptWeights{}
		for _, key := range ConceptKeys {
			w[key] = 1.0 / float64(len(ConceptKeys))
		}
		assert.Equal(t, ConceptKeys[0], w.Dominant())
	})
}

func TestEmbeddingHandleIsZero(t *testing.T) {
	assert.True(t, EmbeddingHandle{}.IsZero())
	assert.False(t, EmbeddingHandle{Model: "ruri-v3", Key: "abc"}.IsZero())
}
