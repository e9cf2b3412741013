package ident

import (
	"fmt"
	"testing"
	"time"

	"github.com/poiesic/textgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorWallClock(t *testing.T) {
	t.Run("ids are unique and ordered", func(t *testing.T) {
		a := NewAllocator(ModeWallClock, "")

		seen := make(map[core.ID]bool)
		var prev core.ID
		for i := 0; i < 1000; i++ {
			id, err := a.Next(KindSentence, "doc-a")
			require.NoError(t, err)
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
			if prev != "" {
				// zero-padded clock and sequence make lexicographic order
				// match creation order within one context
				assert.Less(t, string(prev), string(id))
			}
			prev = id
		}
	})

	t.Run("same parent context shares prefix", func(t *testing.T) {
		a := NewAllocator(ModeWallClock, "")
		id1, err := a.Next(KindSentence, "doc-a")
		require.NoError(t, err)
		id2, err := a.Next(KindSentence, "doc-a")
		require.NoError(t, err)
		id3, err := a.Next(KindSentence, "doc-b")
		require.NoError(t, err)

		assert.Equal(t, string(id1)[:8], string(id2)[:8])
		assert.NotEqual(t, string(id1)[:8], string(id3)[:8])
	})

	t.Run("ties within one millisecond broken by sequence", func(t *testing.T) {
		frozen := time.UnixMilli(1726000000123)
		a := NewAllocator(ModeWallClock, "", WithClock(func() time.Time { return frozen }))

		id1, err := a.Next(KindSentence, "doc-a")
		require.NoError(t, err)
		id2, err := a.Next(KindSentence, "doc-a")
		require.NoError(t, err)
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty parent context rejected", func(t *testing.T) {
		a := NewAllocator(ModeWallClock, "")
		_, err := a.Next(KindDocument, "")
		assert.ErrorIs(t, err, ErrEmptyContext)
	})
}

func TestAllocatorContentSeeded(t *testing.T) {
	fingerprint := core.FingerprintBytes([]byte("猫が座った。犬が走った。猫が笑った。"))

	t.Run("identical input reproduces identical ids", func(t *testing.T) {
		a := NewAllocator(ModeContentSeeded, fingerprint)
		b := NewAllocator(ModeContentSeeded, fingerprint)

		for i := 0; i < 10; i++ {
			ctx := fmt.Sprintf("doc_seg%d", i)
			idA, err := a.Next(KindSegment, ctx)
			require.NoError(t, err)
			idB, err := b.Next(KindSegment, ctx)
			require.NoError(t, err)
			assert.Equal(t, idA, idB)
		}
	})

	t.Run("different fingerprints diverge", func(t *testing.T) {
		a := NewAllocator(ModeContentSeeded, fingerprint)
		b := NewAllocator(ModeContentSeeded, core.FingerprintBytes([]byte("other")))

		idA, err := a.Next(KindDocument, "title")
		require.NoError(t, err)
		idB, err := b.Next(KindDocument, "title")
		require.NoError(t, err)
		assert.NotEqual(t, idA, idB)
	})
}

func TestAllocatorExhaustion(t *testing.T) {
	a := NewAllocator(ModeWallClock, "")
	a.seq = maxSequence

	_, err := a.Next(KindEntity, "doc-a")
	assert.ErrorIs(t, err, ErrAllocatorExhausted)
}

func TestKindOf(t *testing.T) {
	a := NewAllocator(ModeWallClock, "")

	docID, err := a.Next(KindDocument, "title")
	require.NoError(t, err)
	entID, err := a.NextEntity("doc-a", "animal")
	require.NoError(t, err)

	kind, ok := KindOf(docID)
	assert.True(t, ok)
	assert.Equal(t, KindDocument, kind)

	kind, ok = KindOf(entID)
	assert.True(t, ok)
	assert.Equal(t, KindEntity, kind)

	_, ok = KindOf("not-an-id")
	assert.False(t, ok)
}

func TestTypeTagOf(t *testing.T) {
	a := NewAllocator(ModeWallClock, "")

	entID, err := a.NextEntity("doc-a", "Abstract Concept")
	require.NoError(t, err)
	tag, ok := TypeTagOf(entID)
	assert.True(t, ok)
	assert.Equal(t, "abstract_concept", tag)

	// default tag when none supplied
	entID, err = a.NextEntity("doc-a", "")
	require.NoError(t, err)
	tag, ok = TypeTagOf(entID)
	assert.True(t, ok)
	assert.Equal(t, "term", tag)

	senID, err := a.Next(KindSentence, "doc-a")
	require.NoError(t, err)
	_, ok = TypeTagOf(senID)
	assert.False(t, ok)
}
