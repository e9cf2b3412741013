package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		opts          []Option
		wantSentences []string
		wantGroups    [][]int
	}{
		{
			name:          "japanese sentences single segment",
			text:          "猫が座った。犬が走った。猫が笑った。",
			wantSentences: []string{"猫が座った。", "犬が走った。", "猫が笑った。"},
			wantGroups:    [][]int{{0, 1, 2}},
		},
		{
			name:          "english sentences",
			text:          "The cat sat. The dog ran! Did the cat laugh?",
			wantSentences: []string{"The cat sat.", "The dog ran!", "Did the cat laugh?"},
			wantGroups:    [][]int{{0, 1, 2}},
		},
		{
			name:          "no boundary punctuation yields one sentence",
			text:          "a document with no punctuation at all",
			wantSentences: []string{"a document with no punctuation at all"},
			wantGroups:    [][]int{{0}},
		},
		{
			name:          "line breaks normalized to spaces",
			text:          "first line\nsecond line.\r\nthird line.",
			wantSentences: []string{"first line second line.", "third line."},
			wantGroups:    [][]int{{0, 1}},
		},
		{
			name:          "trailing fragment after last boundary kept",
			text:          "complete sentence. trailing fragment",
			wantSentences: []string{"complete sentence.", "trailing fragment"},
			wantGroups:    [][]int{{0, 1}},
		},
		{
			name:          "segment size two splits windows",
			text:          "一。二。三。四。五。",
			opts:          []Option{WithSize(2)},
			wantSentences: []string{"一。", "二。", "三。", "四。", "五。"},
			wantGroups:    [][]int{{0, 1}, {2, 3}, {4}},
		},
		{
			name:          "consecutive boundaries discard empty fragments",
			text:          "first... second.",
			wantSentences: []string{"first.", "second."},
			wantGroups:    [][]int{{0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.opts...)
			sentences, groups, err := s.Split(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSentences, sentences)
			assert.Equal(t, tt.wantGroups, groups)
		})
	}
}

func TestSplitEmptyInput(t *testing.T) {
	s := New()

	for _, text := range []string{"", "   ", "\n\n", "\r\n \t"} {
		_, _, err := s.Split(text)
		assert.ErrorIs(t, err, ErrEmptyInput, "input %q", text)
	}
}

func TestSplitPartitionInvariant(t *testing.T) {
	s := New(WithSize(3))
	sentences, groups, err := s.Split("a. b. c. d. e. f. g. h.")
	require.NoError(t, err)

	// groups partition the sentence sequence with no gaps or overlaps
	next := 0
	for _, group := range groups {
		for _, idx := range group {
			assert.Equal(t, next, idx)
			next++
		}
	}
	assert.Equal(t, len(sentences), next)
}
