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


package segment

import (
	"strings"
)

// DefaultSize is the default number of sentences per segment.
const DefaultSize = 5

// DefaultBoundaries is the default sentence-boundary class: Latin and CJK
// sentence-final punctuation.
const DefaultBoundaries = ".!?。！？…‥"

// Segmenter splits raw text into an ordered sentence sequence and fixed-size
// sentence groups. Splitting is deterministic, pure text processing; no
// failure is retried.
type Segmenter struct {
	size       int
	boundaries map[rune]bool
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithSize sets the number of sentences per segment. Values below 1 fall
// back to DefaultSize.
func WithSize(size int) Option {
	return func(s *Segmenter) {
		if size >= 1 {
			s.size = size
		}
	}
}

// WithBoundaries replaces the sentence-boundary rune class.
func WithBoundaries(boundaries string) Option {
	return func(s *Segmenter) {
		if boundaries == "" {
			return
		}
		s.boundaries = make(map[rune]bool, len(boundaries))
		for _, r := range boundaries {
			s.boundaries[r] = true
		}
	}
}

// New creates a Segmenter with the default boundary class and segment size.
func New(opts ...Option) *Segmenter {
	s := &Segmenter{size: DefaultSize}
	WithBoundaries(DefaultBoundaries)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Split splits text into sentences and groups consecutive sentences into
// fixed-size windows. The windows partition the sentence index sequence with
// no gaps or overlaps; the last window may be shorter.
//
// Non-empty text containing no boundary punctuation yields exactly one
// sentence spanning the whole input. Empty or whitespace-only input returns
// ErrEmptyInput.
func (s *Segmenter) Split(text string) ([]string, [][]int, error) {
	normalized := normalizeLineBreaks(text)
	if strings.TrimSpace(normalized) == "" {
		return nil, nil, ErrEmptyInput
	}

	var sentences []string
	var current strings.Builder
	flush := func() {
		sentence := strings.TrimSpace(current.String())
		current.Reset()
		if sentence != "" && !s.punctuationOnly(sentence) {
			sentences = append(sentences, sentence)
		}
	}

	for _, r := range normalized {
		current.WriteRune(r)
		if s.boundaries[r] {
			flush()
		}
	}
	flush()

	groups := make([][]int, 0, (len(sentences)+s.size-1)/s.size)
	for start := 0; start < len(sentences); start += s.size {
		end := min(start+s.size, len(sentences))
		group := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			group = append(group, i)
		}
		groups = append(groups, group)
	}

	return sentences, groups, nil
}

// punctuationOnly reports whether a fragment consists solely of boundary
// runes. Such fragments arise from runs like "..." and are discarded.
func (s *Segmenter) punctuationOnly(fragment string) bool {
	for _, r := range fragment {
		if !s.boundaries[r] {
			return false
		}
	}
	return true
}

// normalizeLineBreaks replaces line breaks with spaces so boundary detection
// never sees them.
func normalizeLineBreaks(text string) string {
	replacer := strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")
	return replacer.Replace(text)
}
