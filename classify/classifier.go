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


package classify

import (
	"log/slog"
	"sort"

	"github.com/poiesic/textgraph/core"
)

// topCategoryCount is how many categories each taxonomy contributes to the
// document record.
const topCategoryCount = 3

// Result is the outcome of classifying one text against both taxonomies.
type Result struct {
	Topics   []core.CategoryScore // top categories of the topic taxonomy
	Styles   []core.CategoryScore // top categories of the style taxonomy
	Concepts core.ConceptWeights  // fused, normalized concept distribution
}

// Classifier scores text against the two static taxonomies and derives a
// normalized concept-weight distribution from their combined signal plus
// lexical-density features. It has no I/O side effects.
type Classifier struct {
	topics Taxonomy
	styles Taxonomy
	logger *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTaxonomies replaces the built-in taxonomies. Intended for tests.
func WithTaxonomies(topics, styles Taxonomy) Option {
	return func(c *Classifier) {
		c.topics = topics
		c.styles = styles
	}
}

// New creates a Classifier over the built-in taxonomies.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		topics: Topics,
		styles: Styles,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "classifier")
	return c
}

// scoredCategory pairs a taxonomy category with its normalized score.
type scoredCategory struct {
	category *Category
	score    float64
}

// Classify scores the text against both taxonomies and fuses the concept
// distribution. Zero-signal taxonomies fall back to a uniform distribution;
// the fallback is logged as a quality signal, never returned as an error.
func (c *Classifier) Classify(text string) Result {
	tokens := TokenSet(text)

	topicRanking, topicSignal := rank(c.topics, tokens)
	if !topicSignal {
		c.logger.Warn("no taxonomy signal, using uniform fallback", "taxonomy", c.topics.Name)
	}
	styleRanking, styleSignal := rank(c.styles, tokens)
	if !styleSignal {
		c.logger.Warn("no taxonomy signal, using uniform fallback", "taxonomy", c.styles.Name)
	}

	concepts, fused := fuseConcepts(text, topicRanking[0], styleRanking[0])
	if !fused {
		c.logger.Warn("zero-sum concept contributions, using uniform fallback")
	}

	return Result{
		Topics:   topScores(topicRanking, topCategoryCount),
		Styles:   topScores(styleRanking, topCategoryCount),
		Concepts: concepts,
	}
}

// Profile derives the concept-weight distribution for a text at any
// granularity (document, sentence, or a single term).
func (c *Classifier) Profile(text string) core.ConceptWeights {
	return c.Classify(text).Concepts
}

// rank scores every category of a taxonomy by keyword overlap with the
// token set, normalized so scores sum to 1. A taxonomy with zero keyword
// overlap yields a uniform distribution over its categories rather than a
// zero vector (second return false). Ties are broken by the taxonomy's
// declaration order via stable sort.
func rank(taxonomy Taxonomy, tokens map[string]bool) ([]scoredCategory, bool) {
	ranking := make([]scoredCategory, len(taxonomy.Categories))
	total := 0.0
	for i := range taxonomy.Categories {
		category := &taxonomy.Categories[i]
		count := 0.0
		for _, keyword := range category.Keywords {
			if tokens[keyword] {
				count++
			}
		}
		ranking[i] = scoredCategory{category: category, score: count}
		total += count
	}

	if total == 0 {
		uniform := 1.0 / float64(len(ranking))
		for i := range ranking {
			ranking[i].score = uniform
		}
		// all scores equal; declaration order already holds
		return ranking, false
	}

	for i := range ranking {
		ranking[i].score /= total
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].score > ranking[j].score
	})
	return ranking, true
}

func topScores(ranking []scoredCategory, n int) []core.CategoryScore {
	if n > len(ranking) {
		n = len(ranking)
	}
	top := make([]core.CategoryScore, n)
	for i := 0; i < n; i++ {
		top[i] = core.CategoryScore{
			Category: ranking[i].category.Name,
			Score:    ranking[i].score,
		}
	}
	return top
}
