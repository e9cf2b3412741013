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


package entity

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/textgraph/classify"
	"github.com/poiesic/textgraph/core"
	"github.com/poiesic/textgraph/embed"
	"github.com/poiesic/textgraph/ident"
)

// DefaultMaxTerms is the default number of salient terms extracted per
// sentence.
const DefaultMaxTerms = 5

// mentionWeight is the fixed relevance weight recorded on every mention.
const mentionWeight = 1.0

// defaultTypeTag is the entity type used when no enricher is configured.
const defaultTypeTag = "term"

// Registry deduplicates extracted terms into a canonical entity set for one
// document run and records each occurrence as a mention.
//
// The uniqueness key is the case-folded label: the first occurrence wins and
// defines the canonical identifier; later occurrences of the same label
// reuse it. Registration is order-sensitive, so sentences of one document
// must be processed strictly in order — the registry is not safe for
// concurrent use.
type Registry struct {
	allocator  *ident.Allocator
	classifier *classify.Classifier
	enricher   embed.TermEnricher // optional
	docContext string
	maxTerms   int
	logger     *slog.Logger

	byLabel  map[string]core.ID
	entities []core.Entity // first-occurrence order
	mentions []core.Mention
}

// Option configures a Registry.
type Option func(*Registry)

// WithMaxTerms sets how many salient terms are extracted per sentence.
func WithMaxTerms(n int) Option {
	return func(r *Registry) {
		if n >= 1 {
			r.maxTerms = n
		}
	}
}

// WithEnricher sets an optional term enricher that assigns type tags to new
// entities. Without one, every entity is tagged "term".
func WithEnricher(enricher embed.TermEnricher) Option {
	return func(r *Registry) {
		r.enricher = enricher
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates a registry scoped to one document run. docContext is
// the parent context string used for entity identifier allocation.
func NewRegistry(allocator *ident.Allocator, classifier *classify.Classifier, docContext string, opts ...Option) (*Registry, error) {
	if allocator == nil {
		return nil, ErrAllocatorRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}
	if docContext == "" {
		return nil, ident.ErrEmptyContext
	}

	r := &Registry{
		allocator:  allocator,
		classifier: classifier,
		docContext: docContext,
		maxTerms:   DefaultMaxTerms,
		logger:     slog.Default(),
		byLabel:    make(map[string]core.ID),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "entity-registry")
	return r, nil
}

// ExtractTerms returns up to maxTerms salient terms from a sentence,
// selected by token frequency over the stopword-filtered stream. Frequency
// ties are broken by first-occurrence order, not by term value, so
// extraction is deterministic given the same tokenizer.
func (r *Registry) ExtractTerms(sentence string) []string {
	tokens := classify.Tokenize(sentence)

	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	var order []string
	for i, token := range tokens {
		if _, seen := counts[token]; !seen {
			firstSeen[token] = i
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > r.maxTerms {
		order = order[:r.maxTerms]
	}
	return order
}

// Register records one occurrence of a surface term within a sentence.
// On first sight of the case-folded term it allocates a new entity, computes
// its concept-weight distribution from the term's own text, and (if an
// enricher is configured) assigns its type tag. Either way it records a
// mention carrying the entity's dominant concept key as captured now —
// entities are immutable after creation, so the key is never recomputed.
func (r *Registry) Register(ctx context.Context, sentenceID core.ID, surface string) (core.ID, error) {
	if sentenceID == "" {
		return "", ErrSentenceIDRequired
	}
	surface = strings.TrimSpace(surface)
	if surface == "" {
		return "", ErrEmptyTerm
	}

	label := strings.ToLower(surface)
	entityID, exists := r.byLabel[label]
	if !exists {
		var err error
		entityID, err = r.create(ctx, label)
		if err != nil {
			return "", err
		}
	}

	entity := r.lookup(entityID)
	r.mentions = append(r.mentions, core.Mention{
		SentenceId: sentenceID,
		EntityId:   entityID,
		Surface:    surface,
		Concept:    entity.Concepts.Dominant(),
		Weight:     mentionWeight,
	})

	return entityID, nil
}

func (r *Registry) create(ctx context.Context, label string) (core.ID, error) {
	typeTag := defaultTypeTag
	if r.enricher != nil {
		tag, err := r.enricher.EnrichTerm(ctx, label)
		if err != nil {
			// enrichment is best-effort; fall back to the default tag
			r.logger.Warn("term enrichment failed", "term", label, "err", err)
		} else if tag != "" {
			typeTag = tag
		}
	}

	id, err := r.allocator.NextEntity(r.docContext, typeTag)
	if err != nil {
		return "", err
	}

	r.byLabel[label] = id
	r.entities = append(r.entities, core.Entity{
		Id:       id,
		Label:    label,
		Type:     typeTag,
		Concepts: r.classifier.Profile(label),
	})
	return id, nil
}

func (r *Registry) lookup(id core.ID) *core.Entity {
	for i := range r.entities {
		if r.entities[i].Id == id {
			return &r.entities[i]
		}
	}
	return nil
}

// Entities returns the canonical entity set in first-occurrence order.
// The caller may attach embedding handles to the returned elements before
// artifact assembly.
func (r *Registry) Entities() []core.Entity {
	return r.entities
}

// Mentions returns all recorded mentions in registration order.
func (r *Registry) Mentions() []core.Mention {
	return r.mentions
}
