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


package graph

import (
	"fmt"
	"log/slog"

	"github.com/poiesic/textgraph/core"
)

// Builder assembles a validated in-memory model into a serializable artifact
// and its graph-creation script.
type Builder struct {
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder creates an artifact builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.With("component", "graph-builder")
	return b
}

// Build validates referential integrity across the model and emits the
// artifact with its rendered creation script. Any integrity violation halts
// emission: a partially valid artifact is never produced.
func (b *Builder) Build(document core.Document, segments []core.Segment, sentences []core.Sentence, entities []core.Entity, mentions []core.Mention) (*core.Artifact, error) {
	if err := b.verify(document, segments, sentences, entities, mentions); err != nil {
		b.logger.Error("artifact rejected", "document", document.Id, "err", err)
		return nil, err
	}

	script := b.compose(document, segments, sentences, entities, mentions)

	b.logger.Debug("artifact assembled",
		"document", document.Id,
		"segments", len(segments),
		"sentences", len(sentences),
		"entities", len(entities),
		"mentions", len(mentions),
		"statements", script.Len())

	return &core.Artifact{
		Document:  document,
		Segments:  segments,
		Sentences: sentences,
		Entities:  entities,
		Mentions:  mentions,
		Script:    script.Render(),
	}, nil
}

// verify enforces the pre-emission invariants: unique node identifiers,
// every sentence in exactly one segment, contiguous segment ordinals, and
// every mention referencing identifiers that exist in this run.
func (b *Builder) verify(document core.Document, segments []core.Segment, sentences []core.Sentence, entities []core.Entity, mentions []core.Mention) error {
	if err := core.ValidateDocument(&document); err != nil {
		return fmt.Errorf("%w: %w", ErrIntegrity, err)
	}

	nodeIDs := make(map[core.ID]bool, 1+len(segments)+len(sentences)+len(entities))
	nodeIDs[document.Id] = true

	sentenceIDs := make(map[core.ID]bool, len(sentences))
	for i := range sentences {
		if err := core.ValidateSentence(&sentences[i]); err != nil {
			return fmt.Errorf("%w: %w", ErrIntegrity, err)
		}
		if nodeIDs[sentences[i].Id] {
			return fmt.Errorf("%w: %w: %s", ErrIntegrity, ErrDuplicateID, sentences[i].Id)
		}
		nodeIDs[sentences[i].Id] = true
		sentenceIDs[sentences[i].Id] = true
	}

	assigned := make(map[core.ID]bool, len(sentences))
	for i := range segments {
		if err := core.ValidateSegment(&segments[i]); err != nil {
			return fmt.Errorf("%w: %w", ErrIntegrity, err)
		}
		if segments[i].Ordinal != i {
			return fmt.Errorf("%w: %w: segment %s has ordinal %d, want %d",
				ErrIntegrity, ErrSegmentOrdinals, segments[i].Id, segments[i].Ordinal, i)
		}
		if nodeIDs[segments[i].Id] {
			return fmt.Errorf("%w: %w: %s", ErrIntegrity, ErrDuplicateID, segments[i].Id)
		}
		nodeIDs[segments[i].Id] = true

		for _, sentenceID := range segments[i].SentenceIds {
			if !sentenceIDs[sentenceID] {
				return fmt.Errorf("%w: %w: segment %s references sentence %s",
					ErrIntegrity, ErrUnknownReference, segments[i].Id, sentenceID)
			}
			if assigned[sentenceID] {
				return fmt.Errorf("%w: sentence %s assigned to more than one segment",
					ErrIntegrity, sentenceID)
			}
			assigned[sentenceID] = true
		}
	}
	for i := range sentences {
		if !assigned[sentences[i].Id] {
			return fmt.Errorf("%w: %w: %s", ErrIntegrity, ErrOrphanSentence, sentences[i].Id)
		}
	}

	entityIDs := make(map[core.ID]bool, len(entities))
	for i := range entities {
		if err := core.ValidateEntity(&entities[i]); err != nil {
			return fmt.Errorf("%w: %w", ErrIntegrity, err)
		}
		if nodeIDs[entities[i].Id] {
			return fmt.Errorf("%w: %w: %s", ErrIntegrity, ErrDuplicateID, entities[i].Id)
		}
		nodeIDs[entities[i].Id] = true
		entityIDs[entities[i].Id] = true
	}

	for i := range mentions {
		if err := core.ValidateMention(&mentions[i]); err != nil {
			return fmt.Errorf("%w: %w", ErrIntegrity, err)
		}
		if !sentenceIDs[mentions[i].SentenceId] {
			return fmt.Errorf("%w: %w: mention references sentence %s",
				ErrIntegrity, ErrUnknownReference, mentions[i].SentenceId)
		}
		if !entityIDs[mentions[i].EntityId] {
			return fmt.Errorf("%w: %w: mention references entity %s",
				ErrIntegrity, ErrUnknownReference, mentions[i].EntityId)
		}
	}

	return nil
}

// compose emits the creation statements: all node creations first, in stable
// model order, then all relationships.
func (b *Builder) compose(document core.Document, segments []core.Segment, sentences []core.Sentence, entities []core.Entity, mentions []core.Mention) *Script {
	script := &Script{}

	script.Add(
		"CREATE (d:Document {id: $id, title: $title, source: $source, fingerprint: $fingerprint, ingested_at: $ingested_at, token_count: $token_count, topics: $topics, styles: $styles})",
		map[string]any{
			"id":          string(document.Id),
			"title":       document.Title,
			"source":      document.Source,
			"fingerprint": string(document.Fingerprint),
			"ingested_at": document.IngestedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
			"token_count": document.TokenCount,
			"topics":      categoryNames(document.Topics),
			"styles":      categoryNames(document.Styles),
		})

	for i := range segments {
		script.Add(
			"CREATE (g:Segment {id: $id, ordinal: $ordinal, key_terms: $key_terms})",
			map[string]any{
				"id":        string(segments[i].Id),
				"ordinal":   segments[i].Ordinal,
				"key_terms": segments[i].KeyTerms,
			})
	}

	for i := range sentences {
		params := map[string]any{
			"id":               string(sentences[i].Id),
			"ordinal":          sentences[i].Ordinal,
			"dominant_concept": sentences[i].Concepts.Dominant(),
		}
		if !sentences[i].Embedding.IsZero() {
			params["embedding_model"] = sentences[i].Embedding.Model
			params["embedding_key"] = sentences[i].Embedding.Key
			script.Add(
				"CREATE (s:Sentence {id: $id, ordinal: $ordinal, dominant_concept: $dominant_concept, embedding_model: $embedding_model, embedding_key: $embedding_key})",
				params)
			continue
		}
		script.Add(
			"CREATE (s:Sentence {id: $id, ordinal: $ordinal, dominant_concept: $dominant_concept})",
			params)
	}

	for i := range entities {
		script.Add(
			"CREATE (e:Entity {id: $id, label: $label, type: $type, dominant_concept: $dominant_concept})",
			map[string]any{
				"id":               string(entities[i].Id),
				"label":            entities[i].Label,
				"type":             entities[i].Type,
				"dominant_concept": entities[i].Concepts.Dominant(),
			})
	}

	// relationships only after every node they reference exists
	for i := range segments {
		script.Add(
			"MATCH (d:Document {id: $document_id}), (g:Segment {id: $segment_id}) CREATE (d)-[:HAS_SEGMENT]->(g)",
			map[string]any{
				"document_id": string(document.Id),
				"segment_id":  string(segments[i].Id),
			})
		for _, sentenceID := range segments[i].SentenceIds {
			script.Add(
				"MATCH (g:Segment {id: $segment_id}), (s:Sentence {id: $sentence_id}) CREATE (g)-[:HAS_SENTENCE]->(s)",
				map[string]any{
					"segment_id":  string(segments[i].Id),
					"sentence_id": string(sentenceID),
				})
		}
	}

	for i := range mentions {
		script.Add(
			"MATCH (s:Sentence {id: $sentence_id}), (e:Entity {id: $entity_id}) CREATE (s)-[:MENTIONS {surface: $surface, concept: $concept, weight: $weight}]->(e)",
			map[string]any{
				"sentence_id": string(mentions[i].SentenceId),
				"entity_id":   string(mentions[i].EntityId),
				"surface":     mentions[i].Surface,
				"concept":     mentions[i].Concept,
				"weight":      mentions[i].Weight,
			})
	}

	return script
}

func categoryNames(scores []core.CategoryScore) []string {
	names := make([]string, len(scores))
	for i, s := range scores {
		names[i] = s.Category
	}
	return names
}
