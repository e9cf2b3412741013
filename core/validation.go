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


package core

import (
	"fmt"
	"math"
)

// weightEpsilon is the tolerance applied when checking that a
// concept-weight distribution sums to 1.
const weightEpsilon = 1e-9

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Fingerprint must not be empty
//
// NOT validated (populated later in the run):
//   - Topics/Styles (empty until classification runs)
//   - TokenCount (0 is a valid hint)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}
	if doc.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyID)
	}
	if doc.Fingerprint == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyFingerprint)
	}
	return nil
}

// ValidateSegment validates a Segment according to domain rules.
func ValidateSegment(seg *Segment) error {
	if seg == nil {
		return fmt.Errorf("%w: segment is nil", ErrInvalidSegment)
	}
	if seg.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSegment, ErrEmptyID)
	}
	if seg.Ordinal < 0 {
		return fmt.Errorf("%w: negative ordinal %d", ErrInvalidSegment, seg.Ordinal)
	}
	if len(seg.SentenceIds) == 0 {
		return fmt.Errorf("%w: segment has no sentences", ErrInvalidSegment)
	}
	return nil
}

// ValidateSentence validates a Sentence according to domain rules.
func ValidateSentence(sen *Sentence) error {
	if sen == nil {
		return fmt.Errorf("%w: sentence is nil", ErrInvalidSentence)
	}
	if sen.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSentence, ErrEmptyID)
	}
	if sen.Ordinal < 0 {
		return fmt.Errorf("%w: negative ordinal %d", ErrInvalidSentence, sen.Ordinal)
	}
	if err := ValidateWeights(sen.Concepts); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSentence, err)
	}
	return nil
}

// ValidateEntity validates an Entity according to domain rules.
func ValidateEntity(entity *Entity) error {
	if entity == nil {
		return fmt.Errorf("%w: entity is nil", ErrInvalidEntity)
	}
	if entity.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, ErrEmptyID)
	}
	if entity.Label == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, ErrEmptyLabel)
	}
	if err := ValidateWeights(entity.Concepts); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}
	return nil
}

// ValidateMention validates a Mention according to domain rules.
// Referential integrity against the run's sentence and entity sets is
// checked by the graph builder, not here.
func ValidateMention(m *Mention) error {
	if m == nil {
		return fmt.Errorf("%w: mention is nil", ErrInvalidMention)
	}
	if m.SentenceId == "" || m.EntityId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMention, ErrEmptyID)
	}
	if m.Weight < 0 {
		return fmt.Errorf("%w: negative weight %f", ErrInvalidMention, m.Weight)
	}
	return nil
}

// ValidateWeights checks that a concept-weight distribution is normalized:
// every weight non-negative and the total equal to 1 within epsilon.
func ValidateWeights(w ConceptWeights) error {
	if len(w) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidWeights)
	}
	var sum float64
	for key, weight := range w {
		if weight < 0 {
			return fmt.Errorf("%w: negative weight %f for %q", ErrInvalidWeights, weight, key)
		}
		sum += weight
	}
	if math.Abs(sum-1) > weightEpsilon {
		return fmt.Errorf("%w: weights sum to %f", ErrInvalidWeights, sum)
	}
	return nil
}
