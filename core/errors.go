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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidSegment indicates a Segment failed validation.
	ErrInvalidSegment = errors.New("invalid segment")

	// ErrInvalidSentence indicates a Sentence failed validation.
	ErrInvalidSentence = errors.New("invalid sentence")

	// ErrInvalidEntity indicates an Entity failed validation.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidMention indicates a Mention failed validation.
	ErrInvalidMention = errors.New("invalid mention")

	// ErrEmptyID indicates a required identifier is empty.
	ErrEmptyID = errors.New("identifier cannot be empty")

	// ErrEmptyLabel indicates the entity Label field is empty.
	ErrEmptyLabel = errors.New("entity label cannot be empty")

	// ErrEmptyFingerprint indicates the document fingerprint is missing.
	ErrEmptyFingerprint = errors.New("document fingerprint cannot be empty")

	// ErrInvalidWeights indicates a concept-weight distribution is not
	// normalized or contains a negative weight.
	ErrInvalidWeights = errors.New("invalid concept-weight distribution")
)
