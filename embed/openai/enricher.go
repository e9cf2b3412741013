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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/textgraph/embed"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// TermEnricher implements embed.TermEnricher using OpenAI-compatible chat APIs.
type TermEnricher struct {
	client llms.Model
	logger *slog.Logger
}

// typing is the wrapper structure for the LLM's JSON response.
type typing struct {
	Type string `json:"type"`
}

// newTermEnricher is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newTermEnricher(config *embed.Config) (*TermEnricher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/typing
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.EnricherHost),
		openai.WithToken("none"),
		openai.WithModel(config.EnricherModel),
	)
	if err != nil {
		return nil, err
	}

	return &TermEnricher{
		client: client,
		logger: slog.Default().With("component", "openai-enricher"),
	}, nil
}

// NewTermEnricher creates a new term enricher using the provided configuration.
//
// Returns embed.TermEnricher interface to enforce abstraction.
func NewTermEnricher(config *embed.Config) (embed.TermEnricher, error) {
	return newTermEnricher(config)
}

// EnrichTerm asks an LLM to assign a semantic type tag to a term.
// Results outside the known tag set fall back to "term".
func (e *TermEnricher) EnrichTerm(ctx context.Context, term string) (string, error) {
	term = scrubString(term)

	systemPrompt := buildEnrichmentPrompt()
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(term),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result typing
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return "", err
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model", "term", term)
			return "", nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			e.logger.Warn("error parsing enricher response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse enricher response after retries", "err", lastErr)
		return "", lastErr
	}

	tag := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(result.Type)), " ", "_")
	if !slices.Contains(embed.TermTypes, tag) {
		e.logger.Debug("model returned unknown type tag", "term", term, "tag", tag)
		return "", nil
	}

	return tag, nil
}
