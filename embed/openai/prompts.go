package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/textgraph/embed"
)

const enrichmentResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "type": {
      "type": "string"
    }
  },
  "required": ["type"],
  "additionalProperties": false
}`

const enrichmentPromptTemplate = `Assign a semantic type to the given term and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- The type field must match exactly one of the listed values: %s.
- Pick the single most specific type that fits the term.
- The term may be in any language; classify by meaning, not by script.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "eiffel tower"
Output:
{"type":"place"}

Example:
Input: "cat"
Output:
{"type":"animal"}

Example (Japanese):
Input: "森"
Output:
{"type":"place"}

Example (abstract noun):
Input: "freedom"
Output:
{"type":"abstract concept"}`

// buildEnrichmentPrompt creates the system prompt with type tags embedded.
func buildEnrichmentPrompt() string {
	return fmt.Sprintf(enrichmentPromptTemplate,
		enrichmentResponseSchema,
		strings.Join(embed.TermTypes, ", "))
}
