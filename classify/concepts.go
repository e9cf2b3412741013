package classify

import (
	"strings"

	"github.com/poiesic/textgraph/core"
)

// lexicalWeight scales the lexical-density contributions so they are
// commensurate with the taxonomy contributions (normalized scores in [0,1]).
const lexicalWeight = 5.0

// Lexical marker lists for the direct density features. Matching is by
// substring over the case-folded raw text, so inflected Japanese forms still
// count.
var (
	temporalMarkers = []string{
		"today", "yesterday", "tomorrow", "now", "soon", "always", "never",
		"morning", "evening", "year", "century",
		"昨日", "今日", "明日", "今", "時", "年", "朝", "夜", "昔", "未来",
	}
	spatialMarkers = []string{
		"here", "there", "above", "below", "inside", "outside", "near", "far",
		"north", "south", "east", "west",
		"上", "下", "中", "外", "北", "南", "東", "西", "場所", "近く", "遠く",
	}
	affectMarkers = []string{
		"happy", "sad", "angry", "afraid", "love", "hate", "joy", "grief",
		"嬉し", "悲し", "怒", "怖", "楽し", "愛", "憎", "喜", "泣", "笑",
	}
)

// fuseConcepts combines the top category of each taxonomy (each contributing
// its fixed sub-distribution scaled by the category's score) with the
// lexical-density features, then renormalizes to sum to 1.
// An all-zero contribution set yields a uniform distribution over the
// concept keys (second return false), never a divide-by-zero or empty map.
func fuseConcepts(text string, topTopic, topStyle scoredCategory) (core.ConceptWeights, bool) {
	contributions := make(core.ConceptWeights, len(core.ConceptKeys))
	for _, key := range core.ConceptKeys {
		contributions[key] = 0
	}

	for key, weight := range topTopic.category.Concepts {
		contributions[key] += weight * topTopic.score
	}
	for key, weight := range topStyle.category.Concepts {
		contributions[key] += weight * topStyle.score
	}

	folded := strings.ToLower(text)
	contributions["temporal"] += lexicalWeight * markerDensity(folded, temporalMarkers)
	contributions["spatial"] += lexicalWeight * markerDensity(folded, spatialMarkers)
	contributions["emotional"] += lexicalWeight * markerDensity(folded, affectMarkers)

	total := 0.0
	for _, weight := range contributions {
		total += weight
	}
	if total == 0 {
		return UniformConcepts(), false
	}

	for key := range contributions {
		contributions[key] /= total
	}
	return contributions, true
}

// markerDensity counts marker occurrences per rune of text.
func markerDensity(folded string, markers []string) float64 {
	length := len([]rune(folded))
	if length == 0 {
		return 0
	}
	count := 0
	for _, marker := range markers {
		count += strings.Count(folded, marker)
	}
	return float64(count) / float64(length)
}

// UniformConcepts returns the uniform distribution over the concept keys.
func UniformConcepts() core.ConceptWeights {
	w := make(core.ConceptWeights, len(core.ConceptKeys))
	uniform := 1.0 / float64(len(core.ConceptKeys))
	for _, key := range core.ConceptKeys {
		w[key] = uniform
	}
	return w
}
