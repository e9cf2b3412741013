package classify

import (
	"math"
	"testing"

	"github.com/poiesic/textgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func assertNormalized(t *testing.T, scores []core.CategoryScore) {
	t.Helper()
	sum := 0.0
	for _, s := range scores {
		assert.GreaterOrEqual(t, s.Score, 0.0)
		sum += s.Score
	}
	// top-3 of a normalized ranking sums to at most 1
	assert.LessOrEqual(t, sum, 1.0+epsilon)
}

func TestClassifyWithSignal(t *testing.T) {
	c := New()

	result := c.Classify("The cat sat by the river. The dog ran through the forest. Rain fell on the mountain.")

	require.Len(t, result.Topics, 3)
	require.Len(t, result.Styles, 3)
	assert.Equal(t, "nature", result.Topics[0].Category)
	assert.Greater(t, result.Topics[0].Score, 0.0)
	assertNormalized(t, result.Topics)
	assertNormalized(t, result.Styles)
	require.NoError(t, core.ValidateWeights(result.Concepts))
}

func TestClassifyJapanese(t *testing.T) {
	c := New()

	result := c.Classify("猫が座った。犬が走った。猫が笑った。")

	require.Len(t, result.Topics, 3)
	assert.Equal(t, "nature", result.Topics[0].Category)
	require.NoError(t, core.ValidateWeights(result.Concepts))
}

func TestClassifyUniformFallback(t *testing.T) {
	c := New()

	// tokens that match no keyword in either taxonomy
	result := c.Classify("xylophone quandary zeppelin")

	require.Len(t, result.Topics, 3)
	require.Len(t, result.Styles, 3)

	wantTopic := 1.0 / float64(len(Topics.Categories))
	wantStyle := 1.0 / float64(len(Styles.Categories))
	for _, s := range result.Topics {
		assert.InDelta(t, wantTopic, s.Score, epsilon)
	}
	for _, s := range result.Styles {
		assert.InDelta(t, wantStyle, s.Score, epsilon)
	}

	// uniform fallback preserves declaration order
	assert.Equal(t, Topics.Categories[0].Name, result.Topics[0].Category)
	assert.Equal(t, Styles.Categories[0].Name, result.Styles[0].Category)

	require.NoError(t, core.ValidateWeights(result.Concepts))
}

func TestRankNormalization(t *testing.T) {
	tokens := TokenSet("森の猫と川の犬。音楽と絵。")

	ranking, signal := rank(Topics, tokens)
	require.True(t, signal)

	sum := 0.0
	for _, s := range ranking {
		assert.GreaterOrEqual(t, s.score, 0.0)
		sum += s.score
	}
	assert.InDelta(t, 1.0, sum, epsilon)

	// ranking is sorted by score, descending
	for i := 1; i < len(ranking); i++ {
		assert.GreaterOrEqual(t, ranking[i-1].score, ranking[i].score)
	}
}

func TestRankTieBreakByDeclarationOrder(t *testing.T) {
	taxonomy := Taxonomy{
		Name: "test",
		Categories: []Category{
			{Name: "first", Keywords: []string{"alpha"}, Concepts: core.ConceptWeights{"entity": 1}},
			{Name: "second", Keywords: []string{"beta"}, Concepts: core.ConceptWeights{"action": 1}},
			{Name: "third", Keywords: []string{"gamma"}, Concepts: core.ConceptWeights{"abstract": 1}},
		},
	}

	// alpha and gamma each match once: tie between first and third must
	// resolve to declaration order
	ranking, signal := rank(taxonomy, map[string]bool{"alpha": true, "gamma": true})
	require.True(t, signal)
	assert.Equal(t, "first", ranking[0].category.Name)
	assert.Equal(t, "third", ranking[1].category.Name)
	assert.Equal(t, "second", ranking[2].category.Name)
}

func TestProfileNormalized(t *testing.T) {
	c := New()

	for _, text := range []string{
		"猫",
		"quantum entanglement research",
		"朝の台所で珈琲を飲んだ。",
		"zzz",
	} {
		w := c.Profile(text)
		require.NoError(t, core.ValidateWeights(w), "text %q", text)
		for _, key := range core.ConceptKeys {
			_, ok := w[key]
			assert.True(t, ok, "missing key %s for %q", key, text)
		}
	}
}

func TestFuseConceptsZeroSumFallback(t *testing.T) {
	// categories with empty sub-distributions and marker-free text force a
	// zero contribution sum
	empty := scoredCategory{
		category: &Category{Name: "empty", Concepts: core.ConceptWeights{}},
		score:    0.5,
	}

	w, fused := fuseConcepts("qqq", empty, empty)
	assert.False(t, fused)

	uniform := 1.0 / float64(len(core.ConceptKeys))
	for _, key := range core.ConceptKeys {
		assert.InDelta(t, uniform, w[key], epsilon)
	}
}

func TestMarkerDensity(t *testing.T) {
	assert.Equal(t, 0.0, markerDensity("", temporalMarkers))

	text := "今日も明日も今日も"
	density := markerDensity(text, temporalMarkers)
	// 今日 twice, 明日 once, 今 appears inside 今日 twice = 5 hits over 9 runes
	assert.False(t, math.IsNaN(density))
	assert.Greater(t, density, 0.0)
}
