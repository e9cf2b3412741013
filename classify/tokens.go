package classify

import (
	"strings"
	"unicode"
)

// Stop words filtered out of the token stream. Covers English function words
// and semantically light Japanese nouns that survive script-run tokenization.
var stopWords = map[string]bool{
	// English
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true, "his": true, "her": true, "they": true, "she": true,
	// Japanese formal nouns with little lexical content
	"事": true, "物": true, "為": true, "様": true, "方": true,
}

// minLatinTokenLen is the minimum rune length for Latin alphanumeric tokens.
// CJK tokens carry meaning at a single rune, so no minimum applies to them.
const minLatinTokenLen = 3

type scriptClass int

const (
	scriptOther scriptClass = iota
	scriptLatin
	scriptHan
	scriptHiragana
	scriptKatakana
)

func classOf(r rune) scriptClass {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return scriptLatin
	case unicode.Is(unicode.Han, r):
		return scriptHan
	case unicode.Is(unicode.Hiragana, r):
		return scriptHiragana
	case unicode.Is(unicode.Katakana, r):
		return scriptKatakana
	case r == 'ー': // prolonged sound mark is Script=Common, keep it in the run
		return scriptKatakana
	}
	return scriptOther
}

// Tokenize splits text into contiguous same-script character runs, lowercases
// Latin runs, and filters stop words and sub-minimum tokens. Pure-Hiragana
// runs are treated as function words (particles, inflections) and skipped.
// Token order follows text order, so frequency ties downstream resolve by
// first occurrence.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	currentClass := scriptOther

	flush := func() {
		if current.Len() == 0 {
			return
		}
		token := current.String()
		current.Reset()
		if keepToken(token, currentClass) {
			tokens = append(tokens, token)
		}
	}

	for _, r := range text {
		class := classOf(r)
		if class == scriptOther {
			flush()
			currentClass = scriptOther
			continue
		}
		if class == scriptLatin {
			r = unicode.ToLower(r)
		}
		if class != currentClass {
			flush()
			currentClass = class
		}
		current.WriteRune(r)
	}
	flush()

	return tokens
}

func keepToken(token string, class scriptClass) bool {
	switch class {
	case scriptHiragana:
		return false
	case scriptLatin:
		if len([]rune(token)) < minLatinTokenLen {
			return false
		}
	}
	return !stopWords[token]
}

// TokenSet returns the distinct tokens of a text as a membership set.
func TokenSet(text string) map[string]bool {
	tokens := Tokenize(text)
	set := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		set[token] = true
	}
	return set
}
