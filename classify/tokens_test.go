package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "english lowercased and stopwords removed",
			text: "The cat sat on the mat",
			want: []string{"cat", "sat", "mat"},
		},
		{
			name: "short latin tokens dropped",
			text: "go to AI lab now",
			want: []string{"lab", "now"},
		},
		{
			name: "japanese script runs split by class",
			text: "猫が座った。",
			want: []string{"猫", "座"},
		},
		{
			name: "hiragana runs skipped as function words",
			text: "これはそれです",
			want: nil,
		},
		{
			name: "katakana run with prolonged sound mark",
			text: "コーヒーを飲む",
			want: []string{"コーヒー", "飲"},
		},
		{
			name: "mixed scripts",
			text: "AIが世界を変えた story",
			want: []string{"世界", "変", "story"},
		},
		{
			name: "token order follows text order",
			text: "dog cat dog",
			want: []string{"dog", "cat", "dog"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("猫が座った。猫が笑った。")
	assert.True(t, set["猫"])
	assert.True(t, set["座"])
	assert.True(t, set["笑"])
	assert.False(t, set["が"])
	assert.Len(t, set, 3)
}
