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


package classify

import "github.com/poiesic/textgraph/core"

// Category is one entry of a taxonomy: a name, the keywords that signal it,
// and a fixed sub-distribution over concept keys contributed when the
// category ranks first.
type Category struct {
	Name     string
	Keywords []string
	Concepts core.ConceptWeights
}

// Taxonomy is a statically-defined category scheme. Declaration order is
// significant: score ties are broken by it, never by map iteration order.
type Taxonomy struct {
	Name       string
	Categories []Category
}

// Topics is the subject-matter taxonomy (scheme A).
var Topics = Taxonomy{
	Name: "topics",
	Categories: []Category{
		{
			Name: "nature",
			Keywords: []string{
				"nature", "forest", "river", "mountain", "sea", "flower", "tree",
				"animal", "cat", "dog", "bird", "rain", "wind", "snow",
				"自然", "森", "川", "山", "海", "花", "木", "動物", "猫", "犬", "鳥", "雨", "風", "雪",
			},
			Concepts: core.ConceptWeights{
				"spatial": 0.35, "entity": 0.35, "temporal": 0.10, "action": 0.10, "emotional": 0.05, "abstract": 0.05,
			},
		},
		{
			Name: "technology",
			Keywords: []string{
				"computer", "software", "network", "data", "machine", "robot",
				"internet", "system", "code", "digital",
				"技術", "機械", "電子", "計算", "通信", "開発",
			},
			Concepts: core.ConceptWeights{
				"entity": 0.40, "abstract": 0.30, "action": 0.15, "temporal": 0.05, "spatial": 0.05, "emotional": 0.05,
			},
		},
		{
			Name: "society",
			Keywords: []string{
				"people", "city", "government", "school", "work", "family",
				"community", "law", "economy", "market",
				"社会", "都市", "政府", "学校", "仕事", "家族", "経済", "市場",
			},
			Concepts: core.ConceptWeights{
				"entity": 0.30, "abstract": 0.25, "spatial": 0.20, "action": 0.15, "temporal": 0.05, "emotional": 0.05,
			},
		},
		{
			Name: "emotion",
			Keywords: []string{
				"love", "joy", "fear", "anger", "sadness", "happiness", "hope",
				"loneliness", "heart",
				"愛", "喜", "怒", "哀", "楽", "心", "涙", "笑",
			},
			Concepts: core.ConceptWeights{
				"emotional": 0.50, "abstract": 0.20, "entity": 0.10, "action": 0.10, "temporal": 0.05, "spatial": 0.05,
			},
		},
		{
			Name: "daily_life",
			Keywords: []string{
				"morning", "breakfast", "dinner", "home", "room", "walk", "sleep",
				"coffee", "kitchen",
				"朝", "夜", "食", "家", "部屋", "散歩", "眠", "台所",
			},
			Concepts: core.ConceptWeights{
				"temporal": 0.25, "spatial": 0.25, "action": 0.25, "entity": 0.15, "emotional": 0.05, "abstract": 0.05,
			},
		},
		{
			Name: "art",
			Keywords: []string{
				"music", "painting", "poem", "novel", "dance", "song", "color",
				"stage", "film",
				"芸術", "音楽", "絵", "詩", "小説", "踊", "歌", "色", "舞台", "映画",
			},
			Concepts: core.ConceptWeights{
				"abstract": 0.30, "emotional": 0.30, "entity": 0.20, "action": 0.10, "temporal": 0.05, "spatial": 0.05,
			},
		},
		{
			Name: "science",
			Keywords: []string{
				"experiment", "theory", "physics", "biology", "chemistry",
				"research", "hypothesis", "measurement",
				"科学", "実験", "理論", "物理", "生物", "化学", "研究", "仮説",
			},
			Concepts: core.ConceptWeights{
				"abstract": 0.40, "entity": 0.25, "action": 0.15, "temporal": 0.10, "spatial": 0.05, "emotional": 0.05,
			},
		},
		{
			Name: "history",
			Keywords: []string{
				"history", "war", "king", "empire", "ancient", "century",
				"revolution", "era",
				"歴史", "戦争", "王", "帝国", "古代", "世紀", "革命", "時代",
			},
			Concepts: core.ConceptWeights{
				"temporal": 0.40, "entity": 0.20, "abstract": 0.15, "action": 0.15, "spatial": 0.05, "emotional": 0.05,
			},
		},
	},
}

// Styles is the discourse-style taxonomy (scheme B).
var Styles = Taxonomy{
	Name: "styles",
	Categories: []Category{
		{
			Name: "narrative",
			Keywords: []string{
				"then", "suddenly", "once", "story", "happened", "began",
				"物語", "突然", "始", "出来事", "語",
			},
			Concepts: core.ConceptWeights{
				"action": 0.35, "temporal": 0.30, "entity": 0.15, "spatial": 0.10, "emotional": 0.05, "abstract": 0.05,
			},
		},
		{
			Name: "descriptive",
			Keywords: []string{
				"looked", "seemed", "bright", "dark", "quiet", "shape", "surface",
				"景色", "静", "明", "暗", "姿", "表面",
			},
			Concepts: core.ConceptWeights{
				"spatial": 0.35, "entity": 0.30, "emotional": 0.15, "abstract": 0.10, "temporal": 0.05, "action": 0.05,
			},
		},
		{
			Name: "dialogic",
			Keywords: []string{
				"said", "asked", "replied", "told", "answered", "spoke",
				"言", "話", "答", "尋", "呼",
			},
			Concepts: core.ConceptWeights{
				"action": 0.30, "entity": 0.25, "emotional": 0.20, "abstract": 0.10, "temporal": 0.10, "spatial": 0.05,
			},
		},
		{
			Name: "expository",
			Keywords: []string{
				"therefore", "because", "result", "define", "explain", "example",
				"method", "conclusion",
				"説明", "理由", "結果", "定義", "例", "方法", "結論",
			},
			Concepts: core.ConceptWeights{
				"abstract": 0.45, "entity": 0.20, "action": 0.15, "temporal": 0.10, "spatial": 0.05, "emotional": 0.05,
			},
		},
		{
			Name: "lyrical",
			Keywords: []string{
				"moon", "dream", "silence", "whisper", "eternal", "longing",
				"月", "夢", "沈黙", "永遠", "憧",
			},
			Concepts: core.ConceptWeights{
				"emotional": 0.40, "abstract": 0.25, "temporal": 0.15, "spatial": 0.10, "entity": 0.05, "action": 0.05,
			},
		},
	},
}
