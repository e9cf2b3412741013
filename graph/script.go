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
	"encoding/json"
	"strings"
)

// Statement is one parameterized graph-creation statement. Query uses $name
// placeholders; Params supplies the values. Parameter names are fixed per
// statement shape so that identical input renders identical text.
type Statement struct {
	Query  string
	Params map[string]any
}

// Script is the ordered sequence of creation statements for one artifact.
// All node-creation statements precede all relationship statements, because
// the target store requires referenced nodes to exist before relationships.
type Script struct {
	statements []Statement
}

// Add appends a statement to the script.
func (s *Script) Add(query string, params map[string]any) {
	s.statements = append(s.statements, Statement{Query: query, Params: params})
}

// Statements returns the statements in emission order.
func (s *Script) Statements() []Statement {
	return s.statements
}

// Len returns the number of statements.
func (s *Script) Len() int {
	return len(s.statements)
}

// Render serializes the script to text in cypher-shell convention: each
// statement is preceded by a ":params" line carrying its parameter map as
// JSON. json.Marshal sorts map keys, so rendering is stable given identical
// input and the output diffs cleanly between runs.
func (s *Script) Render() string {
	var b strings.Builder
	for _, stmt := range s.statements {
		if len(stmt.Params) > 0 {
			encoded, err := json.Marshal(stmt.Params)
			if err == nil {
				b.WriteString(":params ")
				b.Write(encoded)
				b.WriteByte('\n')
			}
		}
		b.WriteString(stmt.Query)
		b.WriteString(";\n")
	}
	return b.String()
}
