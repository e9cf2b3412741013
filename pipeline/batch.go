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


package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/poiesic/textgraph/core"
)

// IngestAll runs a batch of documents over the worker pool. Documents are
// independent, so failures are isolated: one failing document never stops
// the batch. Successful artifacts are returned in request order; the error
// is the join of all per-document failures, or nil if every document
// succeeded.
func (p *Pipeline) IngestAll(ctx context.Context, requests []Request) ([]*core.Artifact, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	results := make([]*core.Artifact, len(requests))
	failures := make([]error, len(requests))

	var wg sync.WaitGroup
	for i := range requests {
		i := i
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			artifact, err := p.Ingest(ctx, requests[i])
			if err != nil {
				failures[i] = fmt.Errorf("document %q: %w", requests[i].docLabel(), err)
				p.logger.Error("document failed, batch continues",
					"document", requests[i].docLabel(), "err", err)
				return
			}
			results[i] = artifact
		})
		if err != nil {
			wg.Done()
			failures[i] = fmt.Errorf("document %q: %w", requests[i].docLabel(), err)
		}
	}
	wg.Wait()

	artifacts := make([]*core.Artifact, 0, len(requests))
	for _, artifact := range results {
		if artifact != nil {
			artifacts = append(artifacts, artifact)
		}
	}
	return artifacts, errors.Join(failures...)
}

// docLabel is a human-readable batch label for logs and error messages.
func (r Request) docLabel() string {
	if r.Title != "" {
		return r.Title
	}
	if r.Source != "" {
		return r.Source
	}
	return "untitled"
}
