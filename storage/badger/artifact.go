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


package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/textgraph/core"
	"github.com/poiesic/textgraph/storage"
)

// ArtifactRepository implements storage.ArtifactRepository for BadgerDB.
type ArtifactRepository struct {
	backend *Backend
}

var _ storage.ArtifactRepository = (*ArtifactRepository)(nil)

// NewArtifactRepository creates a new ArtifactRepository.
func NewArtifactRepository(backend *Backend) (*ArtifactRepository, error) {
	return &ArtifactRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ArtifactRepository has no resources to release.
func (r *ArtifactRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ArtifactRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutArtifact stores an artifact keyed by its document identifier.
// Any prior artifact under the same identifier is replaced wholesale.
func (r *ArtifactRepository) PutArtifact(ctx context.Context, artifact *core.Artifact) error {
	if artifact == nil {
		return storage.ErrInvalidQuery
	}
	if err := core.ValidateDocument(&artifact.Document); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeArtifactKey(artifact.Document.Id)
		if err := tx.Set(key, storage.MarshalArtifact(artifact)); err != nil {
			return err
		}

		// Document metadata is indexed separately so listing stays cheap.
		docKey := makeDocumentKey(artifact.Document.Id)
		if err := tx.Set(docKey, storage.MarshalDocument(&artifact.Document)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)
}

// GetArtifact retrieves an artifact by its document identifier.
func (r *ArtifactRepository) GetArtifact(ctx context.Context, documentID core.ID) (*core.Artifact, error) {
	var artifact *core.Artifact

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeArtifactKey(documentID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			artifact, err = storage.UnmarshalArtifact(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return artifact, nil
}

// GetScript retrieves only the creation script of a stored artifact.
func (r *ArtifactRepository) GetScript(ctx context.Context, documentID core.ID) (string, error) {
	artifact, err := r.GetArtifact(ctx, documentID)
	if err != nil {
		return "", err
	}
	return artifact.Script, nil
}

// ListDocuments returns the document records of all stored artifacts.
// Badger iterates keys in lexicographic order, so results are ordered by
// document identifier.
func (r *ArtifactRepository) ListDocuments(ctx context.Context) ([]*core.Document, error) {
	var documents []*core.Document

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				doc, err := storage.UnmarshalDocument(val)
				if err != nil {
					return err
				}
				documents = append(documents, doc)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return documents, nil
}

// DeleteArtifact removes an artifact and its document index entry.
func (r *ArtifactRepository) DeleteArtifact(ctx context.Context, documentID core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeArtifactKey(documentID)
		if _, err := tx.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		if err := tx.Delete(makeDocumentKey(documentID)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)
}
