package badger

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/textgraph/core"
	"github.com/poiesic/textgraph/storage"
)

// VectorRepository implements storage.VectorRepository for BadgerDB.
type VectorRepository struct {
	backend *Backend
}

var _ storage.VectorRepository = (*VectorRepository)(nil)

// NewVectorRepository creates a new VectorRepository.
func NewVectorRepository(backend *Backend) (*VectorRepository, error) {
	return &VectorRepository{
		backend: backend,
	}, nil
}

// Close releases resources. VectorRepository has no resources to release.
func (r *VectorRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *VectorRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutVectors stores one or more vector records. Existing records with the
// same (model, key) are overwritten.
func (r *VectorRepository) PutVectors(ctx context.Context, records ...*core.VectorRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if record.Model == "" || record.Key == "" {
				return storage.ErrInvalidQuery
			}
			if record.InsertedAt.IsZero() {
				record.InsertedAt = time.Now().UTC()
			}

			key := makeVectorKey(record.Model, record.Key)
			if err := tx.Set(key, storage.MarshalVectorRecord(record)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetVector retrieves a vector record by its handle.
func (r *VectorRepository) GetVector(ctx context.Context, handle core.EmbeddingHandle) (*core.VectorRecord, error) {
	if handle.IsZero() {
		return nil, storage.ErrInvalidQuery
	}

	var record *core.VectorRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVectorKey(handle.Model, handle.Key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			record, err = storage.UnmarshalVectorRecord(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return record, nil
}

// FindSimilar finds stored vectors of one model similar to the given vector.
func (r *VectorRepository) FindSimilar(ctx context.Context, model string, vector []float32, minSimilarity float32, limit int) ([]*storage.VectorMatch, error) {
	if model == "" || len(vector) == 0 || limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	var results []*storage.VectorMatch
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeVectorModelPrefix(model)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.VectorRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalVectorRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record == nil || len(record.Values) == 0 {
				continue
			}

			// Cosine similarity (dot product for normalized vectors)
			similarity := dotProduct(vector, record.Values)
			if similarity >= minSimilarity {
				results = append(results, &storage.VectorMatch{
					Record: record,
					Score:  similarity,
				})
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	// Sort by similarity descending
	slices.SortFunc(results, func(a, b *storage.VectorMatch) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// dotProduct calculates the dot product of two vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
