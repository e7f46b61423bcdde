package domain

import (
	"context"
	"encoding/json"
	"fmt"
)

// RecordStore is a persistent mapping from a string key to an opaque value.
type RecordStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Record is a typed view of one key in a RecordStore, encoded as JSON.
type Record[T any] struct {
	Store RecordStore
	Key   string
}

func NewRecord[T any](store RecordStore, key string) Record[T] {
	return Record[T]{Store: store, Key: key}
}

// Load returns the stored value, or def when the key has never been saved.
// A value that cannot be decoded also yields def, together with a
// *StorageCorruptError the caller may log and otherwise ignore.
func (r Record[T]) Load(ctx context.Context, def T) (T, error) {
	raw, ok, err := r.Store.Get(ctx, r.Key)
	if err != nil {
		return def, fmt.Errorf("load %s: %w", r.Key, err)
	}
	if !ok {
		return def, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def, &StorageCorruptError{Key: r.Key, Err: err}
	}
	return v, nil
}

func (r Record[T]) Save(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.Key, err)
	}
	if err := r.Store.Put(ctx, r.Key, raw); err != nil {
		return fmt.Errorf("save %s: %w", r.Key, err)
	}
	return nil
}
