package repository

import "context"

// BlobStore is durable key-value storage for serialized state blobs
// (learning history, custom format patterns). Absence of a key is reported
// as common.ErrNotFound; callers treat it as empty state.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
