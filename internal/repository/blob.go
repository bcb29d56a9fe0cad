package repository

import "context"

// BlobStore is a durable key/value store holding one opaque blob per key
type BlobStore interface {
	// Get returns found=false when the key has never been written
	Get(ctx context.Context, key string) (blob []byte, found bool, err error)
	Put(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}
