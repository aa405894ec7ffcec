// Package kv is the persistence boundary of the shop: one opaque JSON
// document per storage key.
package kv

import (
	"context"
)

// Repository stores opaque values by key. Get returns (nil, nil) for an
// absent key and Delete of an absent key succeeds.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
