// Package store provides the hierarchical record store backing every
// collection: a thin contract over Firebase Realtime Database semantics with
// an in-memory implementation for tests.
package store

import "context"

// RecordStore is the persistence contract. Push-key generation is the only
// operation with a server-side atomicity guarantee; read-modify-write
// sequences are not atomic.
type RecordStore interface {
	// Get returns the record at path, or nil when absent.
	Get(ctx context.Context, path string) (map[string]any, error)

	// Push appends a record under collection with a generated unique key.
	Push(ctx context.Context, collection string, record map[string]any) (string, error)

	// Update merges the given fields into the record at path. Fields not
	// present in the partial are left untouched.
	Update(ctx context.Context, path string, partial map[string]any) error

	// Remove deletes the record at path.
	Remove(ctx context.Context, path string) error

	// GetCollection returns every record in a collection keyed by record key.
	// An absent collection yields an empty map.
	GetCollection(ctx context.Context, collection string) (map[string]map[string]any, error)

	// QueryChildEqual returns the records in collection whose field equals value.
	QueryChildEqual(ctx context.Context, collection, field string, value any) (map[string]map[string]any, error)
}
