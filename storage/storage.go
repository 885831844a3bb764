// Package storage is the document-store boundary for price records,
// snapshot stats and the allowlist collections.
package storage

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// KeyedDoc pairs a document with its natural-key filter. Upserting the
// same key twice leaves a single document behind.
type KeyedDoc struct {
	Key bson.D
	Doc interface{}
}

// UpsertResult reports how a bulk upsert split between fresh inserts
// and replacements of existing documents.
type UpsertResult struct {
	Inserted int64
	Updated  int64
}

// Add accumulates another batch result
func (r *UpsertResult) Add(other UpsertResult) {
	r.Inserted += other.Inserted
	r.Updated += other.Updated
}

// Store is the persistence contract the provider pipelines write
// through. Implementations must make BulkUpsert idempotent per key.
type Store interface {
	// BulkUpsert replaces-or-inserts each document by its key filter
	BulkUpsert(ctx context.Context, collection string, docs []KeyedDoc) (UpsertResult, error)

	// Count returns the number of documents in a collection
	Count(ctx context.Context, collection string) (int64, error)

	// FindPage decodes a skip/limit window into out, a pointer to a
	// slice, in stable insertion order
	FindPage(ctx context.Context, collection string, skip, limit int64, out interface{}) error

	// FindAll decodes the whole collection into out
	FindAll(ctx context.Context, collection string, out interface{}) error

	// ReplaceAll drops the collection and inserts docs, returning the
	// number inserted
	ReplaceAll(ctx context.Context, collection string, docs []interface{}) (int64, error)

	// Close releases the underlying connections
	Close(ctx context.Context) error
}

// keyString renders a key filter canonically so in-memory stores can
// match documents the way a database index would
func keyString(key bson.D) string {
	parts := make([]string, 0, len(key))
	for _, e := range key {
		parts = append(parts, fmt.Sprintf("%s=%v", e.Key, e.Value))
	}
	return strings.Join(parts, "|")
}
