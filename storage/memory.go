package storage

import (
	"context"
	"reflect"
	"strconv"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Ivantg01/ScraperHSPrices/internal/errors"
)

// Memory is an in-memory Store used by tests. Documents keep their
// insertion order, with upserts replacing in place, so paging is
// stable across reads like a database cursor over an index.
type Memory struct {
	mu          sync.Mutex
	collections map[string]*memCollection
}

type memCollection struct {
	order []string
	docs  map[string][]byte
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{collections: make(map[string]*memCollection)}
}

func (m *Memory) collection(name string) *memCollection {
	c, ok := m.collections[name]
	if !ok {
		c = &memCollection{docs: make(map[string][]byte)}
		m.collections[name] = c
	}
	return c
}

// BulkUpsert replaces-or-inserts each document by its key filter
func (m *Memory) BulkUpsert(ctx context.Context, collection string, docs []KeyedDoc) (UpsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.collection(collection)
	var result UpsertResult
	for _, d := range docs {
		raw, err := bson.Marshal(d.Doc)
		if err != nil {
			return result, errors.Persistence("encoding document for "+collection, err)
		}
		key := keyString(d.Key)
		if _, exists := c.docs[key]; exists {
			result.Updated++
		} else {
			c.order = append(c.order, key)
			result.Inserted++
		}
		c.docs[key] = raw
	}
	return result, nil
}

// Count returns the number of documents in a collection
func (m *Memory) Count(ctx context.Context, collection string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.collection(collection).order)), nil
}

// FindPage decodes a skip/limit window into out
func (m *Memory) FindPage(ctx context.Context, collection string, skip, limit int64, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.collection(collection)
	end := skip + limit
	if skip > int64(len(c.order)) {
		skip = int64(len(c.order))
	}
	if end > int64(len(c.order)) {
		end = int64(len(c.order))
	}
	return decodeInto(c, c.order[skip:end], out)
}

// FindAll decodes the whole collection into out
func (m *Memory) FindAll(ctx context.Context, collection string, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.collection(collection)
	return decodeInto(c, c.order, out)
}

// ReplaceAll drops the collection and inserts docs
func (m *Memory) ReplaceAll(ctx context.Context, collection string, docs []interface{}) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := &memCollection{docs: make(map[string][]byte)}
	m.collections[collection] = c
	for i, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return int64(i), errors.Persistence("encoding document for "+collection, err)
		}
		key := strconv.Itoa(i) // synthetic key, seeds have no natural one
		c.order = append(c.order, key)
		c.docs[key] = raw
	}
	return int64(len(docs)), nil
}

// Close is a no-op
func (m *Memory) Close(ctx context.Context) error {
	return nil
}

// decodeInto unmarshals the selected documents into out, which must be
// a pointer to a slice
func decodeInto(c *memCollection, keys []string, out interface{}) error {
	outValue := reflect.ValueOf(out)
	if outValue.Kind() != reflect.Ptr || outValue.Elem().Kind() != reflect.Slice {
		return errors.New(errors.TypeInternal, "out must be a pointer to a slice")
	}

	sliceValue := outValue.Elem()
	elemType := sliceValue.Type().Elem()
	result := reflect.MakeSlice(sliceValue.Type(), 0, len(keys))

	for _, key := range keys {
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(c.docs[key], elem.Interface()); err != nil {
			return errors.Persistence("decoding document", err)
		}
		result = reflect.Append(result, elem.Elem())
	}

	sliceValue.Set(result)
	return nil
}
