package clouds

import (
	"context"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Ivantg01/ScraperHSPrices/storage"
)

type snapRecord struct {
	ID    string  `bson:"id"`
	Price float64 `bson:"price"`
}

type snapStat struct {
	DateCode string  `bson:"dateCode"`
	ID       string  `bson:"id"`
	Price    float64 `bson:"price"`
}

func seedSnapRecords(t *testing.T, store storage.Store, n int) {
	t.Helper()
	docs := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, snapRecord{ID: fmt.Sprintf("sku-%04d", i), Price: float64(i)})
	}
	if _, err := store.ReplaceAll(context.Background(), "prices", docs); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}
}

func TestSnapshotPagesThroughCollection(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()

	// enough records to need two full pages plus a partial one
	const n = StatsPageSize*2 + 3
	seedSnapRecords(t, store, n)

	build := func(r snapRecord) storage.KeyedDoc {
		return storage.KeyedDoc{
			Key: bson.D{{Key: "dateCode", Value: "20260801"}, {Key: "id", Value: r.ID}},
			Doc: snapStat{DateCode: "20260801", ID: r.ID, Price: r.Price},
		}
	}

	records, result, err := Snapshot(ctx, store, "prices", "stats", build)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if records != n {
		t.Errorf("records = %d, want %d", records, n)
	}
	if result.Inserted != n {
		t.Errorf("inserted = %d, want %d", result.Inserted, n)
	}

	count, err := store.Count(ctx, "stats")
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != n {
		t.Errorf("stat count = %d, want %d", count, n)
	}

	// a second pass for the same date replaces, not duplicates
	records, result, err = Snapshot(ctx, store, "prices", "stats", build)
	if err != nil {
		t.Fatalf("Snapshot() rerun error = %v", err)
	}
	if records != n {
		t.Errorf("rerun records = %d, want %d", records, n)
	}
	if result.Inserted != 0 || result.Updated != n {
		t.Errorf("rerun result = %+v, want 0 inserted / %d updated", result, n)
	}
	count, err = store.Count(ctx, "stats")
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != n {
		t.Errorf("stat count after rerun = %d, want %d", count, n)
	}
}

func TestSnapshotEmptyCollection(t *testing.T) {
	store := storage.NewMemory()

	records, result, err := Snapshot(context.Background(), store, "prices", "stats",
		func(r snapRecord) storage.KeyedDoc {
			return storage.KeyedDoc{Key: bson.D{{Key: "id", Value: r.ID}}, Doc: r}
		})
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if records != 0 || result.Inserted != 0 || result.Updated != 0 {
		t.Errorf("got records=%d result=%+v, want all zero", records, result)
	}
}
