package clouds

import (
	"context"

	"github.com/Ivantg01/ScraperHSPrices/storage"
)

// StatsPageSize is how many price records a snapshot pass reads per
// store round trip
const StatsPageSize = 2000

// Snapshot pages through a price collection and upserts one stat row
// per record into the stat collection. build derives the keyed stat
// document from a decoded price record. It returns the number of price
// records read and the upsert totals.
func Snapshot[R any](
	ctx context.Context,
	store storage.Store,
	priceCollection, statCollection string,
	build func(R) storage.KeyedDoc,
) (int64, storage.UpsertResult, error) {
	var records int64
	var result storage.UpsertResult

	for skip := int64(0); ; skip += StatsPageSize {
		var page []R
		if err := store.FindPage(ctx, priceCollection, skip, StatsPageSize, &page); err != nil {
			return records, result, err
		}
		if len(page) == 0 {
			return records, result, nil
		}

		docs := make([]storage.KeyedDoc, 0, len(page))
		for _, record := range page {
			docs = append(docs, build(record))
		}

		res, err := store.BulkUpsert(ctx, statCollection, docs)
		if err != nil {
			return records, result, err
		}
		records += int64(len(page))
		result.Add(res)

		if len(page) < StatsPageSize {
			return records, result, nil
		}
	}
}
