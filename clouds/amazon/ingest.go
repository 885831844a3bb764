package amazon

import (
	"bufio"
	"context"
	"encoding/csv"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/Ivantg01/ScraperHSPrices/internal/errors"
	"github.com/Ivantg01/ScraperHSPrices/storage"
)

// IngestBatchSize is how many CSV lines are parsed and upserted per
// round trip. Offer files run to millions of lines, so the file is
// never held in memory whole.
const IngestBatchSize = 20000

// maxLineSize bounds a single CSV line
const maxLineSize = 1024 * 1024

type ingestTotals struct {
	lines   int64
	fetched int64
	kept    int64
	dropped int64
	result  storage.UpsertResult
}

func (t *ingestTotals) add(other ingestTotals) {
	t.lines += other.lines
	t.fetched += other.fetched
	t.kept += other.kept
	t.dropped += other.dropped
	t.result.Add(other.result)
}

// processFile streams a downloaded offer CSV through parse, filter,
// encode and upsert in batches. The offer files open with a metadata
// preamble; everything before the "SKU" header line is skipped, and a
// file without that header is malformed.
func (p *Provider) processFile(ctx context.Context, filename string, batchSize int) (ingestTotals, error) {
	var totals ingestTotals

	file, err := os.Open(filename)
	if err != nil {
		return totals, errors.Parsing("opening offer file "+filename, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var header string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, `"SKU"`) {
			header = line
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return totals, errors.Parsing("reading offer file "+filename, err)
	}
	if header == "" {
		return totals, errors.Parsing("no SKU header line in "+filename, nil)
	}

	batch := make([]string, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		sub, err := p.ingestBatch(ctx, header, batch)
		if err != nil {
			return err
		}
		totals.add(sub)
		batch = batch[:0]
		return nil
	}

	for scanner.Scan() {
		batch = append(batch, scanner.Text())
		totals.lines++
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return totals, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return totals, errors.Parsing("reading offer file "+filename, err)
	}
	if err := flush(); err != nil {
		return totals, err
	}

	p.log.Debug("offer file processed",
		zap.String("file", filename),
		zap.Int64("lines", totals.lines),
		zap.Int64("kept", totals.kept),
		zap.Int64("dropped", totals.dropped))
	return totals, nil
}

// ingestBatch parses one batch of lines, keeps and encodes the
// interesting records and upserts them by rate code. A batch that does
// not parse is dropped whole and counted, the rest of the file still
// goes through.
func (p *Provider) ingestBatch(ctx context.Context, header string, lines []string) (ingestTotals, error) {
	var totals ingestTotals

	records, err := parseRecords(header, lines)
	if err != nil {
		p.log.Error("offer batch dropped", zap.Int("lines", len(lines)), zap.Error(err))
		totals.dropped = int64(len(lines))
		return totals, nil
	}
	totals.fetched = int64(len(records))

	docs := make([]storage.KeyedDoc, 0, len(records))
	for _, r := range records {
		if !keep(r) {
			continue
		}
		r.SearchCode = searchCode(r)
		docs = append(docs, storage.KeyedDoc{
			Key: bson.D{{Key: "rateCode", Value: r.RateCode}},
			Doc: r,
		})
	}
	totals.kept = int64(len(docs))

	res, err := p.store.BulkUpsert(ctx, storage.AmazonPrices, docs)
	if err != nil {
		return totals, err
	}
	totals.result = res
	return totals, nil
}

// parseRecords decodes CSV lines under the given header row into
// canonical records
func parseRecords(header string, lines []string) ([]PriceRecord, error) {
	reader := csv.NewReader(strings.NewReader(header + "\n" + strings.Join(lines, "\n")))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[name] = i
	}
	field := func(row []string, names ...string) string {
		for _, name := range names {
			if i, ok := index[name]; ok && row[i] != "" {
				return row[i]
			}
		}
		return ""
	}

	records := make([]PriceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, PriceRecord{
			RateCode:            field(row, "RateCode"),
			ServiceCode:         field(row, "serviceCode"),
			RegionCode:          field(row, "Region Code", "From Region Code"),
			TermType:            field(row, "TermType"),
			LeaseContractLength: field(row, "LeaseContractLength"),
			PurchaseOption:      field(row, "PurchaseOption"),
			OfferingClass:       field(row, "OfferingClass"),
			PriceDescription:    field(row, "PriceDescription"),
			StartingRange:       field(row, "StartingRange"),
			EndingRange:         field(row, "EndingRange"),
			Unit:                field(row, "Unit"),
			Price:               parsePrice(field(row, "PricePerUnit")),
			Currency:            field(row, "Currency"),
			ProductFamily:       field(row, "Product Family"),
			UsageType:           field(row, "usageType"),
			StorageMedia:        field(row, "Storage Media"),
			VolumeType:          field(row, "Volume Type"),
			VolumeAPIName:       field(row, "Volume API Name"),
			FromLocationType:    field(row, "From Location Type"),
			Operation:           field(row, "operation"),
			InstanceType:        field(row, "Instance Type", "InstanceType"),
			Tenancy:             field(row, "Tenancy"),
			DatabaseEngine:      field(row, "Database Engine"),
			DatabaseEdition:     field(row, "Database Edition"),
			DeploymentOption:    field(row, "Deployment Option"),
			LicenseModel:        field(row, "License Model"),
		})
	}
	return records, nil
}

// parsePrice parses a per-unit price, 0 when absent or malformed
func parsePrice(s string) float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}
