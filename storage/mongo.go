package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Ivantg01/ScraperHSPrices/internal/errors"
	"github.com/Ivantg01/ScraperHSPrices/internal/logging"
)

// Mongo is the MongoDB-backed Store
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.Logger
}

// Connect opens a MongoDB connection and pings it
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Persistence("connecting to mongodb", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Persistence("pinging mongodb", err)
	}

	log := logging.Logger.Named("mongo")
	log.Info("connected", zap.String("database", database))
	return &Mongo{
		client: client,
		db:     client.Database(database),
		log:    log,
	}, nil
}

// BulkUpsert replaces-or-inserts each document by its key filter
func (m *Mongo) BulkUpsert(ctx context.Context, collection string, docs []KeyedDoc) (UpsertResult, error) {
	if len(docs) == 0 {
		return UpsertResult{}, nil
	}

	models := make([]mongo.WriteModel, 0, len(docs))
	for _, d := range docs {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(d.Key).
			SetReplacement(d.Doc).
			SetUpsert(true))
	}

	res, err := m.db.Collection(collection).BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return UpsertResult{}, errors.Persistence("bulk upsert into "+collection, err)
	}
	return UpsertResult{
		Inserted: res.UpsertedCount,
		Updated:  res.ModifiedCount,
	}, nil
}

// Count returns the number of documents in a collection
func (m *Mongo) Count(ctx context.Context, collection string) (int64, error) {
	n, err := m.db.Collection(collection).CountDocuments(ctx, struct{}{})
	if err != nil {
		return 0, errors.Persistence("counting "+collection, err)
	}
	return n, nil
}

// FindPage decodes a skip/limit window into out
func (m *Mongo) FindPage(ctx context.Context, collection string, skip, limit int64, out interface{}) error {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := m.db.Collection(collection).Find(ctx, struct{}{}, opts)
	if err != nil {
		return errors.Persistence("finding page in "+collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return errors.Persistence("decoding page from "+collection, err)
	}
	return nil
}

// FindAll decodes the whole collection into out
func (m *Mongo) FindAll(ctx context.Context, collection string, out interface{}) error {
	cursor, err := m.db.Collection(collection).Find(ctx, struct{}{})
	if err != nil {
		return errors.Persistence("finding all in "+collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return errors.Persistence("decoding "+collection, err)
	}
	return nil
}

// ReplaceAll drops the collection and inserts docs
func (m *Mongo) ReplaceAll(ctx context.Context, collection string, docs []interface{}) (int64, error) {
	if err := m.db.Collection(collection).Drop(ctx); err != nil {
		return 0, errors.Persistence("dropping "+collection, err)
	}
	if len(docs) == 0 {
		return 0, nil
	}
	res, err := m.db.Collection(collection).InsertMany(ctx, docs)
	if err != nil {
		return 0, errors.Persistence("inserting into "+collection, err)
	}
	return int64(len(res.InsertedIDs)), nil
}

// Close disconnects the client
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
