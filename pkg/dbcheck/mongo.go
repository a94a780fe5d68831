package dbcheck

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	ConnectionURL   string        `env:"MONGODB_URL,required"`
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}

// ConnectMongo creates a mongo client, retrying until the server answers a
// ping or the attempts run out.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	for range cfg.RetryAttempts {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout).
				SetMaxPoolSize(cfg.MaxPoolSize).
				SetMinPoolSize(cfg.MinPoolSize).
				SetMaxConnIdleTime(cfg.MaxConnIdleTime),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client, nil
			}
			_ = client.Disconnect(ctx)
		}

		time.Sleep(cfg.RetryInterval)
	}

	return nil, ErrFailedToConnectToMongo
}

// MongoLookup answers existence queries against a mongo collection by
// matching the validated value on a single field.
type MongoLookup struct {
	coll  *mongo.Collection
	field string
}

// NewMongoLookup creates a lookup bound to a collection and field name.
func NewMongoLookup(coll *mongo.Collection, field string) (*MongoLookup, error) {
	if coll == nil {
		return nil, ErrNilCollection
	}
	return &MongoLookup{coll: coll, field: field}, nil
}

// Lookup reports whether a document with field equal to value exists.
func (l *MongoLookup) Lookup(ctx context.Context, value any) (bool, error) {
	count, err := l.coll.CountDocuments(ctx, bson.M{l.field: value}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return count > 0, nil
}
