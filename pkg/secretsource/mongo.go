package secretsource

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoFinder is satisfied by *mongo.Collection.
type MongoFinder interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
}

type mongoSecret struct {
	Name  string `bson:"name"`
	Value string `bson:"value"`
}

// Mongo reads the {name, value} document matching name on every call.
type Mongo struct {
	coll MongoFinder
	name string
}

// NewMongo creates a source reading the document called name from coll.
func NewMongo(coll MongoFinder, name string) (*Mongo, error) {
	if coll == nil || name == "" {
		return nil, ErrInvalidConfig
	}
	return &Mongo{coll: coll, name: name}, nil
}

func (m *Mongo) Provide(ctx context.Context) ([]byte, error) {
	var doc mongoSecret
	if err := m.coll.FindOne(ctx, bson.D{{Key: "name", Value: m.name}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSecretNotFound
		}
		return nil, errors.Join(ErrUnavailable, err)
	}
	if doc.Value == "" {
		return nil, ErrEmptySecret
	}
	return []byte(doc.Value), nil
}
