package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// Mongo bundles the collection-backed store implementations over one
// database handle.
type Mongo struct {
	Users    *MongoUserStore
	Products *MongoProductStore
	Brands   *MongoBrandStore
	Orders   *MongoOrderStore
	Contacts *MongoContactStore
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		Users:    &MongoUserStore{coll: db.Collection("users")},
		Products: &MongoProductStore{coll: db.Collection("products")},
		Brands:   &MongoBrandStore{coll: db.Collection("brands")},
		Orders:   &MongoOrderStore{coll: db.Collection("orders")},
		Contacts: &MongoContactStore{coll: db.Collection("contacts")},
	}
}

// objectID parses a hex string; an unparsable id behaves like a miss rather
// than an input error, matching lookup-by-id semantics.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func translate(err error) error {
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}
