package store

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the slice of the MongoDB collection API this service
// actually uses. Repos depend on this interface so the suite can run
// against an in-memory stand-in (storetest) instead of a live cluster.
type Collection interface {
	Find(ctx context.Context, filter any, opts *options.FindOptions, out any) error
	FindOne(ctx context.Context, filter any, out any) error
	InsertOne(ctx context.Context, doc any) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter, update any, opts *options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter any) (*mongo.DeleteResult, error)
	Aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error
	CountDocuments(ctx context.Context, filter any) (int64, error)
}

// Gateway hands out per-collection handles. *Store is the MongoDB
// implementation; tests substitute their own.
type Gateway interface {
	Equipments() Collection
	Users() Collection
	Reviews() Collection
	BlogPosts() Collection
}

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and verifies the connection with a ping before
// any handler can run.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	log.Printf("[store] connected to MongoDB, db=%s", dbName)
	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Equipments() Collection { return s.collection("equipments") }
func (s *Store) Users() Collection      { return s.collection("users") }
func (s *Store) Reviews() Collection    { return s.collection("reviews") }
func (s *Store) BlogPosts() Collection  { return s.collection("blogPosts") }

func (s *Store) collection(name string) Collection {
	return mongoCollection{c: s.db.Collection(name)}
}

// mongoCollection adapts *mongo.Collection to the Collection contract,
// decoding results straight into caller-supplied values.
type mongoCollection struct {
	c *mongo.Collection
}

func (m mongoCollection) Find(ctx context.Context, filter any, opts *options.FindOptions, out any) error {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := m.c.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (m mongoCollection) FindOne(ctx context.Context, filter any, out any) error {
	return m.c.FindOne(ctx, filter).Decode(out)
}

func (m mongoCollection) InsertOne(ctx context.Context, doc any) (*mongo.InsertOneResult, error) {
	return m.c.InsertOne(ctx, doc)
}

func (m mongoCollection) UpdateOne(ctx context.Context, filter, update any, opts *options.UpdateOptions) (*mongo.UpdateResult, error) {
	return m.c.UpdateOne(ctx, filter, update, opts)
}

func (m mongoCollection) DeleteOne(ctx context.Context, filter any) (*mongo.DeleteResult, error) {
	return m.c.DeleteOne(ctx, filter)
}

func (m mongoCollection) Aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cur, err := m.c.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (m mongoCollection) CountDocuments(ctx context.Context, filter any) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return m.c.CountDocuments(ctx, filter)
}
