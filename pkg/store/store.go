package store

import (
	"context"
	"fmt"
	"time"

	"github.com/gostream-official/songs/pkg/arrays"
	"github.com/gostream-official/songs/pkg/store/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The maximum duration of a single store round-trip.
const operationTimeout = 5 * time.Second

// The maximum duration of the initial connection attempt.
const connectTimeout = 15 * time.Second

// Description:
//
//	A connected mongo client instance.
//	Shared by all stores of the process.
type MongoInstance struct {

	// The underlying mongo client.
	client *mongo.Client
}

// Description:
//
//	The store interface consumed by the service layer.
//	Implemented by MongoStore and by test doubles.
type Store[T any] interface {

	// Finds all items matching the given filter.
	FindItems(filter *query.Filter) ([]T, error)

	// Creates a new item and returns its store-assigned id.
	CreateItem(item *T) (primitive.ObjectID, error)

	// Runs an aggregation pipeline and decodes the result rows into
	// the results slice pointer.
	AggregateItems(pipeline *query.Pipeline, results interface{}) error
}

// Description:
//
//	A typed store on top of a single mongo collection.
type MongoStore[T any] struct {

	// The underlying mongo collection.
	collection *mongo.Collection
}

// Description:
//
//	Connects to a mongo instance and verifies the connection.
//
// Parameters:
//
//	connectionURI The mongo connection URI.
//
// Returns:
//
//	The connected instance, or an error if the instance is not
//	reachable.
func NewMongoInstance(connectionURI string) (*MongoInstance, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionURI))
	if err != nil {
		return nil, fmt.Errorf("store: failed to connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("store: failed to ping instance: %w", err)
	}

	return &MongoInstance{
		client: client,
	}, nil
}

// Description:
//
//	Disconnects the underlying mongo client.
//
// Returns:
//
//	An error if the disconnect fails.
func (instance *MongoInstance) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	return instance.client.Disconnect(ctx)
}

// Description:
//
//	Creates a typed store for a single collection.
//
// Parameters:
//
//	instance 	The connected mongo instance.
//	database 	The name of the database.
//	collection 	The name of the collection.
//
// Returns:
//
//	The created store.
func NewMongoStore[T any](instance *MongoInstance, database string, collection string) *MongoStore[T] {
	return &MongoStore[T]{
		collection: instance.client.Database(database).Collection(collection),
	}
}

// Description:
//
//	Finds all items matching the given filter.
//	Applies the sort order, limit and projection of the filter.
//
// Parameters:
//
//	filter The filter to match against.
//
// Returns:
//
//	The matching items. An empty slice if nothing matches.
//	An error if the database request fails.
func (store *MongoStore[T]) FindItems(filter *query.Filter) ([]T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	findOptions := options.Find()

	if filter.Limit > 0 {
		findOptions.SetLimit(int64(filter.Limit))
	}

	if filter.Sort != nil {
		order := -1
		if filter.Sort.Ascending {
			order = 1
		}

		findOptions.SetSort(bson.D{{Key: filter.Sort.Key, Value: order}})
	}

	if len(filter.Projection) > 0 {
		projection := arrays.Map(filter.Projection, func(key string) bson.E {
			return bson.E{Key: key, Value: 1}
		})

		findOptions.SetProjection(bson.D(projection))
	}

	cursor, err := store.collection.Find(ctx, filter.Translate(), findOptions)
	if err != nil {
		return nil, fmt.Errorf("store: failed to find items: %w", err)
	}

	defer cursor.Close(ctx)

	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("store: failed to decode items: %w", err)
	}

	return items, nil
}

// Description:
//
//	Creates a new item in the collection.
//
// Parameters:
//
//	item The item to create.
//
// Returns:
//
//	The store-assigned id of the created item.
//	An error if the database request fails.
func (store *MongoStore[T]) CreateItem(item *T) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	result, err := store.collection.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("store: failed to create item: %w", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("store: unexpected inserted id type: %T", result.InsertedID)
	}

	return insertedID, nil
}

// Description:
//
//	Runs an aggregation pipeline over the collection.
//
// Parameters:
//
//	pipeline 	The pipeline to evaluate.
//	results 	A pointer to a slice receiving the result rows.
//
// Returns:
//
//	An error if the database request fails.
func (store *MongoStore[T]) AggregateItems(pipeline *query.Pipeline, results interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	cursor, err := store.collection.Aggregate(ctx, pipeline.Translate())
	if err != nil {
		return fmt.Errorf("store: failed to aggregate items: %w", err)
	}

	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("store: failed to decode aggregation results: %w", err)
	}

	return nil
}

// Description:
//
//	Ensures a text index over the given document fields.
//	Required for full-text search queries against the collection.
//
// Parameters:
//
//	keys The document fields to index.
//
// Returns:
//
//	An error if the index creation fails.
func (store *MongoStore[T]) EnsureTextIndex(keys ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	indexKeys := arrays.Map(keys, func(key string) bson.E {
		return bson.E{Key: key, Value: "text"}
	})

	model := mongo.IndexModel{
		Keys: bson.D(indexKeys),
	}

	if _, err := store.collection.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("store: failed to create text index: %w", err)
	}

	return nil
}
