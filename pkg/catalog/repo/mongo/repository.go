package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cineverse/catalog/pkg/catalog"
)

// Repository implements catalog.Repository on MongoDB. Each record lives
// in one document of the content collection with its download groups
// nested inside, so replaces and deletes are atomic per record.
type Repository struct {
	collection *mongo.Collection
}

// CollectionName is the collection holding catalog records.
const CollectionName = "content"

// New creates a new MongoDB repository over the given database.
func New(db *mongo.Database) catalog.Repository {
	return &Repository{collection: db.Collection(CollectionName)}
}

func (r *Repository) CreateContent(ctx context.Context, content *catalog.Content) error {
	if content.ID == "" {
		content.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.collection.InsertOne(ctx, content); err != nil {
		return &catalog.StoreError{Op: "create content", Err: err}
	}

	return nil
}

func (r *Repository) GetContent(ctx context.Context, id string) (*catalog.Content, error) {
	var content catalog.Content
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&content)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, catalog.ErrContentNotFound
		}
		return nil, &catalog.StoreError{Op: "get content", Err: err}
	}

	return &content, nil
}

func (r *Repository) ListContent(ctx context.Context) ([]*catalog.Content, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &catalog.StoreError{Op: "list content", Err: err}
	}
	defer cursor.Close(ctx)

	var contents []*catalog.Content
	if err := cursor.All(ctx, &contents); err != nil {
		return nil, &catalog.StoreError{Op: "list content", Err: err}
	}

	return contents, nil
}

func (r *Repository) UpdateContent(ctx context.Context, content *catalog.Content) error {
	// Whole-document replace, nested groups included.
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": content.ID}, content)
	if err != nil {
		return &catalog.StoreError{Op: "update content", Err: err}
	}
	if res.MatchedCount == 0 {
		return catalog.ErrContentNotFound
	}

	return nil
}

func (r *Repository) DeleteContent(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &catalog.StoreError{Op: "delete content", Err: err}
	}
	if res.DeletedCount == 0 {
		return catalog.ErrContentNotFound
	}

	return nil
}
