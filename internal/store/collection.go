// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/pet-haven/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the uniform create/read/update/delete/list facade over one
// named collection whose documents decode into T.
type Collection[T any] struct {
	coll *mongo.Collection
}

// NewCollection wraps a driver collection.
func NewCollection[T any](coll *mongo.Collection) *Collection[T] {
	return &Collection[T]{coll: coll}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.coll.Name()
}

// Create inserts doc and returns the store-generated identifier.
// Unique index violations are reported as [ErrDuplicateKey].
func (c *Collection[T]) Create(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, fmt.Errorf("%w: %w", ErrDuplicateKey, err)
		}
		return primitive.NilObjectID, fmt.Errorf("%w into %s: %w", ErrInsertingDocument, c.Name(), err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%w into %s: unexpected id type %T", ErrInsertingDocument, c.Name(), res.InsertedID)
	}

	return id, nil
}

// FindOne returns the first document matching filter, or [ErrNotFound].
func (c *Collection[T]) FindOne(ctx context.Context, filter Filter) (T, error) {
	var doc T
	if err := c.coll.FindOne(ctx, filter.Doc()).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return doc, ErrNotFound
		}
		return doc, fmt.Errorf("%w in %s: %w", ErrFindingDocuments, c.Name(), err)
	}

	return doc, nil
}

// FindMany returns every document matching filter, ordered by sorts when
// given. The result is never nil.
func (c *Collection[T]) FindMany(ctx context.Context, filter Filter, sorts ...Sort) ([]T, error) {
	opts := options.Find()
	if len(sorts) > 0 {
		opts.SetSort(sortDoc(sorts))
	}

	cursor, err := c.coll.Find(ctx, filter.Doc(), opts)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %w", ErrFindingDocuments, c.Name(), err)
	}

	docs := make([]T, 0)
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w from %s: %w", ErrDecodingDocuments, c.Name(), err)
	}

	return docs, nil
}

// UpdateOne applies update with $set to the first document matching filter.
// Nil pointer fields of update must be tagged omitempty so that they are
// left untouched.
func (c *Collection[T]) UpdateOne(ctx context.Context, filter Filter, update any) (models.UpdateResult, error) {
	return c.update(ctx, filter, bson.D{{Key: "$set", Value: update}})
}

// Increment adds delta to a numeric field of the first document matching
// filter.
func (c *Collection[T]) Increment(ctx context.Context, filter Filter, field string, delta float64) (models.UpdateResult, error) {
	return c.update(ctx, filter, bson.D{{Key: "$inc", Value: bson.D{{Key: field, Value: delta}}}})
}

func (c *Collection[T]) update(ctx context.Context, filter Filter, update bson.D) (models.UpdateResult, error) {
	res, err := c.coll.UpdateOne(ctx, filter.Doc(), update)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w in %s: %w", ErrUpdatingDocument, c.Name(), err)
	}

	return models.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// DeleteOne removes the first document matching filter. Deleting nothing is
// not an error; the result then carries a zero count.
func (c *Collection[T]) DeleteOne(ctx context.Context, filter Filter) (models.DeleteResult, error) {
	res, err := c.coll.DeleteOne(ctx, filter.Doc())
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("%w in %s: %w", ErrDeletingDocument, c.Name(), err)
	}

	return models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
