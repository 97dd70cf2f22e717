// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document field names shared by several collections.
const (
	FieldID        = "_id"
	FieldCreatedAt = "createdAt"
)

// ParseID converts a hex path parameter into an ObjectID. Malformed input
// yields [ErrInvalidIdentifier] so that callers never hit the driver with it.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidIdentifier, hex)
	}

	return id, nil
}

// Filter is an ordered conjunction of field conditions. Builder methods skip
// empty values so optional query parameters compose without branching.
type Filter struct {
	conds bson.D
}

// NewFilter returns an empty filter matching every document.
func NewFilter() Filter {
	return Filter{}
}

// ByID returns a filter matching the document with the given identifier.
func ByID(id primitive.ObjectID) Filter {
	return NewFilter().Eq(FieldID, id)
}

// Eq adds an exact-match condition. Empty strings and nil values are ignored.
func (f Filter) Eq(field string, value any) Filter {
	switch v := value.(type) {
	case nil:
		return f
	case string:
		if v == "" {
			return f
		}
	}

	return f.with(bson.E{Key: field, Value: value})
}

// ContainsFold adds a case-insensitive substring condition. The input is
// matched literally; regular expression metacharacters are escaped.
func (f Filter) ContainsFold(field, substr string) Filter {
	if substr == "" {
		return f
	}

	return f.with(bson.E{Key: field, Value: primitive.Regex{
		Pattern: regexp.QuoteMeta(substr),
		Options: "i",
	}})
}

// Doc renders the filter as a driver document. An empty filter renders as
// an empty document, never nil.
func (f Filter) Doc() bson.D {
	if len(f.conds) == 0 {
		return bson.D{}
	}

	return f.conds
}

func (f Filter) with(e bson.E) Filter {
	conds := make(bson.D, 0, len(f.conds)+1)
	conds = append(conds, f.conds...)
	return Filter{conds: append(conds, e)}
}

// Sort describes the ordering of a list query.
type Sort struct {
	Field string
	Desc  bool
}

// NewestFirst orders documents by creation time, most recent first.
var NewestFirst = Sort{Field: FieldCreatedAt, Desc: true}

func sortDoc(sorts []Sort) bson.D {
	doc := make(bson.D, 0, len(sorts))
	for _, s := range sorts {
		direction := 1
		if s.Desc {
			direction = -1
		}
		doc = append(doc, bson.E{Key: s.Field, Value: direction})
	}

	return doc
}
