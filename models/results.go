// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UpdateResult reports the outcome of a single-document update.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports the outcome of a single-document delete. Deleting an
// identifier that does not exist yields DeletedCount == 0.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
