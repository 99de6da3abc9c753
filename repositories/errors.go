package repositories

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidID    = errors.New("invalid object id")
	ErrDuplicateKey = errors.New("duplicate key")
)

// ParseID decodes a 24 character hex id. Every backend keys its records by
// these ids, so malformed input is rejected before any query runs.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}
