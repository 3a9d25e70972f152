// Package document models the marketplace's backing store as collections of
// schemaless documents and maps domain records onto them.
package document

import (
	"context"

	"txtchange/internal/errors"
)

// ErrNotFound is returned by Get, and by Update mutations, when the document does not exist.
var ErrNotFound = errors.New("document not found")

// Snapshot is one document read from a collection.
type Snapshot struct {
	ID   string
	Data map[string]any
}

// FilterOp is a query comparison.
type FilterOp int

const (
	OpEqual FilterOp = iota
	OpArrayContains
)

// Filter restricts a query on one top-level field.
type Filter struct {
	Field string
	Op    FilterOp
	Value any
}

// Query selects documents of one collection. Results keep storage order.
type Query struct {
	Collection string
	Filters    []Filter
	Limit      int
}

// From starts a query over collection.
func From(collection string) Query {
	return Query{Collection: collection}
}

// Where adds an equality filter.
func (q Query) Where(field string, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Op: OpEqual, Value: value})

	return q
}

// WhereArrayContains adds an array-containment filter.
func (q Query) WhereArrayContains(field string, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Op: OpArrayContains, Value: value})

	return q
}

// WithLimit caps the number of results; n <= 0 removes the cap.
func (q Query) WithLimit(n int) Query {
	q.Limit = n

	return q
}

// MutationKind selects how a Mutation changes its document.
type MutationKind int

const (
	// MutationSet creates or overwrites the whole document.
	MutationSet MutationKind = iota
	// MutationUpdate changes individual fields of an existing document.
	MutationUpdate
	// MutationDelete removes the document; deleting a missing document succeeds.
	MutationDelete
)

// Update assigns Value at a nested field path.
type Update struct {
	Path  []string
	Value any
}

// Mutation is one write to one document.
type Mutation struct {
	Kind       MutationKind
	Collection string
	ID         string
	Data       map[string]any
	Updates    []Update
}

// Set builds a create-or-overwrite mutation.
func Set(collection, id string, data map[string]any) Mutation {
	return Mutation{Kind: MutationSet, Collection: collection, ID: id, Data: data}
}

// UpdateFields builds a field-level update mutation.
func UpdateFields(collection, id string, updates ...Update) Mutation {
	return Mutation{Kind: MutationUpdate, Collection: collection, ID: id, Updates: updates}
}

// Delete builds a document delete mutation.
func Delete(collection, id string) Mutation {
	return Mutation{Kind: MutationDelete, Collection: collection, ID: id}
}

// Field is a shorthand for an Update at a path.
func Field(value any, path ...string) Update {
	return Update{Path: path, Value: value}
}

// ArrayUnionValue adds elements to an array field, skipping ones already present.
type ArrayUnionValue struct{ Elems []any }

// ArrayRemoveValue removes every occurrence of the elements from an array field.
type ArrayRemoveValue struct{ Elems []any }

// DeleteFieldValue removes the field.
type DeleteFieldValue struct{}

// ArrayUnion is the Update value for array-union.
func ArrayUnion(elems ...any) ArrayUnionValue {
	return ArrayUnionValue{Elems: elems}
}

// ArrayRemove is the Update value for array-remove.
func ArrayRemove(elems ...any) ArrayRemoveValue {
	return ArrayRemoveValue{Elems: elems}
}

// DeleteField is the Update value that removes a field.
var DeleteField = DeleteFieldValue{}

// Session reads and writes documents. On a Store every Write is applied
// immediately; inside RunTransaction writes are buffered until commit and all
// reads must happen before the first write.
type Session interface {
	Get(ctx context.Context, collection, id string) (*Snapshot, error)
	Query(ctx context.Context, q Query) ([]*Snapshot, error)
	Write(ctx context.Context, m Mutation) error
}

// Store is a document database.
type Store interface {
	Session

	// RunTransaction commits every write issued through tx atomically, or none
	// of them when fn returns an error.
	RunTransaction(ctx context.Context, fn func(ctx context.Context, tx Session) error) error

	Close() error
}
