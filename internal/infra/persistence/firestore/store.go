// Package firestore backs the document store with Cloud Firestore, the
// database shared with the mobile client.
package firestore

import (
	"context"

	"txtchange/internal/errors"
	"txtchange/internal/infra/persistence/document"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Store implements document.Store on a Firestore client.
type Store struct {
	client *fs.Client
}

// NewStore wraps client.
func NewStore(client *fs.Client) *Store {
	return &Store{client: client}
}

// Get implements document.Session.
func (s *Store) Get(ctx context.Context, collection, id string) (*document.Snapshot, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)

	return toSnapshot(snap, err, collection, id)
}

// Query implements document.Session.
func (s *Store) Query(ctx context.Context, q document.Query) ([]*document.Snapshot, error) {
	query, err := s.buildQuery(q)
	if err != nil {
		return nil, err
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query firestore")
	}

	return toSnapshots(snaps), nil
}

// Write implements document.Session.
func (s *Store) Write(ctx context.Context, m document.Mutation) error {
	ref := s.client.Collection(m.Collection).Doc(m.ID)

	var err error
	switch m.Kind {
	case document.MutationSet:
		_, err = ref.Set(ctx, m.Data)
	case document.MutationUpdate:
		_, err = ref.Update(ctx, toUpdates(m.Updates))
	case document.MutationDelete:
		_, err = ref.Delete(ctx)
	default:
		return errors.Errorf("unknown mutation kind %d", m.Kind)
	}

	return mapWriteError(err, m)
}

// RunTransaction implements document.Store with a Firestore transaction,
// which retries fn on contention.
func (s *Store) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx document.Session) error) error {
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		return fn(ctx, &transaction{store: s, tx: tx})
	})
}

// Close implements document.Store.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) buildQuery(q document.Query) (fs.Query, error) {
	query := s.client.Collection(q.Collection).Query
	for _, f := range q.Filters {
		switch f.Op {
		case document.OpEqual:
			query = query.Where(f.Field, "==", f.Value)
		case document.OpArrayContains:
			query = query.Where(f.Field, "array-contains", f.Value)
		default:
			return query, errors.Errorf("unsupported filter op %d", f.Op)
		}
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	return query, nil
}

type transaction struct {
	store *Store
	tx    *fs.Transaction
}

func (t *transaction) Get(_ context.Context, collection, id string) (*document.Snapshot, error) {
	snap, err := t.tx.Get(t.store.client.Collection(collection).Doc(id))

	return toSnapshot(snap, err, collection, id)
}

func (t *transaction) Query(_ context.Context, q document.Query) ([]*document.Snapshot, error) {
	query, err := t.store.buildQuery(q)
	if err != nil {
		return nil, err
	}

	snaps, err := t.tx.Documents(query).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query firestore in transaction")
	}

	return toSnapshots(snaps), nil
}

func (t *transaction) Write(_ context.Context, m document.Mutation) error {
	ref := t.store.client.Collection(m.Collection).Doc(m.ID)

	var err error
	switch m.Kind {
	case document.MutationSet:
		err = t.tx.Set(ref, m.Data)
	case document.MutationUpdate:
		err = t.tx.Update(ref, toUpdates(m.Updates))
	case document.MutationDelete:
		err = t.tx.Delete(ref)
	default:
		return errors.Errorf("unknown mutation kind %d", m.Kind)
	}

	return mapWriteError(err, m)
}

func toUpdates(updates []document.Update) []fs.Update {
	out := make([]fs.Update, 0, len(updates))
	for _, u := range updates {
		out = append(out, fs.Update{FieldPath: fs.FieldPath(u.Path), Value: toValue(u.Value)})
	}

	return out
}

func toValue(v any) any {
	switch t := v.(type) {
	case document.ArrayUnionValue:
		return fs.ArrayUnion(t.Elems...)
	case document.ArrayRemoveValue:
		return fs.ArrayRemove(t.Elems...)
	case document.DeleteFieldValue:
		return fs.Delete
	default:
		return v
	}
}

func toSnapshot(snap *fs.DocumentSnapshot, err error, collection, id string) (*document.Snapshot, error) {
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.Wrapf(document.ErrNotFound, "%s/%s", collection, id)
		}

		return nil, errors.Wrap(err, "failed to get firestore document")
	}

	return &document.Snapshot{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func toSnapshots(snaps []*fs.DocumentSnapshot) []*document.Snapshot {
	out := make([]*document.Snapshot, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, &document.Snapshot{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return out
}

func mapWriteError(err error, m document.Mutation) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return errors.Wrapf(document.ErrNotFound, "%s/%s", m.Collection, m.ID)
	}

	return errors.Wrapf(err, "failed to write %s/%s", m.Collection, m.ID)
}
