// Package memory is an in-process document store. It backs local development
// and the test suites, and mirrors the transaction rules of the hosted store:
// optimistic concurrency, retried commits and reads before writes.
package memory

import (
	"context"
	"sync"

	"txtchange/internal/errors"
	"txtchange/internal/infra/persistence/document"
)

// MaxAttempts bounds how often a conflicting transaction is retried.
const MaxAttempts = 5

var (
	// ErrConflict is returned when a transaction keeps losing to concurrent writers.
	ErrConflict = errors.New("transaction conflict")
	// ErrReadAfterWrite is returned when a transaction reads after it has written.
	ErrReadAfterWrite = errors.New("transaction reads must happen before writes")
)

// FaultFunc inspects a mutation before it is applied and may reject it.
type FaultFunc func(m document.Mutation) error

type entry struct {
	data    map[string]any
	version uint64
}

type collection struct {
	order   []string
	docs    map[string]*entry
	version uint64
}

// Store implements document.Store in memory.
type Store struct {
	mu          sync.RWMutex
	collections map[string]*collection
	clock       uint64
	fault       FaultFunc
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{collections: map[string]*collection{}}
}

// SetFault installs fn as the write hook; nil removes it.
func (s *Store) SetFault(fn FaultFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fault = fn
}

// Get implements document.Session.
func (s *Store) Get(ctx context.Context, coll, id string) (*document.Snapshot, error) {
	snap, _, err := s.get(ctx, coll, id)

	return snap, err
}

func (s *Store) get(ctx context.Context, coll, id string) (*document.Snapshot, uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[coll]
	if !ok {
		return nil, 0, errors.Wrapf(document.ErrNotFound, "%s/%s", coll, id)
	}
	e, ok := c.docs[id]
	if !ok {
		return nil, 0, errors.Wrapf(document.ErrNotFound, "%s/%s", coll, id)
	}

	return &document.Snapshot{ID: id, Data: document.Clone(e.data)}, e.version, nil
}

// Query implements document.Session.
func (s *Store) Query(ctx context.Context, q document.Query) ([]*document.Snapshot, error) {
	snaps, _, err := s.query(ctx, q)

	return snaps, err
}

func (s *Store) query(ctx context.Context, q document.Query) ([]*document.Snapshot, uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[q.Collection]
	if !ok {
		return []*document.Snapshot{}, 0, nil
	}

	out := make([]*document.Snapshot, 0)
	for _, id := range c.order {
		e := c.docs[id]
		if !document.Matches(e.data, q.Filters) {
			continue
		}
		out = append(out, &document.Snapshot{ID: id, Data: document.Clone(e.data)})
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}

	return out, c.version, nil
}

// Write implements document.Session. The mutation is applied immediately.
func (s *Store) Write(ctx context.Context, m document.Mutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	staged, err := s.stage(map[docKey]*stagedDoc{}, m)
	if err != nil {
		return err
	}
	s.commit(staged)

	return nil
}

// RunTransaction implements document.Store. Reads record the version they
// observed; commit fails when any of them moved and fn is run again.
func (s *Store) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx document.Session) error) error {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		tx := &transaction{
			store:    s,
			docReads: map[docKey]uint64{},
			colReads: map[string]uint64{},
		}
		if err := fn(ctx, tx); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.commitTransaction(tx)
		if errors.Is(err, ErrConflict) {
			continue
		}

		return err
	}

	return ErrConflict
}

// Close implements document.Store.
func (s *Store) Close() error {
	return nil
}

type docKey struct {
	collection string
	id         string
}

type stagedDoc struct {
	data    map[string]any
	deleted bool
}

// stage applies m on top of the already staged state without touching the store.
// Callers hold s.mu.
func (s *Store) stage(staged map[docKey]*stagedDoc, m document.Mutation) (map[docKey]*stagedDoc, error) {
	if s.fault != nil {
		if err := s.fault(m); err != nil {
			return nil, err
		}
	}

	key := docKey{collection: m.Collection, id: m.ID}
	current, ok := staged[key]
	var data map[string]any
	switch {
	case ok && !current.deleted:
		data = current.data
	case !ok:
		if c, found := s.collections[m.Collection]; found {
			if e, found := c.docs[m.ID]; found {
				data = document.Clone(e.data)
			}
		}
	}

	next, err := document.ApplyMutation(data, m)
	if err != nil {
		return nil, errors.Wrapf(err, "%s/%s", m.Collection, m.ID)
	}
	staged[key] = &stagedDoc{data: next, deleted: next == nil}

	return staged, nil
}

// commit publishes staged documents. Callers hold s.mu.
func (s *Store) commit(staged map[docKey]*stagedDoc) {
	s.clock++
	for key, doc := range staged {
		c, ok := s.collections[key.collection]
		if !ok {
			c = &collection{docs: map[string]*entry{}}
			s.collections[key.collection] = c
		}
		c.version = s.clock

		_, exists := c.docs[key.id]
		if doc.deleted {
			if exists {
				delete(c.docs, key.id)
				c.order = removeID(c.order, key.id)
			}

			continue
		}
		if !exists {
			c.order = append(c.order, key.id)
		}
		c.docs[key.id] = &entry{data: doc.data, version: s.clock}
	}
}

func (s *Store) commitTransaction(tx *transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, seen := range tx.docReads {
		if s.docVersion(key) != seen {
			return ErrConflict
		}
	}
	for coll, seen := range tx.colReads {
		var current uint64
		if c, ok := s.collections[coll]; ok {
			current = c.version
		}
		if current != seen {
			return ErrConflict
		}
	}

	staged := map[docKey]*stagedDoc{}
	for _, m := range tx.writes {
		var err error
		if staged, err = s.stage(staged, m); err != nil {
			return err
		}
	}
	if len(staged) > 0 {
		s.commit(staged)
	}

	return nil
}

func (s *Store) docVersion(key docKey) uint64 {
	c, ok := s.collections[key.collection]
	if !ok {
		return 0
	}
	e, ok := c.docs[key.id]
	if !ok {
		return 0
	}

	return e.version
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}

	return ids
}

// transaction buffers writes until commit.
type transaction struct {
	store    *Store
	docReads map[docKey]uint64
	colReads map[string]uint64
	writes   []document.Mutation
}

func (tx *transaction) Get(ctx context.Context, coll, id string) (*document.Snapshot, error) {
	if len(tx.writes) > 0 {
		return nil, ErrReadAfterWrite
	}
	snap, version, err := tx.store.get(ctx, coll, id)
	if err != nil && !errors.Is(err, document.ErrNotFound) {
		return nil, err
	}
	tx.docReads[docKey{collection: coll, id: id}] = version

	return snap, err
}

func (tx *transaction) Query(ctx context.Context, q document.Query) ([]*document.Snapshot, error) {
	if len(tx.writes) > 0 {
		return nil, ErrReadAfterWrite
	}
	snaps, version, err := tx.store.query(ctx, q)
	if err != nil {
		return nil, err
	}
	tx.colReads[q.Collection] = version

	return snaps, nil
}

func (tx *transaction) Write(ctx context.Context, m document.Mutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx.writes = append(tx.writes, m)

	return nil
}
