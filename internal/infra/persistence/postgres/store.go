package postgres

import (
	"context"
	"encoding/json"
	"time"

	"txtchange/internal/errors"
	"txtchange/internal/infra/persistence/document"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// documentModel is one row of the documents table.
type documentModel struct {
	Collection string         `gorm:"primaryKey;type:varchar(64)"`
	ID         string         `gorm:"primaryKey;type:varchar(128)"`
	Data       datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (documentModel) TableName() string {
	return "documents"
}

// Store implements document.Store on PostgreSQL.
type Store struct {
	db *gorm.DB
}

// NewStore wraps db as a document store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get implements document.Session.
func (s *Store) Get(ctx context.Context, collection, id string) (*document.Snapshot, error) {
	return session{db: s.db}.Get(ctx, collection, id)
}

// Query implements document.Session.
func (s *Store) Query(ctx context.Context, q document.Query) ([]*document.Snapshot, error) {
	return session{db: s.db}.Query(ctx, q)
}

// Write implements document.Session. Each write runs in its own short
// transaction so field updates see a locked, current row.
func (s *Store) Write(ctx context.Context, m document.Mutation) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return session{db: tx, lock: true}.Write(ctx, m)
	})
}

// RunTransaction implements document.Store. Rows read inside fn are locked
// FOR UPDATE until commit.
func (s *Store) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx document.Session) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, session{db: tx, lock: true})
	})
}

// Close implements document.Store. The pool is closed by the fx lifecycle hook.
func (s *Store) Close() error {
	return nil
}

type session struct {
	db   *gorm.DB
	lock bool
}

func (s session) scoped(ctx context.Context) *gorm.DB {
	db := s.db.WithContext(ctx)
	if s.lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	return db
}

func (s session) Get(ctx context.Context, collection, id string) (*document.Snapshot, error) {
	var row documentModel
	err := s.scoped(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(document.ErrNotFound, "%s/%s", collection, id)
		}

		return nil, errors.Wrap(err, "failed to get document")
	}

	return toSnapshot(&row)
}

func (s session) Query(ctx context.Context, q document.Query) ([]*document.Snapshot, error) {
	db := s.db.WithContext(ctx).Where("collection = ?", q.Collection)
	for _, f := range q.Filters {
		switch f.Op {
		case document.OpEqual:
			value, err := json.Marshal(f.Value)
			if err != nil {
				return nil, errors.Wrap(err, "failed to encode filter value")
			}
			db = db.Where("data -> ? = ?::jsonb", f.Field, string(value))
		case document.OpArrayContains:
			value, err := json.Marshal([]any{f.Value})
			if err != nil {
				return nil, errors.Wrap(err, "failed to encode filter value")
			}
			db = db.Where("data -> ? @> ?::jsonb", f.Field, string(value))
		default:
			return nil, errors.Errorf("unsupported filter op %d", f.Op)
		}
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}

	var rows []documentModel
	if err := db.Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query documents")
	}

	out := make([]*document.Snapshot, 0, len(rows))
	for i := range rows {
		snap, err := toSnapshot(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}

	return out, nil
}

func (s session) Write(ctx context.Context, m document.Mutation) error {
	var current map[string]any
	if m.Kind == document.MutationUpdate {
		snap, err := s.Get(ctx, m.Collection, m.ID)
		if err != nil {
			return err
		}
		current = snap.Data
	}

	next, err := document.ApplyMutation(current, m)
	if err != nil {
		return err
	}

	db := s.db.WithContext(ctx)
	if next == nil {
		err := db.Where("collection = ? AND id = ?", m.Collection, m.ID).Delete(&documentModel{}).Error

		return errors.Wrap(err, "failed to delete document")
	}

	data, err := json.Marshal(next)
	if err != nil {
		return errors.Wrap(err, "failed to encode document")
	}
	row := &documentModel{Collection: m.Collection, ID: m.ID, Data: datatypes.JSON(data)}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(row).Error

	return errors.Wrap(err, "failed to upsert document")
}

func toSnapshot(row *documentModel) (*document.Snapshot, error) {
	data := map[string]any{}
	if err := json.Unmarshal(row.Data, &data); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s/%s", row.Collection, row.ID)
	}

	return &document.Snapshot{ID: row.ID, Data: data}, nil
}
