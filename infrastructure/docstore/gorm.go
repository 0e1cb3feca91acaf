package docstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AzielCF/az-learn/domains/remote"
)

var fieldPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// documentModel is one remote document. Fields live in a JSON text column;
// timestamps are written in remote.TimeLayout so text comparison in SQL keeps
// chronological order.
type documentModel struct {
	Collection string    `gorm:"primaryKey;size:512"`
	DocID      string    `gorm:"primaryKey;column:doc_id;size:128"`
	Data       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (documentModel) TableName() string {
	return "documents"
}

// GormStore implements remote.Store on SQLite or Postgres through GORM.
// Ordering and filter fields must hold timestamps or strings: values are
// compared as text on Postgres.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

// Init creates the documents table.
func (s *GormStore) Init(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&documentModel{})
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", remote.ErrUnavailable, op, err)
}

func (s *GormStore) fieldExpr(field string) (string, error) {
	if field == "" || field == "id" {
		return "doc_id", nil
	}
	if !fieldPattern.MatchString(field) {
		return "", fmt.Errorf("invalid document field %q", field)
	}
	if s.db.Dialector.Name() == "postgres" {
		return fmt.Sprintf("(data::jsonb ->> '%s')", field), nil
	}
	return fmt.Sprintf("json_extract(data, '$.%s')", field), nil
}

func sqlValue(v any) any {
	if t, ok := remote.AsTime(v); ok {
		return t.UTC().Format(remote.TimeLayout)
	}
	return v
}

func sqlOperator(op remote.Operator) (string, error) {
	switch op {
	case remote.OpEqual:
		return "=", nil
	case remote.OpLess, remote.OpLessEqual, remote.OpGreater, remote.OpGreaterEqual:
		return string(op), nil
	}
	return "", fmt.Errorf("unsupported operator %q", op)
}

func (s *GormStore) Query(ctx context.Context, q remote.Query) ([]remote.Document, error) {
	tx := s.db.WithContext(ctx).Model(&documentModel{}).Where("collection = ?", q.Collection)

	for _, f := range q.Filters {
		expr, err := s.fieldExpr(f.Field)
		if err != nil {
			return nil, err
		}
		op, err := sqlOperator(f.Op)
		if err != nil {
			return nil, err
		}
		tx = tx.Where(fmt.Sprintf("%s %s ?", expr, op), sqlValue(f.Value))
	}

	orderExpr, err := s.fieldExpr(q.OrderBy)
	if err != nil {
		return nil, err
	}
	dir, cmp := "ASC", ">"
	if q.Direction == remote.Desc {
		dir, cmp = "DESC", "<"
	}

	if q.StartAfter != nil {
		v := sqlValue(q.StartAfter.Value(q.OrderBy))
		if orderExpr == "doc_id" {
			tx = tx.Where(fmt.Sprintf("doc_id %s ?", cmp), q.StartAfter.ID)
		} else {
			tx = tx.Where(
				fmt.Sprintf("(%[1]s %[2]s ?) OR (%[1]s = ? AND doc_id %[2]s ?)", orderExpr, cmp),
				v, v, q.StartAfter.ID,
			)
		}
	}

	if orderExpr == "doc_id" {
		tx = tx.Order("doc_id " + dir)
	} else {
		tx = tx.Order(fmt.Sprintf("%s %s, doc_id %s", orderExpr, dir, dir))
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var models []documentModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, unavailable("query "+q.Collection, err)
	}

	docs := make([]remote.Document, 0, len(models))
	for _, m := range models {
		doc, err := decodeModel(m)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *GormStore) Get(ctx context.Context, collection, id string) (remote.Document, bool, error) {
	m, found, err := s.load(s.db.WithContext(ctx), collection, id)
	if err != nil || !found {
		return remote.Document{}, found, err
	}
	doc, err := decodeModel(m)
	return doc, err == nil, err
}

func (s *GormStore) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	return id, s.Set(ctx, collection, id, data, false)
}

func (s *GormStore) Set(ctx context.Context, collection, id string, data map[string]any, merge bool) error {
	return s.write(ctx, collection, id, data, merge, false)
}

func (s *GormStore) Update(ctx context.Context, collection, id string, patch map[string]any) error {
	return s.write(ctx, collection, id, patch, true, true)
}

func (s *GormStore) Delete(ctx context.Context, collection, id string) error {
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		Delete(&documentModel{}).Error
	if err != nil {
		return unavailable("delete "+collection+"/"+id, err)
	}
	return nil
}

func (s *GormStore) write(ctx context.Context, collection, id string, data map[string]any, merge, mustExist bool) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, found, err := s.load(tx, collection, id)
		if err != nil {
			return err
		}
		if !found && mustExist {
			return remote.ErrNotFound
		}

		var prev map[string]any
		if found {
			doc, err := decodeModel(existing)
			if err != nil {
				return err
			}
			prev = doc.Data
		}

		encoded, err := encodeData(remote.Resolve(prev, data, s.now(), merge))
		if err != nil {
			return err
		}

		if found {
			return tx.Model(&documentModel{}).
				Where("collection = ? AND doc_id = ?", collection, id).
				Updates(map[string]any{"data": encoded, "updated_at": s.now().UTC()}).Error
		}
		return tx.Create(&documentModel{Collection: collection, DocID: id, Data: encoded}).Error
	})
	if err == nil || errors.Is(err, remote.ErrNotFound) || errors.Is(err, remote.ErrUnavailable) {
		return err
	}
	return unavailable("write "+collection+"/"+id, err)
}

func (s *GormStore) load(tx *gorm.DB, collection, id string) (documentModel, bool, error) {
	var m documentModel
	err := tx.Where("collection = ? AND doc_id = ?", collection, id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return documentModel{}, false, nil
	}
	if err != nil {
		return documentModel{}, false, unavailable("get "+collection+"/"+id, err)
	}
	return m, true, nil
}

func encodeData(data map[string]any) (string, error) {
	raw, err := json.Marshal(normalizeTimes(data))
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(raw), nil
}

func decodeModel(m documentModel) (remote.Document, error) {
	data := map[string]any{}
	if err := json.Unmarshal([]byte(m.Data), &data); err != nil {
		return remote.Document{}, fmt.Errorf("decode document %s/%s: %w", m.Collection, m.DocID, err)
	}
	return remote.Document{ID: m.DocID, Data: data}, nil
}

func normalizeTimes(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(remote.TimeLayout)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.UTC().Format(remote.TimeLayout)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalizeTimes(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeTimes(e)
		}
		return out
	case string:
		if ts, ok := remote.AsTime(t); ok {
			return ts.UTC().Format(remote.TimeLayout)
		}
	}
	return v
}
