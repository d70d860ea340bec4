package registry

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"versync/core/utils"
)

const (
	kindInt = "int"
	kindStr = "str"
)

// recordValue is one field of one record, flattened to a row.
type recordValue struct {
	ID       uint   `gorm:"primaryKey"`
	Parent   string `gorm:"column:parent;size:191;uniqueIndex:idx_registry_path,priority:1"`
	Record   string `gorm:"column:record;size:191;uniqueIndex:idx_registry_path,priority:2"`
	Field    string `gorm:"column:field;size:64;uniqueIndex:idx_registry_path,priority:3"`
	Kind     string `gorm:"column:kind;size:8"`
	IntValue int64  `gorm:"column:int_value"`
	StrValue string `gorm:"column:str_value;size:255"`
}

func (recordValue) TableName() string {
	return "registry_values"
}

// DBStore keeps records in the registry_values table, one row per field.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore wraps an open GORM handle. The schema is not touched; call
// EnsureSchema once at startup when the table may be missing.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// EnsureSchema creates the registry_values table when it does not exist.
func (s *DBStore) EnsureSchema(ctx context.Context) error {
	migrator := s.db.WithContext(ctx).Migrator()
	if migrator.HasTable(&recordValue{}) {
		return nil
	}
	if err := migrator.CreateTable(&recordValue{}); err != nil {
		return fmt.Errorf("create registry_values: %w", err)
	}
	return nil
}

func (s *DBStore) ListChildren(ctx context.Context, parent string) ([]Record, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&recordValue{}).
		Where("parent = ?", parent).
		Distinct().
		Order("record").
		Pluck("record", &names).Error
	if err != nil {
		return nil, fmt.Errorf("list children of %s: %w", parent, err)
	}

	recs := make([]Record, len(names))
	for i, name := range names {
		recs[i] = Record{Parent: parent, Name: name}
	}
	return recs, nil
}

func (s *DBStore) GetField(ctx context.Context, rec Record, field string, def any) (any, error) {
	var row recordValue
	err := s.db.WithContext(ctx).
		Where("parent = ? AND record = ? AND field = ?", rec.Parent, rec.Name, field).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s[%s]: %w", rec.Path(), field, err)
	}

	if row.Kind == kindInt {
		return row.IntValue, nil
	}
	return row.StrValue, nil
}

func (s *DBStore) SetField(ctx context.Context, rec Record, field string, value any) error {
	row := recordValue{
		Parent: rec.Parent,
		Record: rec.Name,
		Field:  field,
	}
	switch value.(type) {
	case int, int32, int64, uint, uint32, uint64:
		row.Kind = kindInt
		row.IntValue = utils.ToInt64(value)
	default:
		row.Kind = kindStr
		row.StrValue = utils.ToString(value)
	}

	var count int64
	err := s.db.WithContext(ctx).
		Model(&recordValue{}).
		Where("parent = ? AND record = ? AND field = ?", rec.Parent, rec.Name, field).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("probe %s[%s]: %w", rec.Path(), field, err)
	}

	if count == 0 {
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("create %s[%s]: %w", rec.Path(), field, err)
		}
		return nil
	}

	err = s.db.WithContext(ctx).
		Model(&recordValue{}).
		Where("parent = ? AND record = ? AND field = ?", rec.Parent, rec.Name, field).
		Updates(map[string]any{
			"kind":      row.Kind,
			"int_value": row.IntValue,
			"str_value": row.StrValue,
		}).Error
	if err != nil {
		return fmt.Errorf("update %s[%s]: %w", rec.Path(), field, err)
	}
	return nil
}
