package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	// Shape mirrors the registry_values layout.
	err = db.Exec("CREATE TABLE registry_values (id INTEGER PRIMARY KEY, parent TEXT, record TEXT, field TEXT, kind TEXT, int_value INTEGER, str_value TEXT)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "registry_values")
	assert.NoError(t, err)
	assert.Len(t, columns, 7)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["parent"])
	assert.Equal(t, "integer", colMap["int_value"])
	assert.Equal(t, "text", colMap["str_value"])

	// PRAGMA table_info on a missing table yields no rows and no error.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}
