package registry

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"versync/core/database"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupSQLiteStore(t *testing.T) *DBStore {
	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to open sqlite db: %v", err)
	}

	store := NewDBStore(db)
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("Failed to ensure schema: %v", err)
	}
	return store
}

func TestDBStoreRoundTrip(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()
	rec := Record{Parent: "HKLM/Software/Widget", Name: "Current"}

	// Absent fields come back as the caller's default.
	val, err := store.GetField(ctx, rec, "Version", int64(0))
	assert.NoError(t, err)
	assert.Equal(t, int64(0), val)

	assert.NoError(t, store.SetField(ctx, rec, "Version", int64(0x02050003)))
	assert.NoError(t, store.SetField(ctx, rec, "Name", "Widget 2.5.3"))

	val, err = store.GetField(ctx, rec, "Version", int64(0))
	assert.NoError(t, err)
	assert.Equal(t, int64(0x02050003), val)

	val, err = store.GetField(ctx, rec, "Name", "")
	assert.NoError(t, err)
	assert.Equal(t, "Widget 2.5.3", val)

	// Overwrite takes the update path.
	assert.NoError(t, store.SetField(ctx, rec, "Version", int64(0x02060000)))
	val, err = store.GetField(ctx, rec, "Version", int64(0))
	assert.NoError(t, err)
	assert.Equal(t, int64(0x02060000), val)
}

func TestDBStoreListChildren(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()
	parent := "HKLM/Software/Microsoft/Windows/CurrentVersion/Uninstall"

	// Two fields on one record must not produce a duplicate child.
	recB := Record{Parent: parent, Name: "{BBB-222}"}
	recA := Record{Parent: parent, Name: "{AAA-111}"}
	assert.NoError(t, store.SetField(ctx, recB, "DisplayName", "Other Product"))
	assert.NoError(t, store.SetField(ctx, recA, "DisplayName", "Widget Suite 2.5.3"))
	assert.NoError(t, store.SetField(ctx, recA, "DisplayVersion", "2.5.3"))

	recs, err := store.ListChildren(ctx, parent)
	assert.NoError(t, err)
	assert.Equal(t, []Record{
		{Parent: parent, Name: "{AAA-111}"},
		{Parent: parent, Name: "{BBB-222}"},
	}, recs)

	recs, err = store.ListChildren(ctx, "HKLM/Software/Empty")
	assert.NoError(t, err)
	assert.Empty(t, recs)
}

func TestDBStoreLocate(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()
	parent := "HKLM/Software/Microsoft/Windows/CurrentVersion/Uninstall"

	rec := Record{Parent: parent, Name: "{AAA-111}"}
	assert.NoError(t, store.SetField(ctx, rec, "DisplayName", "Widget Suite 2.528.3"))

	found, err := Locate(ctx, store, Selector{
		Parent:     parent,
		MatchField: "DisplayName",
		Prefix:     "Widget Suite",
	})
	assert.NoError(t, err)
	assert.Equal(t, rec, found)
}

func TestDBStoreQueries(t *testing.T) {
	t.Run("ListChildren", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewDBStore(db)

		rows := sqlmock.NewRows([]string{"record"}).
			AddRow("{AAA-111}").
			AddRow("{BBB-222}")
		mock.ExpectQuery("SELECT DISTINCT `record` FROM `registry_values`").
			WillReturnRows(rows)

		recs, err := store.ListChildren(context.Background(), "parent")
		assert.NoError(t, err)
		assert.Len(t, recs, 2)
		assert.Equal(t, "{AAA-111}", recs[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetField hit", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewDBStore(db)

		rows := sqlmock.NewRows([]string{"id", "parent", "record", "field", "kind", "int_value", "str_value"}).
			AddRow(1, "parent", "Current", "Version", "int", 0x02050003, "")
		mock.ExpectQuery("SELECT \\* FROM `registry_values`").
			WithArgs("parent", "Current", "Version", 1).
			WillReturnRows(rows)

		val, err := store.GetField(context.Background(), Record{Parent: "parent", Name: "Current"}, "Version", int64(0))
		assert.NoError(t, err)
		assert.Equal(t, int64(0x02050003), val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetField miss returns default", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewDBStore(db)

		rows := sqlmock.NewRows([]string{"id", "parent", "record", "field", "kind", "int_value", "str_value"})
		mock.ExpectQuery("SELECT \\* FROM `registry_values`").
			WillReturnRows(rows)

		val, err := store.GetField(context.Background(), Record{Parent: "parent", Name: "Current"}, "Version", int64(0))
		assert.NoError(t, err)
		assert.Equal(t, int64(0), val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SetField inserts when missing", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewDBStore(db)

		countRows := sqlmock.NewRows([]string{"count(*)"}).AddRow(0)
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `registry_values`").
			WillReturnRows(countRows)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `registry_values`").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := store.SetField(context.Background(), Record{Parent: "parent", Name: "Current"}, "Version", int64(7))
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SetField updates when present", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewDBStore(db)

		countRows := sqlmock.NewRows([]string{"count(*)"}).AddRow(1)
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `registry_values`").
			WillReturnRows(countRows)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `registry_values` SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := store.SetField(context.Background(), Record{Parent: "parent", Name: "Current"}, "Name", "Widget 2.5.3")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
