package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"versync/core/registry"
)

const uninstallParent = "HKLM/Software/Microsoft/Windows/CurrentVersion/Uninstall"

func seededStore() *registry.MemStore {
	store := registry.NewMemStore()
	store.Seed(registry.Record{Parent: uninstallParent, Name: "{AAA-111}"}, map[string]any{
		"DisplayName": "Widget Suite 2.528.3",
	})
	store.Seed(registry.Record{Parent: uninstallParent, Name: "{BBB-222}"}, map[string]any{
		"DisplayName": "Other Product 1.0",
	})
	return store
}

func TestLocateFirstMatch(t *testing.T) {
	store := seededStore()

	rec, err := registry.Locate(context.Background(), store, registry.Selector{
		Parent:     uninstallParent,
		MatchField: "DisplayName",
		Prefix:     "Widget Suite",
	})
	assert.NoError(t, err)
	assert.Equal(t, "{AAA-111}", rec.Name)
	assert.Equal(t, uninstallParent, rec.Parent)
}

func TestLocateNotFound(t *testing.T) {
	store := seededStore()

	_, err := registry.Locate(context.Background(), store, registry.Selector{
		Parent:     uninstallParent,
		MatchField: "DisplayName",
		Prefix:     "Gadget Suite",
	})
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestLocateMissingMatchFieldIsSkipped(t *testing.T) {
	store := seededStore()
	store.Seed(registry.Record{Parent: uninstallParent, Name: "{CCC-333}"}, map[string]any{
		"QuietUninstallString": "/S",
	})

	rec, err := registry.Locate(context.Background(), store, registry.Selector{
		Parent:     uninstallParent,
		MatchField: "DisplayName",
		Prefix:     "Widget Suite",
	})
	assert.NoError(t, err)
	assert.Equal(t, "{AAA-111}", rec.Name)
}

func TestLocateDuplicates(t *testing.T) {
	store := seededStore()
	store.Seed(registry.Record{Parent: uninstallParent, Name: "{AAA-000}"}, map[string]any{
		"DisplayName": "Widget Suite 2.5",
	})

	t.Run("default takes first in listing order", func(t *testing.T) {
		rec, err := registry.Locate(context.Background(), store, registry.Selector{
			Parent:     uninstallParent,
			MatchField: "DisplayName",
			Prefix:     "Widget Suite",
		})
		assert.NoError(t, err)
		// "{AAA-000}" sorts before "{AAA-111}".
		assert.Equal(t, "{AAA-000}", rec.Name)
	})

	t.Run("strict rejects the pair", func(t *testing.T) {
		_, err := registry.Locate(context.Background(), store, registry.Selector{
			Parent:     uninstallParent,
			MatchField: "DisplayName",
			Prefix:     "Widget Suite",
			Unique:     true,
		})
		assert.ErrorIs(t, err, registry.ErrAmbiguous)
	})
}

func TestLocatePropagatesListFailure(t *testing.T) {
	boom := errors.New("store offline")
	store := &failingLister{err: boom}

	_, err := registry.Locate(context.Background(), store, registry.Selector{
		Parent:     uninstallParent,
		MatchField: "DisplayName",
		Prefix:     "Widget Suite",
	})
	assert.ErrorIs(t, err, boom)
}

type failingLister struct {
	registry.MemStore
	err error
}

func (s *failingLister) ListChildren(context.Context, string) ([]registry.Record, error) {
	return nil, s.err
}

func TestMemStoreDefaults(t *testing.T) {
	store := registry.NewMemStore()
	rec := registry.Record{Parent: "root", Name: "child"}

	val, err := store.GetField(context.Background(), rec, "Version", int64(0))
	assert.NoError(t, err)
	assert.Equal(t, int64(0), val)

	val, err = store.GetField(context.Background(), rec, "DisplayName", "")
	assert.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestMemStoreCounters(t *testing.T) {
	store := registry.NewMemStore()
	rec := registry.Record{Parent: "root", Name: "child"}
	ctx := context.Background()

	assert.NoError(t, store.SetField(ctx, rec, "Version", int64(7)))
	assert.NoError(t, store.SetField(ctx, rec, "Version", int64(8)))
	assert.NoError(t, store.SetField(ctx, rec, "DisplayName", "Widget"))

	assert.Equal(t, 3, store.Writes())
	assert.Equal(t, 2, store.WritesTo(rec, "Version"))
	assert.Equal(t, 1, store.WritesTo(rec, "DisplayName"))
	assert.Equal(t, 0, store.WritesTo(rec, "DisplayVersion"))

	val, err := store.GetField(ctx, rec, "Version", int64(0))
	assert.NoError(t, err)
	assert.Equal(t, int64(8), val)
	assert.Equal(t, 1, store.Reads())
}

func TestRecordPath(t *testing.T) {
	rec := registry.Record{Parent: "HKLM/Software/Widget", Name: "Current"}
	assert.Equal(t, "HKLM/Software/Widget/Current", rec.Path())
}
