package reconcile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"versync/core/reconcile"
	"versync/core/registry"
	"versync/core/version"
)

const (
	catalogPath   = "HKLM/Software/Classes/Installer/Products"
	uninstallPath = "HKLM/Software/Microsoft/Windows/CurrentVersion/Uninstall"
)

var (
	catalogRec   = registry.Record{Parent: catalogPath, Name: "3A7FC29E"}
	uninstallRec = registry.Record{Parent: uninstallPath, Name: "{7B4F-11D0}"}
)

func testConfig() reconcile.Config {
	return reconcile.Config{
		CatalogPath:   catalogPath,
		UninstallPath: uninstallPath,
	}
}

// installedStore seeds both record groups the way an installer would have
// left them after installing Widget 1.9. Upgrading to any 2.x version
// drifts every field, including VersionMajor.
func installedStore() *registry.MemStore {
	store := registry.NewMemStore()
	store.Seed(catalogRec, map[string]any{
		"Name":    "Widget 1.9",
		"Version": int64(0x01000000),
	})
	store.Seed(uninstallRec, map[string]any{
		"DisplayName":    "Widget 1.9",
		"DisplayVersion": "1.0.0",
		"Version":        int64(0x01000000),
		"VersionMajor":   int64(1),
		"VersionMinor":   int64(0),
	})
	return store
}

func widgetGroups(t *testing.T, raw string) []reconcile.Group {
	t.Helper()

	ver, err := version.Parse(raw)
	assert.NoError(t, err)
	encoded, err := ver.Encode()
	assert.NoError(t, err)

	return reconcile.DesiredGroups(testConfig(), "Widget", "Widget "+raw, encoded)
}

func TestRunUpgradeScenario(t *testing.T) {
	store := installedStore()
	ctx := context.Background()

	plan, report, err := reconcile.Run(ctx, store, widgetGroups(t, "2.528.3"), reconcile.Options{})
	assert.NoError(t, err)
	assert.NotNil(t, report)
	assert.NoError(t, report.Err())

	// Every field drifted: 2 catalog + 5 uninstall.
	assert.Equal(t, 7, plan.Summary.Drifted)
	assert.Equal(t, 0, plan.Summary.InSync)
	assert.Len(t, report.Written, 7)
	assert.Empty(t, report.Failed)

	name, _ := store.GetField(ctx, catalogRec, "Name", "")
	assert.Equal(t, "Widget 2.528.3", name)
	packed, _ := store.GetField(ctx, catalogRec, "Version", int64(0))
	assert.Equal(t, int64(0x02FF14A3), packed)

	displayVersion, _ := store.GetField(ctx, uninstallRec, "DisplayVersion", "")
	assert.Equal(t, "2.255.5283", displayVersion)
	packed, _ = store.GetField(ctx, uninstallRec, "Version", int64(0))
	assert.Equal(t, int64(0x02FF14A3), packed)
	major, _ := store.GetField(ctx, uninstallRec, "VersionMajor", int64(0))
	assert.Equal(t, int64(2), major)
	minor, _ := store.GetField(ctx, uninstallRec, "VersionMinor", int64(0))
	assert.Equal(t, int64(255), minor)
}

func TestRunIsIdempotent(t *testing.T) {
	store := installedStore()
	ctx := context.Background()
	groups := widgetGroups(t, "2.528.3")

	_, first, err := reconcile.Run(ctx, store, groups, reconcile.Options{})
	assert.NoError(t, err)
	assert.Len(t, first.Written, 7)

	plan, second, err := reconcile.Run(ctx, store, groups, reconcile.Options{})
	assert.NoError(t, err)
	assert.Empty(t, plan.Changes)
	assert.Equal(t, 7, plan.Summary.InSync)
	assert.Empty(t, second.Written)
	assert.Len(t, second.Skipped, 7)
}

func TestRunAvoidsWritingMatchingFields(t *testing.T) {
	store := installedStore()
	ctx := context.Background()

	// The store already holds the desired packed version; only the name
	// and display fields drift.
	assert.NoError(t, store.SetField(ctx, catalogRec, "Version", int64(0x02FF14A3)))
	baseline := store.WritesTo(catalogRec, "Version")

	_, report, err := reconcile.Run(ctx, store, widgetGroups(t, "2.528.3"), reconcile.Options{})
	assert.NoError(t, err)
	assert.Equal(t, baseline, store.WritesTo(catalogRec, "Version"))
	assert.Contains(t, report.Skipped, reconcile.FieldRef{Group: reconcile.GroupCatalog, Field: reconcile.FieldVersion})
	assert.NotContains(t, report.Written, reconcile.FieldRef{Group: reconcile.GroupCatalog, Field: reconcile.FieldVersion})
}

func TestRunDryRun(t *testing.T) {
	store := installedStore()

	plan, report, err := reconcile.Run(context.Background(), store, widgetGroups(t, "2.528.3"), reconcile.Options{DryRun: true})
	assert.NoError(t, err)
	assert.Nil(t, report)
	assert.Equal(t, 7, plan.Summary.Drifted)
	assert.Equal(t, 0, store.Writes())
}

func TestRunMissingGroupAbortsBeforeWrites(t *testing.T) {
	store := registry.NewMemStore()

	_, _, err := reconcile.Run(context.Background(), store, widgetGroups(t, "2.528.3"), reconcile.Options{})
	assert.ErrorIs(t, err, registry.ErrNotFound)
	assert.Equal(t, 0, store.Writes())
}

func TestRunStrictMatchRejectsDuplicates(t *testing.T) {
	store := installedStore()
	store.Seed(registry.Record{Parent: uninstallPath, Name: "{0000-0000}"}, map[string]any{
		"DisplayName": "Widget 0.8",
	})

	cfg := testConfig()
	cfg.StrictMatch = true
	groups := reconcile.DesiredGroups(cfg, "Widget", "Widget 2.528.3", 0x02FF14A3)

	_, _, err := reconcile.Run(context.Background(), store, groups, reconcile.Options{})
	assert.ErrorIs(t, err, registry.ErrAmbiguous)
}

type failingStore struct {
	*registry.MemStore
	failField string
}

func (s *failingStore) SetField(ctx context.Context, rec registry.Record, field string, value any) error {
	if field == s.failField {
		return errors.New("access denied")
	}
	return s.MemStore.SetField(ctx, rec, field, value)
}

func TestApplyContinuesPastRejectedWrite(t *testing.T) {
	store := &failingStore{MemStore: installedStore(), failField: "DisplayVersion"}
	ctx := context.Background()

	_, report, err := reconcile.Run(ctx, store, widgetGroups(t, "2.528.3"), reconcile.Options{})
	assert.NoError(t, err)

	// The rejected field is reported; everything after it still landed.
	assert.Len(t, report.Failed, 1)
	assert.Equal(t, reconcile.GroupUninstall, report.Failed[0].Group)
	assert.Equal(t, reconcile.FieldDisplayVersion, report.Failed[0].Field)
	assert.Len(t, report.Written, 6)

	var werr *registry.WriteError
	assert.ErrorAs(t, report.Err(), &werr)
	assert.Equal(t, "DisplayVersion", werr.Field)

	packed, _ := store.GetField(ctx, uninstallRec, "Version", int64(0))
	assert.Equal(t, int64(0x02FF14A3), packed)

	// The failed field keeps its old value and stays drifted for the next
	// run, which is the recovery path.
	displayVersion, _ := store.GetField(ctx, uninstallRec, "DisplayVersion", "")
	assert.Equal(t, "1.0.0", displayVersion)

	plan, err := reconcile.BuildPlan(ctx, store, widgetGroups(t, "2.528.3"))
	assert.NoError(t, err)
	assert.Equal(t, 1, plan.Summary.Drifted)
}

func TestBuildPlanReadsDefaultsForAbsentFields(t *testing.T) {
	store := registry.NewMemStore()
	store.Seed(catalogRec, map[string]any{"Name": "Widget 2.5"})
	store.Seed(uninstallRec, map[string]any{"DisplayName": "Widget 2.5"})

	plan, err := reconcile.BuildPlan(context.Background(), store, widgetGroups(t, "2.528.3"))
	assert.NoError(t, err)

	for _, change := range plan.Changes {
		if change.Field == reconcile.FieldVersion {
			assert.Equal(t, int64(0), change.Current)
		}
		if change.Field == reconcile.FieldDisplayVersion {
			assert.Equal(t, "", change.Current)
		}
	}
}

func TestValuesEqualAcrossStoredKinds(t *testing.T) {
	// A store backed by a hand-provisioned table may return integers in a
	// different Go kind; the plan must still see them as in sync.
	store := registry.NewMemStore()
	store.Seed(catalogRec, map[string]any{
		"Name":    "Widget 2.528.3",
		"Version": int(0x02FF14A3),
	})
	store.Seed(uninstallRec, map[string]any{
		"DisplayName":    "Widget 2.528.3",
		"DisplayVersion": "2.255.5283",
		"Version":        uint32(0x02FF14A3),
		"VersionMajor":   2,
		"VersionMinor":   int32(255),
	})

	plan, err := reconcile.BuildPlan(context.Background(), store, widgetGroups(t, "2.528.3"))
	assert.NoError(t, err)
	assert.Empty(t, plan.Changes)
	assert.Equal(t, 7, plan.Summary.InSync)
}
