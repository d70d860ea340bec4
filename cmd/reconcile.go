package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"versync/core/config"
	"versync/core/database"
	"versync/core/install"
	"versync/core/logger"
	"versync/core/reconcile"
	"versync/core/registry"
	"versync/core/storage"
	"versync/core/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags for the reconcile command
	dryRunReconcile bool
	yesConfirm      bool
)

// reconcileCmd aligns the record store with the release archive.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile product records with the release archive",
	Long: `Reconcile the product's metadata records with the version reported by
its release archive.

The archive manifest is read first, the version is packed into the legacy
32-bit form, and both record groups are compared field by field. Only the
fields that drifted are written; matching fields are left untouched, so a
repeated run is a no-op.

Examples:
  # Plan only, write nothing
  versync reconcile --dry-run

  # Reconcile with interactive confirmation
  versync reconcile

  # Reconcile non-interactively (cron, CI)
  versync reconcile --yes`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&dryRunReconcile, "dry-run", false, "Plan only, do not write any record fields")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm record writes (non-interactive)")

	RootCmd.AddCommand(reconcileCmd)
}

// openRecordStore opens the record backing selected by the configuration.
// The returned *gorm.DB is nil for the memory backing.
func openRecordStore(ctx context.Context, cfg *config.Config, l *zap.Logger) (registry.Store, *gorm.DB, error) {
	if !cfg.Records.IsValidStore() {
		return nil, nil, fmt.Errorf("unknown record store %q", cfg.Records.Store)
	}

	if cfg.Records.Store == reconcile.StoreMemory {
		l.Warn("Using the in-memory record store; writes do not survive the process")
		return registry.NewMemStore(), nil, nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := registry.NewDBStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		return nil, nil, err
	}
	return store, db, nil
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Open the record store
	store, _, err := openRecordStore(ctx, cfg, l)
	if err != nil {
		return err
	}

	// Connect to storage only when the archive lives in the release bucket
	var client storage.Client
	if cfg.Product.ArchiveObject != "" {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	source, err := install.NewSource(cfg.Product, client, cfg.Storage.Bucket)
	if err != nil {
		return err
	}

	// Step 1: Discover the true version
	raw, err := install.DiscoverVersion(ctx, source, cfg.Product.VersionField)
	if err != nil {
		return fmt.Errorf("failed to discover version: %w", err)
	}

	ver, err := version.Parse(raw)
	if err != nil {
		return err
	}
	encoded, err := ver.Encode()
	if err != nil {
		return err
	}

	l.Info("Discovered product version",
		zap.String("product", cfg.Product.BaseName),
		zap.String("raw", raw),
		zap.String("encoded", fmt.Sprintf("0x%08X", encoded)),
		zap.String("display", version.Decode(encoded)),
	)

	// Step 2: Plan (always runs)
	groups := reconcile.DesiredGroups(cfg.Records, cfg.Product.Prefix(), cfg.Product.DisplayName(raw), encoded)
	plan, err := reconcile.BuildPlan(ctx, store, groups)
	if err != nil {
		return fmt.Errorf("failed to plan reconcile: %w", err)
	}

	// Step 3: Print report
	printPlan(l, plan)

	if plan.Summary.Drifted == 0 {
		l.Info("Records already in sync. Nothing to do.")
		return nil
	}

	if dryRunReconcile {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Step 4: Apply (if confirmed)
	if !confirmRecordWrites() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	l.Info("Applying changes...")
	report := reconcile.ApplyPlan(ctx, store, plan)

	l.Info("Reconcile finished",
		zap.Int("written", len(report.Written)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("failed", len(report.Failed)),
	)

	if err := report.Err(); err != nil {
		for _, failure := range report.Failed {
			l.Error("Field write rejected",
				zap.String("group", failure.Group),
				zap.String("field", failure.Field),
				zap.String("reason", failure.Reason),
			)
		}
		return fmt.Errorf("reconcile incomplete: %w", err)
	}

	return nil
}

// printPlan prints a formatted drift report using logger.
func printPlan(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Drift report",
		zap.Int("fields", s.Fields),
		zap.Int("drifted", s.Drifted),
		zap.Int("in_sync", s.InSync),
	)

	if len(plan.Changes) > 0 {
		// Show sample of changes (max 5 for logger)
		maxShow := 5
		if len(plan.Changes) < maxShow {
			maxShow = len(plan.Changes)
		}
		for i := 0; i < maxShow; i++ {
			change := plan.Changes[i]
			l.Info("Pending write",
				zap.String("group", change.Group),
				zap.String("field", change.Field),
				zap.Any("current", change.Current),
				zap.Any("desired", change.Desired),
			)
		}
		if len(plan.Changes) > maxShow {
			l.Info("Additional changes not shown", zap.Int("count", len(plan.Changes)-maxShow))
		}
	}
}

// confirmRecordWrites prompts the user for confirmation or uses --yes flag.
func confirmRecordWrites() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to write the drifted record fields: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
