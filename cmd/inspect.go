package cmd

import (
	"context"
	"fmt"
	"os"

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
)

var showSchema bool

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "View the product's version and record state",
	Long: `Shows the version the release archive reports, its packed and decoded
forms, and the current contents of both record groups next to the values a
reconcile would write.`,
	Run: func(cmd *cobra.Command, args []string) {
		runInspect(cmd.Context())
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&showSchema, "schema", false, "Also print the registry_values table columns")
	RootCmd.AddCommand(inspectCmd)
}

func runInspect(ctx context.Context) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	store, db, err := openRecordStore(ctx, cfg, logg)
	if err != nil {
		logg.Fatal("Failed to open record store", zap.Error(err))
	}

	var client storage.Client
	if cfg.Product.ArchiveObject != "" {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
	}

	source, err := install.NewSource(cfg.Product, client, cfg.Storage.Bucket)
	if err != nil {
		logg.Fatal("Failed to resolve archive source", zap.Error(err))
	}

	raw, err := install.DiscoverVersion(ctx, source, cfg.Product.VersionField)
	if err != nil {
		logg.Fatal("Version discovery failed", zap.Error(err))
	}

	ver, err := version.Parse(raw)
	if err != nil {
		logg.Fatal("Version is unparseable", zap.String("raw", raw), zap.Error(err))
	}
	encoded, err := ver.Encode()
	if err != nil {
		logg.Fatal("Version cannot be packed", zap.String("raw", raw), zap.Error(err))
	}

	groups := reconcile.DesiredGroups(cfg.Records, cfg.Product.Prefix(), cfg.Product.DisplayName(raw), encoded)
	plan, err := reconcile.BuildPlan(ctx, store, groups)
	if err != nil {
		logg.Fatal("Failed to inspect records", zap.Error(err))
	}

	pending := make(map[reconcile.FieldRef]reconcile.Change, len(plan.Changes))
	for _, change := range plan.Changes {
		pending[reconcile.FieldRef{Group: change.Group, Field: change.Field}] = change
	}

	// Pretty Console Output
	fmt.Println("\n--- Product Version View ---")
	fmt.Printf("Product:        %s\n", cfg.Product.BaseName)
	fmt.Printf("Raw Version:    %s\n", raw)
	fmt.Printf("Encoded:        0x%08X (%d)\n", encoded, encoded)
	fmt.Printf("Display Form:   %s\n", version.Decode(encoded))
	fmt.Println("----------------------------")

	for _, group := range groups {
		// The plan above already located every group; this lookup cannot
		// miss anymore.
		rec, err := registry.Locate(ctx, store, group.Selector)
		if err != nil {
			logg.Fatal("Record lookup failed", zap.String("group", group.Name), zap.Error(err))
		}

		fmt.Printf("\n[%s] %s\n", group.Name, rec.Path())
		for _, field := range group.Fields {
			ref := reconcile.FieldRef{Group: group.Name, Field: field.Name}
			if change, ok := pending[ref]; ok {
				fmt.Printf("  %-16s %v  ->  %v\n", field.Name+":", change.Current, change.Desired)
			} else {
				fmt.Printf("  %-16s %v\n", field.Name+":", field.Value)
			}
		}
	}

	statusColor := "\033[32m" // Green
	state := "IN SYNC"
	if plan.Summary.Drifted > 0 {
		statusColor = "\033[33m" // Yellow
		state = fmt.Sprintf("DRIFT (%d of %d fields)", plan.Summary.Drifted, plan.Summary.Fields)
	}
	resetColor := "\033[0m"

	fmt.Println("\n----------------------------")
	fmt.Printf("Sync State:     %s%s%s\n", statusColor, state, resetColor)

	if showSchema {
		if db == nil {
			fmt.Println("\nSchema inspection needs the db record store.")
			return
		}

		columns, err := database.GetTableColumns(db, "registry_values")
		if err != nil {
			logg.Fatal("Failed to inspect schema", zap.Error(err))
		}

		fmt.Println("\nregistry_values columns:")
		for _, col := range columns {
			fmt.Printf("  %-12s %s\n", col.Field, col.Type)
		}
	}
}
