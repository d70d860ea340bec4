// Package database handles database connections and schema inspection.
//
// It wraps GORM so the rest of versync only sees a ready *gorm.DB. The
// record store rides on MySQL in deployments; tests and smoke runs open an
// in-memory SQLite database through the same Connect call.
//
// # Connect
//
// Connect builds the DSN from Config, opens the connection, tunes the pool
// and pings before returning, so a misconfigured store fails at startup
// rather than mid-reconcile.
//
// # Schema Inspection
//
// GetTableColumns returns the column layout of a table in a dialect
// agnostic form. The inspect command uses it to print the registry_values
// layout when diagnosing a store that was provisioned by hand.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "registry_values")
package database
