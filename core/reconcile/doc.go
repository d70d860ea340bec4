// Package reconcile drives the product's package database records toward
// the version its installed archive declares.
//
// The desired state is a set of record groups, each holding the fields the
// packaging convention keeps for a product: the catalog group carries the
// display name and packed version, the uninstall group additionally
// carries the decoded display version and the major/minor lanes. The
// engine splits the work into two phases:
//
// 1. BuildPlan locates each group's record by prefix, reads every desired
// field and classifies it as drifted or in sync. Absent fields read as 0
// for integers and "" for strings. A group that cannot be located aborts
// the plan; there is nothing to reconcile without a target record.
//
// 2. ApplyPlan writes the drifted fields, one SetField per field. In-sync
// fields are never written, so an untouched record gains no spurious
// modification timestamps. A rejected write is recorded and the remaining
// fields are still attempted; nothing is rolled back. Re-running after a
// partial failure is the recovery path, since an already-applied field
// reads back as in sync.
//
// The engine takes no locks. If something else mutates the store between
// the read and the write the last writer wins; the single-operator model
// this tool runs under accepts that.
package reconcile
