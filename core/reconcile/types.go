package reconcile

import (
	"errors"

	"versync/core/registry"
)

// Field is one desired field value on a record group.
type Field struct {
	Name  string
	Value any
}

// Group is a record group with its lookup selector and desired fields.
// Fields are applied in slice order.
type Group struct {
	Name     string
	Selector registry.Selector
	Fields   []Field
}

// Change is one drifted field: the stored value differs from the desired
// one and a write is pending.
type Change struct {
	// Group names the record group the field belongs to.
	Group string `json:"group"`

	// Record is the full path of the located record.
	Record string `json:"record"`

	// Field is the field name within the record.
	Field string `json:"field"`

	// Current is the stored value, or the type default when absent.
	Current any `json:"current"`

	// Desired is the value the field should hold.
	Desired any `json:"desired"`

	rec registry.Record
}

// FieldRef identifies a field within a record group.
type FieldRef struct {
	Group string `json:"group"`
	Field string `json:"field"`
}

// Failure is a field write the store rejected.
type Failure struct {
	Group string `json:"group"`

	Field string `json:"field"`

	// Reason is the store's error text.
	Reason string `json:"reason"`

	// Err carries the wrapped write error for callers that inspect it.
	Err error `json:"-"`
}

// Plan is the outcome of the read phase: which fields drifted and which
// are already in sync.
type Plan struct {
	// Changes lists the pending writes in application order.
	Changes []Change `json:"changes"`

	// InSync lists the fields whose stored value already matches.
	InSync []FieldRef `json:"in_sync"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a plan.
type Summary struct {
	// Fields is the total number of fields examined.
	Fields int `json:"fields"`

	// Drifted counts fields with a pending write.
	Drifted int `json:"drifted"`

	// InSync counts fields left untouched.
	InSync int `json:"in_sync"`
}

// Report is the outcome of the write phase.
type Report struct {
	// Written lists the fields whose writes were applied.
	Written []FieldRef `json:"written"`

	// Skipped lists the fields that were already in sync.
	Skipped []FieldRef `json:"skipped"`

	// Failed lists the fields whose writes the store rejected.
	Failed []Failure `json:"failed"`
}

// Err returns nil when every pending write was applied, otherwise the
// joined write errors as a single diagnostic.
func (r *Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failed))
	for i, failure := range r.Failed {
		errs[i] = failure.Err
	}
	return errors.Join(errs...)
}

// Options controls reconcile behavior.
type Options struct {
	// DryRun stops after the plan; no writes are issued.
	DryRun bool
}
