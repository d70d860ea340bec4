package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"versync/core/utils"
)

// ErrNotFound reports that no record matched a lookup.
var ErrNotFound = errors.New("record not found")

// ErrAmbiguous reports that a strict lookup matched more than one record.
var ErrAmbiguous = errors.New("ambiguous record match")

// Record addresses one entry in the store: a child name under a parent path.
type Record struct {
	Parent string
	Name   string
}

// Path returns the full slash-joined address of the record.
func (r Record) Path() string {
	return r.Parent + "/" + r.Name
}

// Store is the minimal surface the reconciler needs from a record backing.
//
// GetField returns def when the field is absent; absence is not an error.
// SetField creates the field when missing and overwrites it otherwise, as a
// single atomic unit. Implementations return integer values as int64 and
// everything else as string.
type Store interface {
	ListChildren(ctx context.Context, parent string) ([]Record, error)
	GetField(ctx context.Context, rec Record, field string, def any) (any, error)
	SetField(ctx context.Context, rec Record, field string, value any) error
}

// WriteError wraps a rejected SetField with the record and field it hit.
type WriteError struct {
	Record Record
	Field  string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s[%s]: %v", e.Record.Path(), e.Field, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Selector describes a prefix lookup over one record group.
type Selector struct {
	// Parent is the fixed path whose children are scanned.
	Parent string
	// MatchField is the field whose value is compared against Prefix.
	MatchField string
	// Prefix is the product's well-known display prefix.
	Prefix string
	// Unique requires exactly one match. When false the first match in the
	// store's listing order wins, which is what the legacy tooling did.
	Unique bool
}

// Locate scans the children of sel.Parent and returns the record whose
// MatchField value starts with sel.Prefix. With no match it returns
// ErrNotFound; with several matches and sel.Unique set it returns
// ErrAmbiguous.
func Locate(ctx context.Context, store Store, sel Selector) (Record, error) {
	children, err := store.ListChildren(ctx, sel.Parent)
	if err != nil {
		return Record{}, fmt.Errorf("list %s: %w", sel.Parent, err)
	}

	var matches []Record
	for _, rec := range children {
		val, err := store.GetField(ctx, rec, sel.MatchField, "")
		if err != nil {
			return Record{}, fmt.Errorf("read %s[%s]: %w", rec.Path(), sel.MatchField, err)
		}
		if strings.HasPrefix(utils.ToString(val), sel.Prefix) {
			matches = append(matches, rec)
		}
	}

	switch {
	case len(matches) == 0:
		return Record{}, fmt.Errorf("%w: no child of %s has %s starting with %q",
			ErrNotFound, sel.Parent, sel.MatchField, sel.Prefix)
	case len(matches) > 1 && sel.Unique:
		return Record{}, fmt.Errorf("%w: %d children of %s have %s starting with %q",
			ErrAmbiguous, len(matches), sel.Parent, sel.MatchField, sel.Prefix)
	default:
		return matches[0], nil
	}
}
