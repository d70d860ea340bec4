package reconcile

import (
	"context"
	"fmt"

	"versync/core/registry"
	"versync/core/utils"
)

// BuildPlan locates every group's record and classifies each desired field
// as drifted or in sync. It performs no writes. A group that cannot be
// located or read aborts the whole plan.
func BuildPlan(ctx context.Context, store registry.Store, groups []Group) (*Plan, error) {
	plan := &Plan{
		Changes: []Change{},
		InSync:  []FieldRef{},
	}

	for _, group := range groups {
		rec, err := registry.Locate(ctx, store, group.Selector)
		if err != nil {
			return nil, fmt.Errorf("locate %s group: %w", group.Name, err)
		}

		for _, field := range group.Fields {
			current, err := store.GetField(ctx, rec, field.Name, defaultFor(field.Value))
			if err != nil {
				return nil, fmt.Errorf("read %s %s[%s]: %w", group.Name, rec.Path(), field.Name, err)
			}

			if valuesEqual(field.Value, current) {
				plan.InSync = append(plan.InSync, FieldRef{Group: group.Name, Field: field.Name})
				continue
			}

			plan.Changes = append(plan.Changes, Change{
				Group:   group.Name,
				Record:  rec.Path(),
				Field:   field.Name,
				Current: current,
				Desired: field.Value,
				rec:     rec,
			})
		}
	}

	plan.Summary = Summary{
		Fields:  len(plan.Changes) + len(plan.InSync),
		Drifted: len(plan.Changes),
		InSync:  len(plan.InSync),
	}
	return plan, nil
}

// ApplyPlan writes the plan's pending changes. Each SetField is its own
// atomic unit; a rejected write is recorded in the report and the
// remaining changes are still attempted.
func ApplyPlan(ctx context.Context, store registry.Store, plan *Plan) *Report {
	report := &Report{
		Written: []FieldRef{},
		Skipped: append([]FieldRef{}, plan.InSync...),
		Failed:  []Failure{},
	}

	for _, change := range plan.Changes {
		if err := store.SetField(ctx, change.rec, change.Field, change.Desired); err != nil {
			werr := &registry.WriteError{Record: change.rec, Field: change.Field, Err: err}
			report.Failed = append(report.Failed, Failure{
				Group:  change.Group,
				Field:  change.Field,
				Reason: err.Error(),
				Err:    werr,
			})
			continue
		}
		report.Written = append(report.Written, FieldRef{Group: change.Group, Field: change.Field})
	}

	return report
}

// Run builds the plan and, unless opts.DryRun is set, applies it. The
// report is nil on a dry run. Write failures do not surface here; they
// live in the report so the caller keeps the per-field detail.
func Run(ctx context.Context, store registry.Store, groups []Group, opts Options) (*Plan, *Report, error) {
	plan, err := BuildPlan(ctx, store, groups)
	if err != nil {
		return nil, nil, err
	}
	if opts.DryRun {
		return plan, nil, nil
	}
	return plan, ApplyPlan(ctx, store, plan), nil
}

// valuesEqual compares a stored value against a desired one after
// normalizing both to the desired value's kind. Stores differ in how they
// surface integers, so 7, int64(7) and "7" all count as equal to int64(7).
func valuesEqual(desired, current any) bool {
	if s, ok := desired.(string); ok {
		return utils.ToString(current) == s
	}
	return utils.ToInt64(current) == utils.ToInt64(desired)
}

// defaultFor returns the documented read default for an absent field: ""
// for string fields, 0 for integer fields.
func defaultFor(desired any) any {
	if _, ok := desired.(string); ok {
		return ""
	}
	return int64(0)
}
