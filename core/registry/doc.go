// Package registry models the OS package database as a small key-value
// store of product records.
//
// A Record is addressed by a parent path plus a child name, and holds named
// fields with integer or string values. The original system keeps these
// records in the Windows registry; this package abstracts the store behind
// the Store interface so the reconciler never touches a concrete backing.
// Two backings ship with versync:
//
//   - DBStore: one row per (parent, record, field) in MySQL via GORM. The
//     deployment points it at the database that mirrors the machine's
//     package metadata.
//   - MemStore: an in-memory store with operation counters, used by tests
//     and by smoke runs against an empty store.
//
// Record groups are located with Locate, which lists the children of a
// fixed parent path and keeps those whose match field starts with the
// product's well-known prefix. The legacy system silently took the first
// result of such a filter; Locate keeps that as the default and offers a
// strict mode that rejects ambiguous matches instead.
//
// Store operations are treated as fast local calls: no retries, no
// timeouts beyond what the backing itself applies. Reads and writes are
// not transactional across fields. Every SetField is its own atomic unit,
// which is exactly the granularity the reconciler's per-field error
// reporting relies on.
package registry
