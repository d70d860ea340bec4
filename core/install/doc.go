// Package install describes the one installed product versync manages and
// discovers its true version.
//
// The version of record is not what the package database says; it is what
// the installed archive's manifest says. A Source knows where that archive
// lives, either a local file or an object in the release bucket, and
// returns its manifest bytes. DiscoverVersion extracts the version field
// from those bytes, giving the raw dotted string the reconciler encodes
// and syncs.
package install
