// Package archive reads single entries out of zip format product archives.
//
// The installed product ships as a war style archive whose manifest names
// the true version. ExtractEntry opens a local archive and returns the
// bytes of the first entry matching a path glob; ExtractEntryFromObject
// does the same for an archive held in the release bucket. Nothing is
// unpacked to disk and the archive is never modified.
package archive
