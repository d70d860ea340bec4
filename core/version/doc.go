// Package version implements the packed 32-bit version encoding used by the
// product's legacy installer records.
//
// The installer stores a product version as a single DWORD with byte-lane
// packing, most significant byte first:
//
//	bits 24-31: major
//	bits 16-23: minor
//	bits  0-15: patch
//
// Two quirks of the original format are preserved deliberately:
//
//  1. A version with only one or two components and minor <= 255 encodes as
//     (major<<24) alone; the minor lane is left empty rather than set to the
//     parsed minor. Records written this way cannot be distinguished from
//     "major.0.0".
//  2. When minor exceeds one byte, the minor lane is set to the 0xFF sentinel
//     and the low 16 bits carry minor*10 (+patch when present). Decoding such
//     a value therefore yields minor=255 and a synthetic patch number.
//
// Both behaviors match the records existing installations already carry, so
// they must not be "corrected" here. Decode inverts the byte lanes, not the
// encoding: it round-trips only for major<=255, minor<=255, patch<=65535.
package version
