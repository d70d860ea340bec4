// Package utils provides common utility functions for the versync application.
// It includes the value normalization helpers used when comparing registry
// field values across differently typed store backings.
package utils
