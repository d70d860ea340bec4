package manifest

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNotFound reports that the requested key has no line in the manifest.
var ErrNotFound = errors.New("manifest field not found")

// ExtractField returns the value of the first "key: value" line in data.
// The key must start its line; a key that only appears as the suffix of a
// longer key does not match. Trailing whitespace, including the carriage
// return of CRLF manifests, is stripped from the value.
func ExtractField(data []byte, key string) (string, error) {
	re := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `:[ \t]*(.*)$`)
	match := re.FindSubmatch(data)
	if match == nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return strings.TrimRight(string(match[1]), " \t\r"), nil
}
