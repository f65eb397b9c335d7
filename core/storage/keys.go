package storage

import "strings"

// NormalizeKey joins the configured prefix and a caller supplied key.
// A non-empty prefix always ends with exactly one "/" and a single leading
// "/" is dropped from the key.
func NormalizeKey(prefix, key string) string {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	key = strings.TrimPrefix(key, "/")
	return prefix + key
}
