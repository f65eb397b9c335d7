package storage_test

import (
	"strings"
	"testing"

	"object-storage/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{"PrefixAndLeadingSlash", "avatars", "/u/1.png", "avatars/u/1.png"},
		{"EmptyPrefix", "", "file.txt", "file.txt"},
		{"EmptyPrefixLeadingSlash", "", "/x", "x"},
		{"PrefixWithTrailingSlash", "avatars/", "u/1.png", "avatars/u/1.png"},
		{"OnlyOneSlashStripped", "", "//x", "/x"},
		{"NestedPrefix", "tenant/a", "b.txt", "tenant/a/b.txt"},
		{"EmptyKey", "avatars", "", "avatars/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.NormalizeKey(tt.prefix, tt.key))
		})
	}
}

func TestNormalizeKey_Properties(t *testing.T) {
	prefixes := []string{"a", "avatars", "x/y", "tenant-1"}
	keys := []string{"a/b", "file.txt", "u/1.png", "deep/er/key"}

	for _, p := range prefixes {
		for _, k := range keys {
			got := storage.NormalizeKey(p, k)
			assert.Equal(t, p+"/"+k, got, "exactly one slash between prefix and key")
			assert.False(t, strings.Contains(got, "//"))

			assert.Equal(t, storage.NormalizeKey(p, k), storage.NormalizeKey(p, "/"+k),
				"one leading slash on the key is ignored")
		}
	}
}
