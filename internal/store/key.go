package store

import (
	"fmt"
	"strings"
	"time"
)

// maxKeyLen is the store's document-key length limit.
const maxKeyLen = 500

// SanitizeKey normalizes a free-form identifier (email) into a safe
// document key. It never fails and never returns an empty string.
// Empty or whitespace-only input yields a timestamped fallback key.
func SanitizeKey(raw string) string {
	if raw == "" {
		return fmt.Sprintf("default_id_%d", time.Now().UnixNano())
	}

	// These characters are illegal in document-key syntax.
	key := strings.NewReplacer("/", "_", "#", "_", "$", "_", "[", "_", "]", "_").Replace(raw)

	if strings.TrimSpace(key) == "" {
		return fmt.Sprintf("empty_id_%d", time.Now().UnixNano())
	}

	// "." and ".." are reserved path segments.
	if key == "." || key == ".." {
		key = "id_" + strings.ReplaceAll(key, ".", "_")
	}

	if len(key) > maxKeyLen {
		key = key[:maxKeyLen]
	}
	return key
}
