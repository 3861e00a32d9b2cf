package stash

import "strings"

// joinKey computes the full storage key for a bare key. Plain
// concatenation, no escaping: the prefix must be chosen to avoid
// collisions with other namespaces sharing the same driver.
func joinKey(prefix, key string) string {
	return prefix + key
}

// trimKey recovers the bare key from a full storage key. Keys outside the
// namespace are returned unchanged.
func trimKey(prefix, fullKey string) string {
	return strings.TrimPrefix(fullKey, prefix)
}

// inNamespace reports whether a full storage key belongs to the
// namespace. The test is purely lexical; the prefix is the only
// ownership marker an entry has.
func inNamespace(prefix, fullKey string) bool {
	return strings.HasPrefix(fullKey, prefix)
}
