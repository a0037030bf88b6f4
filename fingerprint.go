package errpipeline

import (
	"hash/fnv"
	"io"
	"strconv"
)

// fingerprintPrefix namespaces fingerprints so a future hash change can bump
// the tag without colliding with persisted values.
const fingerprintPrefix = "fp1:"

// FingerprintOf hashes (kind, domain, status) plus an optional salt into a
// short deduplication key. FNV-1a over the UTF-8 bytes, rendered base-36.
// Purely for grouping; not a security hash.
func FingerprintOf(kind Kind, domain Domain, status int, salt string) string {
	h := fnv.New64a()
	_, _ = io.WriteString(h, string(kind))
	_, _ = io.WriteString(h, "|")
	_, _ = io.WriteString(h, string(domain))
	_, _ = io.WriteString(h, "|")
	_, _ = io.WriteString(h, strconv.Itoa(status))
	if salt != "" {
		_, _ = io.WriteString(h, "|")
		_, _ = io.WriteString(h, salt)
	}
	return fingerprintPrefix + strconv.FormatUint(h.Sum64(), 36)
}
