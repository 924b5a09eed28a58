package ingest

import (
	"crypto/md5"
	"encoding/hex"
)

// Fingerprint computes the content hash used for change detection. Two
// byte-identical uploads always map to the same fingerprint; any edit maps to
// a different one. Not a security boundary.
func Fingerprint(content []byte) string {
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])
}
