// Package fingerprint produces the deterministic fingerprints
// pkg/coordination's duplicate detection compares. spec.md §4.7 is
// explicit that "the core does not compute similarity scores" — so this
// helper lives outside the core, and the core only ever compares
// fingerprint strings it is handed.
package fingerprint

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Of returns a fixed-length hex fingerprint of payload, suitable as the
// Fingerprint field of a coordination.Submission.
func Of(payload []byte) string {
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
