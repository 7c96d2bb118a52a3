// Package canonicalize produces byte-for-byte comparable JSON from
// structured values, using the upstream JSON Canonicalization Scheme
// (RFC 8785) implementation rather than a hand-rolled equivalent.
package canonicalize

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// JSON marshals v with the standard library, then canonicalizes the result
// per RFC 8785: sorted object keys, no insignificant whitespace, fixed
// number formatting.
func JSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: marshal: %w", err)
	}
	out, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: jcs transform: %w", err)
	}
	return out, nil
}

// Hash returns the SHA-256 hex digest of the canonical JSON form of v.
func Hash(v any) (string, error) {
	b, err := JSON(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Equal reports whether two values are equal under canonical JSON
// comparison — used by L10 to decide whether independently supplied
// evidence sources agree, without ever relying on Go struct equality or
// map-ordering-sensitive comparisons.
func Equal(a, b any) (bool, error) {
	ca, err := JSON(a)
	if err != nil {
		return false, err
	}
	cb, err := JSON(b)
	if err != nil {
		return false, err
	}
	return string(ca) == string(cb), nil
}
