package foundation

import "strings"

// ZeroHash is the prior_hash of the first record in any hash chain: 64
// lowercase zero characters, per the hash-format contract.
var ZeroHash = strings.Repeat("0", 64)

// FieldSeparator is the single byte appended after each field when
// pkg/intent and pkg/authorization hash their records. Those encoders write
// each field's bytes without a length prefix, so a field containing 0x00 is
// not distinguished from a field boundary. pkg/chain's record encoding
// length-prefixes its fields and uses its own separator constant.
const FieldSeparator = byte(0x00)
