package chain

import (
	"bytes"
	"encoding/binary"
)

// encodeField writes a length-prefixed UTF-8 string: a big-endian uint32
// byte length followed by the bytes themselves, then the field separator.
// This is the canonical byte encoding spec §9 requires: fixed field order,
// explicit separators, big-endian integers, length-prefixed strings.
func encodeField(buf *bytes.Buffer, s string) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(s)))
	buf.Write(lenBuf[:])
	buf.WriteString(s)
	buf.WriteByte(fieldSeparator)
}

func encodeBytesField(buf *bytes.Buffer, b []byte) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
	buf.Write(lenBuf[:])
	buf.Write(b)
	buf.WriteByte(fieldSeparator)
}

const fieldSeparator = 0x00

// encodeRecord produces the canonical byte encoding of a record's fields in
// declared order: record_id, point, type, timestamp, payload, prior_hash.
// Every implementation of this kernel must agree on this exact encoding —
// it is the interop contract for reproducing any self_hash.
func encodeRecord(recordID, point, evidenceType, timestamp string, payload []byte, priorHash string) []byte {
	var buf bytes.Buffer
	encodeField(&buf, recordID)
	encodeField(&buf, point)
	encodeField(&buf, evidenceType)
	encodeField(&buf, timestamp)
	encodeBytesField(&buf, payload)
	encodeField(&buf, priorHash)
	return buf.Bytes()
}
