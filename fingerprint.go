package spreadsheet

import (
	"bytes"
	"crypto/md5"

	"github.com/google/uuid"
)

// Fingerprint hashes the sheet's tab-separated value rendering (the same
// text PrintValues emits) into a UUID, giving callers a cheap, stable
// identity for "has this sheet's visible content changed" without
// exposing cache internals — the same shape of problem BlobHash solves
// for embedded media blobs in go-xl.
func (s *Sheet) Fingerprint() (uuid.UUID, error) {
	var buf bytes.Buffer
	if err := s.PrintValues(&buf); err != nil {
		return uuid.UUID{}, err
	}
	sum := md5.Sum(buf.Bytes())
	return uuid.FromBytes(sum[:])
}
