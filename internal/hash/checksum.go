// Package hash computes the xxHash64 checksums stored in block headers.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates a checksum over several writes, e.g. one record at a time.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns an empty digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Write adds p to the running checksum. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	return d.d.Write(p)
}

// Sum64 returns the checksum of everything written so far.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

// Reset clears the digest for reuse.
func (d *Digest) Reset() {
	d.d.Reset()
}
