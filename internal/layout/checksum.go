package layout

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Checksum digests the canonical little-endian encoding of every record
// in the collection.
//
// Two layouts holding the same logical records produce the same checksum
// regardless of their in-memory representation, so this catches field
// mix-ups that a single summed field would miss (Sum only reads Value).
func Checksum(l Layout) uint64 {
	d := xxhash.New()
	var buf [FieldCount * 8]byte
	for i := 0; i < l.Len(); i++ {
		r := l.At(i)
		binary.LittleEndian.PutUint64(buf[0:], uint64(r.Value))
		binary.LittleEndian.PutUint64(buf[8:], uint64(r.A))
		binary.LittleEndian.PutUint64(buf[16:], uint64(r.B))
		binary.LittleEndian.PutUint64(buf[24:], uint64(r.C))
		binary.LittleEndian.PutUint64(buf[32:], uint64(r.D))
		// Digest.Write never fails
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
