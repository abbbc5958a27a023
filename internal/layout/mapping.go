package layout

// Field keys for the map representation.
const (
	keyValue = "value"
	keyA     = "a"
	keyB     = "b"
	keyC     = "c"
	keyD     = "d"
)

// MapSlice stores each record as a string-keyed map.
//
// This is by far the heaviest representation: every record is a hash
// table, every field access is a hash lookup, and every construction
// allocates buckets. It is the Go analogue of a dynamic-language dict
// and exists mostly as the upper bound of the comparison.
type MapSlice struct {
	recs []map[string]int64
}

// NewMapSlice creates an empty MapSlice.
func NewMapSlice() *MapSlice {
	return &MapSlice{}
}

// Name returns "map".
func (m *MapSlice) Name() string { return "map" }

// Build constructs n records, one map each.
func (m *MapSlice) Build(n int) {
	recs := make([]map[string]int64, n)
	for i := range recs {
		recs[i] = map[string]int64{
			keyValue: int64(i),
			keyA:     int64(2 * i),
			keyB:     int64(3 * i),
			keyC:     int64(4 * i),
			keyD:     int64(5 * i),
		}
	}
	m.recs = recs
}

// Len returns the number of records.
func (m *MapSlice) Len() int { return len(m.recs) }

// At returns record i.
func (m *MapSlice) At(i int) Record {
	r := m.recs[i]
	return Record{
		Value: r[keyValue],
		A:     r[keyA],
		B:     r[keyB],
		C:     r[keyC],
		D:     r[keyD],
	}
}

// Sum returns the sum of the Value field.
func (m *MapSlice) Sum() int64 {
	var total int64
	for _, r := range m.recs {
		total += r[keyValue]
	}
	return total
}

// Release drops the collection.
func (m *MapSlice) Release() { m.recs = nil }
