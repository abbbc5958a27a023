package layout

// ArraySlice stores each record as a fixed-size [5]int64 array by value.
//
// Memory-wise this is identical to ValueSlice (same size, same stride,
// one backing allocation); the difference is positional access instead
// of named fields. It is the tuple of the statically typed world.
type ArraySlice struct {
	recs [][FieldCount]int64
}

// NewArraySlice creates an empty ArraySlice.
func NewArraySlice() *ArraySlice {
	return &ArraySlice{}
}

// Name returns "array".
func (a *ArraySlice) Name() string { return "array" }

// Build constructs n records as fixed-size arrays.
func (a *ArraySlice) Build(n int) {
	recs := make([][FieldCount]int64, n)
	for i := range recs {
		recs[i] = [FieldCount]int64{
			int64(i), int64(2 * i), int64(3 * i), int64(4 * i), int64(5 * i),
		}
	}
	a.recs = recs
}

// Len returns the number of records.
func (a *ArraySlice) Len() int { return len(a.recs) }

// At returns record i.
func (a *ArraySlice) At(i int) Record {
	r := &a.recs[i]
	return Record{
		Value: r[fieldValue],
		A:     r[fieldA],
		B:     r[fieldB],
		C:     r[fieldC],
		D:     r[fieldD],
	}
}

// Sum returns the sum of the Value field.
func (a *ArraySlice) Sum() int64 {
	var total int64
	for i := range a.recs {
		total += a.recs[i][fieldValue]
	}
	return total
}

// Release drops the collection.
func (a *ArraySlice) Release() { a.recs = nil }
