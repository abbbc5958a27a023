package layout

// NestedSlice stores each record as its own []int64.
//
// Unlike ArraySlice, every record carries a slice header and its own
// backing allocation, so construction is n+1 allocations and the summing
// loop dereferences a slice per record.
type NestedSlice struct {
	recs [][]int64
}

// NewNestedSlice creates an empty NestedSlice.
func NewNestedSlice() *NestedSlice {
	return &NestedSlice{}
}

// Name returns "nested-slice".
func (s *NestedSlice) Name() string { return "nested-slice" }

// Build constructs n records, one slice allocation each.
func (s *NestedSlice) Build(n int) {
	recs := make([][]int64, n)
	for i := range recs {
		recs[i] = []int64{
			int64(i), int64(2 * i), int64(3 * i), int64(4 * i), int64(5 * i),
		}
	}
	s.recs = recs
}

// Len returns the number of records.
func (s *NestedSlice) Len() int { return len(s.recs) }

// At returns record i.
func (s *NestedSlice) At(i int) Record {
	r := s.recs[i]
	return Record{
		Value: r[fieldValue],
		A:     r[fieldA],
		B:     r[fieldB],
		C:     r[fieldC],
		D:     r[fieldD],
	}
}

// Sum returns the sum of the Value field.
func (s *NestedSlice) Sum() int64 {
	var total int64
	for _, r := range s.recs {
		total += r[fieldValue]
	}
	return total
}

// Release drops the collection.
func (s *NestedSlice) Release() { s.recs = nil }
