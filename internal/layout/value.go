package layout

// ValueSlice stores records by value in a single contiguous slice.
//
// This is the natural Go representation: one allocation for the backing
// array, fields accessed by fixed offset. It is the baseline the other
// layouts are compared against.
type ValueSlice struct {
	recs []Record
}

// NewValueSlice creates an empty ValueSlice.
func NewValueSlice() *ValueSlice {
	return &ValueSlice{}
}

// Name returns "value-struct".
func (v *ValueSlice) Name() string { return "value-struct" }

// Build constructs n records by value.
func (v *ValueSlice) Build(n int) {
	recs := make([]Record, n)
	for i := range recs {
		recs[i] = MakeRecord(i)
	}
	v.recs = recs
}

// Len returns the number of records.
func (v *ValueSlice) Len() int { return len(v.recs) }

// At returns record i.
func (v *ValueSlice) At(i int) Record { return v.recs[i] }

// Sum returns the sum of the Value field.
func (v *ValueSlice) Sum() int64 {
	var total int64
	for i := range v.recs {
		total += v.recs[i].Value
	}
	return total
}

// Release drops the collection.
func (v *ValueSlice) Release() { v.recs = nil }
