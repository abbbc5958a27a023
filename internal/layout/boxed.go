package layout

// BoxedSlice stores each record boxed behind an interface value.
//
// Storing a 40-byte struct in an any forces a heap allocation per record
// plus a type assertion on every read. This measures the cost of erasing
// the record's static type, which dynamic-language representations pay
// on every field access.
type BoxedSlice struct {
	recs []any
}

// NewBoxedSlice creates an empty BoxedSlice.
func NewBoxedSlice() *BoxedSlice {
	return &BoxedSlice{}
}

// Name returns "boxed".
func (x *BoxedSlice) Name() string { return "boxed" }

// Build constructs n records, boxing each one.
func (x *BoxedSlice) Build(n int) {
	recs := make([]any, n)
	for i := range recs {
		recs[i] = MakeRecord(i)
	}
	x.recs = recs
}

// Len returns the number of records.
func (x *BoxedSlice) Len() int { return len(x.recs) }

// At returns record i.
func (x *BoxedSlice) At(i int) Record {
	return x.recs[i].(Record)
}

// Sum returns the sum of the Value field.
func (x *BoxedSlice) Sum() int64 {
	var total int64
	for _, r := range x.recs {
		total += r.(Record).Value
	}
	return total
}

// Release drops the collection.
func (x *BoxedSlice) Release() { x.recs = nil }
