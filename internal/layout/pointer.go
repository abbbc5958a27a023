package layout

// PointerSlice stores one heap-allocated record behind each slice element.
//
// Every record is a separate allocation, so the garbage collector has n
// objects to track and the summing loop chases a pointer per record.
// This is the closest Go analogue of a per-instance object allocation.
type PointerSlice struct {
	recs []*Record
}

// NewPointerSlice creates an empty PointerSlice.
func NewPointerSlice() *PointerSlice {
	return &PointerSlice{}
}

// Name returns "pointer-struct".
func (p *PointerSlice) Name() string { return "pointer-struct" }

// Build constructs n records, one allocation each.
func (p *PointerSlice) Build(n int) {
	recs := make([]*Record, n)
	for i := range recs {
		r := MakeRecord(i)
		recs[i] = &r
	}
	p.recs = recs
}

// Len returns the number of records.
func (p *PointerSlice) Len() int { return len(p.recs) }

// At returns record i.
func (p *PointerSlice) At(i int) Record { return *p.recs[i] }

// Sum returns the sum of the Value field.
func (p *PointerSlice) Sum() int64 {
	var total int64
	for _, r := range p.recs {
		total += r.Value
	}
	return total
}

// Release drops the collection.
func (p *PointerSlice) Release() { p.recs = nil }
