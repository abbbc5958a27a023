package layout

// FlatSlice packs all records into a single []int64 with stride 5.
//
// One allocation for the whole collection, no per-record headers, fields
// found by index arithmetic. This is the fixed-layout, minimal-overhead
// representation that slot-based objects approximate.
type FlatSlice struct {
	data []int64
}

// NewFlatSlice creates an empty FlatSlice.
func NewFlatSlice() *FlatSlice {
	return &FlatSlice{}
}

// Name returns "flat".
func (f *FlatSlice) Name() string { return "flat" }

// Build constructs n records packed end to end.
func (f *FlatSlice) Build(n int) {
	data := make([]int64, n*FieldCount)
	for i := 0; i < n; i++ {
		base := i * FieldCount
		data[base+fieldValue] = int64(i)
		data[base+fieldA] = int64(2 * i)
		data[base+fieldB] = int64(3 * i)
		data[base+fieldC] = int64(4 * i)
		data[base+fieldD] = int64(5 * i)
	}
	f.data = data
}

// Len returns the number of records.
func (f *FlatSlice) Len() int { return len(f.data) / FieldCount }

// At returns record i.
func (f *FlatSlice) At(i int) Record {
	base := i * FieldCount
	return Record{
		Value: f.data[base+fieldValue],
		A:     f.data[base+fieldA],
		B:     f.data[base+fieldB],
		C:     f.data[base+fieldC],
		D:     f.data[base+fieldD],
	}
}

// Sum returns the sum of the Value field.
func (f *FlatSlice) Sum() int64 {
	var total int64
	for i := fieldValue; i < len(f.data); i += FieldCount {
		total += f.data[i]
	}
	return total
}

// Release drops the collection.
func (f *FlatSlice) Release() { f.data = nil }
