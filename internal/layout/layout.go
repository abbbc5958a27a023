// Package layout provides competing in-memory representations of a small
// fixed-shape record for benchmarking.
//
// Every layout stores the same logical data: n records whose five fields
// are a deterministic function of the record's index i:
//
//	Value=i  A=2i  B=3i  C=4i  D=5i
//
// The layouts differ only in how the records are laid out in memory:
//   - ValueSlice:   []Record, structs stored by value
//   - PointerSlice: []*Record, one heap allocation per record
//   - ArraySlice:   [][5]int64, fixed-size arrays by value
//   - NestedSlice:  [][]int64, one slice allocation per record
//   - MapSlice:     []map[string]int64, one string-keyed map per record
//   - BoxedSlice:   []any, each record boxed behind an interface
//   - FlatSlice:    a single []int64 with stride 5 (one allocation total)
//   - Columnar:     five parallel []int64 columns (struct of arrays)
//
// All layouts must agree on Len, At, and Sum for the same n. That
// equivalence is what the correctness tests and the verify command check;
// the benchmarks measure how much the representation alone costs.
package layout

// FieldCount is the number of integer fields in a record.
const FieldCount = 5

// Field order within positional representations (array, nested, flat).
const (
	fieldValue = iota
	fieldA
	fieldB
	fieldC
	fieldD
)

// Record is the canonical value form of the unit of data under benchmark.
type Record struct {
	Value int64
	A     int64
	B     int64
	C     int64
	D     int64
}

// MakeRecord returns the record for index i.
func MakeRecord(i int) Record {
	return Record{
		Value: int64(i),
		A:     int64(2 * i),
		B:     int64(3 * i),
		C:     int64(4 * i),
		D:     int64(5 * i),
	}
}

// Layout builds, reads, and aggregates a collection of records stored in
// one particular memory representation.
//
// Implementations own their collection. Build replaces any previous
// collection; Release drops it so the memory becomes collectible.
// Layouts are not safe for concurrent use.
type Layout interface {
	// Name returns the layout's registry name.
	Name() string

	// Build constructs a collection of n records, where record i's
	// fields are (i, 2i, 3i, 4i, 5i). n must be non-negative.
	Build(n int)

	// Len returns the number of records in the current collection.
	Len() int

	// At materializes record i in canonical value form.
	At(i int) Record

	// Sum returns the sum of the Value field across the collection.
	Sum() int64

	// Release drops the collection.
	Release()
}

// All returns a fresh instance of every layout in canonical order.
func All() []Layout {
	return []Layout{
		NewValueSlice(),
		NewPointerSlice(),
		NewArraySlice(),
		NewNestedSlice(),
		NewMapSlice(),
		NewBoxedSlice(),
		NewFlatSlice(),
		NewColumnar(),
	}
}

// ByName returns a fresh instance of the named layout, or false if the
// name is not in the registry.
func ByName(name string) (Layout, bool) {
	for _, l := range All() {
		if l.Name() == name {
			return l, true
		}
	}
	return nil, false
}

// Names returns the registry names in canonical order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, l := range all {
		names[i] = l.Name()
	}
	return names
}
