package layout

// Columnar stores the collection as five parallel columns, one per field.
//
// Struct-of-arrays layout: summing one field walks a single dense slice
// with perfect cache locality and touches none of the other four columns.
// Materializing a whole record costs five indexed loads instead of one.
type Columnar struct {
	value []int64
	a     []int64
	b     []int64
	c     []int64
	d     []int64
}

// NewColumnar creates an empty Columnar.
func NewColumnar() *Columnar {
	return &Columnar{}
}

// Name returns "columnar".
func (c *Columnar) Name() string { return "columnar" }

// Build constructs n records column by column.
func (c *Columnar) Build(n int) {
	c.value = make([]int64, n)
	c.a = make([]int64, n)
	c.b = make([]int64, n)
	c.c = make([]int64, n)
	c.d = make([]int64, n)
	for i := 0; i < n; i++ {
		c.value[i] = int64(i)
		c.a[i] = int64(2 * i)
		c.b[i] = int64(3 * i)
		c.c[i] = int64(4 * i)
		c.d[i] = int64(5 * i)
	}
}

// Len returns the number of records.
func (c *Columnar) Len() int { return len(c.value) }

// At returns record i.
func (c *Columnar) At(i int) Record {
	return Record{
		Value: c.value[i],
		A:     c.a[i],
		B:     c.b[i],
		C:     c.c[i],
		D:     c.d[i],
	}
}

// Sum returns the sum of the Value field.
func (c *Columnar) Sum() int64 {
	var total int64
	for _, v := range c.value {
		total += v
	}
	return total
}

// Release drops all columns.
func (c *Columnar) Release() {
	c.value = nil
	c.a = nil
	c.b = nil
	c.c = nil
	c.d = nil
}
