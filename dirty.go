package wavecollapse

// DirtySet tracks cells changed since the last external read: an
// append-only list paired with a membership bitmap so MarkDirty never adds
// a duplicate entry.
type DirtySet struct {
	list  []int
	dirty []bool
}

// NewDirtySet allocates a DirtySet for nCells cells, initially clean.
func NewDirtySet(nCells int) *DirtySet {
	return &DirtySet{
		list:  make([]int, 0, nCells),
		dirty: make([]bool, nCells),
	}
}

// MarkDirty records cell i as changed, if it is not already pending.
func (d *DirtySet) MarkDirty(i int) {
	if !d.dirty[i] {
		d.dirty[i] = true
		d.list = append(d.list, i)
	}
}

// Flush returns the pending dirty-cell list and clears it, so a subsequent
// call returns only cells changed afterwards.
func (d *DirtySet) Flush() []int {
	out := d.list
	for _, i := range out {
		d.dirty[i] = false
	}
	d.list = make([]int, 0, cap(out))
	return out
}

// Peek returns a copy of the pending dirty-cell list without clearing it.
func (d *DirtySet) Peek() []int {
	out := make([]int, len(d.list))
	copy(out, d.list)
	return out
}

// Clear drops all pending entries without returning them.
func (d *DirtySet) Clear() {
	d.list = d.list[:0]
	for i := range d.dirty {
		d.dirty[i] = false
	}
}

// MarkAllDirty replaces the pending list with every cell index, used after
// a revert rebuilds derived state wholesale.
func (d *DirtySet) MarkAllDirty() {
	d.list = d.list[:0]
	for i := range d.dirty {
		d.list = append(d.list, i)
		d.dirty[i] = true
	}
}
