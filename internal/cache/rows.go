package cache

// rowPolicy selects how a Rows cache maps requested rows onto slots.
type rowPolicy uint8

const (
	// policySingle keeps one slot, dirty whenever a different row is requested.
	policySingle rowPolicy = iota
	// policyDirect keeps one slot per row, indexed by the row itself.
	policyDirect
	// policyLRU keeps N slots with least-recently-used eviction.
	policyLRU
	// policyNone recomputes every request.
	policyNone
)

// none marks an empty slot or an unmapped row.
const none = -1

// Rows assigns scanline rows to a fixed arena of buffer slots.
//
// Rows only tracks slot ownership; the buffers themselves belong to the
// caller, which sizes its arena with Slots. A slot reported dirty must be
// recomputed before it is read.
//
// The LRU variant keeps its recency list as two index arrays (an intrusive
// doubly-linked list over slots), so Slot never allocates.
//
// Rows is not safe for concurrent use.
type Rows struct {
	policy rowPolicy
	slots  int

	// single
	last int

	// direct
	filled []bool

	// lru
	rowSlot []int32 // row -> slot, or none
	slotRow []int32 // slot -> row, or none
	prev    []int32 // towards most recently used
	next    []int32 // towards least recently used
	head    int32   // most recently used
	tail    int32   // least recently used
	used    int
}

// NewRows creates a slot policy for an image of the given height.
//
// A capacity of 0 or 1 yields a single slot. A capacity of at least height
// yields one slot per row, addressed directly. Anything in between is an
// N-way LRU cache keyed by row.
func NewRows(capacity, height int) *Rows {
	switch {
	case capacity >= height:
		return &Rows{
			policy: policyDirect,
			slots:  height,
			filled: make([]bool, height),
		}
	case capacity <= 1:
		return &Rows{
			policy: policySingle,
			slots:  1,
			last:   none,
		}
	}

	r := &Rows{
		policy:  policyLRU,
		slots:   capacity,
		rowSlot: make([]int32, height),
		slotRow: make([]int32, capacity),
		prev:    make([]int32, capacity),
		next:    make([]int32, capacity),
		head:    none,
		tail:    none,
	}
	for i := range r.rowSlot {
		r.rowSlot[i] = none
	}
	for i := range r.slotRow {
		r.slotRow[i] = none
		r.prev[i] = none
		r.next[i] = none
	}
	return r
}

// NewUncachedRows creates a single-slot policy that reports every request as
// dirty. Output computed through it must match a cached evaluation exactly.
func NewUncachedRows() *Rows {
	return &Rows{policy: policyNone, slots: 1}
}

// Slots returns the number of buffer slots the caller must provide.
func (r *Rows) Slots() int {
	return r.slots
}

// Slot returns the buffer slot holding row and whether that slot must be
// recomputed before use.
func (r *Rows) Slot(row int) (slot int, dirty bool) {
	switch r.policy {
	case policyDirect:
		if r.filled[row] {
			return row, false
		}
		r.filled[row] = true
		return row, true

	case policySingle:
		if r.last == row {
			return 0, false
		}
		r.last = row
		return 0, true

	case policyLRU:
		return r.lruSlot(row)

	default:
		return 0, true
	}
}

// lruSlot implements the N-way associative policy.
func (r *Rows) lruSlot(row int) (int, bool) {
	if s := r.rowSlot[row]; s != none {
		r.moveToFront(s)
		return int(s), false
	}

	var s int32
	if r.used < r.slots {
		s = int32(r.used)
		r.used++
		r.pushFront(s)
	} else {
		s = r.tail
		r.rowSlot[r.slotRow[s]] = none
		r.moveToFront(s)
	}
	r.slotRow[s] = int32(row)
	r.rowSlot[row] = s
	return int(s), true
}

// pushFront links an unlinked slot as most recently used.
func (r *Rows) pushFront(s int32) {
	r.prev[s] = none
	r.next[s] = r.head
	if r.head != none {
		r.prev[r.head] = s
	}
	r.head = s
	if r.tail == none {
		r.tail = s
	}
}

// moveToFront relinks s as most recently used.
func (r *Rows) moveToFront(s int32) {
	if s == r.head {
		return
	}
	r.unlink(s)
	r.pushFront(s)
}

// unlink removes s from the recency list.
func (r *Rows) unlink(s int32) {
	if p := r.prev[s]; p != none {
		r.next[p] = r.next[s]
	} else {
		r.head = r.next[s]
	}
	if n := r.next[s]; n != none {
		r.prev[n] = r.prev[s]
	} else {
		r.tail = r.prev[s]
	}
	r.prev[s] = none
	r.next[s] = none
}
