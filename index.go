package lzparse

// Eviction selects which fingerprint an Index drops when it holds MaxKeys
// fingerprints and a new one arrives.
type Eviction int

const (
	// EvictOldest drops the fingerprint that was inserted first.
	// Lookups do not change the order.
	EvictOldest Eviction = iota

	// EvictLeastRecent drops the fingerprint that was least recently looked
	// up or inserted.
	EvictLeastRecent
)

const (
	defaultHistoryLen = 100
	defaultMaxKeys    = 1 << 20
)

// An Index maps fingerprints (short byte sequences, packed into a uint64) to
// the positions where they occurred, most recent first.
//
// Each fingerprint keeps at most HistoryLen positions; when the history is
// full, the oldest position is overwritten. The Index as a whole keeps at most
// MaxKeys fingerprints, evicting according to Eviction.
//
// The zero value is ready to use.
type Index struct {
	// HistoryLen is the number of positions kept for each fingerprint.
	// The default is 100.
	HistoryLen int

	// MaxKeys is the number of fingerprints kept. The default is 1<<20;
	// a negative value means no limit.
	MaxKeys int

	Eviction Eviction

	table   map[uint64]int32
	buckets []bucket

	// head and tail are the ends of the list that orders the buckets for
	// eviction. head is evicted first.
	head, tail int32
}

// A bucket holds the positions for one fingerprint in a ring buffer.
type bucket struct {
	key       uint64
	positions []int32
	last      int32 // index of the newest entry in positions

	prev, next int32
}

func (b *bucket) push(pos int32, limit int) {
	if len(b.positions) < limit {
		b.positions = append(b.positions, pos)
		b.last = int32(len(b.positions) - 1)
		return
	}
	b.last++
	if int(b.last) >= len(b.positions) {
		b.last = 0
	}
	b.positions[b.last] = pos
}

func (x *Index) init() {
	if x.HistoryLen <= 0 {
		x.HistoryLen = defaultHistoryLen
	}
	if x.MaxKeys == 0 {
		x.MaxKeys = defaultMaxKeys
	}
	x.table = make(map[uint64]int32)
	x.buckets = x.buckets[:0]
	x.head, x.tail = -1, -1
}

// Reset removes all fingerprints from x.
func (x *Index) Reset() {
	x.table = nil
	x.buckets = x.buckets[:0]
	x.head, x.tail = -1, -1
}

// Len returns the number of fingerprints in x.
func (x *Index) Len() int {
	return len(x.table)
}

// Lookup appends the positions recorded for fp to dst, most recent first,
// and returns dst.
func (x *Index) Lookup(dst []int, fp uint64) []int {
	b, ok := x.table[fp]
	if !ok {
		return dst
	}
	if x.Eviction == EvictLeastRecent && b != x.tail {
		x.unlink(b)
		x.pushBack(b)
	}

	bk := &x.buckets[b]
	for i := bk.last; i >= 0; i-- {
		dst = append(dst, int(bk.positions[i]))
	}
	for i := int32(len(bk.positions)) - 1; i > bk.last; i-- {
		dst = append(dst, int(bk.positions[i]))
	}
	return dst
}

// Insert records that fp occurred at pos.
func (x *Index) Insert(fp uint64, pos int) {
	if x.table == nil {
		x.init()
	}

	if b, ok := x.table[fp]; ok {
		x.buckets[b].push(int32(pos), x.HistoryLen)
		if x.Eviction == EvictLeastRecent && b != x.tail {
			x.unlink(b)
			x.pushBack(b)
		}
		return
	}

	var b int32
	switch {
	case x.MaxKeys > 0 && len(x.table) >= x.MaxKeys:
		// Reuse the bucket of the fingerprint being evicted.
		b = x.head
		x.unlink(b)
		delete(x.table, x.buckets[b].key)

	case len(x.buckets) < cap(x.buckets):
		b = int32(len(x.buckets))
		x.buckets = x.buckets[:b+1]

	default:
		b = int32(len(x.buckets))
		x.buckets = append(x.buckets, bucket{})
	}

	bk := &x.buckets[b]
	bk.key = fp
	bk.positions = bk.positions[:0]
	bk.push(int32(pos), x.HistoryLen)
	x.table[fp] = b
	x.pushBack(b)
}

func (x *Index) pushBack(b int32) {
	bk := &x.buckets[b]
	bk.prev, bk.next = x.tail, -1
	if x.tail >= 0 {
		x.buckets[x.tail].next = b
	} else {
		x.head = b
	}
	x.tail = b
}

func (x *Index) unlink(b int32) {
	bk := &x.buckets[b]
	if bk.prev >= 0 {
		x.buckets[bk.prev].next = bk.next
	} else {
		x.head = bk.next
	}
	if bk.next >= 0 {
		x.buckets[bk.next].prev = bk.prev
	} else {
		x.tail = bk.prev
	}
	bk.prev, bk.next = -1, -1
}
