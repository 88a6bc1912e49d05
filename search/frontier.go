package search

import "container/heap"

// frontier is the set of discovered-but-not-yet-expanded node IDs,
// ordered per strategy. Priority is ignored by the unordered frontiers.
type frontier interface {
	Push(id int, priority float64)
	Pop() (id int, ok bool)
	Len() int
}

// newFrontier builds the frontier discipline for k.
func newFrontier(k Kind) frontier {
	switch k {
	case DepthFirst:
		return &lifoFrontier{}
	case UniformCost, AStar:
		f := &heapFrontier{}
		heap.Init(&f.items)
		return f
	default: // BreadthFirst
		return &fifoFrontier{}
	}
}

// fifoFrontier pops in strict insertion order (breadth-first).
type fifoFrontier struct {
	ids []int
}

func (f *fifoFrontier) Push(id int, _ float64) { f.ids = append(f.ids, id) }

func (f *fifoFrontier) Pop() (int, bool) {
	if len(f.ids) == 0 {
		return 0, false
	}
	id := f.ids[0]
	f.ids = f.ids[1:]

	return id, true
}

func (f *fifoFrontier) Len() int { return len(f.ids) }

// lifoFrontier pops the most recently pushed ID (depth-first).
type lifoFrontier struct {
	ids []int
}

func (f *lifoFrontier) Push(id int, _ float64) { f.ids = append(f.ids, id) }

func (f *lifoFrontier) Pop() (int, bool) {
	if len(f.ids) == 0 {
		return 0, false
	}
	n := len(f.ids) - 1
	id := f.ids[n]
	f.ids = f.ids[:n]

	return id, true
}

func (f *lifoFrontier) Len() int { return len(f.ids) }

// heapFrontier pops the lowest priority first. Equal priorities break by
// a monotonically increasing insertion counter, so runs over identical
// inputs pop in identical order. Duplicates are allowed: a node relaxed
// again before its first expansion is simply pushed again with the
// tighter priority (lazy decrease-key, as there is no closed set).
type heapFrontier struct {
	items priorityItems
	seq   int
}

func (f *heapFrontier) Push(id int, priority float64) {
	f.seq++
	heap.Push(&f.items, priorityItem{id: id, priority: priority, seq: f.seq})
}

func (f *heapFrontier) Pop() (int, bool) {
	if f.items.Len() == 0 {
		return 0, false
	}
	item := heap.Pop(&f.items).(priorityItem)

	return item.id, true
}

func (f *heapFrontier) Len() int { return f.items.Len() }

// priorityItem is one heap entry: a node ID, its priority at push time,
// and the tie-breaking insertion sequence number.
type priorityItem struct {
	id       int
	priority float64
	seq      int
}

// priorityItems implements heap.Interface ordered by (priority, seq).
type priorityItems []priorityItem

func (p priorityItems) Len() int { return len(p) }

func (p priorityItems) Less(i, j int) bool {
	if p[i].priority != p[j].priority {
		return p[i].priority < p[j].priority
	}

	return p[i].seq < p[j].seq
}

func (p priorityItems) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

func (p *priorityItems) Push(x interface{}) { *p = append(*p, x.(priorityItem)) }

func (p *priorityItems) Pop() interface{} {
	old := *p
	n := len(old)
	item := old[n-1]
	*p = old[:n-1]

	return item
}
