// pkg/pathfind/pq.go
package pathfind

// frontierItem is one open-set entry. seq is a monotonically increasing
// insertion counter used as the secondary ordering key, which makes the
// tie-break between equal f-values deterministic: the node discovered first
// wins.
type frontierItem[T comparable] struct {
	node  T
	fval  float64
	seq   int
	index int
}

type frontier[T comparable] []*frontierItem[T]

func (f frontier[T]) Len() int { return len(f) }

func (f frontier[T]) Less(i, j int) bool {
	if f[i].fval != f[j].fval {
		return f[i].fval < f[j].fval
	}
	return f[i].seq < f[j].seq
}

func (f frontier[T]) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier[T]) Push(x any) {
	item := x.(*frontierItem[T])
	item.index = len(*f)
	*f = append(*f, item)
}

func (f *frontier[T]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}
