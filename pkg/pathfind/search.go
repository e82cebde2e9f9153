// pkg/pathfind/search.go
package pathfind

import (
	"container/heap"
	"errors"
	"math"
)

// ErrEmptyFrontier reports a best-node selection from an empty open set. The
// loop guard makes this unreachable for a correctly constructed search; it is
// surfaced loudly instead of silently returning a wrong result.
var ErrEmptyFrontier = errors.New("pathfind: best-node selection from empty frontier")

// ErrNegativeMaxDistance reports a negative search radius.
var ErrNegativeMaxDistance = errors.New("pathfind: max distance must be non-negative")

// Result is the outcome of one search.
//
// When Found is false, Path still carries the best-effort reconstruction from
// the last node the search evaluated. Callers must treat that as a partial
// path, never as a route to the requested goal.
type Result[T comparable] struct {
	// Path is the node sequence in traversal order, start to end inclusive.
	Path []T
	// Cost is the accumulated path cost of the final node on Path.
	Cost float64
	// Expanded counts nodes moved to the closed set.
	Expanded int
	// FrontierPushes counts insertions into the open set, including the
	// start node. Nodes pruned by the distance cap are never pushed.
	FrontierPushes int
	// Found reports whether the goal node was reached.
	Found bool
}

// FindPath runs an A* search from start to end and returns the resulting
// path. The search is single-threaded and runs to completion; all per-search
// scratch state (costs, estimates, predecessors) lives in side tables owned by
// this call, so the graph itself is never mutated and the same nodes can take
// part in any number of independent searches.
//
// "No path" is a normal outcome reported through Result.Found; the returned
// error is reserved for invariant violations.
func FindPath[T Node[T]](start, end T, opts ...Option) (Result[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxDistance < 0 {
		return Result[T]{}, ErrNegativeMaxDistance
	}

	s := newSearch(start, end, cfg)
	last := start
	for s.open.Len() > 0 {
		current, err := s.selectBest()
		if err != nil {
			return Result[T]{}, err
		}
		last = current
		if current == end {
			return s.finish(current, true), nil
		}
		s.expand(current)
		s.close(current)
		if s.budgetExhausted() {
			break
		}
	}
	return s.finish(last, false), nil
}

// search holds the per-call scratch state: the frontier plus the side tables
// that stand in for per-node cost, estimate and predecessor fields. Absent
// entries mean "unset" and compare as +Inf.
type search[T Node[T]] struct {
	cfg config
	end T

	open      frontier[T]
	openItems map[T]*frontierItem[T]
	closed    map[T]struct{}
	gScore    map[T]float64
	hScore    map[T]float64
	cameFrom  map[T]T

	seq      int
	expanded int
	pushes   int
}

func newSearch[T Node[T]](start, end T, cfg config) *search[T] {
	s := &search[T]{
		cfg:       cfg,
		end:       end,
		open:      make(frontier[T], 0),
		openItems: make(map[T]*frontierItem[T]),
		closed:    make(map[T]struct{}),
		gScore:    make(map[T]float64),
		hScore:    make(map[T]float64),
		cameFrom:  make(map[T]T),
	}
	heap.Init(&s.open)
	s.gScore[start] = 0
	s.hScore[start] = cfg.estimate(start.Position(), end.Position())
	s.push(start, s.hScore[start])
	return s
}

// costOf returns the accumulated cost of a node, treating unset as +Inf.
func (s *search[T]) costOf(node T) float64 {
	if g, ok := s.gScore[node]; ok {
		return g
	}
	return math.Inf(1)
}

func (s *search[T]) push(node T, fval float64) {
	item := &frontierItem[T]{node: node, fval: fval, seq: s.seq}
	s.seq++
	s.pushes++
	heap.Push(&s.open, item)
	s.openItems[node] = item
}

// selectBest pops the open node with the lowest f-value. Ties resolve to the
// node discovered first.
func (s *search[T]) selectBest() (T, error) {
	if s.open.Len() == 0 {
		var zero T
		return zero, ErrEmptyFrontier
	}
	item := heap.Pop(&s.open).(*frontierItem[T])
	delete(s.openItems, item.node)
	return item.node, nil
}

// expand relaxes every neighbor of the current node. A neighbor whose
// candidate cost improves on its current cost always receives the update;
// it joins the frontier only while its cumulative cost stays strictly below
// the distance cap.
func (s *search[T]) expand(current T) {
	g := s.gScore[current]
	endPos := s.end.Position()
	for _, neighbor := range current.Connections() {
		if neighbor == current {
			// Self-edges would pin the search in place.
			continue
		}
		if _, done := s.closed[neighbor]; done {
			continue
		}
		candidate := g + s.cfg.estimate(current.Position(), neighbor.Position())
		if candidate >= s.costOf(neighbor) {
			continue
		}
		s.gScore[neighbor] = candidate
		s.hScore[neighbor] = s.cfg.estimate(neighbor.Position(), endPos)
		s.cameFrom[neighbor] = current
		if candidate >= s.cfg.maxDistance {
			// Pruned frontier node: costed, but never expanded.
			continue
		}
		fval := candidate + s.hScore[neighbor]
		if item, inOpen := s.openItems[neighbor]; inOpen {
			item.fval = fval
			heap.Fix(&s.open, item.index)
		} else {
			s.push(neighbor, fval)
		}
	}
}

func (s *search[T]) close(node T) {
	s.closed[node] = struct{}{}
	s.expanded++
}

func (s *search[T]) budgetExhausted() bool {
	return s.cfg.maxExpansions > 0 && s.expanded >= s.cfg.maxExpansions
}

// reconstruct walks the predecessor table from the given node back to a node
// with no predecessor and returns the chain in traversal order.
func (s *search[T]) reconstruct(at T) []T {
	path := []T{at}
	current := at
	for {
		previous, ok := s.cameFrom[current]
		if !ok {
			break
		}
		path = append(path, previous)
		current = previous
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (s *search[T]) finish(at T, found bool) Result[T] {
	return Result[T]{
		Path:           s.reconstruct(at),
		Cost:           s.gScore[at],
		Expanded:       s.expanded,
		FrontierPushes: s.pushes,
		Found:          found,
	}
}
