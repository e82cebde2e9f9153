// pkg/pathfind/stepper.go
package pathfind

// StepSnapshot exposes the per-iteration state of a stepped search so that
// viewers can animate the frontier.
type StepSnapshot[T comparable] struct {
	Current   T
	Open      map[T]bool
	Closed    map[T]bool
	CameFrom  map[T]T
	Done      bool
	Found     bool
	Path      []T
	StepIndex int
}

// Stepper drives the same search loop as FindPath one node expansion at a
// time. A completed Stepper and a FindPath call over identical inputs produce
// identical paths.
type Stepper[T Node[T]] struct {
	s     *search[T]
	end   T
	last  T
	steps int
	done  bool
	found bool
}

// NewStepper prepares a stepped search from start to end.
func NewStepper[T Node[T]](start, end T, opts ...Option) (*Stepper[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxDistance < 0 {
		return nil, ErrNegativeMaxDistance
	}
	return &Stepper[T]{
		s:    newSearch(start, end, cfg),
		end:  end,
		last: start,
	}, nil
}

// Step advances the search by one node expansion and returns a snapshot.
// Stepping a finished search keeps returning the final snapshot.
func (st *Stepper[T]) Step() (StepSnapshot[T], error) {
	if st.done {
		return st.snapshot(st.last), nil
	}
	if st.s.open.Len() == 0 {
		st.done = true
		return st.snapshot(st.last), nil
	}

	current, err := st.s.selectBest()
	if err != nil {
		return StepSnapshot[T]{}, err
	}
	st.last = current
	st.steps++

	if current == st.end {
		st.done = true
		st.found = true
		return st.snapshot(current), nil
	}

	st.s.expand(current)
	st.s.close(current)
	if st.s.budgetExhausted() {
		st.done = true
	}
	return st.snapshot(current), nil
}

// Run steps the search to completion and returns the same result FindPath
// would have produced.
func (st *Stepper[T]) Run() (Result[T], error) {
	for !st.done {
		if _, err := st.Step(); err != nil {
			return Result[T]{}, err
		}
	}
	return st.s.finish(st.last, st.found), nil
}

// Done reports whether the search has terminated.
func (st *Stepper[T]) Done() bool { return st.done }

// Found reports whether the goal was reached. Meaningful once Done is true.
func (st *Stepper[T]) Found() bool { return st.found }

// Result returns the final search result. Meaningful once Done is true.
func (st *Stepper[T]) Result() Result[T] {
	return st.s.finish(st.last, st.found)
}

func (st *Stepper[T]) snapshot(current T) StepSnapshot[T] {
	snap := StepSnapshot[T]{
		Current:   current,
		Open:      make(map[T]bool, len(st.s.openItems)),
		Closed:    make(map[T]bool, len(st.s.closed)),
		CameFrom:  make(map[T]T, len(st.s.cameFrom)),
		Done:      st.done,
		Found:     st.found,
		StepIndex: st.steps,
	}
	for node := range st.s.openItems {
		snap.Open[node] = true
	}
	for node := range st.s.closed {
		snap.Closed[node] = true
	}
	for node, prev := range st.s.cameFrom {
		snap.CameFrom[node] = prev
	}
	if st.done {
		snap.Path = st.s.reconstruct(st.last)
	}
	return snap
}
