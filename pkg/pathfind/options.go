// pkg/pathfind/options.go
package pathfind

import (
	"log"
	"math"

	"go-pathfinder/pkg/geom"
)

type config struct {
	maxDistance   float64
	mode          HeuristicMode
	logger        *log.Logger
	maxExpansions int
}

func defaultConfig() config {
	return config{
		maxDistance: math.Inf(1),
		mode:        EuclideanDistance,
		logger:      log.Default(),
	}
}

// Option modifies the search configuration.
type Option func(*config)

// WithMaxDistance caps the accumulated path cost. Neighbors whose cumulative
// cost reaches the cap still receive cost updates but are never expanded.
func WithMaxDistance(d float64) Option {
	return func(c *config) { c.maxDistance = d }
}

// WithHeuristic selects the distance metric. The default is EuclideanDistance.
func WithHeuristic(mode HeuristicMode) Option {
	return func(c *config) { c.mode = mode }
}

// WithLogger routes diagnostics (such as unimplemented heuristic modes) to the
// given logger instead of the process default.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMaxExpansions bounds the number of node expansions. Exceeding the budget
// behaves like frontier exhaustion: the search reports no path along with the
// best partial reconstruction. Zero means unbounded.
func WithMaxExpansions(n int) Option {
	return func(c *config) { c.maxExpansions = n }
}

func (c *config) estimate(a, b geom.Vec3) float64 {
	return estimate(c.logger, a, b, c.mode)
}
