// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// NewRand creates a seeded random generator. A zero seed falls back to the
// current time, so scenario files can either pin a map or leave it random.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
