// Package pathfind implements a generic best-first (A*) shortest-path search
// over user-defined graphs of positioned nodes.
//
// It exposes two entry points:
//
//   - FindPath: run the search to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive viewers.
//
// Edge costs and remaining-distance estimates both come from a selectable
// metric (Euclidean 3D/2D, Manhattan 3D/2D, hexagonal). All per-search state
// lives in side tables owned by the call, so graphs are shared safely between
// sequential searches and between concurrent searches on separate calls.
package pathfind
