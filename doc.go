// Package jps provides a Jump Point Search pathfinder for uniform-cost grids.
//
// It exposes three main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - SearchAll: run many independent searches on a bounded worker pool.
//
// Only jump points are materialized as search nodes: cells that hold the goal
// or sit next to a forced neighbor. Straight and diagonal runs in between are
// scanned and skipped, which prunes the symmetric paths plain grid A* would
// expand on open maps.
package jps
