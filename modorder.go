// Package modorder provides a module dependency resolution and
// load-ordering engine.
//
// Given a set of declared modules (name, version, dependencies with
// version constraints), the engine builds a dependency graph, detects
// cycles, validates version constraints, and produces a deterministic
// initialization order plus groups of mutually independent modules
// eligible for concurrent initialization.
//
// # Overview
//
// The package provides three layers:
//
//   - constraint: evaluates one version string against one constraint
//   - depgraph: the graph itself plus cycle detection, topological
//     sorting, and parallel grouping
//   - Resolver: the coordinating facade callers use
//
// # Quick Start
//
//	r, err := modorder.New()
//	if err != nil { ... }
//
//	result := r.BuildDependencyGraph(descriptors)
//	if !result.OK() {
//	    // result.Problems lists every unresolved dependency, cycle,
//	    // or constraint violation found in one pass.
//	}
//
//	order, err := r.ResolveLoadOrder()
//	groups, err := r.ParallelLoadGroups()
//
// # Error Model
//
// Expected problems (unresolved dependencies, cycles, constraint
// violations) are collected into a ValidationResult so a failed boot
// report can show every problem at once. Hard errors are reserved for
// contract violations, such as sorting a graph whose cycles were never
// validated away (ErrUnexpectedCycle).
//
// # Concurrency
//
// The engine is single-threaded and in-memory. Parallel load groups are
// advisory output: the engine computes which modules could initialize
// concurrently but neither schedules nor executes anything. Returned
// graphs and orders are live views; copy before concurrent mutation.
package modorder

// Resolve is a one-shot convenience: it creates a resolver, builds the
// dependency graph from the descriptors, and returns both alongside the
// validation result.
func Resolve(descriptors []ModuleDescriptor, opts ...Option) (*Resolver, ValidationResult, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, ValidationResult{}, err
	}
	return r, r.BuildDependencyGraph(descriptors), nil
}
