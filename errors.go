package modorder

import "github.com/albertocavalcante/go-modorder/depgraph"

// ErrUnexpectedCycle is re-exported from depgraph for facade callers.
// ResolveLoadOrder and ParallelLoadGroups return it when invoked against
// a graph whose cycles were never validated away, a programming-contract
// violation rather than an expected-input error.
var ErrUnexpectedCycle = depgraph.ErrUnexpectedCycle
