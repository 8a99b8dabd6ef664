// Package depgraph provides the module dependency graph and the analyses
// that run over it: cycle detection, topological load ordering, and
// parallel load grouping.
//
// # Building a Graph
//
// A Graph is usually built from module descriptors:
//
//	b := depgraph.NewBuilder(depgraph.Strict)
//	g, unresolved := b.Build(descriptors)
//
// It can also be grown incrementally with AddEdge, which creates
// placeholder nodes for modules referenced before they are declared.
//
// # Analyses
//
// Once built, the graph supports the load-ordering analyses:
//
//	// All discoverable cycles, one per connected cluster
//	cycles := depgraph.NewDetector(g).Cycles()
//
//	// Dependencies-first total order
//	order, err := depgraph.NewSorter(g).Sort()
//
//	// Groups of mutually independent modules
//	groups, err := depgraph.NewSorter(g).ParallelGroups()
//
// # Determinism
//
// The graph records the insertion order of modules and of each node's
// dependency edges. Every traversal follows that order, so identical
// input always produces identical output. Results are deterministic
// relative to input order only, not globally canonical.
//
// # Output Formats
//
// The graph can be rendered for inspection:
//
//	dotString := g.ToDOT()   // Graphviz DOT
//	textString := g.ToText() // human-readable listing
package depgraph
