package depgraph

import (
	"fmt"
	"sort"
)

// Policy controls how the builder treats edges to modules that never
// appear as their own descriptor.
type Policy string

const (
	// Strict collects an unresolved-dependency problem for every edge to
	// an undeclared module. All problems from one pass are reported
	// together, not just the first.
	Strict Policy = "strict"

	// Lenient silently keeps an empty placeholder node for undeclared
	// modules.
	Lenient Policy = "lenient"
)

// Unresolved records an edge to a module that was never declared.
type Unresolved struct {
	// Module is the module that declared the dependency.
	Module string

	// Dependency is the undeclared module it referenced.
	Dependency string
}

func (u Unresolved) String() string {
	return fmt.Sprintf("unresolved dependency: %q required by %q", u.Dependency, u.Module)
}

// Builder constructs a Graph from a list of module descriptors.
type Builder struct {
	policy Policy
}

// NewBuilder creates a builder with the given placeholder policy.
func NewBuilder(policy Policy) *Builder {
	return &Builder{policy: policy}
}

// Build turns descriptors into a dependency graph.
//
// For each descriptor the module's node is created (or overwritten) with
// its dependency map; every referenced dependency gets a node (an empty
// placeholder when first seen) and records the referencing module as a
// dependent. Under the Strict policy, every dependency name that never
// appears as its own descriptor is returned as an Unresolved entry; the
// whole list is collected in one pass. Under Lenient the placeholders are
// kept silently and the returned slice is nil.
//
// Dependency edges of a single module are inserted in sorted name order,
// since Go map iteration over the descriptor's constraint map carries no
// order of its own; module insertion order follows the descriptor list.
func (b *Builder) Build(descriptors []ModuleDescriptor) (*Graph, []Unresolved) {
	g := New()

	declared := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		declared[d.Name] = true
	}

	var unresolved []Unresolved
	for _, d := range descriptors {
		g.DeclareModule(d.Name, d.Version)

		deps := make([]string, 0, len(d.Dependencies))
		for dep := range d.Dependencies {
			deps = append(deps, dep)
		}
		sort.Strings(deps)

		for _, dep := range deps {
			g.AddEdge(d.Name, dep, d.Dependencies[dep])
			if b.policy == Strict && !declared[dep] {
				unresolved = append(unresolved, Unresolved{Module: d.Name, Dependency: dep})
			}
		}
	}

	return g, unresolved
}
