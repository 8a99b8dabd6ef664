package depgraph

import (
	"errors"
	"fmt"
)

// ErrUnexpectedCycle is returned by Sorter.Sort when it runs into a cycle.
// The sorter assumes the graph was already validated acyclic upstream; a
// cycle reaching it is a programming-contract violation, not expected
// input, which is why it surfaces as a hard error instead of a collected
// validation problem.
var ErrUnexpectedCycle = errors.New("graph contains an undetected cycle")

// Sorter produces a dependencies-first total order over a graph and
// partitions it into parallel-safe groups.
//
// Like Detector, the sorter is stateless between calls and operates on
// the graph reference it was created with.
type Sorter struct {
	g *Graph
}

// NewSorter creates a sorter over the given graph.
func NewSorter(g *Graph) *Sorter {
	return &Sorter{g: g}
}

// DFS node states for Sort.
const (
	unvisited = iota
	inProgress
	done
)

// Sort returns a total order in which every dependency precedes its
// dependents.
//
// The DFS visits modules in the graph's insertion order and each node's
// edges in their insertion order, appending a module only after all of
// its dependencies have been appended. Output is therefore deterministic
// relative to input order, not globally canonical.
//
// A temporary-mark set traps cycles: hitting one returns
// ErrUnexpectedCycle wrapped with the offending module.
func (s *Sorter) Sort() ([]string, error) {
	order := make([]string, 0, s.g.Len())
	state := make(map[string]int, s.g.Len())

	for _, root := range s.g.order {
		if state[root] != unvisited {
			continue
		}

		stack := []frame{{name: root}}
		state[root] = inProgress

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			node := s.g.nodes[f.name]

			if f.next < len(node.depOrder) {
				dep := node.depOrder[f.next]
				f.next++

				switch state[dep] {
				case unvisited:
					state[dep] = inProgress
					stack = append(stack, frame{name: dep})
				case inProgress:
					return nil, fmt.Errorf("%w: through module %q", ErrUnexpectedCycle, dep)
				}
				continue
			}

			state[f.name] = done
			order = append(order, f.name)
			stack = stack[:len(stack)-1]
		}
	}

	return order, nil
}

// ParallelGroups partitions the topological order into groups of modules
// with no edges among themselves, eligible for concurrent initialization
// group by group.
//
// The sorted order is walked left to right. Each not-yet-grouped module
// opens a new group; a later module joins the open group when every one
// of its direct dependencies already sits in a completed earlier group.
// Only direct edges are consulted; the check is a proxy for "independent
// enough", not a proof of full transitive independence. Concatenating the
// groups reproduces a valid topological order and no module appears in
// two groups.
func (s *Sorter) ParallelGroups() ([][]string, error) {
	sorted, err := s.Sort()
	if err != nil {
		return nil, err
	}

	placed := make(map[string]int, len(sorted))
	var groups [][]string

	for _, name := range sorted {
		if _, ok := placed[name]; ok {
			continue
		}

		current := len(groups)
		group := []string{name}
		placed[name] = current

		for _, cand := range sorted {
			if _, ok := placed[cand]; ok {
				continue
			}
			if s.depsSettled(cand, placed, current) {
				group = append(group, cand)
				placed[cand] = current
			}
		}

		groups = append(groups, group)
	}

	return groups, nil
}

// depsSettled reports whether every direct dependency of name is placed
// in a group strictly before current. Modules whose dependencies are all
// settled cannot have an edge to any member of the current group.
func (s *Sorter) depsSettled(name string, placed map[string]int, current int) bool {
	node := s.g.nodes[name]
	for _, dep := range node.depOrder {
		gi, ok := placed[dep]
		if !ok || gi >= current {
			return false
		}
	}
	return true
}
