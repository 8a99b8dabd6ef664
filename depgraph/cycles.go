package depgraph

import "strings"

// Cycle is an ordered sequence of module names forming a closed path.
// The last element repeats the first.
type Cycle []string

// String renders the cycle as "A -> B -> C -> A".
func (c Cycle) String() string {
	return strings.Join(c, " -> ")
}

// Detector finds circular dependencies in a graph using a
// white/gray/black depth-first search.
//
// The detector holds no state of its own between calls; it operates on
// the graph reference it was created with.
type Detector struct {
	g *Graph
}

// NewDetector creates a detector over the given graph.
func NewDetector(g *Graph) *Detector {
	return &Detector{g: g}
}

// HasCycles reports whether the graph contains at least one cycle.
func (d *Detector) HasCycles() bool {
	return len(d.Cycles()) > 0
}

// Cycles returns every discoverable cycle.
//
// The search restarts from every still-unvisited module, so disjoint
// cycles in separate components are all reported. Within one connected
// cluster only the first cycle found along the first explored path is
// reported; that is an accepted limitation of the single-pass search.
//
// The DFS uses an explicit stack rather than recursion so call depth is
// bounded regardless of graph size.
func (d *Detector) Cycles() []Cycle {
	visited := make(map[string]bool, d.g.Len())
	var cycles []Cycle

	for _, name := range d.g.order {
		if visited[name] {
			continue
		}
		if c := d.search(name, visited); c != nil {
			cycles = append(cycles, c)
		}
	}
	return cycles
}

// frame is one level of the explicit DFS stack: a node and the index of
// the next outgoing edge to follow.
type frame struct {
	name string
	next int
}

// search runs one DFS from start, returning the first cycle it closes or
// nil. Nodes it fully processes are marked visited so the driver does not
// restart from them.
func (d *Detector) search(start string, visited map[string]bool) Cycle {
	inStack := make(map[string]bool)
	var path []string

	stack := []frame{{name: start}}
	visited[start] = true
	inStack[start] = true
	path = append(path, start)

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		node := d.g.nodes[f.name]

		if f.next < len(node.depOrder) {
			dep := node.depOrder[f.next]
			f.next++

			if inStack[dep] {
				// Close the loop: slice the path from dep's position and
				// append dep again.
				for i, p := range path {
					if p == dep {
						c := append(Cycle{}, path[i:]...)
						return append(c, dep)
					}
				}
			}
			if !visited[dep] && d.g.Contains(dep) {
				visited[dep] = true
				inStack[dep] = true
				path = append(path, dep)
				stack = append(stack, frame{name: dep})
			}
			continue
		}

		inStack[f.name] = false
		path = path[:len(path)-1]
		stack = stack[:len(stack)-1]
	}

	return nil
}
