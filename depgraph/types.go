package depgraph

// ModuleDescriptor describes a declared module: its unique name, its
// concrete "major.minor.patch" version, and the version constraints it
// places on the modules it depends on. Descriptors are immutable input,
// supplied by an external discovery collaborator.
type ModuleDescriptor struct {
	// Name uniquely identifies the module.
	Name string `json:"name" yaml:"name"`

	// Version is the module's concrete version string.
	Version string `json:"version" yaml:"version"`

	// Dependencies maps dependency module names to constraint expressions.
	Dependencies map[string]string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Node represents one module in the dependency graph.
//
// Invariant: for every outgoing edge A -> B, if B is present in the graph
// then B.Dependents contains A. Placeholder nodes (referenced but never
// declared) have an empty Version.
type Node struct {
	// Name is the module name this node represents.
	Name string

	// Version is the module's declared version. Empty for placeholders.
	Version string

	// Dependencies maps dependency names to constraint expressions
	// (outgoing edges).
	Dependencies map[string]string

	// Dependents lists the names of modules that depend on this one
	// (derived incoming edges), in the order the edges were recorded.
	Dependents []string

	// depOrder tracks the insertion order of Dependencies so traversals
	// stay deterministic; map iteration order is not.
	depOrder []string
}

// DependencyNames returns the node's dependency names in insertion order.
func (n *Node) DependencyNames() []string {
	out := make([]string, len(n.depOrder))
	copy(out, n.depOrder)
	return out
}

// Placeholder reports whether this node was created for a module that was
// referenced as a dependency but never declared itself.
func (n *Node) Placeholder() bool {
	return n.Version == ""
}

// Graph is a module dependency graph keyed by module name. It records the
// insertion order of its nodes; all analyses traverse in that order.
//
// Graph is not safe for concurrent mutation. Callers sharing a graph
// across goroutines must treat it as a value and Clone before mutating.
type Graph struct {
	nodes map[string]*Node
	order []string
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// Len returns the number of modules (including placeholders).
func (g *Graph) Len() int {
	return len(g.order)
}

// Names returns all module names in insertion order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Node returns the node for a module name, or nil if not present.
func (g *Graph) Node(name string) *Node {
	return g.nodes[name]
}

// Contains reports whether the graph has a node for the given name.
func (g *Graph) Contains(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// ensure returns the node for name, creating an empty placeholder if the
// name has not been seen before.
func (g *Graph) ensure(name string) *Node {
	if n, ok := g.nodes[name]; ok {
		return n
	}
	n := &Node{
		Name:         name,
		Dependencies: make(map[string]string),
	}
	g.nodes[name] = n
	g.order = append(g.order, name)
	return n
}

// DeclareModule creates the node for a declared module, or overwrites the
// version and outgoing edges of an existing one. Dependents recorded from
// other modules' edges are preserved.
func (g *Graph) DeclareModule(name, version string) *Node {
	n := g.ensure(name)
	n.Version = version
	n.Dependencies = make(map[string]string)
	n.depOrder = n.depOrder[:0]
	return n
}

// AddEdge records that module "from" depends on module "dep" under the
// given constraint. Both endpoints are created as placeholders if absent;
// an edge to an unknown module is never silently dropped. Re-adding an
// existing edge updates its constraint in place.
func (g *Graph) AddEdge(from, dep, constraint string) {
	src := g.ensure(from)
	if _, ok := src.Dependencies[dep]; !ok {
		src.depOrder = append(src.depOrder, dep)
	}
	src.Dependencies[dep] = constraint

	dst := g.ensure(dep)
	for _, d := range dst.Dependents {
		if d == from {
			return
		}
	}
	dst.Dependents = append(dst.Dependents, from)
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	out := New()
	for _, name := range g.order {
		n := g.nodes[name]
		cp := out.ensure(name)
		cp.Version = n.Version
		cp.depOrder = append(cp.depOrder[:0], n.depOrder...)
		for dep, c := range n.Dependencies {
			cp.Dependencies[dep] = c
		}
		cp.Dependents = append([]string(nil), n.Dependents...)
	}
	return out
}

// Subgraph returns a new graph restricted to the given module names and
// the recorded edges whose both endpoints are in that set. Modules not
// present in the receiver are ignored. The receiver is not modified.
func (g *Graph) Subgraph(names ...string) *Graph {
	scope := make(map[string]bool, len(names))
	for _, name := range names {
		if g.Contains(name) {
			scope[name] = true
		}
	}

	out := New()
	for _, name := range g.order {
		if !scope[name] {
			continue
		}
		n := g.nodes[name]
		out.ensure(name).Version = n.Version
		for _, dep := range n.depOrder {
			if scope[dep] {
				out.AddEdge(name, dep, n.Dependencies[dep])
			}
		}
	}
	return out
}

// Stats summarizes the graph for reporting.
type Stats struct {
	// Modules is the number of declared modules.
	Modules int

	// Placeholders is the number of referenced-but-undeclared modules.
	Placeholders int

	// Edges is the total number of dependency edges.
	Edges int
}

// Stats returns aggregate statistics about the graph.
func (g *Graph) Stats() Stats {
	var s Stats
	for _, name := range g.order {
		n := g.nodes[name]
		if n.Placeholder() {
			s.Placeholders++
		} else {
			s.Modules++
		}
		s.Edges += len(n.depOrder)
	}
	return s
}
