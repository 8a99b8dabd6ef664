package depgraph

// Dependencies returns a copy of the constraint map for a module's direct
// dependencies, or nil if the module is not in the graph.
func (g *Graph) Dependencies(name string) map[string]string {
	node := g.nodes[name]
	if node == nil {
		return nil
	}
	out := make(map[string]string, len(node.Dependencies))
	for dep, c := range node.Dependencies {
		out[dep] = c
	}
	return out
}

// Dependents returns a copy of the names of modules that directly depend
// on the given module, or nil if the module is not in the graph.
func (g *Graph) Dependents(name string) []string {
	node := g.nodes[name]
	if node == nil {
		return nil
	}
	return append([]string(nil), node.Dependents...)
}

// TransitiveDependencies returns all transitive dependencies of a module
// in breadth-first order. Returns nil if the module is not in the graph.
func (g *Graph) TransitiveDependencies(name string) []string {
	if !g.Contains(name) {
		return nil
	}

	result := make([]string, 0)
	visited := map[string]bool{name: true}
	queue := []string{name}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		node := g.nodes[current]
		if node == nil {
			continue
		}
		for _, dep := range node.depOrder {
			if !visited[dep] {
				visited[dep] = true
				result = append(result, dep)
				queue = append(queue, dep)
			}
		}
	}

	return result
}
