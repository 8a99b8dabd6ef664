package modorder

import (
	"github.com/albertocavalcante/go-modorder/constraint"
	"github.com/albertocavalcante/go-modorder/depgraph"
)

// ValidateConstraints checks every declared constraint in the graph
// against the target module's concrete version.
//
// For every node and every (dependency, constraint) pair, if the
// dependency exists in the graph and carries a concrete version, the
// constraint is evaluated. Placeholders (no version) are skipped; their
// absence is the builder's concern, not the validator's. The complete
// violation list is collected; the result succeeds only with zero
// violations.
func ValidateConstraints(g *depgraph.Graph) ValidationResult {
	var problems []Problem

	for _, name := range g.Names() {
		node := g.Node(name)
		for _, dep := range node.DependencyNames() {
			target := g.Node(dep)
			if target == nil || target.Version == "" {
				continue
			}
			expr := node.Dependencies[dep]
			if !constraint.Satisfies(target.Version, expr) {
				problems = append(problems, VersionViolation{
					Module:        name,
					Dependency:    dep,
					Constraint:    expr,
					ActualVersion: target.Version,
				})
			}
		}
	}

	return ValidationResult{Problems: problems}
}
