package modorder

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/go-modorder/depgraph"
)

// ModuleDescriptor is an alias for depgraph.ModuleDescriptor so callers
// of the facade do not need to import the graph package.
type ModuleDescriptor = depgraph.ModuleDescriptor

// ProblemKind tags the category of a collected validation problem.
type ProblemKind string

const (
	// KindUnresolvedDependency marks a dependency on a module that was
	// never declared (strict mode only).
	KindUnresolvedDependency ProblemKind = "unresolved_dependency"

	// KindCircularDependency marks one discovered dependency cycle.
	KindCircularDependency ProblemKind = "circular_dependency"

	// KindVersionViolation marks a declared dependency whose concrete
	// version fails its constraint.
	KindVersionViolation ProblemKind = "version_violation"
)

// Problem is one typed validation finding. Implementations are
// UnresolvedDependency, CircularDependency, and VersionViolation.
type Problem interface {
	// Kind returns the problem category.
	Kind() ProblemKind

	// String renders the problem for a boot report.
	String() string
}

// UnresolvedDependency reports a dependency on an undeclared module.
type UnresolvedDependency struct {
	// Module is the module that declared the dependency.
	Module string

	// Dependency is the undeclared module it referenced.
	Dependency string
}

// Kind implements Problem.
func (UnresolvedDependency) Kind() ProblemKind { return KindUnresolvedDependency }

func (p UnresolvedDependency) String() string {
	return fmt.Sprintf("unresolved dependency: %q required by %q", p.Dependency, p.Module)
}

// CircularDependency reports one dependency cycle.
type CircularDependency struct {
	// Cycle is the closed path, e.g. A -> B -> C -> A.
	Cycle depgraph.Cycle
}

// Kind implements Problem.
func (CircularDependency) Kind() ProblemKind { return KindCircularDependency }

func (p CircularDependency) String() string {
	return fmt.Sprintf("circular dependency: %s", p.Cycle)
}

// VersionViolation reports a present dependency that fails its declared
// constraint.
type VersionViolation struct {
	// Module is the module declaring the constraint.
	Module string

	// Dependency is the constrained module.
	Dependency string

	// Constraint is the declared constraint expression.
	Constraint string

	// ActualVersion is the dependency's concrete version.
	ActualVersion string
}

// Kind implements Problem.
func (VersionViolation) Kind() ProblemKind { return KindVersionViolation }

func (p VersionViolation) String() string {
	return fmt.Sprintf("version violation: %q requires %q %s, found %s",
		p.Module, p.Dependency, p.Constraint, p.ActualVersion)
}

// ValidationResult is the tagged success/failure value returned by graph
// validation. It carries the complete list of typed problems found in
// one pass, never just the first, so a failed boot can report
// everything at once.
type ValidationResult struct {
	// Problems is empty on success.
	Problems []Problem
}

// OK reports whether validation succeeded.
func (r ValidationResult) OK() bool {
	return len(r.Problems) == 0
}

// Report renders every problem on its own line, for logs and CLI output.
func (r ValidationResult) Report() string {
	if r.OK() {
		return "ok"
	}
	lines := make([]string, len(r.Problems))
	for i, p := range r.Problems {
		lines[i] = p.String()
	}
	return strings.Join(lines, "\n")
}

// failure wraps problems into a failed result.
func failure(problems ...Problem) ValidationResult {
	return ValidationResult{Problems: problems}
}
