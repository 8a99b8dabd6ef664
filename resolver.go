package modorder

import (
	"log/slog"
	"time"

	"github.com/albertocavalcante/go-modorder/depgraph"
)

// Resolver is the coordinating facade over the dependency graph and its
// analyses. It owns the graph and re-synchronizes the detector and sorter
// snapshots after every mutation, so queries never run against a stale
// view.
//
// Resolver is not safe for concurrent use; callers must serialize access
// and treat returned graphs and orders as values.
type Resolver struct {
	cfg *resolverConfig

	graph    *depgraph.Graph
	detector *depgraph.Detector
	sorter   *depgraph.Sorter
}

// New creates a resolver with an empty graph.
func New(opts ...Option) (*Resolver, error) {
	cfg, err := newResolverConfig(opts...)
	if err != nil {
		return nil, err
	}
	r := &Resolver{cfg: cfg, graph: depgraph.New()}
	r.resync()
	return r, nil
}

// resync points the analysis components at the current graph. Called
// after every mutation, before any query is answered.
func (r *Resolver) resync() {
	r.detector = depgraph.NewDetector(r.graph)
	r.sorter = depgraph.NewSorter(r.graph)
}

// AddDependency records that module depends on dependency under the
// given constraint, creating placeholder nodes for any module not yet
// known to the graph.
func (r *Resolver) AddDependency(module, dependency, constraint string) {
	r.graph.AddEdge(module, dependency, constraint)
	r.resync()

	r.cfg.log().Debug("dependency added",
		slog.String("module", module),
		slog.String("dependency", dependency),
		slog.String("constraint", constraint),
	)
}

// BuildDependencyGraph replaces the graph wholesale from the given
// descriptors and validates it.
//
// Validation short-circuits: unresolved-dependency errors abort
// immediately and skip the cycle and version checks; otherwise cycle
// detection runs (unless cycles were explicitly allowed) and fails fast
// on any cycle; otherwise the version validation result is returned.
// Each stage collects every problem it finds, never just the first.
func (r *Resolver) BuildDependencyGraph(descriptors []ModuleDescriptor) ValidationResult {
	start := time.Now()
	log := r.cfg.log()

	graph, unresolved := depgraph.NewBuilder(r.cfg.policy).Build(descriptors)
	r.graph = graph
	r.resync()

	if len(unresolved) > 0 {
		problems := make([]Problem, len(unresolved))
		for i, u := range unresolved {
			problems[i] = UnresolvedDependency{Module: u.Module, Dependency: u.Dependency}
		}
		res := failure(problems...)
		log.Warn("dependency graph has unresolved references",
			slog.Int("count", len(unresolved)))
		observeBuild(res, len(descriptors), time.Since(start))
		return res
	}

	if !r.cfg.allowCycles {
		if cycles := r.detector.Cycles(); len(cycles) > 0 {
			problems := make([]Problem, len(cycles))
			for i, c := range cycles {
				problems[i] = CircularDependency{Cycle: c}
			}
			res := failure(problems...)
			log.Warn("dependency graph has cycles", slog.Int("count", len(cycles)))
			observeBuild(res, len(descriptors), time.Since(start))
			return res
		}
	}

	res := ValidateConstraints(r.graph)
	if res.OK() {
		log.Debug("dependency graph built",
			slog.Int("modules", r.graph.Len()))
	} else {
		log.Warn("dependency graph has version violations",
			slog.Int("count", len(res.Problems)))
	}
	observeBuild(res, len(descriptors), time.Since(start))
	return res
}

// ResolveLoadOrder returns the dependencies-first initialization order.
// It returns ErrUnexpectedCycle if the graph still contains a cycle,
// signalling that upstream validation was skipped.
func (r *Resolver) ResolveLoadOrder() ([]string, error) {
	return r.sorter.Sort()
}

// ParallelLoadGroups partitions the load order into groups of mutually
// independent modules. The grouping is advisory: the engine recommends
// which modules could initialize concurrently but schedules nothing.
func (r *Resolver) ParallelLoadGroups() ([][]string, error) {
	return r.sorter.ParallelGroups()
}

// HasCircularDependencies reports whether the graph contains a cycle.
// With a non-empty scope it answers for an ephemeral sub-graph restricted
// to the scoped modules and the recorded edges among them, without
// mutating resolver state. This answers "would loading exactly these
// modules cycle" before committing a change.
func (r *Resolver) HasCircularDependencies(scope ...string) bool {
	if len(scope) == 0 {
		return r.detector.HasCycles()
	}
	return depgraph.NewDetector(r.graph.Subgraph(scope...)).HasCycles()
}

// DependencyGraph returns the resolver's current graph. The graph is a
// live view; use Clone before mutating it concurrently.
func (r *Resolver) DependencyGraph() *depgraph.Graph {
	return r.graph
}

// ModuleDependencies returns a copy of the named module's direct
// dependency constraints, or nil if the module is unknown.
func (r *Resolver) ModuleDependencies(name string) map[string]string {
	return r.graph.Dependencies(name)
}

// ModuleDependents returns a copy of the names of modules depending on
// the named module, or nil if the module is unknown.
func (r *Resolver) ModuleDependents(name string) []string {
	return r.graph.Dependents(name)
}
