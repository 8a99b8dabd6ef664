package modorder

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	resolverBuildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "modorder_resolver_builds_total",
			Help: "Number of dependency graph builds by outcome.",
		},
		[]string{"outcome"},
	)
	resolverProblemsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "modorder_resolver_problems_total",
			Help: "Number of validation problems collected, by kind.",
		},
		[]string{"kind"},
	)
	resolverBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "modorder_resolver_build_duration_seconds",
			Help:    "Time taken to build and validate a dependency graph.",
			Buckets: prometheus.DefBuckets,
		},
	)
	resolverBuildModules = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "modorder_resolver_build_modules",
			Help:    "Number of module descriptors per build.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)

func init() {
	prometheus.MustRegister(
		resolverBuildsTotal,
		resolverProblemsTotal,
		resolverBuildDuration,
		resolverBuildModules,
	)
}

// observeBuild records metrics for one BuildDependencyGraph call.
func observeBuild(res ValidationResult, modules int, d time.Duration) {
	outcome := "success"
	if !res.OK() {
		outcome = "failure"
	}
	resolverBuildsTotal.WithLabelValues(outcome).Inc()
	resolverBuildDuration.Observe(d.Seconds())
	resolverBuildModules.Observe(float64(modules))

	for _, p := range res.Problems {
		resolverProblemsTotal.WithLabelValues(string(p.Kind())).Inc()
	}
}
