package depgraph

import (
	"strings"
	"testing"
)

func TestDetectorAcyclic(t *testing.T) {
	g, _ := NewBuilder(Strict).Build(descriptors())
	d := NewDetector(g)

	if d.HasCycles() {
		t.Error("HasCycles() = true on an acyclic graph")
	}
	if cycles := d.Cycles(); len(cycles) != 0 {
		t.Errorf("Cycles() = %v, want none", cycles)
	}
}

func TestDetectorTriangle(t *testing.T) {
	g := New()
	g.DeclareModule("a", "1.0.0")
	g.DeclareModule("b", "1.0.0")
	g.DeclareModule("c", "1.0.0")
	g.AddEdge("a", "b", "*")
	g.AddEdge("b", "c", "*")
	g.AddEdge("c", "a", "*")

	cycles := NewDetector(g).Cycles()
	if len(cycles) != 1 {
		t.Fatalf("Cycles() returned %d cycles, want 1", len(cycles))
	}

	c := cycles[0]
	if c[0] != c[len(c)-1] {
		t.Errorf("cycle %v is not closed", c)
	}
	for _, name := range []string{"a", "b", "c"} {
		if !contains(c, name) {
			t.Errorf("cycle %v missing module %q", c, name)
		}
	}

	// Every edge of the reported path exists in the graph.
	for i := 0; i < len(c)-1; i++ {
		if _, ok := g.Node(c[i]).Dependencies[c[i+1]]; !ok {
			t.Errorf("reported cycle edge %s -> %s not in graph", c[i], c[i+1])
		}
	}

	if got := c.String(); !strings.Contains(got, " -> ") {
		t.Errorf("Cycle.String() = %q, want arrow-joined path", got)
	}
}

func TestDetectorSelfLoop(t *testing.T) {
	g := New()
	g.DeclareModule("solo", "1.0.0")
	g.AddEdge("solo", "solo", "*")

	cycles := NewDetector(g).Cycles()
	if len(cycles) != 1 {
		t.Fatalf("Cycles() returned %d cycles, want 1", len(cycles))
	}
	if got := cycles[0].String(); got != "solo -> solo" {
		t.Errorf("cycle = %q, want %q", got, "solo -> solo")
	}
}

func TestDetectorDisjointCycles(t *testing.T) {
	g := New()
	for _, name := range []string{"a", "b", "x", "y"} {
		g.DeclareModule(name, "1.0.0")
	}
	g.AddEdge("a", "b", "*")
	g.AddEdge("b", "a", "*")
	g.AddEdge("x", "y", "*")
	g.AddEdge("y", "x", "*")

	cycles := NewDetector(g).Cycles()
	if len(cycles) != 2 {
		t.Fatalf("Cycles() returned %d cycles, want 2 (one per component)", len(cycles))
	}
}

func TestDetectorCycleBehindPrefix(t *testing.T) {
	// entry -> a -> b -> a: the reported path must start at a, not entry.
	g := New()
	for _, name := range []string{"entry", "a", "b"} {
		g.DeclareModule(name, "1.0.0")
	}
	g.AddEdge("entry", "a", "*")
	g.AddEdge("a", "b", "*")
	g.AddEdge("b", "a", "*")

	cycles := NewDetector(g).Cycles()
	if len(cycles) != 1 {
		t.Fatalf("Cycles() returned %d cycles, want 1", len(cycles))
	}
	if got := cycles[0].String(); got != "a -> b -> a" {
		t.Errorf("cycle = %q, want %q", got, "a -> b -> a")
	}
}

func contains(c Cycle, name string) bool {
	for _, n := range c {
		if n == name {
			return true
		}
	}
	return false
}
