package depgraph

import "testing"

func descriptors() []ModuleDescriptor {
	return []ModuleDescriptor{
		{Name: "core", Version: "1.2.0"},
		{Name: "auth", Version: "2.0.1", Dependencies: map[string]string{"core": "^1.0.0"}},
		{Name: "web", Version: "0.9.0", Dependencies: map[string]string{
			"auth": "~2.0.0",
			"core": "*",
		}},
	}
}

func TestBuilderBuild(t *testing.T) {
	g, unresolved := NewBuilder(Strict).Build(descriptors())

	if len(unresolved) != 0 {
		t.Fatalf("unexpected unresolved dependencies: %v", unresolved)
	}
	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}

	// Module insertion order follows the descriptor list.
	want := []string{"core", "auth", "web"}
	got := g.Names()
	for i, name := range want {
		if got[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], name)
		}
	}

	// Every outgoing edge is mirrored as a dependent.
	coreDependents := g.Dependents("core")
	if len(coreDependents) != 2 {
		t.Fatalf("Dependents(core) = %v, want 2 entries", coreDependents)
	}
	for _, d := range coreDependents {
		if d != "auth" && d != "web" {
			t.Errorf("unexpected dependent of core: %q", d)
		}
	}

	if c := g.Dependencies("web")["auth"]; c != "~2.0.0" {
		t.Errorf("constraint web->auth = %q, want %q", c, "~2.0.0")
	}
}

func TestBuilderStrictCollectsAllUnresolved(t *testing.T) {
	descs := []ModuleDescriptor{
		{Name: "app", Version: "1.0.0", Dependencies: map[string]string{
			"missing-a": "*",
			"missing-b": "^1.0.0",
		}},
		{Name: "lib", Version: "1.0.0", Dependencies: map[string]string{
			"missing-a": "*",
		}},
	}

	g, unresolved := NewBuilder(Strict).Build(descs)

	// All three problems from one pass, not just the first.
	if len(unresolved) != 3 {
		t.Fatalf("unresolved = %v, want 3 entries", unresolved)
	}

	// Placeholders are still created, never silently dropped.
	if !g.Contains("missing-a") || !g.Contains("missing-b") {
		t.Error("placeholder nodes missing for undeclared dependencies")
	}
	if !g.Node("missing-a").Placeholder() {
		t.Error("missing-a should be a placeholder")
	}
}

func TestBuilderLenientKeepsPlaceholders(t *testing.T) {
	descs := []ModuleDescriptor{
		{Name: "app", Version: "1.0.0", Dependencies: map[string]string{"ghost": "*"}},
	}

	g, unresolved := NewBuilder(Lenient).Build(descs)

	if unresolved != nil {
		t.Fatalf("lenient build reported unresolved: %v", unresolved)
	}
	node := g.Node("ghost")
	if node == nil || !node.Placeholder() {
		t.Fatal("expected a silent placeholder for ghost")
	}
	if deps := g.Dependents("ghost"); len(deps) != 1 || deps[0] != "app" {
		t.Errorf("Dependents(ghost) = %v, want [app]", deps)
	}
}

func TestDeclareModuleOverwrites(t *testing.T) {
	g := New()
	g.DeclareModule("a", "1.0.0")
	g.AddEdge("a", "b", "*")
	g.AddEdge("c", "a", "*")

	// Redeclaring resets version and outgoing edges but keeps dependents.
	g.DeclareModule("a", "2.0.0")

	node := g.Node("a")
	if node.Version != "2.0.0" {
		t.Errorf("Version = %q, want 2.0.0", node.Version)
	}
	if len(node.Dependencies) != 0 {
		t.Errorf("Dependencies = %v, want empty", node.Dependencies)
	}
	if len(node.Dependents) != 1 || node.Dependents[0] != "c" {
		t.Errorf("Dependents = %v, want [c]", node.Dependents)
	}
}

func TestSubgraph(t *testing.T) {
	g, _ := NewBuilder(Lenient).Build(descriptors())

	sub := g.Subgraph("web", "auth")
	if sub.Len() != 2 {
		t.Fatalf("Subgraph Len() = %d, want 2", sub.Len())
	}
	if sub.Contains("core") {
		t.Error("subgraph should not contain core")
	}
	// Edge web->core crosses the scope boundary and is dropped.
	if _, ok := sub.Node("web").Dependencies["core"]; ok {
		t.Error("subgraph kept an edge to an out-of-scope module")
	}
	if _, ok := sub.Node("web").Dependencies["auth"]; !ok {
		t.Error("subgraph lost the in-scope edge web->auth")
	}

	// The original graph is untouched.
	if _, ok := g.Node("web").Dependencies["core"]; !ok {
		t.Error("Subgraph mutated the receiver")
	}
}

func TestUnresolvedString(t *testing.T) {
	u := Unresolved{Module: "app", Dependency: "ghost"}
	want := `unresolved dependency: "ghost" required by "app"`
	if got := u.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
