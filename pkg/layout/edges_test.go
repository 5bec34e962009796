package layout

import "testing"

func TestEdges(t *testing.T) {
	rels := []rel{
		{From: "a", To: "b", Type: "refers"},
		{From: "a", To: "b", Type: "refers"},
		{From: "c", To: "c", Type: "self"},
	}
	edges := Edges(rels, 3, Options{})

	wantIDs := []string{"e-a-b-0", "e-a-b-1", "e-c-c-2"}
	if len(edges) != len(rels) {
		t.Fatalf("edges = %d, want %d", len(edges), len(rels))
	}
	for i, e := range edges {
		if e.ID != wantIDs[i] {
			t.Errorf("edge %d id = %q, want %q", i, e.ID, wantIDs[i])
		}
		if e.Source != rels[i].From || e.Target != rels[i].To {
			t.Errorf("edge %d = %s->%s, want %s", i, e.Source, e.Target, rels[i])
		}
		if e.Label != rels[i].Type {
			t.Errorf("edge %d label = %q, want %q", i, e.Label, rels[i].Type)
		}
		if !e.Animated {
			t.Errorf("edge %d should be animated", i)
		}
	}
}

func TestEdgesAnimationThreshold(t *testing.T) {
	rels := []rel{{From: "a", To: "b"}, {From: "b", To: "c"}}

	tests := []struct {
		name      string
		nodeCount int
		opts      Options
		want      bool
	}{
		{"BelowDefault", 10, Options{}, true},
		{"AtDefault", 50, Options{}, true},
		{"AboveDefault", 51, Options{}, false},
		{"CustomThreshold", 11, Options{AnimationThreshold: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, e := range Edges(rels, tt.nodeCount, tt.opts) {
				if e.Animated != tt.want {
					t.Errorf("edge %s animated = %v, want %v", e.ID, e.Animated, tt.want)
				}
			}
		})
	}
}

func TestEdgesEmpty(t *testing.T) {
	edges := Edges(nil, 0, Options{})
	if edges == nil || len(edges) != 0 {
		t.Errorf("Edges(nil) = %v, want empty non-nil slice", edges)
	}
}
