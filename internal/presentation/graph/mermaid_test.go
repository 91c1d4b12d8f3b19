package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/symdq/internal/presentation/graph"
	"github.com/aretw0/symdq/pkg/chain"
)

var arm = &chain.Document{
	Name: "arm",
	Links: []chain.Link{
		{DH: &chain.DH{Theta: "theta1", D: "d1"}},
		{Rotate: &chain.Rotate{Axis: []string{"0", "0", "1"}, Angle: "2*theta2"}},
		{Translate: []string{"l1", "0", "0"}},
		{Screw: &chain.Screw{L: []string{"0", "0", "1"}, M: []string{"0", "-x", "0"}, Theta: "theta1"}},
	},
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name: "Frames and links",
			contains: []string{
				"graph LR",
				"f0((\"base\"))",
				"f1[\"frame 1\"]",
				"f4((\"tool\"))",
				"f0 -- \"DH θ=theta1 d=d1 a=0 α=0\" --> f1",
				"f1 -- \"rotate 2*theta2 about [0,0,1]\" --> f2",
				"f2 -- \"translate [l1,0,0]\" --> f3",
				"f3 -- \"screw l=[0,0,1] m=[0,-x,0] θ=theta1 d=0\" --> f4",
			},
			excludes: []string{"classDef"},
		},
		{
			name:    "Joint overlay",
			overlay: &graph.Overlay{Variable: "theta1"},
			contains: []string{
				"classDef joint",
				"class f1 joint;",
				"class f4 joint;",
			},
			excludes: []string{"class f2 joint;", "class f3 joint;"},
		},
		{
			name:     "Overlay without matches",
			overlay:  &graph.Overlay{Variable: "phi"},
			excludes: []string{"classDef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(arm, tt.overlay)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestDescribe_EscapedInGraph(t *testing.T) {
	doc := &chain.Document{Links: []chain.Link{{Translate: []string{`"a"`, "0", "0"}}}}
	got := graph.GenerateMermaid(doc, nil)
	assert.False(t, strings.Contains(got, `"a"`))
	assert.Equal(t, "invalid link", graph.Describe(chain.Link{}))
}
