package tree

import "testing"

func sample() *Node {
	return New("Canada",
		New("PEI", New("Charlottetown")),
		New("NS", New("Halifax"), New("Sydney")),
	)
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want int
	}{
		{"nil", nil, 0},
		{"leaf", New("leaf"), 1},
		{"sample", sample(), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Count(); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want int
	}{
		{"nil", nil, 0},
		{"leaf", New("leaf"), 1},
		{"sample", sample(), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Depth(); got != tt.want {
				t.Errorf("Depth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChildOrder(t *testing.T) {
	n := sample()
	if n.Children[0].Name != "PEI" || n.Children[1].Name != "NS" {
		t.Errorf("child order = %q, %q, want PEI, NS", n.Children[0].Name, n.Children[1].Name)
	}
	ns := n.Children[1]
	if ns.Children[0].Name != "Halifax" || ns.Children[1].Name != "Sydney" {
		t.Errorf("grandchild order = %q, %q, want Halifax, Sydney", ns.Children[0].Name, ns.Children[1].Name)
	}
}
