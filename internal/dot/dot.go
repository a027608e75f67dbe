// Package dot renders autodiff computation graphs in the Graphviz DOT language.
//
// Build walks backward from an output Variable through creator links, visiting
// each Function once, and produces a bipartite graph: Variables are ellipses,
// Functions are boxes, and edges follow the data flow (input → Function → output).
// The walk is read-only: it never computes values or touches gradients.
//
//	g := dot.Build(y, dot.WithGrad())
//	fmt.Print(g) // digraph g { ... }
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/born-ml/gograd/internal/autodiff"
)

// NodeKind tells Variables and Functions apart.
type NodeKind int

// Node kinds.
const (
	VariableNode NodeKind = iota
	FunctionNode
)

// Node is one vertex of the rendered graph.
type Node struct {
	ID    string
	Kind  NodeKind
	Label string
}

// Edge is a directed edge between two node IDs.
type Edge struct {
	From, To string
}

// Graph is the bipartite Variable/Function graph reachable from an output.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Option configures Build.
type Option func(*config)

type config struct {
	withGrad bool
}

// WithGrad appends each Variable's gradient (when set) to its label.
func WithGrad() Option {
	return func(c *config) {
		c.withGrad = true
	}
}

// builder accumulates nodes and edges with stable, deduplicated IDs.
type builder struct {
	cfg       config
	graph     Graph
	varIDs    map[*autodiff.Variable]string
	funcIDs   map[autodiff.Function]string
	edgesSeen map[Edge]struct{}
}

// Build walks the graph that produced output.
//
// Functions are visited depth-first, each exactly once. Outputs that were
// garbage collected are skipped.
func Build(output *autodiff.Variable, opts ...Option) *Graph {
	b := &builder{
		varIDs:    make(map[*autodiff.Variable]string),
		funcIDs:   make(map[autodiff.Function]string),
		edgesSeen: make(map[Edge]struct{}),
	}
	for _, opt := range opts {
		opt(&b.cfg)
	}

	var stack []autodiff.Function
	pushFunc := func(fn autodiff.Function) string {
		if id, found := b.funcIDs[fn]; found {
			return id
		}
		id := fmt.Sprintf("f%d", len(b.funcIDs))
		b.funcIDs[fn] = id
		b.graph.Nodes = append(b.graph.Nodes, Node{ID: id, Kind: FunctionNode, Label: fn.Name()})
		stack = append(stack, fn)
		return id
	}
	addVar := func(v *autodiff.Variable) string {
		id, found := b.varIDs[v]
		if !found {
			id = fmt.Sprintf("v%d", len(b.varIDs))
			b.varIDs[v] = id
			b.graph.Nodes = append(b.graph.Nodes, Node{ID: id, Kind: VariableNode, Label: b.variableLabel(v)})
		}
		if v.Creator() != nil {
			b.addEdge(pushFunc(v.Creator()), id)
		}
		return id
	}

	addVar(output)
	for len(stack) > 0 {
		fn := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fnID := b.funcIDs[fn]
		for _, x := range fn.Inputs() {
			b.addEdge(addVar(x), fnID)
		}
		for _, y := range fn.Outputs() {
			if y == nil {
				continue
			}
			b.addEdge(fnID, addVar(y))
		}
	}
	return &b.graph
}

func (b *builder) addEdge(from, to string) {
	e := Edge{From: from, To: to}
	if _, found := b.edgesSeen[e]; found {
		return
	}
	b.edgesSeen[e] = struct{}{}
	b.graph.Edges = append(b.graph.Edges, e)
}

func (b *builder) variableLabel(v *autodiff.Variable) string {
	var label string
	if v.Name() != "" {
		label = fmt.Sprintf("%s=%s\nshape: %s", v.Name(), v.Data(), v.Shape())
	} else {
		label = fmt.Sprintf("value: %s\nshape: %s", v.Data(), v.Shape())
	}
	if b.cfg.withGrad && v.Grad() != nil {
		label += fmt.Sprintf("\ngrad: %s", v.Grad())
	}
	return label
}

// Render returns the DOT source for the graph that produced output.
func Render(output *autodiff.Variable, opts ...Option) string {
	return Build(output, opts...).String()
}

// NumFunctions counts Function nodes.
func (g *Graph) NumFunctions() int {
	n := 0
	for _, node := range g.Nodes {
		if node.Kind == FunctionNode {
			n++
		}
	}
	return n
}

// String returns the DOT source.
func (g *Graph) String() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the DOT source to w.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString("digraph g {\n")
	for _, node := range g.Nodes {
		shape := "ellipse"
		if node.Kind == FunctionNode {
			shape = "box"
		}
		fmt.Fprintf(&sb, "  %s [label=%s, shape=%s];\n", node.ID, quote(node.Label), shape)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "  %s -> %s;\n", e.From, e.To)
	}
	sb.WriteString("}\n")
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// quote produces a DOT double-quoted string; newlines become \n line breaks.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}
