package regex

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	EpsilonText = "ε"
	EmptyText   = "∅"
)

// binding strength of each kind when printed without brackets
func precedence(k Kind) int {
	switch k {
	case Union:
		return 1
	case Concat:
		return 2
	case Star:
		return 3
	default:
		return 4
	}
}

// piece is a unit of printed output: either a node to expand in the given
// binding context, or literal text when node is None.
type piece struct {
	node int
	ctx  int
	text string
}

func text(s string) piece {
	return piece{node: None, text: s}
}

// render prints the tree with an explicit work stack. expand gives the
// pieces a node prints as, in output order.
func (t *Tree) render(expand func(n Node, ctx int) []piece) string {
	if t.root == None {
		return EmptyText
	}
	var sb strings.Builder
	stack := []piece{{node: t.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.node == None {
			sb.WriteString(p.text)
			continue
		}
		parts := expand(t.nodes[p.node], p.ctx)
		for i := len(parts) - 1; i >= 0; i-- {
			stack = append(stack, parts[i])
		}
	}
	return sb.String()
}

// String renders the tree in the input syntax (`+` for union, juxtaposition
// for concatenation, postfix `*`, ε, ∅) with as few parentheses as keep the
// shape. The result parses back to the same tree.
func (t *Tree) String() string {
	return t.render(func(n Node, ctx int) []piece {
		var parts []piece
		switch n.Kind {
		case Epsilon:
			parts = []piece{text(EpsilonText)}
		case Letter:
			parts = []piece{text(EscapeSymbol(n.Symbol))}
		case Union:
			parts = []piece{{node: n.Left, ctx: 1}, text("+"), {node: n.Right, ctx: 2}}
		case Concat:
			parts = []piece{{node: n.Left, ctx: 2}, {node: n.Right, ctx: 3}}
		case Star:
			parts = []piece{{node: n.Left, ctx: 3}, text("*")}
		default:
			panic(fmt.Sprintf("regex: unknown node kind %v", n.Kind))
		}
		if precedence(n.Kind) < ctx {
			parts = append(append([]piece{text("(")}, parts...), text(")"))
		}
		return parts
	})
}

// EscapeSymbol returns the input-syntax spelling of a letter.
func EscapeSymbol(r rune) string {
	switch r {
	case '+', '*', '(', ')', '\\', '#', 'ε', '∅':
		return `\` + string(r)
	}
	if unicode.IsSpace(r) {
		return `\` + string(r)
	}
	return string(r)
}

// Bracketed renders every operator with its own brackets: (l + r) for union,
// [l . r] for concatenation and {c}* for star.
func (t *Tree) Bracketed() string {
	return t.render(func(n Node, _ int) []piece {
		switch n.Kind {
		case Epsilon:
			return []piece{text(EpsilonText)}
		case Letter:
			return []piece{text(string(n.Symbol))}
		case Union:
			return []piece{text("("), {node: n.Left}, text(" + "), {node: n.Right}, text(")")}
		case Concat:
			return []piece{text("["), {node: n.Left}, text(" . "), {node: n.Right}, text("]")}
		case Star:
			return []piece{text("{"), {node: n.Left}, text("}*")}
		default:
			panic(fmt.Sprintf("regex: unknown node kind %v", n.Kind))
		}
	})
}

// Dot renders the syntax tree in Graphviz format. Letters are labelled with
// their position and operators with their position range, so the tree should
// be indexed first.
func (t *Tree) Dot() string {
	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	t.walk(func(i int) {
		n := t.nodes[i]
		var label string
		switch n.Kind {
		case Letter:
			label = fmt.Sprintf("%c-%d", n.Symbol, n.PosMin)
		case Epsilon:
			label = fmt.Sprintf("%s-%d", EpsilonText, n.PosMin)
		case Union:
			label = fmt.Sprintf("+ (%d/%d)", n.PosMin, n.PosMax)
		case Concat:
			label = fmt.Sprintf(". (%d/%d)", n.PosMin, n.PosMax)
		case Star:
			label = fmt.Sprintf("* (%d/%d)", n.PosMin, n.PosMax)
		}
		fmt.Fprintf(&sb, "\tnode%d [label = %q];\n", i, label)
		for _, c := range []int{n.Left, n.Right} {
			if c != None {
				fmt.Fprintf(&sb, "\tnode%d -> node%d;\n", i, c)
			}
		}
	})
	sb.WriteString("}\n")
	return sb.String()
}
