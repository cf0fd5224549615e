package regex

import "fmt"

// Derive returns the Brzozowski derivative of ref with respect to r: the
// expression for { w | rw ∈ L(ref) }. None stands for the empty language.
func (b *Builder) Derive(ref int, r rune) int {
	if ref == None {
		return None
	}
	n := b.nodes[ref]
	switch n.Kind {
	case Epsilon:
		return None
	case Letter:
		if n.Symbol == r {
			return b.Epsilon()
		}
		return None
	case Union:
		return b.Union(b.Derive(n.Left, r), b.Derive(n.Right, r))
	case Concat:
		d := b.Concat(b.Derive(n.Left, r), n.Right)
		if b.Nullable(n.Left) {
			d = b.Union(d, b.Derive(n.Right, r))
		}
		return d
	case Star:
		return b.Concat(b.Derive(n.Left, r), ref)
	default:
		panic(fmt.Sprintf("regex: unknown node kind %v", n.Kind))
	}
}

// Match reports whether word belongs to the language of t. It works on the
// expression directly, by successive derivatives, and does not need t to be
// indexed.
func Match(t *Tree, word string) bool {
	b := NewBuilder()
	cur := b.Import(t)
	for _, r := range word {
		cur = b.Derive(cur, r)
		if cur == None {
			return false
		}
	}
	return b.Nullable(cur)
}
