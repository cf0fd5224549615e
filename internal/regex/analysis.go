package regex

import (
	"fmt"

	"glushkov/internal/intset"
)

// Nullable reports whether the language of the subtree at i contains the
// empty word. None (the empty language) is not nullable.
func (t *Tree) Nullable(i int) bool {
	return nullable(t.nodes, i)
}

func nullable(nodes []Node, i int) bool {
	if i == None {
		return false
	}
	n := nodes[i]
	switch n.Kind {
	case Epsilon, Star:
		return true
	case Letter:
		return false
	case Concat:
		return nullable(nodes, n.Left) && nullable(nodes, n.Right)
	case Union:
		return nullable(nodes, n.Left) || nullable(nodes, n.Right)
	default:
		panic(fmt.Sprintf("regex: unknown node kind %v", n.Kind))
	}
}

// First returns the positions that can start a word of the subtree at i.
func (t *Tree) First(i int) (*intset.Set, error) {
	if t.letters == nil {
		return nil, &IndexError{Op: "first", Err: ErrNotIndexed}
	}
	return first(t.nodes, i), nil
}

func first(nodes []Node, i int) *intset.Set {
	if i == None {
		return intset.New()
	}
	n := nodes[i]
	switch n.Kind {
	case Epsilon:
		return intset.New()
	case Letter:
		return intset.New(n.PosMin)
	case Star:
		return first(nodes, n.Left)
	case Union:
		return first(nodes, n.Left).Union(first(nodes, n.Right))
	case Concat:
		f := first(nodes, n.Left)
		if nullable(nodes, n.Left) {
			f.AddAll(first(nodes, n.Right))
		}
		return f
	default:
		panic(fmt.Sprintf("regex: unknown node kind %v", n.Kind))
	}
}

// Mirror returns the reversed expression: the operands of every Concat are
// swapped and everything else keeps its shape. Node indices and letter
// positions are carried over unchanged, so the mirror is a view for the
// First/Last duality rather than a new expression to be re-indexed. The
// mirror has no parent links.
func (t *Tree) Mirror() *Tree {
	m := &Tree{
		nodes: make([]Node, len(t.nodes)),
		root:  t.root,
	}
	copy(m.nodes, t.nodes)
	for i := range m.nodes {
		if m.nodes[i].Kind == Concat {
			m.nodes[i].Left, m.nodes[i].Right = m.nodes[i].Right, m.nodes[i].Left
		}
	}
	if t.letters != nil {
		m.letters = make([]int, len(t.letters))
		copy(m.letters, t.letters)
	}
	return m
}

// Last returns the positions that can end a word of the subtree at i, that is
// the First set of the mirrored subtree.
func (t *Tree) Last(i int) (*intset.Set, error) {
	if t.letters == nil {
		return nil, &IndexError{Op: "last", Err: ErrNotIndexed}
	}
	return t.Mirror().First(i)
}

// Follow returns the positions that can come right after position p in a word
// of the tree. It climbs from the letter to the root through the parent links:
// a Concat reached from its left operand adds the First set of its right
// operand and stops the climb unless that operand is nullable, and a Star adds
// its own First set. Union nodes and Concat nodes reached from the right
// contribute nothing.
func (t *Tree) Follow(p int) (*intset.Set, error) {
	if t.letters == nil {
		return nil, &IndexError{Op: "follow", Pos: p, Err: ErrNotIndexed}
	}
	if t.parents == nil {
		return nil, &IndexError{Op: "follow", Pos: p, Err: ErrNotLinked}
	}
	cur, err := t.LetterAt(p)
	if err != nil {
		return nil, &IndexError{Op: "follow", Pos: p, Err: ErrNoPosition}
	}

	out := intset.New()
	for parent := t.parents[cur]; parent != None; cur, parent = parent, t.parents[parent] {
		n := t.nodes[parent]
		switch n.Kind {
		case Union:
		case Concat:
			if n.Left != cur {
				continue
			}
			out.AddAll(first(t.nodes, n.Right))
			if !nullable(t.nodes, n.Right) {
				return out, nil
			}
		case Star:
			out.AddAll(first(t.nodes, parent))
		default:
			panic(fmt.Sprintf("regex: %v node cannot be a parent", n.Kind))
		}
	}
	return out, nil
}
