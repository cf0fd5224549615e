package regex

import "fmt"

// Index numbers the letters 1..n from left to right and records on every node
// the range [PosMin, PosMax] of the letters below it. An ε leaf takes the
// current counter as both bounds without consuming it. Index returns n+1.
//
// Re-indexing is allowed and yields the same numbering.
func (t *Tree) Index() int {
	type frame struct {
		node int
		exit bool
	}

	m := 1
	t.letters = []int{None}
	if t.root == None {
		return m
	}

	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[f.node]
		if f.exit {
			n.PosMax = m - 1
			continue
		}

		switch n.Kind {
		case Epsilon:
			n.PosMin, n.PosMax = m, m
		case Letter:
			n.PosMin, n.PosMax = m, m
			t.letters = append(t.letters, f.node)
			m++
		case Union, Concat:
			n.PosMin = m
			// right is pushed first so that left is numbered first
			stack = append(stack, frame{node: f.node, exit: true}, frame{node: n.Right}, frame{node: n.Left})
		case Star:
			n.PosMin = m
			stack = append(stack, frame{node: f.node, exit: true}, frame{node: n.Left})
		default:
			panic(fmt.Sprintf("regex: unknown node kind %v", n.Kind))
		}
	}
	return m
}

// Letters returns the number of letter positions, or -1 when the tree has not
// been indexed.
func (t *Tree) Letters() int {
	if t.letters == nil {
		return -1
	}
	return len(t.letters) - 1
}

// LetterAt returns the node holding position p.
func (t *Tree) LetterAt(p int) (int, error) {
	if t.letters == nil {
		return None, &IndexError{Op: "letter", Pos: p, Err: ErrNotIndexed}
	}
	if p < 1 || p >= len(t.letters) {
		return None, &IndexError{Op: "letter", Pos: p, Err: ErrNoPosition}
	}
	return t.letters[p], nil
}

// SymbolAt returns the symbol of the letter at position p.
func (t *Tree) SymbolAt(p int) (rune, error) {
	i, err := t.LetterAt(p)
	if err != nil {
		return 0, err
	}
	return t.nodes[i].Symbol, nil
}

// Link rebuilds the parent table over the whole tree.
func (t *Tree) Link() {
	t.parents = make([]int, len(t.nodes))
	for i := range t.parents {
		t.parents[i] = None
	}
	if t.root == None {
		return
	}

	stack := []int{t.root}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range []int{t.nodes[i].Left, t.nodes[i].Right} {
			if c != None {
				t.parents[c] = i
				stack = append(stack, c)
			}
		}
	}
}

// Parent returns the parent of node i, None for the root.
func (t *Tree) Parent(i int) (int, error) {
	if t.parents == nil {
		return None, &IndexError{Op: "parent", Err: ErrNotLinked}
	}
	return t.parents[i], nil
}

// Prepare indexes positions and builds parent links.
func (t *Tree) Prepare() int {
	n := t.Index() - 1
	t.Link()
	return n
}
