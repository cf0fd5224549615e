package regex

import "fmt"

// Builder is a shared arena for composing expressions. Identical nodes are
// interned, so a reference may be used any number of times; Tree turns a
// reference into an owned tree.
//
// The plain constructors simplify around ε and the empty language (None):
//
//	∅ + x = x    ∅x = x∅ = ∅    εx = xε = x    ∅* = ε* = ε    x** = x*    x + x = x
//
// The Raw constructors keep the literal shape.
type Builder struct {
	nodes  []Node
	intern map[Node]int
}

func NewBuilder() *Builder {
	return &Builder{intern: map[Node]int{}}
}

func (b *Builder) add(n Node) int {
	if i, ok := b.intern[n]; ok {
		return i
	}
	b.nodes = append(b.nodes, n)
	i := len(b.nodes) - 1
	b.intern[n] = i
	return i
}

func (b *Builder) Epsilon() int {
	return b.add(Node{Kind: Epsilon, Left: None, Right: None})
}

func (b *Builder) Letter(r rune) int {
	return b.add(Node{Kind: Letter, Symbol: r, Left: None, Right: None})
}

func (b *Builder) RawUnion(l, r int) int {
	b.mustRef(l)
	b.mustRef(r)
	return b.add(Node{Kind: Union, Left: l, Right: r})
}

func (b *Builder) RawConcat(l, r int) int {
	b.mustRef(l)
	b.mustRef(r)
	return b.add(Node{Kind: Concat, Left: l, Right: r})
}

func (b *Builder) RawStar(c int) int {
	b.mustRef(c)
	return b.add(Node{Kind: Star, Left: c, Right: None})
}

func (b *Builder) Union(l, r int) int {
	switch {
	case l == None:
		return r
	case r == None:
		return l
	case l == r:
		return l
	}
	return b.RawUnion(l, r)
}

func (b *Builder) Concat(l, r int) int {
	switch {
	case l == None || r == None:
		return None
	case b.nodes[l].Kind == Epsilon:
		return r
	case b.nodes[r].Kind == Epsilon:
		return l
	}
	return b.RawConcat(l, r)
}

func (b *Builder) Star(c int) int {
	if c == None {
		return b.Epsilon()
	}
	switch b.nodes[c].Kind {
	case Epsilon, Star:
		return c
	}
	return b.RawStar(c)
}

// Kind returns the tag of a reference. It panics on None.
func (b *Builder) Kind(ref int) Kind {
	return b.nodes[ref].Kind
}

// Nullable reports whether the language of ref contains the empty word.
func (b *Builder) Nullable(ref int) bool {
	return nullable(b.nodes, ref)
}

// Import copies t into the arena and returns the reference of its root.
func (b *Builder) Import(t *Tree) int {
	if t.root == None {
		return None
	}

	type frame struct {
		node int
		exit bool
	}

	// refs[i] is the reference of node i once its subtree is imported
	refs := make([]int, len(t.nodes))
	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[f.node]
		if !f.exit {
			switch n.Kind {
			case Epsilon:
				refs[f.node] = b.Epsilon()
			case Letter:
				refs[f.node] = b.Letter(n.Symbol)
			default:
				stack = append(stack, frame{node: f.node, exit: true})
				if n.Right != None {
					stack = append(stack, frame{node: n.Right})
				}
				if n.Left != None {
					stack = append(stack, frame{node: n.Left})
				}
			}
			continue
		}

		switch n.Kind {
		case Union:
			refs[f.node] = b.RawUnion(refs[n.Left], refs[n.Right])
		case Concat:
			refs[f.node] = b.RawConcat(refs[n.Left], refs[n.Right])
		case Star:
			refs[f.node] = b.RawStar(refs[n.Left])
		default:
			panic(fmt.Sprintf("regex: unknown node kind %v", n.Kind))
		}
	}
	return refs[t.root]
}

// Tree returns an owned copy of the expression rooted at ref, laid out in
// preorder. Shared sub-expressions are duplicated so that every letter
// occurrence gets its own node.
func (b *Builder) Tree(ref int) *Tree {
	t := &Tree{root: None}
	if ref == None {
		return t
	}

	type frame struct {
		src    int
		parent int
		left   bool
	}

	stack := []frame{{src: ref, parent: None}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := b.nodes[f.src]
		idx := len(t.nodes)
		t.nodes = append(t.nodes, Node{Kind: n.Kind, Symbol: n.Symbol, Left: None, Right: None})
		switch {
		case f.parent == None:
			t.root = idx
		case f.left:
			t.nodes[f.parent].Left = idx
		default:
			t.nodes[f.parent].Right = idx
		}

		// right is pushed first so that the left subtree is laid out first
		if n.Right != None {
			stack = append(stack, frame{src: n.Right, parent: idx})
		}
		if n.Left != None {
			stack = append(stack, frame{src: n.Left, parent: idx, left: true})
		}
	}
	return t
}

// String renders ref without building a tree.
func (b *Builder) String(ref int) string {
	return b.Tree(ref).String()
}

func (b *Builder) mustRef(ref int) {
	if ref < 0 || ref >= len(b.nodes) {
		panic(fmt.Sprintf("regex: invalid node reference %d", ref))
	}
}
