// Package regex holds the syntax tree of rational expressions and the
// position analyses (Nullable, First, Last, Follow) the Glushkov construction
// is built on.
//
// A Tree is an arena of nodes addressed by index. Trees are created through a
// Builder and are shape-immutable afterwards; the only mutable parts are the
// derived indexes (letter positions and parent links), which are rebuilt
// wholesale by Index and Link.
package regex

import "fmt"

// Kind is the tag of a node.
type Kind uint8

const (
	Epsilon Kind = iota
	Letter
	Union
	Concat
	Star
)

func (k Kind) String() string {
	switch k {
	case Epsilon:
		return "epsilon"
	case Letter:
		return "letter"
	case Union:
		return "union"
	case Concat:
		return "concat"
	case Star:
		return "star"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// None is the null node index. A Tree whose root is None denotes the empty
// language.
const None = -1

// Node is one arena cell. Star keeps its operand in Left. PosMin and PosMax
// are only meaningful once the owning tree has been indexed.
type Node struct {
	Kind   Kind
	Symbol rune
	Left   int
	Right  int
	PosMin int
	PosMax int
}

type Tree struct {
	nodes []Node
	root  int

	// letters[p] is the node holding position p; letters[0] is unused. nil
	// until Index runs.
	letters []int

	// parents[i] is the parent of node i, None for the root. nil until Link
	// runs.
	parents []int
}

// Root returns the index of the root node, or None for the empty language.
func (t *Tree) Root() int {
	return t.root
}

// Empty reports whether the tree denotes the empty language.
func (t *Tree) Empty() bool {
	return t.root == None
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) Node(i int) Node {
	return t.nodes[i]
}

func (t *Tree) Kind(i int) Kind {
	return t.nodes[i].Kind
}

func (t *Tree) Symbol(i int) rune {
	return t.nodes[i].Symbol
}

func (t *Tree) Left(i int) int {
	return t.nodes[i].Left
}

func (t *Tree) Right(i int) int {
	return t.nodes[i].Right
}

// Child returns the operand of a Star node.
func (t *Tree) Child(i int) int {
	return t.nodes[i].Left
}

func (t *Tree) IsIndexed() bool {
	return t.letters != nil
}

func (t *Tree) IsLinked() bool {
	return t.parents != nil
}

// Alphabet returns the distinct letters of the tree in order of first
// occurrence.
func (t *Tree) Alphabet() []rune {
	seen := map[rune]bool{}
	var out []rune
	t.walk(func(i int) {
		n := t.nodes[i]
		if n.Kind == Letter && !seen[n.Symbol] {
			seen[n.Symbol] = true
			out = append(out, n.Symbol)
		}
	})
	return out
}

// walk visits the nodes in preorder.
func (t *Tree) walk(visit func(i int)) {
	if t.root == None {
		return
	}
	stack := []int{t.root}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(i)
		n := t.nodes[i]
		if n.Right != None {
			stack = append(stack, n.Right)
		}
		if n.Left != None {
			stack = append(stack, n.Left)
		}
	}
}
