package cst

import (
	"fmt"

	"fortio.org/safecast"

	"vb6cst/internal/source"
	"vb6cst/internal/token"
)

// Builder assembles a Tree bottom-up. The protocol is StartNode /
// PushToken / FinishNode, with Checkpoint + StartNodeAt for the cases
// where a wrapping node is only known after its first children have
// already been pushed (binary operators, call postfix).
//
// Every pushed token lands in exactly one node, in push order, which
// makes the resulting tree lossless by construction.
type Builder struct {
	file  *source.File
	tree  *Tree
	stack []frame
}

type frame struct {
	kind     NodeKind
	children []Child
}

// NewBuilder creates a builder for one file.
func NewBuilder(f *source.File) *Builder {
	return &Builder{
		file: f,
		tree: &Tree{file: f},
	}
}

// StartNode opens a new node; subsequent pushes go into it until the
// matching FinishNode.
func (b *Builder) StartNode(kind NodeKind) {
	b.stack = append(b.stack, frame{kind: kind})
}

// PushToken appends a leaf token to the currently open node.
func (b *Builder) PushToken(t token.Token) {
	idx, err := safecast.Conv[uint32](len(b.tree.toks))
	if err != nil {
		panic(fmt.Errorf("token arena overflow: %w", err))
	}
	b.tree.toks = append(b.tree.toks, t)
	b.appendChild(Child{IsToken: true, Index: idx})
}

// FinishNode closes the currently open node and attaches it to its
// parent.
func (b *Builder) FinishNode() {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	idx, err := safecast.Conv[uint32](len(b.tree.nodes))
	if err != nil {
		panic(fmt.Errorf("node arena overflow: %w", err))
	}
	b.tree.nodes = append(b.tree.nodes, nodeData{kind: top.kind, children: top.children})
	if len(b.stack) == 0 {
		b.tree.root = NodeID(idx)
		return
	}
	b.appendChild(Child{Index: idx})
}

func (b *Builder) appendChild(c Child) {
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, c)
}

// Checkpoint marks the current position inside the open node. A later
// StartNodeAt with this checkpoint wraps everything pushed since.
type Checkpoint struct {
	depth int
	pos   int
}

// Checkpoint captures a wrap point in the currently open node.
func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint{
		depth: len(b.stack),
		pos:   len(b.stack[len(b.stack)-1].children),
	}
}

// StartNodeAt opens a node retroactively: the children pushed to the
// checkpointed frame since the checkpoint become the first children of
// the new node. The checkpoint must belong to the currently open frame.
func (b *Builder) StartNodeAt(cp Checkpoint, kind NodeKind) {
	if cp.depth != len(b.stack) {
		panic(fmt.Errorf("checkpoint depth %d does not match open frame depth %d", cp.depth, len(b.stack)))
	}
	top := &b.stack[len(b.stack)-1]
	moved := append([]Child(nil), top.children[cp.pos:]...)
	top.children = top.children[:cp.pos]
	b.stack = append(b.stack, frame{kind: kind, children: moved})
}

// Finish seals the tree. The root frame must already be closed.
func (b *Builder) Finish() *Tree {
	if len(b.stack) != 0 {
		panic(fmt.Errorf("finish with %d unclosed nodes", len(b.stack)))
	}
	return b.tree
}
