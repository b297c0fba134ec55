package cst

import (
	"fmt"
	"strings"

	"vb6cst/internal/source"
	"vb6cst/internal/token"
)

// NodeID indexes a node inside a Tree's arena.
type NodeID uint32

// Child points at either a nested node or a leaf token of a node. The
// two index spaces are disjoint arenas inside the owning Tree.
type Child struct {
	IsToken bool
	Index   uint32
}

type nodeData struct {
	kind     NodeKind
	children []Child
}

// Tree is a lossless concrete syntax tree over one file. All nodes live
// in a single arena owned by the tree; tokens are immutable span views
// into the file content, never copies. Concatenating the tree's leaf
// tokens in order reproduces the file byte for byte.
type Tree struct {
	file  *source.File
	nodes []nodeData
	toks  []token.Token
	root  NodeID
}

// File returns the source file this tree was parsed from.
func (t *Tree) File() *source.File { return t.file }

// Root returns the root node, always of kind Root.
func (t *Tree) Root() NodeID { return t.root }

// Kind returns the kind of node id.
func (t *Tree) Kind(id NodeID) NodeKind { return t.nodes[id].kind }

// Children returns the ordered children of node id. The returned slice
// is owned by the tree and must not be mutated.
func (t *Tree) Children(id NodeID) []Child { return t.nodes[id].children }

// TokenAt returns the leaf token at index i.
func (t *Tree) TokenAt(i uint32) token.Token { return t.toks[i] }

// TokenCount returns the number of leaf tokens in the tree.
func (t *Tree) TokenCount() int { return len(t.toks) }

// Span returns the byte range covered by node id: from its first leaf
// to its last. Empty nodes yield an empty span.
func (t *Tree) Span(id NodeID) source.Span {
	first, ok := t.firstToken(id)
	if !ok {
		return source.Span{File: t.file.ID}
	}
	last, _ := t.lastToken(id)
	return first.Span.Cover(last.Span)
}

func (t *Tree) firstToken(id NodeID) (token.Token, bool) {
	for _, c := range t.nodes[id].children {
		if c.IsToken {
			return t.toks[c.Index], true
		}
		if tok, ok := t.firstToken(NodeID(c.Index)); ok {
			return tok, true
		}
	}
	return token.Token{}, false
}

func (t *Tree) lastToken(id NodeID) (token.Token, bool) {
	children := t.nodes[id].children
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if c.IsToken {
			return t.toks[c.Index], true
		}
		if tok, ok := t.lastToken(NodeID(c.Index)); ok {
			return tok, true
		}
	}
	return token.Token{}, false
}

// Text reconstructs the full source text from the tree's leaves.
func (t *Tree) Text() string {
	var sb strings.Builder
	sb.Grow(len(t.file.Content))
	t.writeText(&sb, t.root)
	return sb.String()
}

// NodeText returns the exact source substring a node covers.
func (t *Tree) NodeText(id NodeID) string {
	var sb strings.Builder
	t.writeText(&sb, id)
	return sb.String()
}

func (t *Tree) writeText(sb *strings.Builder, id NodeID) {
	for _, c := range t.nodes[id].children {
		if c.IsToken {
			sb.Write(t.toks[c.Index].Bytes(t.file))
		} else {
			t.writeText(sb, NodeID(c.Index))
		}
	}
}

// Find returns every node of the given kind in depth-first order.
func (t *Tree) Find(kind NodeKind) []NodeID {
	var out []NodeID
	t.walk(t.root, func(id NodeID) {
		if t.nodes[id].kind == kind {
			out = append(out, id)
		}
	})
	return out
}

// ContainsKind reports whether any node of the given kind exists.
func (t *Tree) ContainsKind(kind NodeKind) bool {
	return len(t.Find(kind)) > 0
}

func (t *Tree) walk(id NodeID, visit func(NodeID)) {
	visit(id)
	for _, c := range t.nodes[id].children {
		if !c.IsToken {
			t.walk(NodeID(c.Index), visit)
		}
	}
}

// DebugDump renders the tree as indented text, one node or token per
// line, for human diffing. The output is deterministic for a given
// tree.
func (t *Tree) DebugDump() string {
	var sb strings.Builder
	t.dump(&sb, t.root, 0)
	return sb.String()
}

func (t *Tree) dump(sb *strings.Builder, id NodeID, depth int) {
	indent := strings.Repeat("  ", depth)
	sp := t.Span(id)
	fmt.Fprintf(sb, "%s%s@%d..%d\n", indent, t.nodes[id].kind, sp.Start, sp.End)
	for _, c := range t.nodes[id].children {
		if c.IsToken {
			tok := t.toks[c.Index]
			fmt.Fprintf(sb, "%s  %s@%d..%d %q\n",
				indent, tok.Kind, tok.Span.Start, tok.Span.End, tok.Bytes(t.file))
		} else {
			t.dump(sb, NodeID(c.Index), depth+1)
		}
	}
}

// SnapshotNode is a representation-independent projection of one tree
// element, used for snapshot regression tests. It is JSON-encodable.
type SnapshotNode struct {
	Kind     string         `json:"kind"`
	Token    bool           `json:"token,omitempty"`
	Text     string         `json:"text,omitempty"`
	Children []SnapshotNode `json:"children,omitempty"`
}

// Snapshot projects the whole tree into SnapshotNodes. Tokens carry
// their text; structural nodes carry only kind and children.
func (t *Tree) Snapshot() SnapshotNode {
	return t.snapshot(t.root)
}

func (t *Tree) snapshot(id NodeID) SnapshotNode {
	n := t.nodes[id]
	out := SnapshotNode{Kind: n.kind.String()}
	for _, c := range n.children {
		if c.IsToken {
			tok := t.toks[c.Index]
			out.Children = append(out.Children, SnapshotNode{
				Kind:  tok.Kind.String(),
				Token: true,
				Text:  string(tok.Bytes(t.file)),
			})
		} else {
			out.Children = append(out.Children, t.snapshot(NodeID(c.Index)))
		}
	}
	return out
}
