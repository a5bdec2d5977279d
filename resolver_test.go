package tcss

import "testing"

// testNode is a minimal Node for resolver tests that counts recomputes.
type testNode struct {
	meta     WidgetMeta
	style    *Style
	dirty    bool
	visible  bool
	children []*testNode
	computed int
}

func newTestNode(typeName, id string, children ...*testNode) *testNode {
	return &testNode{
		meta:     WidgetMeta{TypeName: typeName, ID: id},
		dirty:    true,
		visible:  true,
		children: children,
	}
}

func (n *testNode) Meta() *WidgetMeta { return &n.meta }
func (n *testNode) Style() *Style     { return n.style }
func (n *testNode) SetStyle(s *Style) {
	n.style = s
	n.computed++
}
func (n *testNode) StyleDirty() bool { return n.dirty }
func (n *testNode) ClearStyleDirty() { n.dirty = false }
func (n *testNode) Visible() bool    { return n.visible }
func (n *testNode) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func countComputed(n *testNode) int {
	total := n.computed
	for _, c := range n.children {
		total += countComputed(c)
	}
	return total
}

func TestResolveDirtyComputesWholeTreeOnce(t *testing.T) {
	leaf := newTestNode("Label", "msg")
	mid := newTestNode("Container", "body", leaf)
	root := newTestNode("Screen", "", mid)
	sheet := mustParse(t, `
		Screen { background: #111111; }
		Container Label { color: red; }`)
	theme := StandardThemes()["textual-dark"]

	ResolveDirty(root, sheet, theme)
	if got := countComputed(root); got != 3 {
		t.Errorf("first pass computed %d styles, want 3", got)
	}
	if leaf.style == nil || leaf.style.Color == nil {
		t.Fatal("descendant rule did not reach the leaf")
	}
	if *leaf.style.Color != RGB(1, 0, 0) {
		t.Errorf("leaf color: got %+v", *leaf.style.Color)
	}
}

func TestResolveDirtySecondPassIsNoop(t *testing.T) {
	leaf := newTestNode("Label", "")
	root := newTestNode("Screen", "", leaf)
	sheet := mustParse(t, `Label { width: 10; }`)

	ResolveDirty(root, sheet, nil)
	before := countComputed(root)
	ResolveDirty(root, sheet, nil)
	if after := countComputed(root); after != before {
		t.Errorf("clean tree recomputed: %d -> %d", before, after)
	}
}

func TestResolveDirtyParentDirtiesDescendants(t *testing.T) {
	leaf := newTestNode("Label", "")
	mid := newTestNode("Container", "", leaf)
	root := newTestNode("Screen", "", mid)
	ResolveDirty(root, nil, nil)

	// Dirtying the middle widget recomputes it and the leaf, but not
	// the root.
	mid.dirty = true
	rootBefore, midBefore, leafBefore := root.computed, mid.computed, leaf.computed
	ResolveDirty(root, nil, nil)
	if root.computed != rootBefore {
		t.Error("clean root should not recompute")
	}
	if mid.computed != midBefore+1 {
		t.Error("dirty widget should recompute")
	}
	if leaf.computed != leafBefore+1 {
		t.Error("descendant of a dirty widget should recompute")
	}
}

func TestResolveDirtySkipsInvisibleSubtree(t *testing.T) {
	leaf := newTestNode("Label", "")
	hidden := newTestNode("Container", "", leaf)
	hidden.visible = false
	root := newTestNode("Screen", "", hidden)

	ResolveDirty(root, nil, nil)
	if hidden.computed != 0 || leaf.computed != 0 {
		t.Error("invisible subtree should be skipped entirely")
	}
	if root.computed != 1 {
		t.Errorf("root computed %d times", root.computed)
	}
}

func TestResolveDirtyInheritsThroughTree(t *testing.T) {
	leaf := newTestNode("Label", "")
	root := newTestNode("Screen", "", leaf)
	sheet := mustParse(t, `Screen { color: lime; background: navy; }`)
	theme := StandardThemes()["textual-dark"]

	ResolveDirty(root, sheet, theme)
	if leaf.style.EffectiveColor != RGB(0, 1, 0) {
		t.Errorf("leaf should inherit text color: got %+v", leaf.style.EffectiveColor)
	}
	if leaf.style.EffectiveBackground != RGB(0, 0, 0.5) {
		t.Errorf("leaf should see parent background: got %+v", leaf.style.EffectiveBackground)
	}
}
