package tcss

import "go.uber.org/zap"

// Node is the minimal widget tree protocol the style resolver needs.
// Implementations own the dirty flag; the resolver clears it after a
// recompute.
type Node interface {
	Meta() *WidgetMeta
	Style() *Style
	SetStyle(*Style)
	StyleDirty() bool
	ClearStyleDirty()
	Visible() bool
	Children() []Node
}

// ResolveDirty recomputes styles for every dirty widget and its
// descendants. A widget restyles when it is dirty or when its parent
// restyled this pass, since a parent's style feeds inheritance.
// Invisible subtrees are skipped entirely. A second call right after is
// a no-op.
func ResolveDirty(root Node, sheet *Stylesheet, theme *Theme) {
	if root == nil {
		return
	}
	resolveNode(root, nil, nil, sheet, theme, false)
}

func resolveNode(n Node, ancestors []*WidgetMeta, parent Node, sheet *Stylesheet, theme *Theme, parentDirty bool) {
	if !n.Visible() {
		return
	}
	restyle := parentDirty || n.StyleDirty()
	if restyle {
		style := ComputeStyle(n.Meta(), ancestors, sheet, theme)
		var parentStyle *Style
		if parent != nil {
			parentStyle = parent.Style()
		}
		InheritPass(style, parentStyle, theme)
		n.SetStyle(style)
		n.ClearStyleDirty()
		logger.Debug("restyled widget",
			zap.String("type", n.Meta().TypeName),
			zap.String("id", n.Meta().ID))
	}

	ancestors = append(ancestors, n.Meta())
	for _, child := range n.Children() {
		resolveNode(child, ancestors, n, sheet, theme, restyle)
	}
}
