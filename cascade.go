package tcss

import (
	"sort"
	"strings"
)

// State is the pseudo-class bitset a widget exposes to selector matching.
type State uint8

const (
	StateHover State = 1 << iota
	StateFocus
	StateFocusWithin
	StateDisabled
	StateActive
)

func (s State) Has(state State) bool { return s&state != 0 }

var pseudoStates = map[string]State{
	"hover":        StateHover,
	"focus":        StateFocus,
	"focus-within": StateFocusWithin,
	"disabled":     StateDisabled,
	"active":       StateActive,
}

// WidgetMeta is everything selector matching needs to know about a
// widget. TypeNames lists the widget's type and its ancestors (for
// example Label, Widget) so base-type rules match subtypes; TypeName is
// the most specific of them.
type WidgetMeta struct {
	TypeName  string
	TypeNames []string
	ID        string
	Classes   []string
	States    State
}

func (m *WidgetMeta) hasType(name string) bool {
	if name == m.TypeName {
		return true
	}
	for _, t := range m.TypeNames {
		if t == name {
			return true
		}
	}
	return false
}

func (m *WidgetMeta) hasClass(name string) bool {
	for _, c := range m.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// matchCompound tests every part of a compound against one widget.
// The dark/light pseudo-classes match the active theme rather than
// widget state.
func matchCompound(c CompoundSelector, m *WidgetMeta, theme *Theme) bool {
	for _, p := range c {
		switch p.Kind {
		case PartUniversal:
		case PartType:
			if !m.hasType(p.Name) {
				return false
			}
		case PartClass:
			if !m.hasClass(p.Name) {
				return false
			}
		case PartID:
			if m.ID != p.Name {
				return false
			}
		case PartPseudo:
			switch p.Name {
			case "dark":
				if theme == nil || !theme.Dark {
					return false
				}
			case "light":
				if theme == nil || theme.Dark {
					return false
				}
			default:
				state, ok := pseudoStates[p.Name]
				if !ok || !m.States.Has(state) {
					return false
				}
			}
		}
	}
	return true
}

// matchComplex matches a complex selector against a widget and its
// ancestor chain (ancestors ordered outermost first). The final compound
// must match the widget itself; earlier compounds walk the ancestors
// inward to outward, where a child combinator must match the immediate
// next ancestor and a descendant combinator may skip any number.
func matchComplex(cs ComplexSelector, m *WidgetMeta, ancestors []*WidgetMeta, theme *Theme) bool {
	steps := cs.Steps
	last := steps[len(steps)-1]
	if !matchCompound(last.Compound, m, theme) {
		return false
	}
	return matchAncestors(steps[:len(steps)-1], ancestors, theme)
}

// matchAncestors matches the remaining steps against the ancestor chain
// from the innermost ancestor outward. The combinator stored on a step
// relates it to the step after it, so the step nearest the widget is
// matched first.
func matchAncestors(steps []SelectorStep, ancestors []*WidgetMeta, theme *Theme) bool {
	if len(steps) == 0 {
		return true
	}
	step := steps[len(steps)-1]
	for i := len(ancestors) - 1; i >= 0; i-- {
		if matchCompound(step.Compound, ancestors[i], theme) {
			if matchAncestors(steps[:len(steps)-1], ancestors[:i], theme) {
				return true
			}
		}
		if step.Combinator == CombinatorChild {
			// The subject's parent (or the previously matched step's
			// parent) is the only candidate.
			return false
		}
	}
	return false
}

type matchedRule struct {
	specificity Specificity
	sourceOrder int
	decls       []Declaration
}

// ComputeStyle runs the cascade for one widget: collect matching rules,
// order them by (specificity, source order) ascending, and apply their
// declarations over the defaults so later declarations win per property.
// The result is deterministic for identical inputs.
func ComputeStyle(m *WidgetMeta, ancestors []*WidgetMeta, sheet *Stylesheet, theme *Theme) *Style {
	var matched []matchedRule
	if sheet != nil {
		for _, rule := range sheet.Rules {
			best, ok := Specificity{}, false
			for _, cs := range rule.Selectors {
				if matchComplex(cs, m, ancestors, theme) {
					if sp := cs.Specificity(); !ok || best.Less(sp) {
						best, ok = sp, true
					}
				}
			}
			if ok {
				matched = append(matched, matchedRule{best, rule.SourceOrder, rule.Declarations})
			}
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].specificity != matched[j].specificity {
			return matched[i].specificity.Less(matched[j].specificity)
		}
		return matched[i].sourceOrder < matched[j].sourceOrder
	})

	style := DefaultStyle()
	for _, mr := range matched {
		for _, d := range mr.decls {
			applyDeclaration(style, d, theme)
		}
	}
	return style
}

// applyDeclaration writes one parsed declaration into a style. Unknown
// declarations are inert by construction.
func applyDeclaration(s *Style, d Declaration, theme *Theme) {
	if d.Unknown() {
		return
	}
	switch d.Property {
	case "display":
		s.Display = d.Value.(Display)
	case "visibility":
		s.Visibility = d.Value.(Visibility)
	case "layout":
		s.Layout = d.Value.(LayoutKind)
	case "box-sizing":
		s.BoxSizing = d.Value.(BoxSizing)
	case "width":
		s.Width = scalarPtr(d.Value)
	case "height":
		s.Height = scalarPtr(d.Value)
	case "min-width":
		s.MinWidth = scalarPtr(d.Value)
	case "min-height":
		s.MinHeight = scalarPtr(d.Value)
	case "max-width":
		s.MaxWidth = scalarPtr(d.Value)
	case "max-height":
		s.MaxHeight = scalarPtr(d.Value)
	case "margin":
		s.Margin = d.Value.(Spacing)
	case "padding":
		s.Padding = d.Value.(Spacing)
	case "margin-top":
		s.Margin.Top = d.Value.(int)
	case "margin-right":
		s.Margin.Right = d.Value.(int)
	case "margin-bottom":
		s.Margin.Bottom = d.Value.(int)
	case "margin-left":
		s.Margin.Left = d.Value.(int)
	case "padding-top":
		s.Padding.Top = d.Value.(int)
	case "padding-right":
		s.Padding.Right = d.Value.(int)
	case "padding-bottom":
		s.Padding.Bottom = d.Value.(int)
	case "padding-left":
		s.Padding.Left = d.Value.(int)
	case "border":
		e := borderEdge(d.Value.(borderValue), theme)
		s.Border = Border{e, e, e, e}
	case "border-top":
		s.Border.Top = borderEdge(d.Value.(borderValue), theme)
	case "border-right":
		s.Border.Right = borderEdge(d.Value.(borderValue), theme)
	case "border-bottom":
		s.Border.Bottom = borderEdge(d.Value.(borderValue), theme)
	case "border-left":
		s.Border.Left = borderEdge(d.Value.(borderValue), theme)
	case "color":
		s.Color = themedColorPtr(d.Value.(Color), theme)
	case "background":
		s.Background = themedColorPtr(d.Value.(Color), theme)
	case "tint":
		s.Tint = themedColorPtr(d.Value.(Color), theme)
	case "opacity":
		s.Opacity = d.Value.(float64)
	case "text-opacity":
		s.TextOpacity = d.Value.(float64)
	case "text-style":
		s.TextStyle = d.Value.(TextStyle)
	case "align":
		pair := d.Value.([2]Align)
		s.AlignH, s.AlignV = pair[0], pair[1]
	case "align-horizontal":
		s.AlignH = d.Value.(Align)
	case "align-vertical":
		s.AlignV = d.Value.(Align)
	case "dock":
		s.Dock = d.Value.(Dock)
	case "position":
		s.Position = d.Value.(PositionKind)
	case "offset":
		pair := d.Value.([2]Scalar)
		s.OffsetX, s.OffsetY = pair[0], pair[1]
	case "offset-x":
		s.OffsetX = d.Value.(Scalar)
	case "offset-y":
		s.OffsetY = d.Value.(Scalar)
	case "layer":
		s.Layer = d.Value.(string)
	case "layers":
		s.Layers = d.Value.([]string)
	case "grid-size":
		gs := d.Value.(gridSizeValue)
		s.Grid.Columns, s.Grid.Rows = gs.Columns, gs.Rows
	case "grid-columns":
		s.Grid.ColumnWidths = d.Value.([]Scalar)
	case "grid-rows":
		s.Grid.RowHeights = d.Value.([]Scalar)
	case "grid-gutter":
		pair := d.Value.([2]int)
		s.Grid.GutterV, s.Grid.GutterH = pair[0], pair[1]
	case "column-span":
		s.Span.ColumnSpan = d.Value.(int)
	case "row-span":
		s.Span.RowSpan = d.Value.(int)
	case "overflow":
		pair := d.Value.([2]Overflow)
		s.OverflowX, s.OverflowY = pair[0], pair[1]
	case "overflow-x":
		s.OverflowX = d.Value.(Overflow)
	case "overflow-y":
		s.OverflowY = d.Value.(Overflow)
	}
}

func scalarPtr(v any) *Scalar {
	s := v.(Scalar)
	return &s
}

// resolveThemeColor turns a $variable color into a concrete one. An
// unresolvable variable falls back to transparent.
func resolveThemeColor(c Color, theme *Theme) Color {
	if c.ThemeVar == "" {
		return c
	}
	alpha := c.A
	resolved, ok := theme.Resolve(strings.TrimSpace(c.ThemeVar))
	if !ok {
		return Transparent
	}
	resolved.A *= alpha
	return resolved
}

func themedColorPtr(c Color, theme *Theme) *Color {
	out := resolveThemeColor(c, theme)
	return &out
}

func borderEdge(v borderValue, theme *Theme) BorderEdge {
	c := resolveThemeColor(v.Color, theme)
	if v.Color.Auto {
		c = theme.Foreground()
	}
	return BorderEdge{Kind: v.Kind, Color: c}
}

// InheritPass fills a style's effective colors from its parent after the
// cascade: text color inherits when unset, the effective background is
// the parent's composited with the widget's own by its alpha and tinted,
// and an auto text color resolves to a contrasting shade.
func InheritPass(s *Style, parent *Style, theme *Theme) {
	bg := theme.Background()
	if parent != nil {
		bg = parent.EffectiveBackground
	}
	if s.Background != nil {
		bg = bg.Composite(*s.Background)
	}
	if s.Tint != nil {
		bg = bg.Composite(*s.Tint)
	}
	s.EffectiveBackground = bg

	var fg Color
	switch {
	case s.Color != nil && s.Color.Auto:
		fg = bg.Contrasting(s.Color.A)
	case s.Color != nil:
		fg = *s.Color
	case parent != nil:
		fg = parent.EffectiveColor
	default:
		fg = theme.Foreground()
	}
	if s.TextOpacity < 1 {
		fg = bg.Blend(fg, s.TextOpacity)
	}
	s.EffectiveColor = fg
}
