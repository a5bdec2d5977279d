package tcss

import (
	"fmt"
	"strings"
)

// Specificity orders rules: ids beat classes and pseudo-classes, which
// beat type names. Source order breaks ties.
type Specificity struct {
	IDs, Classes, Types int
}

func (s Specificity) add(o Specificity) Specificity {
	return Specificity{s.IDs + o.IDs, s.Classes + o.Classes, s.Types + o.Types}
}

// Less orders lexicographically by (ids, classes, types).
func (s Specificity) Less(o Specificity) bool {
	if s.IDs != o.IDs {
		return s.IDs < o.IDs
	}
	if s.Classes != o.Classes {
		return s.Classes < o.Classes
	}
	return s.Types < o.Types
}

// PartKind discriminates the pieces of a compound selector.
type PartKind uint8

const (
	PartUniversal PartKind = iota
	PartType
	PartClass
	PartID
	PartPseudo
)

// SelectorPart is one piece of a compound selector, e.g. "Button",
// ".primary", "#ok", ":hover" or "*".
type SelectorPart struct {
	Kind PartKind
	Name string
}

// CompoundSelector is a run of parts with no combinator between them,
// all of which must match the same widget.
type CompoundSelector []SelectorPart

func (c CompoundSelector) specificity() Specificity {
	var s Specificity
	for _, p := range c {
		switch p.Kind {
		case PartID:
			s.IDs++
		case PartClass, PartPseudo:
			s.Classes++
		case PartType:
			s.Types++
		}
	}
	return s
}

func (c CompoundSelector) String() string {
	var b strings.Builder
	for _, p := range c {
		switch p.Kind {
		case PartUniversal:
			b.WriteByte('*')
		case PartType:
			b.WriteString(p.Name)
		case PartClass:
			b.WriteByte('.')
			b.WriteString(p.Name)
		case PartID:
			b.WriteByte('#')
			b.WriteString(p.Name)
		case PartPseudo:
			b.WriteByte(':')
			b.WriteString(p.Name)
		}
	}
	return b.String()
}

// Combinator relates a compound to the one after it. The final compound
// of a complex selector carries CombinatorNone.
type Combinator uint8

const (
	CombinatorNone Combinator = iota
	CombinatorDescendant
	CombinatorChild
)

// SelectorStep is a compound plus its relationship to the next step.
type SelectorStep struct {
	Compound   CompoundSelector
	Combinator Combinator
}

// ComplexSelector is a chain of compounds joined by combinators, read
// left to right from outermost ancestor to the subject widget.
type ComplexSelector struct {
	Steps []SelectorStep
}

// Specificity sums over every compound in the chain.
func (c ComplexSelector) Specificity() Specificity {
	var s Specificity
	for _, step := range c.Steps {
		s = s.add(step.Compound.specificity())
	}
	return s
}

func (c ComplexSelector) String() string {
	var b strings.Builder
	for i, step := range c.Steps {
		if i > 0 {
			prev := c.Steps[i-1].Combinator
			if prev == CombinatorChild {
				b.WriteString(" > ")
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(step.Compound.String())
	}
	return b.String()
}

// SelectorList is the comma alternatives of one rule. A rule matches if
// any alternative matches; the matching alternative's specificity is the
// one the cascade sorts by.
type SelectorList []ComplexSelector

// Declaration is one property: value pair. Value is nil for properties
// the parser does not recognize; such declarations are inert.
type Declaration struct {
	Property string
	Value    any
}

// Unknown reports whether the declaration was not recognized at parse
// time.
func (d Declaration) Unknown() bool { return d.Value == nil }

// Rule is a flattened rule: selectors, declarations and the order it
// completed parsing in.
type Rule struct {
	Selectors    SelectorList
	Declarations []Declaration
	SourceOrder  int
}

// Stylesheet is a parsed, flattened TCSS document.
type Stylesheet struct {
	Rules []Rule
}

func (s *Stylesheet) String() string {
	var b strings.Builder
	for _, r := range s.Rules {
		sels := make([]string, len(r.Selectors))
		for i, cs := range r.Selectors {
			sels[i] = cs.String()
		}
		fmt.Fprintf(&b, "%s { %d declarations }\n", strings.Join(sels, ", "), len(r.Declarations))
	}
	return b.String()
}
