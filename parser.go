package tcss

import (
	"strings"

	"go.uber.org/zap"
)

// Parse turns TCSS source into a flattened stylesheet. Structural
// problems return a *SyntaxError; unrecognized properties and bad
// declaration values are retained or skipped without failing the parse.
func Parse(src string) (*Stylesheet, error) {
	clean, serr := stripComments(src)
	if serr != nil {
		return nil, serr
	}
	clean, vars := extractVariables(clean)
	clean = substituteVariables(clean, vars)

	p := &parser{src: clean}
	sheet := &Stylesheet{}
	for {
		p.skipSpace()
		if p.eof() {
			break
		}
		raw, err := p.parseRawRule()
		if err != nil {
			return nil, err
		}
		flattenRule(raw, nil, sheet)
	}
	return sheet, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorf(offset int, msg string) *SyntaxError {
	line, col := position(p.src, offset)
	return &SyntaxError{line, col, msg}
}

// rawRule is a rule before flattening: its own selector text, its
// declarations, and any rules nested in its body.
type rawRule struct {
	selectors SelectorList
	decls     []Declaration
	nested    []*rawRule
}

// parseRawRule reads `selectors { body }` from the current position.
func (p *parser) parseRawRule() (*rawRule, error) {
	start := p.pos
	brace := strings.IndexByte(p.src[p.pos:], '{')
	if brace < 0 {
		return nil, p.errorf(start, "expected '{' after selector")
	}
	selText := p.src[p.pos : p.pos+brace]
	sels, err := parseSelectorList(selText, p, start)
	if err != nil {
		return nil, err
	}
	p.pos += brace + 1

	rule := &rawRule{selectors: sels}
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf(start, "unclosed rule")
		}
		if p.peek() == '}' {
			p.pos++
			return rule, nil
		}
		// A '{' before any ';' or '}' means a nested rule starts here.
		if nextOf(p.src[p.pos:], '{') < nextOfAny(p.src[p.pos:], ";}") {
			nested, err := p.parseRawRule()
			if err != nil {
				return nil, err
			}
			rule.nested = append(rule.nested, nested)
			continue
		}
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		if decl != nil {
			rule.decls = append(rule.decls, *decl)
		}
	}
}

func nextOf(s string, b byte) int {
	if i := strings.IndexByte(s, b); i >= 0 {
		return i
	}
	return len(s)
}

func nextOfAny(s, chars string) int {
	if i := strings.IndexAny(s, chars); i >= 0 {
		return i
	}
	return len(s)
}

// parseDeclaration reads `property: value;` (the final semicolon before
// '}' may be omitted). Returns nil for declarations that should be
// dropped silently.
func (p *parser) parseDeclaration() (*Declaration, error) {
	start := p.pos
	colon := strings.IndexByte(p.src[p.pos:], ':')
	end := nextOfAny(p.src[p.pos:], ";}")
	if colon < 0 || colon > end {
		return nil, p.errorf(start, "expected 'property: value'")
	}
	prop := strings.TrimSpace(p.src[p.pos : p.pos+colon])
	value := strings.TrimSpace(p.src[p.pos+colon+1 : p.pos+end])
	p.pos += end
	if !p.eof() && p.peek() == ';' {
		p.pos++
	}
	if prop == "" {
		return nil, p.errorf(start, "empty property name")
	}

	value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
	d, known := parseDeclarationValue(prop, value)
	if !known {
		logger.Debug("unknown property", zap.String("property", prop))
		return &Declaration{Property: prop}, nil
	}
	if d == nil {
		logger.Debug("unparseable declaration value",
			zap.String("property", prop), zap.String("value", value))
		return nil, nil
	}
	return d, nil
}

// parseSelectorList parses the comma alternatives of one selector text.
func parseSelectorList(text string, p *parser, offset int) (SelectorList, error) {
	var list SelectorList
	for _, alt := range strings.Split(text, ",") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			return nil, p.errorf(offset, "empty selector")
		}
		cs, err := parseComplexSelector(alt, p, offset)
		if err != nil {
			return nil, err
		}
		list = append(list, cs)
	}
	return list, nil
}

// parseComplexSelector splits one alternative into compounds joined by
// child ('>') or descendant (whitespace) combinators.
func parseComplexSelector(text string, p *parser, offset int) (ComplexSelector, error) {
	var cs ComplexSelector
	rest := text
	for rest != "" {
		rest = strings.TrimSpace(rest)
		end := len(rest)
		comb := CombinatorNone
		for i, b := range []byte(rest) {
			if b == ' ' || b == '\t' || b == '\n' || b == '>' {
				end = i
				break
			}
		}
		token := rest[:end]
		rest = strings.TrimSpace(rest[end:])
		if strings.HasPrefix(rest, ">") {
			comb = CombinatorChild
			rest = strings.TrimSpace(rest[1:])
			if rest == "" {
				return ComplexSelector{}, p.errorf(offset, "dangling '>' combinator")
			}
		} else if rest != "" {
			comb = CombinatorDescendant
		}
		compound, err := parseCompound(token, p, offset)
		if err != nil {
			return ComplexSelector{}, err
		}
		cs.Steps = append(cs.Steps, SelectorStep{Compound: compound, Combinator: comb})
	}
	if len(cs.Steps) == 0 {
		return ComplexSelector{}, p.errorf(offset, "empty selector")
	}
	return cs, nil
}

// parseCompound splits "Button.primary:hover" into its parts. A leading
// '&' is kept as a marker part for nesting and resolved by flattening.
func parseCompound(token string, p *parser, offset int) (CompoundSelector, error) {
	var parts CompoundSelector
	i := 0
	if strings.HasPrefix(token, "&") {
		parts = append(parts, SelectorPart{Kind: PartUniversal, Name: "&"})
		i = 1
	}
	for i < len(token) {
		kind := PartType
		switch token[i] {
		case '*':
			parts = append(parts, SelectorPart{Kind: PartUniversal})
			i++
			continue
		case '.':
			kind = PartClass
			i++
		case '#':
			kind = PartID
			i++
		case ':':
			kind = PartPseudo
			i++
		}
		j := i
		for j < len(token) && isIdentByte(token[j]) {
			j++
		}
		if j == i {
			return nil, p.errorf(offset, "bad selector \""+token+"\"")
		}
		parts = append(parts, SelectorPart{Kind: kind, Name: token[i:j]})
		i = j
	}
	if len(parts) == 0 {
		return nil, p.errorf(offset, "empty selector")
	}
	return parts, nil
}

// flattenRule appends the rule and its nested rules to the sheet as flat
// rules, resolving '&' against the parent selectors. Source order is
// assignment order: a parent rule lands before the rules nested in it.
func flattenRule(raw *rawRule, parents SelectorList, sheet *Stylesheet) {
	resolved := combineSelectors(parents, raw.selectors)
	if len(resolved) == 0 {
		// Every selector was a stray '&' with nothing to resolve it
		// against; the rule and anything nested in it are unreachable.
		return
	}
	if len(raw.decls) > 0 || len(raw.nested) == 0 {
		sheet.Rules = append(sheet.Rules, Rule{
			Selectors:    resolved,
			Declarations: raw.decls,
			SourceOrder:  len(sheet.Rules),
		})
	}
	for _, n := range raw.nested {
		flattenRule(n, resolved, sheet)
	}
}

// combineSelectors merges a nested selector list into its parent list.
// An '&'-prefixed selector fuses with the parent's final compound;
// anything else becomes a descendant. The result is the cross product of
// the two lists. At the top level there is no parent to fuse with, so
// '&' selectors are dropped rather than left to match everything.
func combineSelectors(parents, own SelectorList) SelectorList {
	if len(parents) == 0 {
		out := make(SelectorList, 0, len(own))
		for _, cs := range own {
			if c := cs.Steps[0].Compound; len(c) > 0 && c[0].Name == "&" {
				logger.Debug("ignoring nesting selector outside a rule",
					zap.String("selector", cs.String()))
				continue
			}
			out = append(out, cs)
		}
		return out
	}
	var out SelectorList
	for _, parent := range parents {
		for _, child := range own {
			out = append(out, combineSelector(parent, child))
		}
	}
	return out
}

func combineSelector(parent, child ComplexSelector) ComplexSelector {
	steps := append([]SelectorStep(nil), parent.Steps...)
	first := child.Steps[0]
	if len(first.Compound) > 0 && first.Compound[0].Name == "&" {
		// Fuse the '&' compound into the parent's subject compound.
		last := steps[len(steps)-1]
		merged := append(append(CompoundSelector(nil), last.Compound...), first.Compound[1:]...)
		steps[len(steps)-1] = SelectorStep{Compound: merged, Combinator: first.Combinator}
		steps = append(steps, child.Steps[1:]...)
	} else {
		steps[len(steps)-1].Combinator = CombinatorDescendant
		steps = append(steps, child.Steps...)
	}
	return ComplexSelector{Steps: steps}
}
