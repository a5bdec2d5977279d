package tcss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleRule(t *testing.T) {
	sheet, err := Parse(`Button { width: 50%; height: 3; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)

	rule := sheet.Rules[0]
	require.Len(t, rule.Selectors, 1)
	assert.Equal(t, "Button", rule.Selectors[0].String())
	require.Len(t, rule.Declarations, 2)
	assert.Equal(t, Scalar{50, UnitPercent}, rule.Declarations[0].Value)
	assert.Equal(t, Scalar{3, UnitCells}, rule.Declarations[1].Value)
}

func TestParseCommentsStripped(t *testing.T) {
	sheet, err := Parse(`
		/* heading */
		Button {
			/* inline */ width: 10;
		}`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	assert.Len(t, sheet.Rules[0].Declarations, 1)
}

func TestParseUnclosedCommentFails(t *testing.T) {
	_, err := Parse("Button { width: 10; }\n/* oops")
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 2, serr.Line)
}

func TestParseVariables(t *testing.T) {
	sheet, err := Parse(`
		$spacing: 2;
		$wide: 50%;
		Button { margin: $spacing; width: $wide; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, SpacingAll(2), sheet.Rules[0].Declarations[0].Value)
	assert.Equal(t, Scalar{50, UnitPercent}, sheet.Rules[0].Declarations[1].Value)
}

func TestParseVariableReferencesEarlierVariable(t *testing.T) {
	sheet, err := Parse(`
		$base: 4;
		$all: $base;
		Label { padding: $all; }`)
	require.NoError(t, err)
	assert.Equal(t, SpacingAll(4), sheet.Rules[0].Declarations[0].Value)
}

func TestParseUnknownPropertyRetainedInert(t *testing.T) {
	sheet, err := Parse(`Button { frobnicate: yes; width: 10; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules[0].Declarations, 2)
	assert.True(t, sheet.Rules[0].Declarations[0].Unknown())
	assert.Equal(t, "frobnicate", sheet.Rules[0].Declarations[0].Property)
}

func TestParseBadValueSkipsDeclaration(t *testing.T) {
	sheet, err := Parse(`Button { width: wibble; height: 3; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules[0].Declarations, 1)
	assert.Equal(t, "height", sheet.Rules[0].Declarations[0].Property)
}

func TestParseImportantDiscarded(t *testing.T) {
	sheet, err := Parse(`Button { width: 10 !important; }`)
	require.NoError(t, err)
	assert.Equal(t, Scalar{10, UnitCells}, sheet.Rules[0].Declarations[0].Value)
}

func TestParseSelectorList(t *testing.T) {
	sheet, err := Parse(`Button, .primary > #ok { width: 10; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules[0].Selectors, 2)
	assert.Equal(t, "Button", sheet.Rules[0].Selectors[0].String())
	assert.Equal(t, ".primary > #ok", sheet.Rules[0].Selectors[1].String())
}

func TestParseCompoundSelector(t *testing.T) {
	sheet, err := Parse(`Button.primary:hover { width: 10; }`)
	require.NoError(t, err)
	parts := sheet.Rules[0].Selectors[0].Steps[0].Compound
	require.Len(t, parts, 3)
	assert.Equal(t, SelectorPart{PartType, "Button"}, parts[0])
	assert.Equal(t, SelectorPart{PartClass, "primary"}, parts[1])
	assert.Equal(t, SelectorPart{PartPseudo, "hover"}, parts[2])
}

func TestParseNestingAmpersand(t *testing.T) {
	sheet, err := Parse(`
		Button {
			width: 10;
			&.primary { width: 20; }
			&:hover { width: 30; }
		}`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)
	assert.Equal(t, "Button", sheet.Rules[0].Selectors[0].String())
	assert.Equal(t, "Button.primary", sheet.Rules[1].Selectors[0].String())
	assert.Equal(t, "Button:hover", sheet.Rules[2].Selectors[0].String())
	// Source order follows flattening order.
	for i, r := range sheet.Rules {
		assert.Equal(t, i, r.SourceOrder)
	}
}

func TestParseTopLevelAmpersandDropped(t *testing.T) {
	// An '&' with no enclosing rule has nothing to resolve against and
	// must not survive as a match-everything selector.
	sheet, err := Parse(`
		&.primary { color: red; }
		Button { color: blue; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, "Button", sheet.Rules[0].Selectors[0].String())

	// Valid alternatives in the same selector list survive.
	sheet, err = Parse(`&, Label { width: 10; }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	require.Len(t, sheet.Rules[0].Selectors, 1)
	assert.Equal(t, "Label", sheet.Rules[0].Selectors[0].String())
}

func TestParseNestingDescendant(t *testing.T) {
	sheet, err := Parse(`
		#sidebar {
			Label { color: red; }
		}`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, "#sidebar Label", sheet.Rules[0].Selectors[0].String())
}

func TestParseNestingCrossProduct(t *testing.T) {
	sheet, err := Parse(`
		Button, Label {
			&.primary, &.danger { width: 10; }
		}`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	sels := sheet.Rules[0].Selectors
	require.Len(t, sels, 4)
	assert.Equal(t, "Button.primary", sels[0].String())
	assert.Equal(t, "Button.danger", sels[1].String())
	assert.Equal(t, "Label.primary", sels[2].String())
	assert.Equal(t, "Label.danger", sels[3].String())
}

func TestParseMissingBraceFails(t *testing.T) {
	_, err := Parse("Button width: 10; }")
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
}

func TestParseUnclosedRuleFails(t *testing.T) {
	_, err := Parse("Button { width: 10;")
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Contains(t, serr.Message, "unclosed")
}

func TestParseGridProperties(t *testing.T) {
	sheet, err := Parse(`
		Grid {
			layout: grid;
			grid-size: 3 2;
			grid-columns: 1fr 2fr auto;
			grid-gutter: 1 2;
		}
		.wide { column-span: 2; row-span: 3; }`)
	require.NoError(t, err)
	decls := sheet.Rules[0].Declarations
	assert.Equal(t, LayoutGrid, decls[0].Value)
	assert.Equal(t, gridSizeValue{3, 2}, decls[1].Value)
	assert.Equal(t, []Scalar{Fr(1), Fr(2), Auto()}, decls[2].Value)
	assert.Equal(t, [2]int{1, 2}, decls[3].Value)
	span := sheet.Rules[1].Declarations
	assert.Equal(t, 2, span[0].Value)
	assert.Equal(t, 3, span[1].Value)
}

func TestParseOffsetAndDock(t *testing.T) {
	sheet, err := Parse(`#status { dock: bottom; offset: -2 10%; layer: overlay; }`)
	require.NoError(t, err)
	decls := sheet.Rules[0].Declarations
	assert.Equal(t, DockBottom, decls[0].Value)
	assert.Equal(t, [2]Scalar{{-2, UnitCells}, {10, UnitPercent}}, decls[1].Value)
	assert.Equal(t, "overlay", decls[2].Value)
}

func TestParseLastDeclarationWithoutSemicolon(t *testing.T) {
	sheet, err := Parse(`Button { width: 10 }`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules[0].Declarations, 1)
}

func TestSpecificityOrdering(t *testing.T) {
	sheet, err := Parse(`
		#ok { width: 1; }
		Button.primary { width: 2; }
		Button { width: 3; }
		.primary:hover { width: 4; }`)
	require.NoError(t, err)

	specs := make([]Specificity, len(sheet.Rules))
	for i, r := range sheet.Rules {
		specs[i] = r.Selectors[0].Specificity()
	}
	assert.Equal(t, Specificity{1, 0, 0}, specs[0])
	assert.Equal(t, Specificity{0, 1, 1}, specs[1])
	assert.Equal(t, Specificity{0, 0, 1}, specs[2])
	assert.Equal(t, Specificity{0, 2, 0}, specs[3])

	// id beats classes beats types; ties fall to source order.
	assert.True(t, specs[2].Less(specs[1]))
	assert.True(t, specs[1].Less(specs[0]))
	assert.True(t, specs[1].Less(specs[3]))
}
