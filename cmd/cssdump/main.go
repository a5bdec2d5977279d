// cssdump parses a TCSS stylesheet and prints its flattened rules, or
// the computed style for a widget described on the command line.
package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"tcss"
)

var (
	themeName string
	selector  string
)

func main() {
	root := &cobra.Command{
		Use:   "cssdump <stylesheet.tcss>",
		Short: "Inspect a parsed TCSS stylesheet",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	root.Flags().StringVar(&themeName, "theme", "textual-dark", "theme to resolve variables against")
	root.Flags().StringVar(&selector, "widget", "", "compute the style for a widget, e.g. 'Button#ok.primary'")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	selStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	propStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
	errStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func run(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	sheet, err := tcss.Parse(string(src))
	var serr *tcss.SyntaxError
	if errors.As(err, &serr) {
		fmt.Fprintf(os.Stderr, "%s %s:%d:%d: %s\n",
			errStyle.Render("syntax error"), args[0], serr.Line, serr.Column, serr.Message)
		os.Exit(2)
	}
	if err != nil {
		return err
	}

	theme := tcss.StandardThemes()[themeName]
	if theme == nil {
		return fmt.Errorf("unknown theme %q", themeName)
	}

	if selector != "" {
		return dumpComputed(sheet, theme)
	}
	dumpRules(sheet)
	return nil
}

func dumpRules(sheet *tcss.Stylesheet) {
	for _, rule := range sheet.Rules {
		sels := make([]string, len(rule.Selectors))
		for i, cs := range rule.Selectors {
			sels[i] = cs.String()
		}
		spec := rule.Selectors[0].Specificity()
		fmt.Printf("%s %s\n",
			selStyle.Render(strings.Join(sels, ", ")),
			dimStyle.Render(fmt.Sprintf("(%d,%d,%d) order %d", spec.IDs, spec.Classes, spec.Types, rule.SourceOrder)))
		for _, d := range rule.Declarations {
			if d.Unknown() {
				fmt.Printf("  %s %s\n", propStyle.Render(d.Property+":"), dimStyle.Render("<unknown>"))
				continue
			}
			fmt.Printf("  %s %v\n", propStyle.Render(d.Property+":"), d.Value)
		}
	}
}

// dumpComputed parses the --widget descriptor and runs the cascade for
// it with no ancestors.
func dumpComputed(sheet *tcss.Stylesheet, theme *tcss.Theme) error {
	meta, err := parseWidget(selector)
	if err != nil {
		return err
	}
	style := tcss.ComputeStyle(meta, nil, sheet, theme)
	tcss.InheritPass(style, nil, theme)

	fields := map[string]string{
		"layout":     fmt.Sprintf("%v", style.Layout),
		"margin":     fmt.Sprintf("%v", style.Margin),
		"padding":    fmt.Sprintf("%v", style.Padding),
		"opacity":    fmt.Sprintf("%g", style.Opacity),
		"dock":       fmt.Sprintf("%v", style.Dock),
		"color":      swatch(style.EffectiveColor),
		"background": swatch(style.EffectiveBackground),
	}
	if style.Width != nil {
		fields["width"] = fmt.Sprintf("%g%s", style.Width.Value, style.Width.Unit)
	}
	if style.Height != nil {
		fields["height"] = fmt.Sprintf("%g%s", style.Height.Value, style.Height.Unit)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println(selStyle.Render(selector))
	for _, name := range names {
		fmt.Printf("  %s %s\n", propStyle.Render(name+":"), fields[name])
	}
	return nil
}

func swatch(c tcss.Color) string {
	hex := c.Hex()
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ") + " " + hex
}

// parseWidget reads "Type#id.class1.class2:state" into a WidgetMeta.
func parseWidget(desc string) (*tcss.WidgetMeta, error) {
	meta := &tcss.WidgetMeta{}
	rest := desc
	cut := func(s string) (head, tail string) {
		for i := 1; i < len(s); i++ {
			if s[i] == '.' || s[i] == '#' || s[i] == ':' {
				return s[:i], s[i:]
			}
		}
		return s, ""
	}
	for rest != "" {
		var head string
		head, rest = cut(rest)
		switch head[0] {
		case '.':
			meta.Classes = append(meta.Classes, head[1:])
		case '#':
			meta.ID = head[1:]
		case ':':
			switch head[1:] {
			case "hover":
				meta.States |= tcss.StateHover
			case "focus":
				meta.States |= tcss.StateFocus
			case "disabled":
				meta.States |= tcss.StateDisabled
			case "active":
				meta.States |= tcss.StateActive
			default:
				return nil, fmt.Errorf("unknown state %q", head[1:])
			}
		default:
			meta.TypeName = head
			meta.TypeNames = []string{head, "Widget"}
		}
	}
	if meta.TypeName == "" && meta.ID == "" && len(meta.Classes) == 0 {
		return nil, fmt.Errorf("empty widget descriptor")
	}
	return meta, nil
}
