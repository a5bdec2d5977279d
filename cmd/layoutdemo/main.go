// layoutdemo arranges a small widget tree from an inline stylesheet and
// draws the resulting regions as an ASCII diagram.
package main

import (
	"fmt"
	"os"

	"tcss"
)

const sheet = `
Screen {
	layout: grid;
	grid-size: 3;
	grid-gutter: 1;
}
.tall { row-span: 2; }
#footer { dock: bottom; height: 3; }
`

func main() {
	parsed, err := tcss.Parse(sheet)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	theme := tcss.StandardThemes()["textual-dark"]

	screen := tcss.ComputeStyle(&tcss.WidgetMeta{TypeName: "Screen"}, nil, parsed, theme)

	children := make([]tcss.LayoutChild, 0, 7)
	for i := 0; i < 6; i++ {
		meta := &tcss.WidgetMeta{TypeName: "Static"}
		if i == 1 {
			meta.Classes = []string{"tall"}
		}
		style := tcss.ComputeStyle(meta, nil, parsed, theme)
		children = append(children, tcss.TextChild(i, style, fmt.Sprintf("cell %d", i)))
	}
	footer := tcss.ComputeStyle(&tcss.WidgetMeta{TypeName: "Static", ID: "footer"}, nil, parsed, theme)
	children = append(children, tcss.TextChild(6, footer, "footer"))

	region := tcss.Region{Width: 60, Height: 18}
	placements := tcss.Arrange(screen, children, region, region.Size())

	canvas := make([][]byte, region.Height)
	for y := range canvas {
		canvas[y] = make([]byte, region.Width)
		for x := range canvas[y] {
			canvas[y][x] = '.'
		}
	}
	for _, p := range placements {
		mark := byte('0' + p.Index)
		for y := p.Region.Y; y < p.Region.Bottom(); y++ {
			for x := p.Region.X; x < p.Region.Right(); x++ {
				if y >= 0 && y < region.Height && x >= 0 && x < region.Width {
					canvas[y][x] = mark
				}
			}
		}
		fmt.Printf("widget %d -> %+v\n", p.Index, p.Region)
	}
	fmt.Println()
	for _, row := range canvas {
		fmt.Println(string(row))
	}
}
