package page

import (
	"bytes"
	"fmt"

	"github.com/benchkit/ssrbench/pkg/spiral"
)

// showdownCSS is the page chrome for the performance showdown: a centered
// wrapper with absolutely positioned tiles. Wrapper and tile dimensions are
// injected from the layout so the CSS always agrees with the generated
// positions.
const showdownCSS = `body {
    display: flex;
    justify-content: center;
    align-items: center;
    height: 100vh;
    background-color: #f0f0f0;
    margin: 0;
}
#wrapper {
    width: %.0fpx;
    height: %.0fpx;
    position: relative;
    background-color: white;
}
.tile {
    position: absolute;
    width: %.0fpx;
    height: %.0fpx;
    background-color: #333;
}`

// RenderShowdown renders the performance showdown page: one div per tile in
// the layout, positioned absolutely inside the wrapper. Tile order follows
// layout order, one element per entry.
func RenderShowdown(l spiral.Layout) []byte {
	var buf bytes.Buffer
	writeHead(&buf, "ssrbench · showdown")

	buf.WriteString("<style>\n")
	fmt.Fprintf(&buf, showdownCSS, l.Width, l.Height, l.TileSize, l.TileSize)
	buf.WriteString("\n</style>\n")

	writeBodyOpen(&buf)
	buf.WriteString("<div id=\"root\">\n<div id=\"wrapper\">\n")
	for _, p := range l.Tiles {
		fmt.Fprintf(&buf, "<div class=\"tile\" style=\"left: %.2fpx; top: %.2fpx\"></div>\n", p.X, p.Y)
	}
	buf.WriteString("</div>\n</div>\n")

	writeTail(&buf)
	return buf.Bytes()
}
