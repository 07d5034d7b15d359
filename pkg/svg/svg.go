// Package svg exports a spiral tile layout as a standalone SVG document.
package svg

import (
	"bytes"
	"fmt"

	"github.com/benchkit/ssrbench/pkg/spiral"
)

// Option configures SVG rendering.
type Option func(*renderer)

type renderer struct {
	background string
	fill       string
}

// WithBackground sets the canvas background color (default white).
func WithBackground(color string) Option { return func(r *renderer) { r.background = color } }

// WithFill sets the tile fill color (default #333, matching the HTML page).
func WithFill(color string) Option { return func(r *renderer) { r.fill = color } }

// Render renders the layout as an SVG document with one rect per tile.
// Rects appear in layout order, so the document is a faithful record of the
// generation sequence.
func Render(l spiral.Layout, opts ...Option) []byte {
	r := renderer{background: "white", fill: "#333"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	fmt.Fprintf(&buf, `<rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", l.Width, l.Height, r.background)

	for _, p := range l.Tiles {
		fmt.Fprintf(&buf, `<rect x="%.2f" y="%.2f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			p.X, p.Y, l.TileSize, l.TileSize, r.fill)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
