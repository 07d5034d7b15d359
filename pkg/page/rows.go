package page

import (
	"bytes"
	"fmt"
)

// DefaultRowCount is the row count of the reference SSR stress page.
const DefaultRowCount = 50

// RenderRows renders the SSR stress page with n static rows.
// Negative counts render zero rows.
func RenderRows(n int) []byte {
	var buf bytes.Buffer
	writeHead(&buf, "ssrbench · ssr")
	writeBodyOpen(&buf)

	buf.WriteString("<main>\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&buf, "<div>SSR 1-%d</div>\n", i)
	}
	buf.WriteString("</main>\n")

	writeTail(&buf)
	return buf.Bytes()
}
