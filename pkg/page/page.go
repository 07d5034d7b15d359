// Package page renders the benchmark pages as complete HTML documents.
//
// Each renderer writes markup into a buffer and returns the bytes; there is
// no template engine and no escaping layer, because every page is built from
// trusted numeric parameters. Renderers are deterministic: identical inputs
// produce identical bytes, which is what makes the rendered output cacheable
// byte-for-byte.
package page

import (
	"bytes"
	"fmt"
)

// writeHead opens the document and emits the shared head section.
func writeHead(buf *bytes.Buffer, title string) {
	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	buf.WriteString("<meta charset=\"utf-8\"/>\n")
	fmt.Fprintf(buf, "<title>%s</title>\n", title)
}

// writeBodyOpen closes the head and opens the body.
func writeBodyOpen(buf *bytes.Buffer) {
	buf.WriteString("</head>\n<body>\n")
}

// writeTail closes the document.
func writeTail(buf *bytes.Buffer) {
	buf.WriteString("</body>\n</html>\n")
}

// RenderNotFound renders the fallback page for unknown routes.
func RenderNotFound() []byte {
	var buf bytes.Buffer
	writeHead(&buf, "Not found")
	writeBodyOpen(&buf)
	buf.WriteString("Not found.\n")
	writeTail(&buf)
	return buf.Bytes()
}
