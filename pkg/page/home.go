package page

import (
	"bytes"
	"fmt"
)

// counterJS wires the button to a client-side counter. The server renders the
// initial count; everything after the first paint happens in the browser.
const counterJS = `
    (function () {
      var btn = document.getElementById('counter');
      var count = parseInt(btn.dataset.count, 10);
      btn.addEventListener('click', function () {
        count += 1;
        btn.textContent = 'Click Me: ' + count;
      });
    })();`

// RenderHome renders the home page with the counter button seeded at count.
func RenderHome(count int) []byte {
	var buf bytes.Buffer
	writeHead(&buf, "ssrbench")
	writeBodyOpen(&buf)

	buf.WriteString("<h1>Welcome to ssrbench!</h1>\n")
	fmt.Fprintf(&buf, "<button id=\"counter\" data-count=\"%d\">Click Me: %d</button>\n", count, count)
	fmt.Fprintf(&buf, "<script>%s\n</script>\n", counterJS)

	writeTail(&buf)
	return buf.Bytes()
}
