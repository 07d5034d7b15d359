package svg

import (
	"strings"
	"testing"

	"github.com/benchkit/ssrbench/pkg/spiral"
)

func TestRender(t *testing.T) {
	l := spiral.Generate(960, 720, 10)
	out := string(Render(l))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 960.0 720.0"`) {
		t.Errorf("unexpected SVG header: %q", out[:80])
	}
	// One background rect plus one rect per tile.
	if got := strings.Count(out, "<rect"); got != len(l.Tiles)+1 {
		t.Errorf("rendered %d rects, want %d", got, len(l.Tiles)+1)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("SVG document not closed")
	}
}

func TestRender_Options(t *testing.T) {
	l := spiral.Generate(100, 100, 5)
	out := string(Render(l, WithBackground("black"), WithFill("#0f0")))

	if !strings.Contains(out, `fill="black"`) {
		t.Error("background option not applied")
	}
	if !strings.Contains(out, `fill="#0f0"`) {
		t.Error("fill option not applied")
	}
}

func TestRender_EmptyLayout(t *testing.T) {
	out := string(Render(spiral.Generate(20, 20, 10)))

	// Only the background rect remains.
	if got := strings.Count(out, "<rect"); got != 1 {
		t.Errorf("empty layout rendered %d rects, want 1", got)
	}
}
