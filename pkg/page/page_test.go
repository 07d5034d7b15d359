package page

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/benchkit/ssrbench/pkg/spiral"
)

func TestRenderHome(t *testing.T) {
	html := string(RenderHome(0))

	if !strings.Contains(html, "<h1>Welcome to ssrbench!</h1>") {
		t.Error("home page missing heading")
	}
	if !strings.Contains(html, "Click Me: 0") {
		t.Error("home page missing seeded counter button")
	}
	if !strings.Contains(html, "addEventListener") {
		t.Error("home page missing counter script")
	}
}

func TestRenderHome_SeededCount(t *testing.T) {
	html := string(RenderHome(42))
	if !strings.Contains(html, `data-count="42"`) {
		t.Error("counter not seeded with initial count")
	}
	if !strings.Contains(html, "Click Me: 42") {
		t.Error("button label not seeded with initial count")
	}
}

func TestRenderRows(t *testing.T) {
	html := string(RenderRows(DefaultRowCount))

	if got := strings.Count(html, "<div>SSR 1-"); got != DefaultRowCount {
		t.Errorf("rendered %d rows, want %d", got, DefaultRowCount)
	}
	// Rows are indexed from zero in render order.
	if !strings.Contains(html, "<div>SSR 1-0</div>") {
		t.Error("missing first row")
	}
	if !strings.Contains(html, fmt.Sprintf("<div>SSR 1-%d</div>", DefaultRowCount-1)) {
		t.Error("missing last row")
	}
}

func TestRenderRows_ZeroAndNegative(t *testing.T) {
	for _, n := range []int{0, -5} {
		html := string(RenderRows(n))
		if strings.Contains(html, "SSR 1-") {
			t.Errorf("RenderRows(%d) rendered rows, want none", n)
		}
		if !strings.Contains(html, "<main>") {
			t.Errorf("RenderRows(%d) missing main element", n)
		}
	}
}

func TestRenderShowdown(t *testing.T) {
	l := spiral.Generate(960, 720, 10)
	html := string(RenderShowdown(l))

	if got := strings.Count(html, `class="tile"`); got != len(l.Tiles) {
		t.Errorf("rendered %d tile divs, want %d", got, len(l.Tiles))
	}
	if !strings.Contains(html, "width: 960px") || !strings.Contains(html, "height: 720px") {
		t.Error("wrapper CSS missing layout dimensions")
	}
	// First tile is the rectangle center, formatted to two decimals.
	if !strings.Contains(html, `style="left: 480.00px; top: 360.00px"`) {
		t.Error("missing center tile at (480.00, 360.00)")
	}
	if !strings.Contains(html, `<div id="wrapper">`) {
		t.Error("missing wrapper element")
	}
}

func TestRenderShowdown_EmptyLayout(t *testing.T) {
	l := spiral.Generate(20, 20, 10)
	html := string(RenderShowdown(l))

	if strings.Contains(html, `class="tile"`) {
		t.Error("empty layout should render no tiles")
	}
}

func TestRenderDeterministic(t *testing.T) {
	l := spiral.Generate(960, 720, 10)

	if !bytes.Equal(RenderShowdown(l), RenderShowdown(l)) {
		t.Error("showdown render is not deterministic")
	}
	if !bytes.Equal(RenderHome(3), RenderHome(3)) {
		t.Error("home render is not deterministic")
	}
	if !bytes.Equal(RenderRows(50), RenderRows(50)) {
		t.Error("rows render is not deterministic")
	}
}

func TestRenderNotFound(t *testing.T) {
	html := string(RenderNotFound())
	if !strings.Contains(html, "Not found.") {
		t.Error("fallback page missing message")
	}
}
