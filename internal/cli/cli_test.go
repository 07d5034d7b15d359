package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/benchkit/ssrbench/pkg/spiral"
)

func newTestCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRootCommandSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := []string{"serve", "tiles", "bench", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestTilesCommandJSON(t *testing.T) {
	root := newTestCLI().RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"tiles", "--width", "100", "--height", "100", "--tile-size", "10", "--format", "json"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var l spiral.Layout
	if err := json.Unmarshal(out.Bytes(), &l); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	want := spiral.Generate(100, 100, 10)
	if len(l.Tiles) != len(want.Tiles) {
		t.Errorf("tiles = %d, want %d", len(l.Tiles), len(want.Tiles))
	}
	if l.Width != 100 || l.Height != 100 || l.TileSize != 10 {
		t.Errorf("layout dims = %vx%vx%v, want 100x100x10", l.Width, l.Height, l.TileSize)
	}
}

func TestTilesCommandTable(t *testing.T) {
	root := newTestCLI().RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"tiles", "--width", "960", "--height", "720", "--tile-size", "10"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "TILE") {
		t.Error("table output missing header")
	}
	if !strings.Contains(got, "tiles (960x720, tile size 10)") {
		t.Errorf("table output missing summary line:\n%s", got)
	}
}

func TestTilesCommandSVG(t *testing.T) {
	root := newTestCLI().RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"tiles", "--width", "100", "--height", "100", "--tile-size", "10", "--format", "svg"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out.String(), "<svg") {
		t.Error("svg output missing <svg element")
	}
}

func TestTilesCommandInvalidDimensions(t *testing.T) {
	root := newTestCLI().RootCommand()

	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"tiles", "--width", "-1"})

	if err := root.Execute(); err == nil {
		t.Error("expected error for negative width")
	}
}

func TestTilesCommandUnknownFormat(t *testing.T) {
	root := newTestCLI().RootCommand()

	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"tiles", "--format", "yaml"})

	if err := root.Execute(); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error = %v", err)
	}
	if dir != "/tmp/xdg-test/ssrbench" {
		t.Errorf("cacheDir() = %q, want %q", dir, "/tmp/xdg-test/ssrbench")
	}
}
