package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benchkit/ssrbench/pkg/errors"
	"github.com/benchkit/ssrbench/pkg/spiral"
	"github.com/benchkit/ssrbench/pkg/svg"
)

// Output formats for the tiles command.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatSVG   = "svg"
)

// tilesCommand creates the tiles command generating a spiral layout.
func (c *CLI) tilesCommand() *cobra.Command {
	var (
		width    float64
		height   float64
		tileSize float64
		format   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "tiles",
		Short: "Generate a spiral tile layout",
		Long: `Generate the spiral tile layout used by the performance showdown page
and print it as a table, JSON, or a standalone SVG.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateDimensions(width, height, tileSize); err != nil {
				return err
			}

			l := spiral.Generate(width, height, tileSize)
			c.Logger.Debug("generated layout",
				"tiles", len(l.Tiles),
				"width", width, "height", height, "tile_size", tileSize)

			var data []byte
			switch format {
			case formatTable:
				data = renderTable(l)
			case formatJSON:
				encoded, err := json.MarshalIndent(l, "", "  ")
				if err != nil {
					return err
				}
				data = append(encoded, '\n')
			case formatSVG:
				data = svg.Render(l)
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want table, json, or svg)", format)
			}

			if output != "" {
				if err := os.WriteFile(output, data, 0644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				printSuccess("Wrote %d tiles to %s", len(l.Tiles), output)
				return nil
			}

			_, err := cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().Float64Var(&width, "width", 960, "layout width in pixels")
	cmd.Flags().Float64Var(&height, "height", 720, "layout height in pixels")
	cmd.Flags().Float64Var(&tileSize, "tile-size", 10, "tile edge length in pixels")
	cmd.Flags().StringVar(&format, "format", formatTable, "output format: table, json, or svg")
	cmd.Flags().StringVar(&output, "output", "", "write output to file instead of stdout")

	return cmd
}

// renderTable formats the layout as an aligned text table.
func renderTable(l spiral.Layout) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%-6s %10s %10s\n", "TILE", "X", "Y")
	for i, p := range l.Tiles {
		fmt.Fprintf(&buf, "%-6d %10.2f %10.2f\n", i, p.X, p.Y)
	}
	fmt.Fprintf(&buf, "\n%d tiles (%.0fx%.0f, tile size %.0f)\n",
		len(l.Tiles), l.Width, l.Height, l.TileSize)
	return buf.Bytes()
}
