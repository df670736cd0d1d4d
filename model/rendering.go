package model

import (
	"fmt"
	"io"
	"strings"
)

const (
	borderChar     = "-"
	minBorderWidth = 14
)

// Render returns the grid as text, one line per row, with each cell mapped
// to alive or dead
func (g *Grid) Render(alive, dead string) string {
	var sb strings.Builder
	for _, row := range g.cells {
		for _, c := range row {
			if c == Alive {
				sb.WriteString(alive)
			} else {
				sb.WriteString(dead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TerminalRenderer writes rendered grids to a line-oriented text stream
type TerminalRenderer struct {
	Alive string
	Dead  string
}

// Display writes the bare rendered grid
func (r *TerminalRenderer) Display(w io.Writer, g *Grid) error {
	_, err := io.WriteString(w, g.Render(r.Alive, r.Dead))
	return err
}

// DisplayBordered writes the rendered grid between two border lines as wide
// as the grid, never narrower than minBorderWidth
func (r *TerminalRenderer) DisplayBordered(w io.Writer, g *Grid) error {
	border := strings.Repeat(borderChar, max(g.cols, minBorderWidth))
	_, err := fmt.Fprintf(w, "%s\n%s%s\n", border, g.Render(r.Alive, r.Dead), border)
	return err
}
