// Package diagram renders the core loading map, as ASCII for the
// terminal and as an image file for reports.
package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/netl-modeling/gotriga/internal/netl"
	"github.com/netl-modeling/gotriga/internal/triga"
)

// PositionMark is one lattice position placed on the map.
type PositionMark struct {
	Label  string
	X, Y   float64 // cm on the core midplane
	Symbol rune
}

// CoreMapData holds everything needed to draw a core map.
type CoreMapData struct {
	Pitch     float64
	Positions []PositionMark
}

// Map symbols, one per occupant type.
const (
	SymbolFuel           = 'F'
	SymbolGraphite       = 'G'
	SymbolSourceHolder   = 'S'
	SymbolWater          = '.'
	SymbolCentralThimble = 'T'
	SymbolTransientRod   = 'P'
	SymbolControlRod     = 'C'
)

func symbolFor(elem triga.Element) rune {
	if elem == nil {
		return SymbolWater
	}
	switch elem.Kind() {
	case triga.KindFuelElement:
		return SymbolFuel
	case triga.KindGraphiteElement:
		return SymbolGraphite
	case triga.KindSourceHolder:
		return SymbolSourceHolder
	case triga.KindCentralThimble:
		return SymbolCentralThimble
	case triga.KindTransientRod:
		return SymbolTransientRod
	case triga.KindFuelFollowerControlRod:
		return SymbolControlRod
	}
	return '?'
}

// CoreMap flattens a reactor into map data: every lattice position with
// its midplane coordinates and occupant symbol.
func CoreMap(r netl.Reactor) (CoreMapData, error) {
	data := CoreMapData{Pitch: r.Core.Pitch()}
	for _, label := range netl.Positions() {
		x, y, err := r.Core.Coordinates(label)
		if err != nil {
			return CoreMapData{}, err
		}
		elem, err := r.ElementAt(label)
		if err != nil {
			return CoreMapData{}, err
		}
		data.Positions = append(data.Positions, PositionMark{
			Label:  label,
			X:      x,
			Y:      y,
			Symbol: symbolFor(elem),
		})
	}
	return data, nil
}

// DrawASCIICoreMap renders the map as a character grid viewed from above,
// north up. Columns step half a pitch so the hexagonal rings keep their
// shape in character cells.
func DrawASCIICoreMap(data CoreMapData) string {
	if len(data.Positions) == 0 || data.Pitch <= 0 {
		return ""
	}

	minCol, maxCol := 0, 0
	minRow, maxRow := 0, 0
	type cell struct{ row, col int }
	cells := make(map[cell]rune, len(data.Positions))
	for _, p := range data.Positions {
		col := int(math.Round(2 * p.X / data.Pitch))
		row := int(math.Round(p.Y / data.Pitch))
		cells[cell{row, col}] = p.Symbol
		if col < minCol {
			minCol = col
		}
		if col > maxCol {
			maxCol = col
		}
		if row < minRow {
			minRow = row
		}
		if row > maxRow {
			maxRow = row
		}
	}

	var sb strings.Builder
	sb.WriteString("\n  CORE LOADING MAP (north up)\n\n")
	for row := maxRow; row >= minRow; row-- {
		sb.WriteString("  ")
		for col := minCol; col <= maxCol; col++ {
			if sym, ok := cells[cell{row, col}]; ok {
				sb.WriteRune(sym)
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n  Legend:\n")
	sb.WriteString(fmt.Sprintf("  %c = fuel element        %c = graphite element\n", SymbolFuel, SymbolGraphite))
	sb.WriteString(fmt.Sprintf("  %c = source holder       %c = water hole\n", SymbolSourceHolder, SymbolWater))
	sb.WriteString(fmt.Sprintf("  %c = central thimble     %c = transient rod\n", SymbolCentralThimble, SymbolTransientRod))
	sb.WriteString(fmt.Sprintf("  %c = fuel follower control rod\n", SymbolControlRod))

	return sb.String()
}

// DrawSummaryBox frames a titled list of tally lines for the terminal.
func DrawSummaryBox(title string, lines []string) string {
	width := len(title)
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	width += 2

	rule := strings.Repeat("═", width+4)
	row := func(s string) string {
		return fmt.Sprintf("  ║  %-*s  ║\n", width, s)
	}

	var sb strings.Builder
	sb.WriteString("  ╔" + rule + "╗\n")
	sb.WriteString(row(title))
	sb.WriteString("  ╠" + rule + "╣\n")
	for _, line := range lines {
		sb.WriteString(row(line))
	}
	sb.WriteString("  ╚" + rule + "╝\n")
	return sb.String()
}

// Tally counts the map symbols for the legend and summaries.
func Tally(data CoreMapData) []string {
	counts := make(map[rune]int)
	for _, p := range data.Positions {
		counts[p.Symbol]++
	}
	names := map[rune]string{
		SymbolFuel:           "fuel elements",
		SymbolGraphite:       "graphite elements",
		SymbolSourceHolder:   "source holders",
		SymbolWater:          "water holes",
		SymbolCentralThimble: "central thimble",
		SymbolTransientRod:   "transient rod",
		SymbolControlRod:     "fuel follower control rods",
	}
	order := []rune{
		SymbolFuel, SymbolGraphite, SymbolSourceHolder, SymbolWater,
		SymbolCentralThimble, SymbolTransientRod, SymbolControlRod,
	}
	var lines []string
	for _, sym := range order {
		if counts[sym] > 0 {
			lines = append(lines, fmt.Sprintf("%-26s %3d", names[sym], counts[sym]))
		}
	}
	return lines
}
