package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netl-modeling/gotriga/internal/netl"
)

func defaultMap(t *testing.T) CoreMapData {
	t.Helper()
	data, err := CoreMap(netl.DefaultReactor())
	require.NoError(t, err)
	return data
}

func TestCoreMap(t *testing.T) {
	data := defaultMap(t)
	require.Len(t, data.Positions, 127)
	assert.Equal(t, netl.LatticePitch, data.Pitch)

	counts := make(map[rune]int)
	byLabel := make(map[string]rune)
	for _, p := range data.Positions {
		counts[p.Symbol]++
		byLabel[p.Label] = p.Symbol
	}
	assert.Equal(t, 111, counts[SymbolFuel])
	assert.Equal(t, 10, counts[SymbolWater])
	assert.Equal(t, 1, counts[SymbolSourceHolder])
	assert.Equal(t, 1, counts[SymbolCentralThimble])
	assert.Equal(t, 1, counts[SymbolTransientRod])
	assert.Equal(t, 3, counts[SymbolControlRod])

	assert.Equal(t, SymbolCentralThimble, byLabel["A-01"])
	assert.Equal(t, SymbolTransientRod, byLabel["C-01"])
	assert.Equal(t, SymbolSourceHolder, byLabel["G-32"])
	assert.Equal(t, SymbolWater, byLabel["E-11"])
}

func TestDrawASCIICoreMap(t *testing.T) {
	out := DrawASCIICoreMap(defaultMap(t))

	assert.Contains(t, out, "CORE LOADING MAP")
	assert.Contains(t, out, "Legend:")

	// Every position lands on its own cell: the grid carries one mark
	// per lattice position. Scan only the rows between the header and
	// the legend, since both contain letters that double as symbols.
	start := strings.Index(out, "\n\n") + 2
	grid := out[start:strings.Index(out, "Legend:")]
	marks := 0
	for _, r := range grid {
		switch r {
		case SymbolFuel, SymbolWater, SymbolSourceHolder,
			SymbolCentralThimble, SymbolTransientRod, SymbolControlRod:
			marks++
		}
	}
	assert.Equal(t, 127, marks)
}

func TestDrawASCIICoreMapEmpty(t *testing.T) {
	assert.Empty(t, DrawASCIICoreMap(CoreMapData{}))
}

func TestTally(t *testing.T) {
	lines := Tally(defaultMap(t))
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "fuel elements")
	assert.Contains(t, lines[0], "111")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("NETL TRIGA", []string{"fuel elements  111", "water holes  10"})
	assert.Contains(t, out, "NETL TRIGA")
	assert.Contains(t, out, "fuel elements  111")
	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "╚")
}
