package diagram

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/netl-modeling/gotriga/internal/netl"
)

// CorePlanData extends the map data with the surrounding structures
// drawn on the plan view.
type CorePlanData struct {
	Map             CoreMapData
	ShroudApothem   float64 // cm, across-flats half width
	ReflectorRadius float64 // cm
}

// CorePlan flattens a reactor into plan-view data.
func CorePlan(r netl.Reactor) (CorePlanData, error) {
	m, err := CoreMap(r)
	if err != nil {
		return CorePlanData{}, err
	}
	return CorePlanData{
		Map:             m,
		ShroudApothem:   r.Shroud.LargeFlatToFlat / 2,
		ReflectorRadius: r.Reflector.Radius,
	}, nil
}

var planColors = map[rune]color.RGBA{
	SymbolFuel:           {R: 220, G: 50, B: 47, A: 255},
	SymbolGraphite:       {R: 88, G: 110, B: 117, A: 255},
	SymbolSourceHolder:   {R: 181, G: 137, B: 0, A: 255},
	SymbolWater:          {R: 38, G: 139, B: 210, A: 255},
	SymbolCentralThimble: {R: 108, G: 113, B: 196, A: 255},
	SymbolTransientRod:   {R: 203, G: 75, B: 22, A: 255},
	SymbolControlRod:     {R: 42, G: 161, B: 152, A: 255},
}

// ExportCorePlan writes the core plan view to an image file. The format
// follows the file extension; anything unrecognized gets ".png" appended.
func ExportCorePlan(data CorePlanData, filename string) error {
	p := plot.New()
	p.Title.Text = "Core Plan View"
	p.X.Label.Text = "x (cm)"
	p.Y.Label.Text = "y (cm)"

	// One scatter per occupant type so each gets its own color.
	bySymbol := make(map[rune]plotter.XYs)
	for _, mark := range data.Map.Positions {
		bySymbol[mark.Symbol] = append(bySymbol[mark.Symbol], plotter.XY{X: mark.X, Y: mark.Y})
	}
	for sym, pts := range bySymbol {
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = planColors[sym]
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
	}

	// Hexagonal shroud outline, flat sides north and south.
	if data.ShroudApothem > 0 {
		circumradius := data.ShroudApothem * 2 / math.Sqrt(3)
		hex := make(plotter.XYs, 7)
		for i := 0; i <= 6; i++ {
			angle := math.Pi/6 + float64(i)*math.Pi/3
			hex[i] = plotter.XY{X: circumradius * math.Cos(angle), Y: circumradius * math.Sin(angle)}
		}
		line, err := plotter.NewLine(hex)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		p.Add(line)
	}

	// Reflector outline.
	if data.ReflectorRadius > 0 {
		circle := make(plotter.XYs, 0, 121)
		for i := 0; i <= 120; i++ {
			angle := 2 * math.Pi * float64(i) / 120
			circle = append(circle, plotter.XY{
				X: data.ReflectorRadius * math.Cos(angle),
				Y: data.ReflectorRadius * math.Sin(angle),
			})
		}
		line, err := plotter.NewLine(circle)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = color.Gray{Y: 128}
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(line)
	}

	size := 8 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(size, size, filename)
	default:
		return p.Save(size, size, filename+".png")
	}
}
