// Package bench - scatter-plot rendering of sweep results.
package bench

import (
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ScatterPlot renders median solve time against instance size, one series
// per solver, into the image file at path (format chosen by extension,
// e.g. ".png" or ".svg").
func ScatterPlot(r *Report, path string) error {
	var p = plot.New()
	p.Title.Text = "Exact TSP solver scaling"
	p.X.Label.Text = "Cities"
	p.Y.Label.Text = "Median time (s)"

	for idx, sv := range r.Solvers() {
		var (
			medians = r.Medians(sv)
			sizes   = make([]int, 0, len(medians))
			pts     plotter.XYs
		)
		for size := range medians {
			sizes = append(sizes, size)
		}
		sort.Ints(sizes)
		for _, size := range sizes {
			pts = append(pts, plotter.XY{X: float64(size), Y: medians[size]})
		}
		if len(pts) == 0 {
			continue
		}

		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = plotutil.Color(idx)
		p.Add(sc)
		p.Legend.Add(string(sv), sc)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
