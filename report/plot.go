package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/Konoutan/dartR/utils"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"golang.org/x/sync/errgroup"
)

const histogramBins = 20

// renderPlots writes the requested HTML charts. Rendering is a side effect
// of reporting: any failure here is logged and never propagated, so the
// sweep table is returned regardless.
func renderPlots(log *utils.Logger, values []float64, title, fileStem string, opt Options) {
	if !opt.Histogram && !opt.Boxplot {
		return
	}

	outDir := opt.OutDir
	if outDir == "" {
		outDir = "."
	}

	var g errgroup.Group
	if opt.Histogram {
		path := filepath.Join(outDir, fileStem+"_hist.html")
		g.Go(func() error { return renderHistogram(values, title, path) })
	}
	if opt.Boxplot {
		path := filepath.Join(outDir, fileStem+"_boxplot.html")
		g.Go(func() error { return renderBoxplot(values, title, path) })
	}
	if err := g.Wait(); err != nil {
		log.Warnf("rendering plots: %v\n", err)
		return
	}
	log.Progressf("Charts saved in %s\n\n", outDir)
}

func renderHistogram(values []float64, title, path string) error {
	counts, labels := binValues(values, histogramBins)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{Title: title + " distribution"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of loci"}),
		charts.WithXAxisOpts(opts.XAxis{Name: title}),
	)
	var data []opts.BarData
	for _, c := range counts {
		data = append(data, opts.BarData{Value: c})
	}
	bar.SetXAxis(labels).AddSeries(title, data)

	page := components.NewPage()
	page.AddCharts(bar)
	return renderPage(page, path)
}

func renderBoxplot(values []float64, title, path string) error {
	q := quartiles(values)

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{Title: title + " box and whisker"}),
		charts.WithYAxisOpts(opts.YAxis{Name: title}),
	)
	box.SetXAxis([]string{title}).AddSeries(title, []opts.BoxPlotData{
		{Value: []float64{q[0], q[1], q[2], q[3], q[4]}},
	})

	page := components.NewPage()
	page.AddCharts(box)
	return renderPage(page, path)
}

func renderPage(page *components.Page, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}

// binValues buckets values into n equal-width bins over the observed range
// and returns the counts with a midpoint label per bin.
func binValues(values []float64, n int) ([]int, []string) {
	s := Describe(values)
	if s.Max == s.Min {
		return []int{len(values)}, []string{fmt.Sprintf("%.2f", s.Min)}
	}

	width := (s.Max - s.Min) / float64(n)
	counts := make([]int, n)
	for _, v := range values {
		bin := int(math.Floor((v - s.Min) / width))
		if bin >= n {
			bin = n - 1
		}
		counts[bin]++
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.2f", s.Min+(float64(i)+0.5)*width)
	}
	return counts, labels
}
