package chartutil

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/admpub/groupbar/pkg/chart"
	"github.com/admpub/groupbar/pkg/layout"
)

// PlotWidth is the width in pixels of the plot area of a default sized
// chart: 900px minus the 10% grid margin on each side.
const PlotWidth = 720.0

// NewGroupedBar renders the current layout of m. Every category becomes one
// series whose bars sit at the x positions computed by the layout engine, on a
// value axis that spans exactly the layout's axis span. Group labels are drawn
// as vertical mark lines at the tick positions.
func NewGroupedBar(w io.Writer, m *chart.Model, options ...charts.GlobalOpts) *charts.Bar {
	result := m.Layout()
	o := m.Options()
	groups := m.GroupNames()
	categories := m.Categories()

	datas := NewBarDatas()
	for _, c := range categories {
		datas.AddKey(c.Name)
	}
	for _, bar := range result.Bars {
		datas.Append(categories[bar.CategoryIndex].Name, groups[bar.GroupIndex], []interface{}{bar.Center(), bar.Height}, func(d *opts.BarData) {
			d.Tooltip = BarTooltip(m.Tooltip(bar))
		})
	}

	globals := []charts.GlobalOpts{
		Initialization(o.Title, ``),
		Title(o.Title, ``),
		Legend(),
		Tooltip(),
		XAxis(result.AxisSpan),
		YAxis(o, result),
	}
	return NewBar(w, append(globals, options...), func(b *charts.Bar) {
		datas.AddSeries(b, charts.WithBarChartOpts(opts.BarChart{
			BarGap:   `-100%`,
			BarWidth: BarWidth(m.LayoutConfig(), result.AxisSpan, PlotWidth),
		}))
		if len(b.MultiSeries) > 0 {
			for _, fn := range TickMarkLines(result.Ticks) {
				fn(&b.MultiSeries[0])
			}
		}
	})
}

// XAxis is a value axis over span with its own labels hidden; the group
// labels come from the tick mark lines.
func XAxis(span layout.Span) charts.GlobalOpts {
	return charts.WithXAxisOpts(opts.XAxis{
		Type:      `value`,
		Min:       span.Start,
		Max:       span.End,
		AxisLabel: &opts.AxisLabel{Show: opts.Bool(false)},
		AxisTick:  &opts.AxisTick{Show: opts.Bool(false)},
		SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
	})
}

// BarWidth converts the bar thickness from axis units to pixels.
func BarWidth(cfg layout.Config, span layout.Span, plotWidth float64) string {
	length := span.End - span.Start
	if length <= 0 {
		return ``
	}
	return strconv.FormatFloat(plotWidth*cfg.BarThickness/length, 'f', 2, 64)
}

func TickMarkLines(ticks []layout.Tick) []charts.SeriesOpts {
	if len(ticks) == 0 {
		return nil
	}
	items := make([]opts.MarkLineNameXAxisItem, len(ticks))
	for i, tick := range ticks {
		items[i] = opts.MarkLineNameXAxisItem{Name: tick.Label, XAxis: tick.CenterX}
	}
	return []charts.SeriesOpts{
		charts.WithMarkLineNameXAxisItemOpts(items...),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol: []string{`none`, `none`},
			Label: &opts.Label{
				Show:      opts.Bool(true),
				Position:  `start`,
				Formatter: `{b}`,
			},
			LineStyle: &opts.LineStyle{Opacity: opts.Float(0)},
		}),
	}
}
