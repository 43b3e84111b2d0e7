package chartutil

import (
	"bytes"
	"html"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/admpub/groupbar/pkg/chart"
	"github.com/admpub/groupbar/pkg/layout"
)

// https://github.com/go-echarts/examples

func Title(title, subtitle string, options ...func(*opts.Title)) charts.GlobalOpts {
	option := opts.Title{
		Title:    title,
		Subtitle: subtitle,
	}
	for _, o := range options {
		o(&option)
	}
	return charts.WithTitleOpts(option)
}

func Initialization(title, subtitle string, options ...func(*opts.Initialization)) charts.GlobalOpts {
	option := opts.Initialization{Theme: types.ThemeWesteros, PageTitle: title}
	for _, o := range options {
		o(&option)
	}
	return charts.WithInitializationOpts(option)
}

// Legend is a vertical legend on the right, one entry per category.
func Legend(options ...func(*opts.Legend)) charts.GlobalOpts {
	option := opts.Legend{
		Show:   opts.Bool(true),
		Orient: `vertical`,
		Right:  `0`,
		Top:    `middle`,
	}
	for _, o := range options {
		o(&option)
	}
	return charts.WithLegendOpts(option)
}

// Tooltip enables the per item tooltips set by BarTooltip.
func Tooltip(options ...func(*opts.Tooltip)) charts.GlobalOpts {
	option := opts.Tooltip{
		Show:    opts.Bool(true),
		Trigger: `item`,
	}
	for _, o := range options {
		o(&option)
	}
	return charts.WithTooltipOpts(option)
}

// BarTooltip renders the label/value rows of one bar as an HTML table. The
// text is escaped since category and group names come from user input.
func BarTooltip(rows [][2]string) *opts.Tooltip {
	buf := bytes.NewBufferString(`<table>`)
	for _, row := range rows {
		buf.WriteString(`<tr><td>` + escapeTooltip(row[0]) + `</td><td>` + escapeTooltip(row[1]) + `</td></tr>`)
	}
	buf.WriteString(`</table>`)
	return &opts.Tooltip{Formatter: types.FuncStr(buf.String())}
}

// escapeTooltip escapes HTML and the braces of echarts' formatter templates.
func escapeTooltip(s string) string {
	return tooltipReplacer.Replace(html.EscapeString(s))
}

var tooltipReplacer = strings.NewReplacer(`{`, `&#123;`, `}`, `&#125;`)

// YAxis names the value axis and bounds it with chart.Options.YAxisRange.
func YAxis(o chart.Options, result layout.Result) charts.GlobalOpts {
	option := opts.YAxis{
		Name: o.YAxisTitle,
		Type: `value`,
		Min:  o.YAxisMin,
	}
	if _, hi, ok := o.YAxisRange(result); ok {
		option.Max = hi
	}
	return charts.WithYAxisOpts(option)
}
