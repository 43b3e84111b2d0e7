package chart

import "github.com/admpub/groupbar/pkg/layout"

const DefaultName = `default`

// Options are the presentation settings handed to renderers together with
// the layout. Every recognized option is listed here.
type Options struct {
	Title                string   `json:"title"`
	YAxisTitle           string   `json:"yAxisTitle"`
	YAxisMin             float64  `json:"yAxisMin"`
	YAxisMax             *float64 `json:"yAxisMax,omitempty"` // 0: fit to the data
	LegendTitle          string   `json:"legendTitle"`
	TooltipCategoryLabel string   `json:"tooltipCategoryLabel"`
	TooltipValueLabel    string   `json:"tooltipValueLabel"`
}

func DefaultOptions() Options {
	return Options{
		Title:                `Grouped Bars (Employee Count)`,
		YAxisTitle:           `Number of Employees`,
		YAxisMin:             0,
		YAxisMax:             layout.Float(70),
		LegendTitle:          `Department`,
		TooltipCategoryLabel: `Department:`,
		TooltipValueLabel:    `# of employees:`,
	}
}

// Merge fills the empty fields of o from defaults.
func (o Options) Merge(defaults Options) Options {
	if len(o.Title) == 0 {
		o.Title = defaults.Title
	}
	if len(o.YAxisTitle) == 0 {
		o.YAxisTitle = defaults.YAxisTitle
	}
	if o.YAxisMax == nil && defaults.YAxisMax != nil {
		o.YAxisMax = layout.Float(*defaults.YAxisMax)
	}
	if len(o.LegendTitle) == 0 {
		o.LegendTitle = defaults.LegendTitle
	}
	if len(o.TooltipCategoryLabel) == 0 {
		o.TooltipCategoryLabel = defaults.TooltipCategoryLabel
	}
	if len(o.TooltipValueLabel) == 0 {
		o.TooltipValueLabel = defaults.TooltipValueLabel
	}
	return o
}

// YAxisRange returns the value axis bounds for result. Without a usable
// YAxisMax the axis ends at the tallest bar; ok is false when there is no
// upper bound at all.
func (o Options) YAxisRange(result layout.Result) (lo float64, hi float64, ok bool) {
	lo = o.YAxisMin
	if o.YAxisMax != nil && *o.YAxisMax > lo {
		return lo, *o.YAxisMax, true
	}
	if h := result.MaxHeight(); h > lo {
		return lo, h, true
	}
	return lo, 0, false
}
