package chartutil

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func NewBar(w io.Writer, options []charts.GlobalOpts, addSeries func(*charts.Bar)) *charts.Bar {
	bar := charts.NewBar()
	options = append([]charts.GlobalOpts{Initialization(``, ``)}, options...)
	bar.SetGlobalOptions(options...)

	if addSeries != nil {
		addSeries(bar)
	}

	if w != nil {
		bar.Render(w)
	}
	return bar
}

func NewBarDatas() *BarDatasMap {
	return &BarDatasMap{
		m: map[string][]opts.BarData{},
	}
}

// BarDatasMap collects bar items per series, keeping the order in which the
// series were first seen.
type BarDatasMap struct {
	m map[string][]opts.BarData
	r []string
}

// AddKey declares a series so that it shows up even without any items.
func (b *BarDatasMap) AddKey(key string) {
	if _, ok := b.m[key]; ok {
		return
	}
	b.m[key] = []opts.BarData{}
	b.r = append(b.r, key)
}

func (b *BarDatasMap) Append(key string, name string, value interface{}, options ...func(*opts.BarData)) {
	b.AddKey(key)
	data := opts.BarData{
		Name:  name,
		Value: value,
	}
	for _, o := range options {
		o(&data)
	}
	b.m[key] = append(b.m[key], data)
}

func (b *BarDatasMap) Keys() []string {
	return b.r
}

func (b BarDatasMap) AddSeries(bar *charts.Bar, options ...charts.SeriesOpts) {
	for _, key := range b.r {
		val := b.m[key]
		if len(val) > 0 && val[0].ItemStyle != nil {
			bar.AddSeries(key, val, append(options, charts.WithItemStyleOpts(*val[0].ItemStyle))...)
		} else {
			bar.AddSeries(key, val, options...)
		}
	}
}
