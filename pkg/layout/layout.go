// Package layout computes the geometry of a grouped bar chart: where every
// bar sits on the primary axis, where each group's tick label goes and how
// wide the axis must be.
//
// The computation is a single pass over groups (outer) and categories
// (inner), so its output is fully determined by the configuration and the
// two input sequences.
package layout

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidInput = errors.New(`invalid layout input`)

// Category is one named series with at most one value per group.
// A nil entry in Values means the category has no bar in that group.
type Category struct {
	Name   string     `json:"name"`
	Values []*float64 `json:"values"`
}

// Value returns the value for the given group index. Entries past the end of
// Values are reported as absent.
func (c Category) Value(groupIndex int) (float64, bool) {
	if groupIndex < 0 || groupIndex >= len(c.Values) || c.Values[groupIndex] == nil {
		return 0, false
	}
	return *c.Values[groupIndex], true
}

type Bar struct {
	GroupIndex    int     `json:"groupIndex"`
	CategoryIndex int     `json:"categoryIndex"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
}

// Center is the x position of the middle of the bar.
func (b Bar) Center() float64 {
	return b.X + b.Width/2
}

type Tick struct {
	GroupIndex int     `json:"groupIndex"`
	CenterX    float64 `json:"centerX"`
	Label      string  `json:"label"`
}

type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type Result struct {
	Bars     []Bar  `json:"bars"`
	Ticks    []Tick `json:"ticks"`
	AxisSpan Span   `json:"axisSpan"`
}

// BarsOfGroup returns the bars emitted for one group, in category order.
func (r Result) BarsOfGroup(groupIndex int) []Bar {
	var bars []Bar
	for _, bar := range r.Bars {
		if bar.GroupIndex == groupIndex {
			bars = append(bars, bar)
		}
	}
	return bars
}

// MaxHeight returns the tallest bar, or 0 when there are no bars.
func (r Result) MaxHeight() float64 {
	var h float64
	for _, bar := range r.Bars {
		h = max(h, bar.Height)
	}
	return h
}

// Layout places the bars of every category inside every group.
//
// Bars are emitted group-major, category-minor. Absent values take no space.
// Each tick sits at (xStart + x - BarGap) / 2, which for an empty group
// degenerates to xStart - BarGap/2. The axis end includes the group gap
// that follows the last group.
func Layout(cfg Config, groups []string, categories []Category) Result {
	result := Result{
		Bars:  make([]Bar, 0, len(groups)*len(categories)),
		Ticks: make([]Tick, 0, len(groups)),
	}
	var x float64
	for groupIndex, group := range groups {
		xStart := x
		for categoryIndex, category := range categories {
			value, ok := category.Value(groupIndex)
			if !ok {
				continue
			}
			result.Bars = append(result.Bars, Bar{
				GroupIndex:    groupIndex,
				CategoryIndex: categoryIndex,
				X:             x,
				Y:             0,
				Width:         cfg.BarThickness,
				Height:        value,
			})
			x += cfg.Step()
		}
		result.Ticks = append(result.Ticks, Tick{
			GroupIndex: groupIndex,
			CenterX:    (xStart + x - cfg.BarGap) / 2,
			Label:      group,
		})
		x += cfg.GroupGap
	}
	result.AxisSpan = Span{Start: cfg.AxisStart(), End: x}
	return result
}

// Validate reports categories whose value count differs from the group
// count, and values that are NaN or infinite. Layout itself tolerates the
// mismatch.
func Validate(groups []string, categories []Category) error {
	for _, category := range categories {
		if len(category.Values) != len(groups) {
			return fmt.Errorf(`%w: category %q has %d values for %d groups`, ErrInvalidInput, category.Name, len(category.Values), len(groups))
		}
		for i, v := range category.Values {
			if v == nil {
				continue
			}
			if err := CheckValue(*v); err != nil {
				return fmt.Errorf(`%w (category %q, group %q)`, err, category.Name, groups[i])
			}
		}
	}
	return nil
}

// CheckValue rejects bar heights that cannot be drawn or encoded.
func CheckValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf(`%w: non-finite value %v`, ErrInvalidInput, v)
	}
	return nil
}

// Engine is a Config bound to the layout pass.
type Engine struct {
	Config Config
}

func NewEngine(opts ...Option) Engine {
	return Engine{Config: NewConfig(opts...)}
}

func (e Engine) Layout(groups []string, categories []Category) Result {
	return Layout(e.Config, groups, categories)
}

// Float returns a pointer to v, for building category values.
func Float(v float64) *float64 {
	return &v
}

// Floats converts present values into category values.
func Floats(values ...float64) []*float64 {
	r := make([]*float64, len(values))
	for i, v := range values {
		r[i] = Float(v)
	}
	return r
}
