package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demoGroups = []string{`Finland`, `Germany`, `UK`}

func demoCategories() []Category {
	return []Category{
		{Name: `Engineers`, Values: Floats(48, 27, 24)},
		{Name: `Sales`, Values: Floats(19, 40, 14)},
		{Name: `Marketing`, Values: Floats(33, 33, 62)},
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, Config{BarThickness: 10, BarGap: 2.5, GroupGap: 7.5}, cfg)
	assert.Equal(t, 12.5, cfg.Step())
	assert.Equal(t, -10.0, cfg.AxisStart())
}

func TestNewConfigDerivesGaps(t *testing.T) {
	cfg := NewConfig(WithBarThickness(20))
	assert.Equal(t, Config{BarThickness: 20, BarGap: 5, GroupGap: 15}, cfg)

	cfg = NewConfig(WithBarGap(1))
	assert.Equal(t, Config{BarThickness: 10, BarGap: 1, GroupGap: 3}, cfg)

	cfg = NewConfig(WithBarThickness(4), WithBarGap(0), WithGroupGap(6))
	assert.Equal(t, Config{BarThickness: 4, BarGap: 0, GroupGap: 6}, cfg)
}

func TestLayoutDemoData(t *testing.T) {
	r := Layout(DefaultConfig(), demoGroups, demoCategories())
	require.Len(t, r.Bars, 9)
	require.Len(t, r.Ticks, 3)

	first := r.BarsOfGroup(0)
	require.Len(t, first, 3)
	assert.Equal(t, []Bar{
		{GroupIndex: 0, CategoryIndex: 0, X: 0, Width: 10, Height: 48},
		{GroupIndex: 0, CategoryIndex: 1, X: 12.5, Width: 10, Height: 19},
		{GroupIndex: 0, CategoryIndex: 2, X: 25, Width: 10, Height: 33},
	}, first)
	assert.Equal(t, 45.0, r.BarsOfGroup(1)[0].X)
	assert.Equal(t, 90.0, r.BarsOfGroup(2)[0].X)

	assert.Equal(t, []Tick{
		{GroupIndex: 0, CenterX: 17.5, Label: `Finland`},
		{GroupIndex: 1, CenterX: 62.5, Label: `Germany`},
		{GroupIndex: 2, CenterX: 107.5, Label: `UK`},
	}, r.Ticks)
	assert.Equal(t, Span{Start: -10, End: 135}, r.AxisSpan)
	assert.Equal(t, 62.0, r.MaxHeight())
}

func TestLayoutSkipsAbsentValues(t *testing.T) {
	categories := demoCategories()
	categories[1].Values[1] = nil
	full := Layout(DefaultConfig(), demoGroups, demoCategories())
	sparse := Layout(DefaultConfig(), demoGroups, categories)

	assert.Len(t, sparse.Bars, 8)
	second := sparse.BarsOfGroup(1)
	require.Len(t, second, 2)
	assert.Equal(t, 0, second[0].CategoryIndex)
	assert.Equal(t, 2, second[1].CategoryIndex)
	assert.Equal(t, 45.0, second[0].X)
	assert.Equal(t, 57.5, second[1].X)
	assert.Equal(t, 56.25, sparse.Ticks[1].CenterX)

	// everything after the gap moves left by one bar step
	step := DefaultConfig().Step()
	for i, bar := range sparse.BarsOfGroup(2) {
		assert.Equal(t, full.BarsOfGroup(2)[i].X-step, bar.X)
	}
	assert.Equal(t, full.AxisSpan.End-step, sparse.AxisSpan.End)
	assert.Equal(t, 122.5, sparse.AxisSpan.End)
}

func TestLayoutEmptyGroup(t *testing.T) {
	r := Layout(DefaultConfig(), []string{`A`, `B`}, []Category{
		{Name: `X`, Values: []*float64{nil, Float(5)}},
	})
	require.Len(t, r.Bars, 1)
	require.Len(t, r.Ticks, 2)
	assert.Equal(t, -1.25, r.Ticks[0].CenterX)
	assert.Equal(t, 7.5, r.Bars[0].X)
	assert.Equal(t, 12.5, r.Ticks[1].CenterX)
	assert.Equal(t, 27.5, r.AxisSpan.End)
}

func TestLayoutNoGroups(t *testing.T) {
	r := Layout(DefaultConfig(), nil, demoCategories())
	assert.Empty(t, r.Bars)
	assert.Empty(t, r.Ticks)
	assert.Equal(t, Span{Start: -10, End: 0}, r.AxisSpan)
}

func TestLayoutShortValuesAreAbsent(t *testing.T) {
	categories := []Category{{Name: `short`, Values: Floats(1)}}
	r := Layout(DefaultConfig(), []string{`A`, `B`}, categories)
	assert.Len(t, r.Bars, 1)
	assert.Len(t, r.Ticks, 2)
	assert.Equal(t, 25.0, r.AxisSpan.End)

	err := Validate([]string{`A`, `B`}, categories)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NoError(t, Validate(demoGroups, demoCategories()))
}

func TestValidateRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		categories := demoCategories()
		categories[1].Values[2] = Float(v)
		err := Validate(demoGroups, categories)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), `"UK"`)
		assert.ErrorIs(t, CheckValue(v), ErrInvalidInput)
	}
	assert.NoError(t, CheckValue(-2.5))
}

func TestLayoutProperties(t *testing.T) {
	cfg := NewConfig(WithBarThickness(7))
	categories := demoCategories()
	categories[0].Values[2] = nil
	categories[2].Values[0] = nil
	groups := append([]string{}, demoGroups...)
	groups = append(groups, `Empty`)
	for i := range categories {
		categories[i].Values = append(categories[i].Values, nil)
	}

	engine := NewEngine(WithBarThickness(7))
	require.Equal(t, cfg, engine.Config)
	r := engine.Layout(groups, categories)

	// determinism
	assert.Equal(t, r, engine.Layout(groups, categories))

	// one bar per present value
	var present int
	for _, category := range categories {
		for _, v := range category.Values {
			if v != nil {
				present++
			}
		}
	}
	assert.Len(t, r.Bars, present)

	// one tick per group, empty groups included
	assert.Len(t, r.Ticks, len(groups))

	// bars inside a group are exactly one step apart
	for g := range groups {
		bars := r.BarsOfGroup(g)
		for i := 1; i < len(bars); i++ {
			assert.Equal(t, cfg.Step(), bars[i].X-bars[i-1].X)
		}
	}

	// the axis ends at the final cursor position
	var cursor float64
	for g := range groups {
		cursor += float64(len(r.BarsOfGroup(g)))*cfg.Step() + cfg.GroupGap
	}
	assert.InDelta(t, cursor, r.AxisSpan.End, 1e-9)
	assert.Equal(t, cfg.AxisStart(), r.AxisSpan.Start)
}

func TestBarCenter(t *testing.T) {
	assert.Equal(t, 17.5, Bar{X: 12.5, Width: 10}.Center())
}
