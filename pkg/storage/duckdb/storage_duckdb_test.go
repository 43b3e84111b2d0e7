package duckdb

import (
	"net/url"
	"path/filepath"
	"testing"

	"github.com/admpub/pp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admpub/groupbar/pkg/chart"
	"github.com/admpub/groupbar/pkg/layout"
	"github.com/admpub/groupbar/pkg/storage"
)

func TestParseURL(t *testing.T) {
	u, err := url.Parse(`duckdb://./eee`)
	assert.NoError(t, err)
	assert.Equal(t, `.`, u.Host)
	assert.Equal(t, `/eee`, u.Path)
}

func newTestStorage(t *testing.T) Storager {
	s, err := newDuckDB(nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.(Storager)
}

func TestSaveLoad(t *testing.T) {
	s := newTestStorage(t)
	d := chart.Demo()
	d.Title = `Employees`
	d.Categories[1].Values[1] = nil
	require.NoError(t, s.Save(d))

	loaded, err := s.Load(d.Name)
	require.NoError(t, err)
	assert.Equal(t, d, loaded)

	// saving again replaces the rows
	d.Categories = d.Categories[:1]
	require.NoError(t, s.Save(d))
	loaded, err = s.Load(d.Name)
	require.NoError(t, err)
	assert.Len(t, loaded.Categories, 1)

	_, err = s.Load(`missing`)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, err, chart.ErrNotFound)

	assert.ErrorIs(t, s.Save(chart.Dataset{Name: `bad`, Groups: []string{`a`}, Categories: []layout.Category{{Name: `x`}}}), chart.ErrInvalidInput)
}

func TestListDelete(t *testing.T) {
	s := newTestStorage(t)
	for _, name := range []string{`b`, `a`} {
		d := chart.Demo()
		d.Name = name
		require.NoError(t, s.Save(d))
	}
	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{`a`, `b`}, names)

	require.NoError(t, s.Delete(`a`))
	assert.ErrorIs(t, s.Delete(`a`), storage.ErrNotFound)
	names, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{`b`}, names)
}

func TestSummary(t *testing.T) {
	s := newTestStorage(t)
	d := chart.Demo()
	d.Categories[2].Values = make([]*float64, 3)
	require.NoError(t, s.Save(d))

	rows, err := s.Summary(d.Name)
	require.NoError(t, err)
	pp.Println(rows)
	assert.Equal(t, []CategorySummary{
		{Category: `Engineers`, Bars: 3, Total: 99, Max: 48},
		{Category: `Sales`, Bars: 3, Total: 73, Max: 40},
		{Category: `Marketing`, Bars: 0, Total: 0, Max: 0},
	}, rows)

	_, err = s.Summary(`missing`)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFileStorage(t *testing.T) {
	dir := t.TempDir() + string(filepath.Separator)
	s, err := storage.New(`duckdb://?path=` + url.QueryEscape(dir))
	require.NoError(t, err)
	require.NoError(t, s.Save(chart.Demo()))
	require.NoError(t, s.Close())
	assert.FileExists(t, filepath.Join(dir, `groupbar.db`))
}
