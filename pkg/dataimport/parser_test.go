package dataimport

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admpub/groupbar/pkg/chart"
	"github.com/admpub/groupbar/pkg/export"
)

const demoText = `# employees per country
groups: Finland, Germany, UK

Engineers: 48, 27, 24
Sales: 19, 40, 14
Marketing: 33, 33, 62
`

func TestParse(t *testing.T) {
	m := chart.New()
	p := NewParser(m)
	for _, line := range []string{`groups: A, B, C`, `X: 1, , 3`, `Y: 4`, ` # comment`, ``} {
		require.NoError(t, p.Parse(line))
	}
	categories := m.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, 1.0, *categories[0].Values[0])
	assert.Nil(t, categories[0].Values[1])
	assert.Nil(t, categories[1].Values[1])
	assert.Nil(t, categories[1].Values[2])

	// an existing category is replaced
	require.NoError(t, p.Parse(`X: , 2`))
	categories = m.Categories()
	assert.Nil(t, categories[0].Values[0])
	assert.Equal(t, 2.0, *categories[0].Values[1])
	assert.Nil(t, categories[0].Values[2])

	err := p.Parse(`Z: 1, 2, 3, 4`)
	assert.ErrorIs(t, err, chart.ErrInvalidInput)
	assert.Contains(t, err.Error(), `line 7`)
	assert.ErrorIs(t, p.Parse(`Z: one`), chart.ErrInvalidInput)
	assert.ErrorIs(t, p.Parse(`no separator`), chart.ErrInvalidInput)
	assert.ErrorIs(t, p.Parse(`groups: A`), chart.ErrDuplicate)
}

func TestParseRejectsNonFinite(t *testing.T) {
	m := chart.New()
	p := NewParser(m)
	require.NoError(t, p.Parse(`groups: A, B`))
	for _, line := range []string{`X: NaN, +Inf`, `X: 1, -inf`, `X: Infinity`} {
		err := p.Parse(line)
		assert.ErrorIs(t, err, chart.ErrInvalidInput, line)
	}
	assert.Empty(t, m.Categories())

	buf := bytes.NewBuffer(nil)
	require.NoError(t, p.Parse(`X: 1, 2`))
	require.NoError(t, export.JSON(buf, m, false))

	for _, s := range []string{`NaN`, `Inf`, `+Inf`, `-Inf`} {
		_, err := ParseValue(s)
		assert.ErrorIs(t, err, chart.ErrInvalidInput, s)
	}
}

func TestParseValues(t *testing.T) {
	values, err := ParseValues(` 1.5, ,-2 `)
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, 1.5, *values[0])
	assert.Nil(t, values[1])
	assert.Equal(t, -2.0, *values[2])

	values, err = ParseValues(`  `)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), `demo.txt`)
	require.NoError(t, os.WriteFile(path, []byte(demoText), 0o644))
	m := chart.New()
	require.NoError(t, ReadFile(path, m))
	d := m.Dataset()
	assert.Equal(t, chart.Demo(), d)
	assert.Equal(t, 135.0, m.Layout().AxisSpan.End)

	require.NoError(t, os.WriteFile(path, []byte("groups: A\nX: bad\nY: 1\n"), 0o644))
	m = chart.New()
	assert.ErrorIs(t, ReadFile(path, m), chart.ErrInvalidInput)
	assert.Empty(t, m.Categories())
}

func TestFollow(t *testing.T) {
	path := filepath.Join(t.TempDir(), `follow.txt`)
	require.NoError(t, os.WriteFile(path, []byte("groups: A, B\nX: 1, 2\n"), 0o644))

	var mu sync.Mutex
	m := chart.New()
	p := NewParser(m)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Follow(ctx, path, func(line string) error {
			mu.Lock()
			defer mu.Unlock()
			return p.Parse(line)
		})
	}()
	bars := func() int {
		mu.Lock()
		defer mu.Unlock()
		return len(m.Layout().Bars)
	}
	require.Eventually(t, func() bool { return bars() == 2 }, 5*time.Second, 20*time.Millisecond)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("not a statement\nY: 3\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.Eventually(t, func() bool { return bars() == 3 }, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err = <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal(`Follow did not return after cancel`)
	}
}

func TestReadXLSX(t *testing.T) {
	d := chart.Demo()
	d.Categories[1].Values[2] = nil
	source, err := chart.FromDataset(d)
	require.NoError(t, err)
	buf := bytes.NewBuffer(nil)
	require.NoError(t, export.XLSX(buf, source))

	m := chart.New()
	require.NoError(t, ReadXLSX(buf, m))
	assert.Equal(t, d, m.Dataset())
}

func TestReadMissingFile(t *testing.T) {
	err := ReadFile(filepath.Join(t.TempDir(), `missing.txt`), chart.New())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
