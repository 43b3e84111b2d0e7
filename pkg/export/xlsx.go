package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/admpub/groupbar/pkg/chart"
)

const SheetName = `Data`

// ChartAnchor is the top left cell of the chart: second row, two columns
// right of the last group column.
func ChartAnchor(groups int) string {
	cell, _ := excelize.CoordinatesToCellName(groups+3, 2)
	return cell
}

// XLSX writes the values of m into a sheet, one row per category and one
// column per group, plus a clustered column chart of them. Absent values are
// left blank and shown as gaps.
func XLSX(w io.Writer, m *chart.Model) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}
	if err := WriteSheet(f, SheetName, m); err != nil {
		return err
	}
	if c := Chart(m); c != nil {
		if err := f.AddChart(SheetName, ChartAnchor(len(m.GroupNames())), c); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}

// WriteSheet writes the table: the legend title and group names on the first
// row, then each category name followed by its values.
func WriteSheet(f *excelize.File, sheet string, m *chart.Model) error {
	o := m.Options()
	head := []interface{}{o.LegendTitle}
	for _, name := range m.GroupNames() {
		head = append(head, name)
	}
	if err := f.SetSheetRow(sheet, `A1`, &head); err != nil {
		return err
	}
	for i, c := range m.Categories() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err = f.SetCellStr(sheet, cell, c.Name); err != nil {
			return err
		}
		for j, v := range c.Values {
			if v == nil {
				continue
			}
			cell, _ = excelize.CoordinatesToCellName(j+2, i+2)
			if err = f.SetCellFloat(sheet, cell, *v, -1, 64); err != nil {
				return err
			}
		}
	}
	return nil
}

// Chart describes the column chart over the table written by WriteSheet. It
// returns nil when there is nothing to plot.
func Chart(m *chart.Model) *excelize.Chart {
	groups := len(m.GroupNames())
	categories := m.Categories()
	if groups == 0 || len(categories) == 0 {
		return nil
	}
	o := m.Options()
	first, _ := excelize.CoordinatesToCellName(2, 1, true)
	last, _ := excelize.CoordinatesToCellName(groups+1, 1, true)
	groupRange := quoteSheet(SheetName) + `!` + first + `:` + last
	series := make([]excelize.ChartSeries, len(categories))
	for i := range categories {
		row := i + 2
		name, _ := excelize.CoordinatesToCellName(1, row, true)
		first, _ = excelize.CoordinatesToCellName(2, row, true)
		last, _ = excelize.CoordinatesToCellName(groups+1, row, true)
		series[i] = excelize.ChartSeries{
			Name:       quoteSheet(SheetName) + `!` + name,
			Categories: groupRange,
			Values:     quoteSheet(SheetName) + `!` + first + `:` + last,
		}
	}
	lo, hi, ok := o.YAxisRange(m.Layout())
	yAxis := excelize.ChartAxis{
		MajorGridLines: true,
		Title:          []excelize.RichTextRun{{Text: o.YAxisTitle}},
		Minimum:        &lo,
	}
	if ok {
		yAxis.Maximum = &hi
	}
	return &excelize.Chart{
		Type:         excelize.Col,
		Series:       series,
		Title:        []excelize.RichTextRun{{Text: o.Title}},
		Legend:       excelize.ChartLegend{Position: `right`},
		YAxis:        yAxis,
		ShowBlanksAs: `gap`,
	}
}

func quoteSheet(name string) string {
	return `'` + name + `'`
}
