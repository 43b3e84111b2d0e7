package chartutil

import (
	"github.com/coscms/tables"

	"github.com/admpub/groupbar/pkg/chart"
)

// AbsentCell is shown for a group a category has no value in.
const AbsentCell = `-`

// DatasetTable renders the values of m as an HTML table: one row per
// category, one column per group.
func DatasetTable(m *chart.Model) string {
	o := m.Options()
	table := tables.New()
	table.SetCaptionContent(o.Title)
	head := new(tables.Row).AddCell(tables.NewCell(o.LegendTitle))
	for _, name := range m.GroupNames() {
		head = head.AddCell(tables.NewCell(name))
	}
	table.Head.AddRow(head)
	for _, c := range m.Categories() {
		row := new(tables.Row).AddCell(tables.NewCell(c.Name))
		for _, v := range c.Values {
			if v == nil {
				row = row.AddCell(tables.NewCell(AbsentCell))
				continue
			}
			row = row.AddCell(tables.NewCell(chart.FormatValue(*v)))
		}
		table.Body.AddRow(row)
	}
	return string(table.Render())
}
