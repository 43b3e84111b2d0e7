package dataimport

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/admpub/groupbar/pkg/chart"
)

// ReadXLSX reads the first sheet of a workbook laid out like the one
// export.XLSX writes: group names on the first row from column B, then one
// row per category with its name in column A. Empty cells are absent values.
func ReadXLSX(r io.Reader, m *chart.Model) error {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf(`%w: workbook without sheets`, chart.ErrInvalidInput)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	if len(rows[0]) > 1 {
		if err = m.AddGroups(rows[0][1:]...); err != nil {
			return err
		}
	}
	groups := len(rows[0]) - 1
	if groups < 0 {
		groups = 0
	}
	for i, row := range rows[1:] {
		if len(row) == 0 || len(strings.TrimSpace(row[0])) == 0 {
			continue
		}
		if len(row)-1 > groups {
			return fmt.Errorf(`%w: row %d has %d values for %d groups`, chart.ErrInvalidInput, i+2, len(row)-1, groups)
		}
		values := make([]*float64, groups)
		for j, cell := range row[1:] {
			if values[j], err = ParseValue(cell); err != nil {
				return fmt.Errorf(`row %d: %w`, i+2, err)
			}
		}
		if err = m.AddCategory(row[0], values); err != nil {
			return err
		}
	}
	return nil
}
