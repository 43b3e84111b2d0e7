package cli

import (
	"path/filepath"
	"strings"

	"github.com/admpub/log"
	"github.com/spf13/cobra"

	"github.com/admpub/groupbar/pkg/chartutil"
	"github.com/admpub/groupbar/pkg/export"
)

func newRenderCommand(loadConfig configLoader) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   `render [data-file]`,
		Short: `Write the chart as an HTML page`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			m, err := loadModel(cfg, args)
			if err != nil {
				return err
			}
			w, err := create(cmd, output)
			if err != nil {
				return err
			}
			defer w.Close()
			err = chartutil.RenderPage(w, m.Options().Title, chartutil.DatasetTable(m), chartutil.NewGroupedBar(nil, m))
			if err == nil {
				log.Debugf(`rendered %s to %s`, m.Name(), output)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&output, `output`, `o`, `chart.html`, `output file, - for stdout`)
	return cmd
}

func newExportCommand(loadConfig configLoader) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   `export [data-file]`,
		Short: `Write the chart data as an Excel workbook, or JSON for a .json output`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			m, err := loadModel(cfg, args)
			if err != nil {
				return err
			}
			w, err := create(cmd, output)
			if err != nil {
				return err
			}
			defer w.Close()
			if strings.EqualFold(filepath.Ext(output), `.json`) {
				return export.JSON(w, m, true)
			}
			return export.XLSX(w, m)
		},
	}
	cmd.Flags().StringVarP(&output, `output`, `o`, `chart.xlsx`, `output file (.xlsx or .json), - for stdout`)
	return cmd
}
