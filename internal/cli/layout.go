package cli

import (
	"fmt"

	"github.com/admpub/pp"
	"github.com/spf13/cobra"

	"github.com/admpub/groupbar/pkg/export"
)

func newLayoutCommand(loadConfig configLoader) *cobra.Command {
	var (
		format string
		pretty bool
	)
	cmd := &cobra.Command{
		Use:   `layout [data-file]`,
		Short: `Print the bar and tick positions of a chart`,
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
			switch format {
			case `json`:
				return export.JSON(cmd.OutOrStdout(), m, pretty)
			case `pp`:
				_, err = pp.Fprintln(cmd.OutOrStdout(), export.NewPlan(m))
				return err
			default:
				return fmt.Errorf(`unknown format %q: want json or pp`, format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, `format`, `f`, `json`, `output format: json, pp`)
	cmd.Flags().BoolVar(&pretty, `pretty`, false, `indent the JSON output`)
	return cmd
}
