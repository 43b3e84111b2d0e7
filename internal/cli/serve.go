package cli

import (
	"github.com/admpub/log"
	"github.com/spf13/cobra"

	"github.com/admpub/groupbar/internal/server"
	"github.com/admpub/groupbar/pkg/storage"
)

func newServeCommand(loadConfig configLoader) *cobra.Command {
	var (
		addr       string
		storageDSN string
		followPath string
		followInto string
	)
	cmd := &cobra.Command{
		Use:   `serve`,
		Short: `Serve the stored charts over HTTP`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(addr) > 0 {
				cfg.Server.Addr = addr
			}
			if len(storageDSN) > 0 {
				cfg.Storage = storageDSN
			}
			store, err := storage.New(cfg.Storage)
			if err != nil {
				return err
			}
			defer store.Close()
			if err = storage.Seed(store, cfg.Datasets...); err != nil {
				return err
			}
			s := server.New(cfg, store)
			ctx := cmd.Context()
			if len(followPath) > 0 {
				name := followInto
				if len(name) == 0 {
					name = s.DefaultDataset()
				}
				go func() {
					if err := s.Follow(ctx, name, followPath); err != nil && ctx.Err() == nil {
						log.Errorf(`following %s: %v`, followPath, err)
					}
				}()
			}
			return s.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, `addr`, ``, `listen address (default from config)`)
	cmd.Flags().StringVar(&storageDSN, `storage`, ``, `storage DSN, memory:// or duckdb://path/`)
	cmd.Flags().StringVar(&followPath, `follow`, ``, `text data file applied to a dataset as it grows`)
	cmd.Flags().StringVar(&followInto, `dataset`, ``, `dataset the --follow file is applied to (default: first configured)`)
	return cmd
}
