// Package cli implements the groupbar command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/admpub/groupbar/pkg/chart"
	"github.com/admpub/groupbar/pkg/config"
	"github.com/admpub/groupbar/pkg/dataimport"

	_ "github.com/admpub/groupbar/pkg/storage/duckdb"
)

// Execute runs the command named by os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func NewRootCommand() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:          `groupbar`,
		Short:        `Lay out and render grouped bar charts`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, `config`, `c`, ``, `JSON5 config file (default: built-in demo)`)
	loadConfig := func() (*config.Config, error) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	root.AddCommand(newLayoutCommand(loadConfig))
	root.AddCommand(newRenderCommand(loadConfig))
	root.AddCommand(newExportCommand(loadConfig))
	root.AddCommand(newServeCommand(loadConfig))
	return root
}

type configLoader func() (*config.Config, error)

// loadModel reads the data file named by args, a text file or an .xlsx
// workbook, or falls back to the first dataset of the config.
func loadModel(cfg *config.Config, args []string) (*chart.Model, error) {
	if len(args) == 0 {
		return cfg.Model(``)
	}
	path := args[0]
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	m := chart.New(append(cfg.ModelOptions(), chart.WithName(name))...)
	if strings.EqualFold(filepath.Ext(path), `.xlsx`) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return m, dataimport.ReadXLSX(f, m)
	}
	return m, dataimport.ReadFile(path, m)
}

// create opens path for writing; `-` is stdout.
func create(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == `-` {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	return os.Create(path)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
