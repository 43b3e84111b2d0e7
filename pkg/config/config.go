package config

import (
	"io"
	"os"

	"github.com/admpub/json5"
	"github.com/admpub/log"

	"github.com/admpub/groupbar/pkg/chart"
	"github.com/admpub/groupbar/pkg/layout"
)

const (
	DefaultAddr    = `:8080`
	DefaultStorage = `memory://`
)

type Config struct {
	Layout   Layout          `json:"layout,omitempty"`
	Chart    chart.Options   `json:"chart,omitempty"`
	Server   Server          `json:"server,omitempty"`
	Storage  string          `json:"storage,omitempty"` // memory:// or duckdb://path
	Datasets []chart.Dataset `json:"datasets,omitempty"`
}

// Layout leaves unset values nil so that they can be derived from the
// options before them.
type Layout struct {
	BarThickness *float64 `json:"barThickness,omitempty"`
	BarGap       *float64 `json:"barGap,omitempty"`
	GroupGap     *float64 `json:"groupGap,omitempty"`
}

func (l Layout) Config() layout.Config {
	var options []layout.Option
	if l.BarThickness != nil {
		options = append(options, layout.WithBarThickness(*l.BarThickness))
	}
	if l.BarGap != nil {
		options = append(options, layout.WithBarGap(*l.BarGap))
	}
	if l.GroupGap != nil {
		options = append(options, layout.WithGroupGap(*l.GroupGap))
	}
	return layout.NewConfig(options...)
}

type Server struct {
	Addr string `json:"addr,omitempty"`
}

func (c *Config) SetDefaults() {
	c.Chart = c.Chart.Merge(chart.DefaultOptions())
	if len(c.Server.Addr) == 0 {
		c.Server.Addr = DefaultAddr
	}
	if len(c.Storage) == 0 {
		c.Storage = DefaultStorage
	}
	if len(c.Datasets) == 0 {
		c.Datasets = []chart.Dataset{chart.Demo()}
	}
	for i := range c.Datasets {
		if len(c.Datasets[i].Name) == 0 {
			c.Datasets[i].Name = chart.DefaultName
		}
	}
}

// ModelOptions are the chart options every model built from this config
// gets.
func (c *Config) ModelOptions() []chart.Option {
	return []chart.Option{
		chart.WithLayout(c.Layout.Config()),
		chart.WithOptions(c.Chart),
	}
}

// Model builds the model of the named dataset, or of the first one when name
// is empty.
func (c *Config) Model(name string, options ...chart.Option) (*chart.Model, error) {
	dataset := c.Datasets[0]
	if len(name) > 0 {
		var found bool
		for _, d := range c.Datasets {
			if d.Name == name {
				dataset = d
				found = true
				break
			}
		}
		if !found {
			dataset = chart.Dataset{Name: name}
		}
	}
	return chart.FromDataset(dataset, append(c.ModelOptions(), options...)...)
}

func Default() Config {
	var c Config
	c.SetDefaults()
	return c
}

func Decode(r io.Reader) (Config, error) {
	byteValue, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}
	var config Config
	if err := json5.Unmarshal(byteValue, &config); err != nil {
		return Config{}, err
	}
	config.SetDefaults()
	for _, d := range config.Datasets {
		if err := d.Validate(); err != nil {
			return Config{}, err
		}
	}
	return config, nil
}

// LoadConfig reads a JSON5 config file. An empty path gives the defaults.
func LoadConfig(path string) (Config, error) {
	if len(path) == 0 {
		return Default(), nil
	}
	jsonFile, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer jsonFile.Close()

	config, err := Decode(jsonFile)
	if err != nil {
		log.Errorf(`failed to load config %s: %v`, path, err)
		return Config{}, err
	}
	return config, nil
}
