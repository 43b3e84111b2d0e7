package storage

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/admpub/groupbar/pkg/chart"
)

type Storager interface {
	Save(chart.Dataset) error
	Load(name string) (chart.Dataset, error)
	List() ([]string, error)
	Delete(name string) error
	Close() error
}

type Constructor func(*url.URL) (Storager, error)

var storagers = map[string]Constructor{}

func Register(name string, function Constructor) {
	storagers[name] = function
}

var (
	ErrUnsupported = errors.New(`unsupported storage`)
	ErrNotFound    = fmt.Errorf(`dataset %w`, chart.ErrNotFound)
)

// New opens the storage named by the scheme of dsn, e.g. `memory://` or
// `duckdb://./data/`. A bare name without `://` is accepted too.
func New(dsn string) (Storager, error) {
	if !strings.Contains(dsn, `://`) {
		dsn += `://`
	}
	settings, err := url.Parse(dsn)
	if err != nil {
		return nil, err
	}
	fn, ok := storagers[settings.Scheme]
	if !ok {
		return nil, fmt.Errorf(`%w: %s`, ErrUnsupported, settings.Scheme)
	}
	return fn(settings)
}

// Seed saves the datasets that are not stored yet.
func Seed(s Storager, datasets ...chart.Dataset) error {
	for _, d := range datasets {
		_, err := s.Load(d.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		if err = s.Save(d); err != nil {
			return err
		}
	}
	return nil
}
