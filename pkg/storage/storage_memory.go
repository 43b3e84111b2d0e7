package storage

import (
	"net/url"
	"slices"
	"sync"

	"github.com/admpub/groupbar/pkg/chart"
	"github.com/admpub/groupbar/pkg/layout"
)

func init() {
	Register(`memory`, func(_ *url.URL) (Storager, error) { return NewMemory(), nil })
}

func NewMemory() Storager {
	return &storageMemory{datasets: map[string]chart.Dataset{}}
}

type storageMemory struct {
	mu       sync.RWMutex
	datasets map[string]chart.Dataset
}

func (e *storageMemory) Save(d chart.Dataset) error {
	if err := d.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.datasets[d.Name] = clone(d)
	return nil
}

func (e *storageMemory) Load(name string) (chart.Dataset, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	d, ok := e.datasets[name]
	if !ok {
		return chart.Dataset{}, ErrNotFound
	}
	return clone(d), nil
}

func (e *storageMemory) List() ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.datasets))
	for name := range e.datasets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (e *storageMemory) Delete(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.datasets[name]; !ok {
		return ErrNotFound
	}
	delete(e.datasets, name)
	return nil
}

func (e *storageMemory) Close() error {
	return nil
}

func clone(d chart.Dataset) chart.Dataset {
	c := d
	c.Groups = slices.Clone(d.Groups)
	c.Categories = make([]layout.Category, len(d.Categories))
	for i, category := range d.Categories {
		values := make([]*float64, len(category.Values))
		for j, v := range category.Values {
			if v != nil {
				values[j] = layout.Float(*v)
			}
		}
		c.Categories[i] = layout.Category{Name: category.Name, Values: values}
	}
	return c
}
