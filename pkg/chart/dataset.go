package chart

import (
	"fmt"
	"strings"

	"github.com/admpub/groupbar/pkg/layout"
)

// Dataset is the serialisable content of a Model.
type Dataset struct {
	Name       string            `json:"name"`
	Title      string            `json:"title,omitempty"`
	Groups     []string          `json:"groups"`
	Categories []layout.Category `json:"categories"`
}

func (d Dataset) Validate() error {
	if len(strings.TrimSpace(d.Name)) == 0 {
		return fmt.Errorf(`%w: empty dataset name`, ErrInvalidInput)
	}
	return layout.Validate(d.Groups, d.Categories)
}

func (m *Model) Dataset() Dataset {
	d := Dataset{
		Name:       m.name,
		Title:      m.title,
		Groups:     m.GroupNames(),
		Categories: make([]layout.Category, len(m.categories)),
	}
	for i, c := range m.categories {
		d.Categories[i] = layout.Category{Name: c.Name, Values: copyValues(c.Values)}
	}
	return d
}

// FromDataset builds a Model by replaying the dataset through AddGroups and
// AddCategory, so it gets the same validation.
func FromDataset(d Dataset, options ...Option) (*Model, error) {
	m := New(options...)
	if len(d.Name) > 0 {
		m.name = d.Name
	}
	if len(d.Title) > 0 {
		m.title = d.Title
	}
	listeners := m.listeners
	m.listeners = nil
	if len(d.Groups) > 0 {
		if err := m.AddGroups(d.Groups...); err != nil {
			return nil, err
		}
	}
	for _, c := range d.Categories {
		if err := m.AddCategory(c.Name, c.Values); err != nil {
			return nil, err
		}
	}
	m.listeners = listeners
	m.redraw()
	return m, nil
}

// Demo is the employee count sample.
func Demo() Dataset {
	return Dataset{
		Name:   DefaultName,
		Groups: []string{`Finland`, `Germany`, `UK`},
		Categories: []layout.Category{
			{Name: `Engineers`, Values: layout.Floats(48, 27, 24)},
			{Name: `Sales`, Values: layout.Floats(19, 40, 14)},
			{Name: `Marketing`, Values: layout.Floats(33, 33, 62)},
		},
	}
}
