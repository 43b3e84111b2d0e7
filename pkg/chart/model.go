// Package chart holds the mutable state of one grouped bar chart: the
// ordered groups, the categories with one value per group and the
// presentation options. Every mutation recomputes the full layout and hands
// it to the registered redraw listeners.
package chart

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/admpub/log"

	"github.com/admpub/groupbar/pkg/layout"
)

type Group struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

type Category struct {
	Name   string     `json:"name"`
	Values []*float64 `json:"values"`
	Index  int        `json:"index"`
}

type Option func(*Model)

func WithLayout(cfg layout.Config) Option {
	return func(m *Model) { m.engine = layout.Engine{Config: cfg} }
}

func WithOptions(o Options) Option {
	return func(m *Model) { m.options = o }
}

func WithName(name string) Option {
	return func(m *Model) { m.name = name }
}

// WithTitle gives the model its own title, which takes precedence over
// Options.Title and is kept in its Dataset.
func WithTitle(title string) Option {
	return func(m *Model) { m.title = title }
}

// OnRedraw registers a listener called with the new layout after each
// mutation.
func OnRedraw(fn func(layout.Result)) Option {
	return func(m *Model) { m.listeners = append(m.listeners, fn) }
}

type Model struct {
	name       string
	title      string
	engine     layout.Engine
	options    Options
	groups     []string
	categories []layout.Category
	listeners  []func(layout.Result)
}

func New(options ...Option) *Model {
	m := &Model{
		name:    DefaultName,
		engine:  layout.NewEngine(),
		options: DefaultOptions(),
	}
	for _, o := range options {
		o(m)
	}
	return m
}

func (m *Model) Name() string {
	return m.name
}

// Options returns the presentation options, with the model's own title if
// it has one.
func (m *Model) Options() Options {
	o := m.options
	if len(m.title) > 0 {
		o.Title = m.title
	}
	return o
}

func (m *Model) LayoutConfig() layout.Config {
	return m.engine.Config
}

// OnRedraw registers a listener on an existing model.
func (m *Model) OnRedraw(fn func(layout.Result)) {
	m.listeners = append(m.listeners, fn)
}

// AddGroups appends groups in order. Categories that already exist get an
// absent value for every new group.
func (m *Model) AddGroups(names ...string) error {
	seen := map[string]struct{}{}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if len(name) == 0 {
			return fmt.Errorf(`%w: empty group name`, ErrInvalidInput)
		}
		if _, ok := seen[name]; ok || slices.Contains(m.groups, name) {
			return fmt.Errorf(`%w: group %q`, ErrDuplicate, name)
		}
		seen[name] = struct{}{}
	}
	for _, name := range names {
		m.groups = append(m.groups, strings.TrimSpace(name))
	}
	for i := range m.categories {
		m.categories[i].Values = append(m.categories[i].Values, make([]*float64, len(names))...)
	}
	m.redraw()
	return nil
}

// AddCategory appends a category. values must hold exactly one entry per
// group; nil entries are absent.
func (m *Model) AddCategory(name string, values []*float64) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return fmt.Errorf(`%w: empty category name`, ErrInvalidInput)
	}
	if m.categoryIndex(name) >= 0 {
		return fmt.Errorf(`%w: category %q`, ErrDuplicate, name)
	}
	category := layout.Category{Name: name, Values: copyValues(values)}
	if err := layout.Validate(m.groups, []layout.Category{category}); err != nil {
		return err
	}
	m.categories = append(m.categories, category)
	m.redraw()
	return nil
}

// SetValue sets or, with a nil value, clears one cell.
func (m *Model) SetValue(category string, group string, value *float64) error {
	ci := m.categoryIndex(category)
	if ci < 0 {
		return notFound(`category`, category, m.categoryNames())
	}
	gi := slices.Index(m.groups, strings.TrimSpace(group))
	if gi < 0 {
		return notFound(`group`, group, m.groups)
	}
	if value != nil {
		if err := layout.CheckValue(*value); err != nil {
			return err
		}
		value = layout.Float(*value)
	}
	m.categories[ci].Values[gi] = value
	m.redraw()
	return nil
}

func (m *Model) RemoveCategory(name string) error {
	ci := m.categoryIndex(name)
	if ci < 0 {
		return notFound(`category`, name, m.categoryNames())
	}
	m.categories = slices.Delete(m.categories, ci, ci+1)
	m.redraw()
	return nil
}

func (m *Model) Groups() []Group {
	groups := make([]Group, len(m.groups))
	for i, name := range m.groups {
		groups[i] = Group{Name: name, Index: i}
	}
	return groups
}

func (m *Model) GroupNames() []string {
	return slices.Clone(m.groups)
}

func (m *Model) Categories() []Category {
	categories := make([]Category, len(m.categories))
	for i, c := range m.categories {
		categories[i] = Category{Name: c.Name, Values: copyValues(c.Values), Index: i}
	}
	return categories
}

// Layout recomputes the whole chart geometry.
func (m *Model) Layout() layout.Result {
	return m.engine.Layout(m.groups, m.categories)
}

// Tooltip returns the label/value rows shown when the cursor is over bar.
func (m *Model) Tooltip(bar layout.Bar) [][2]string {
	var name string
	if bar.CategoryIndex >= 0 && bar.CategoryIndex < len(m.categories) {
		name = m.categories[bar.CategoryIndex].Name
	}
	return [][2]string{
		{m.options.TooltipCategoryLabel, name},
		{m.options.TooltipValueLabel, FormatValue(bar.Height)},
	}
}

func (m *Model) redraw() {
	if len(m.listeners) == 0 {
		return
	}
	result := m.Layout()
	log.Debugf(`[%s] redraw: %d groups, %d categories, %d bars`, m.name, len(m.groups), len(m.categories), len(result.Bars))
	for _, fn := range m.listeners {
		fn(result)
	}
}

func (m *Model) categoryIndex(name string) int {
	name = strings.TrimSpace(name)
	return slices.IndexFunc(m.categories, func(c layout.Category) bool {
		return c.Name == name
	})
}

func (m *Model) categoryNames() []string {
	names := make([]string, len(m.categories))
	for i, c := range m.categories {
		names[i] = c.Name
	}
	return names
}

func copyValues(values []*float64) []*float64 {
	r := make([]*float64, len(values))
	for i, v := range values {
		if v != nil {
			r[i] = layout.Float(*v)
		}
	}
	return r
}

// FormatValue renders a bar value without trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
