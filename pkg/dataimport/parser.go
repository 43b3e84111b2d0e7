// Package dataimport fills a chart model from text files, optionally
// following them as they grow, and from Excel workbooks.
//
// The text format has one statement per line:
//
//	# comment
//	groups: Finland, Germany, UK
//	Engineers: 48, 27, 24
//	Sales: 19, , 14
//
// An empty field is an absent value, as are omitted trailing fields. A
// category line for a category that exists already replaces its values.
package dataimport

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/admpub/groupbar/pkg/chart"
	"github.com/admpub/groupbar/pkg/layout"
)

const GroupsKey = `groups`

// Parser applies lines of the text format to a model.
type Parser struct {
	m    *chart.Model
	line int
}

func NewParser(m *chart.Model) *Parser {
	return &Parser{m: m}
}

// Use switches the model further lines are applied to. The line count
// carries on.
func (p *Parser) Use(m *chart.Model) {
	p.m = m
}

// Parse applies one line. Blank lines and comments are ignored.
func (p *Parser) Parse(line string) error {
	p.line++
	line = strings.TrimSpace(line)
	if len(line) == 0 || strings.HasPrefix(line, `#`) {
		return nil
	}
	key, rest, ok := strings.Cut(line, `:`)
	if !ok {
		return fmt.Errorf(`%w: line %d: missing ":" in %q`, chart.ErrInvalidInput, p.line, line)
	}
	key = strings.TrimSpace(key)
	if strings.EqualFold(key, GroupsKey) {
		var names []string
		for _, name := range strings.Split(rest, `,`) {
			if name = strings.TrimSpace(name); len(name) > 0 {
				names = append(names, name)
			}
		}
		return p.wrap(p.m.AddGroups(names...))
	}
	values, err := ParseValues(rest)
	if err != nil {
		return p.wrap(err)
	}
	return p.wrap(p.setCategory(key, values))
}

func (p *Parser) setCategory(name string, values []*float64) error {
	groups := p.m.GroupNames()
	if len(values) > len(groups) {
		return fmt.Errorf(`%w: category %q has %d values for %d groups`, chart.ErrInvalidInput, name, len(values), len(groups))
	}
	padded := make([]*float64, len(groups))
	copy(padded, values)
	err := p.m.AddCategory(name, padded)
	if !errors.Is(err, chart.ErrDuplicate) {
		return err
	}
	for i, group := range groups {
		if err = p.m.SetValue(name, group, padded[i]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(`line %d: %w`, p.line, err)
}

// ParseValues parses a comma separated list of numbers. Empty fields are
// absent values.
func ParseValues(s string) ([]*float64, error) {
	if len(strings.TrimSpace(s)) == 0 {
		return nil, nil
	}
	fields := strings.Split(s, `,`)
	values := make([]*float64, len(fields))
	for i, field := range fields {
		v, err := ParseValue(field)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// ParseValue parses one cell; an empty cell is absent. NaN and infinities
// are rejected.
func ParseValue(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf(`%w: value %q`, chart.ErrInvalidInput, s)
	}
	if err = layout.CheckValue(v); err != nil {
		return nil, err
	}
	return &v, nil
}
