// Package export writes a chart model out as a render plan in JSON or as an
// Excel workbook with a native column chart.
package export

import (
	"encoding/json"
	"io"

	"github.com/admpub/groupbar/pkg/chart"
	"github.com/admpub/groupbar/pkg/layout"
)

// Plan is everything a renderer needs to draw the chart.
type Plan struct {
	Name       string           `json:"name"`
	Options    chart.Options    `json:"options"`
	Config     layout.Config    `json:"config"`
	Groups     []chart.Group    `json:"groups"`
	Categories []chart.Category `json:"categories"`
	Layout     layout.Result    `json:"layout"`
}

func NewPlan(m *chart.Model) Plan {
	return Plan{
		Name:       m.Name(),
		Options:    m.Options(),
		Config:     m.LayoutConfig(),
		Groups:     m.Groups(),
		Categories: m.Categories(),
		Layout:     m.Layout(),
	}
}

func JSON(w io.Writer, m *chart.Model, pretty bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if pretty {
		encoder.SetIndent(``, `  `)
	}
	return encoder.Encode(NewPlan(m))
}
