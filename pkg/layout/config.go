package layout

const (
	DefaultBarThickness = 10.0
	// DefaultBarGapRatio is the bar gap as a fraction of the bar thickness.
	DefaultBarGapRatio = 0.25
	// DefaultGroupGapRatio is the group gap as a multiple of the bar gap.
	DefaultGroupGapRatio = 3.0
)

// Config holds every recognized layout option.
type Config struct {
	BarThickness float64 `json:"barThickness"`
	BarGap       float64 `json:"barGap"`
	GroupGap     float64 `json:"groupGap"`
}

type Option func(*options)

type options struct {
	barThickness *float64
	barGap       *float64
	groupGap     *float64
}

func WithBarThickness(v float64) Option {
	return func(o *options) { o.barThickness = &v }
}

func WithBarGap(v float64) Option {
	return func(o *options) { o.barGap = &v }
}

func WithGroupGap(v float64) Option {
	return func(o *options) { o.groupGap = &v }
}

// NewConfig builds a Config. Unset gaps are derived from the values before
// them: BarGap from BarThickness, GroupGap from BarGap.
func NewConfig(opts ...Option) Config {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	c := Config{BarThickness: DefaultBarThickness}
	if o.barThickness != nil {
		c.BarThickness = *o.barThickness
	}
	c.BarGap = c.BarThickness * DefaultBarGapRatio
	if o.barGap != nil {
		c.BarGap = *o.barGap
	}
	c.GroupGap = c.BarGap * DefaultGroupGapRatio
	if o.groupGap != nil {
		c.GroupGap = *o.groupGap
	}
	return c
}

func DefaultConfig() Config {
	return NewConfig()
}

// Step is the cursor advance for one bar.
func (c Config) Step() float64 {
	return c.BarThickness + c.BarGap
}

// AxisStart is the left edge of the primary axis.
func (c Config) AxisStart() float64 {
	return -(c.GroupGap + c.BarGap)
}
