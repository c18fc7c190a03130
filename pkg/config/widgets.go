package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Widget type discriminators.
const (
	WidgetTypeTerms         = "terms"
	WidgetTypeHistogram     = "histogram"
	WidgetTypeScatterPlot   = "scatterplot"
	WidgetTypePeriodicTable = "periodictable"
)

// Statistics scaling options.
const (
	ScaleLinear  = "linear"
	ScaleHalf    = "1/2"
	ScaleQuarter = "1/4"
	ScaleEighth  = "1/8"
)

// Layout breakpoints.
const (
	BreakpointSM  = "sm"
	BreakpointMD  = "md"
	BreakpointLG  = "lg"
	BreakpointXL  = "xl"
	BreakpointXXL = "xxl"
)

// Layout defines widget size and grid positioning for one breakpoint.
type Layout struct {
	// H is the height in grid units.
	H int `yaml:"h"`

	// W is the width in grid units.
	W int `yaml:"w"`

	// X is the horizontal start location in the grid.
	X int `yaml:"x"`

	// Y is the vertical start location in the grid.
	Y int `yaml:"y"`

	// MinH is the minimum height in grid units.
	MinH int `yaml:"minH,omitempty"`

	// MinW is the minimum width in grid units.
	MinW int `yaml:"minW,omitempty"`
}

// Axis configures a plot axis: the targeted quantity plus display
// options.
type Axis struct {
	// Title is a custom title to show for the axis.
	Title string `yaml:"title,omitempty"`

	// Unit is a custom unit used for displaying the values.
	Unit string `yaml:"unit,omitempty"`

	// Quantity is the path of the targeted quantity.
	Quantity string `yaml:"quantity"`
}

// UnmarshalYAML also accepts a plain quantity path for backwards
// compatibility with configurations that predate axis objects.
func (a *Axis) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&a.Quantity)
	}
	type raw Axis
	var r raw
	if err := node.Decode(&r); err != nil {
		return err
	}
	*a = Axis(r)
	return nil
}

// Markers configures plot markers.
type Markers struct {
	// Color configures the information source and display options for
	// the marker colors.
	Color *Axis `yaml:"color,omitempty"`
}

// Widget is a dashboard widget of any type.
type Widget interface {
	// WidgetType returns the type discriminator.
	WidgetType() string
}

// WidgetBase holds the settings common to all widgets.
type WidgetBase struct {
	// Type identifies the widget type.
	Type string `yaml:"type"`

	// Layout defines size and grid position per breakpoint (sm, md, lg,
	// xl, xxl).
	Layout map[string]Layout `yaml:"layout"`
}

// WidgetType implements Widget.
func (w *WidgetBase) WidgetType() string {
	return w.Type
}

// WidgetTerms is the terms statistics widget.
type WidgetTerms struct {
	WidgetBase `yaml:",inline"`

	// Quantity is the targeted quantity.
	Quantity string `yaml:"quantity"`

	// Scale sets the statistics scaling.
	Scale string `yaml:"scale"`

	// ShowInput shows the text input field.
	ShowInput bool `yaml:"showinput"`
}

// UnmarshalYAML applies the widget defaults before decoding.
func (w *WidgetTerms) UnmarshalYAML(node *yaml.Node) error {
	type raw WidgetTerms
	r := raw{ShowInput: true}
	if err := node.Decode(&r); err != nil {
		return err
	}
	*w = WidgetTerms(r)
	return nil
}

// WidgetHistogram is the histogram widget.
type WidgetHistogram struct {
	WidgetBase `yaml:",inline"`

	// Quantity is the targeted quantity.
	Quantity string `yaml:"quantity"`

	// Scale sets the statistics scaling.
	Scale string `yaml:"scale"`

	// Autorange sets the range from the data limits.
	Autorange bool `yaml:"autorange"`

	// ShowInput shows input fields for the minimum and maximum value.
	ShowInput bool `yaml:"showinput"`

	// NBins caps the number of histogram bins. The actual number may be
	// smaller if fewer data items are available.
	NBins int `yaml:"nbins"`
}

// UnmarshalYAML applies the widget defaults before decoding.
func (w *WidgetHistogram) UnmarshalYAML(node *yaml.Node) error {
	type raw WidgetHistogram
	r := raw{Autorange: true, ShowInput: true}
	if err := node.Decode(&r); err != nil {
		return err
	}
	*w = WidgetHistogram(r)
	return nil
}

// WidgetPeriodicTable is the periodic table widget.
type WidgetPeriodicTable struct {
	WidgetBase `yaml:",inline"`

	// Quantity is the targeted quantity.
	Quantity string `yaml:"quantity"`

	// Scale sets the statistics scaling.
	Scale string `yaml:"scale"`
}

// WidgetScatterPlot is the scatter plot widget.
type WidgetScatterPlot struct {
	WidgetBase `yaml:",inline"`

	// X configures the x-axis.
	X Axis `yaml:"x"`

	// Y configures the y-axis.
	Y Axis `yaml:"y"`

	// Markers configures the plot markers.
	Markers *Markers `yaml:"markers,omitempty"`

	// Size caps the number of entries fetched for the plot.
	Size int `yaml:"size"`

	// Autorange sets the range from the data limits.
	Autorange bool `yaml:"autorange"`
}

// UnmarshalYAML applies the widget defaults and normalizes the
// deprecated input shapes: a plain-string x or y becomes an axis
// object, and the deprecated top-level color quantity moves to
// markers.color.quantity.
func (w *WidgetScatterPlot) UnmarshalYAML(node *yaml.Node) error {
	type raw WidgetScatterPlot
	r := raw{Size: 1000, Autorange: true}
	if err := node.Decode(&r); err != nil {
		return err
	}

	// The deprecated color quantity is not part of the widget struct
	// anymore; pick it up separately and fold it into the markers.
	var deprecated struct {
		Color string `yaml:"color"`
	}
	if err := node.Decode(&deprecated); err != nil {
		return err
	}
	if deprecated.Color != "" {
		r.Markers = &Markers{Color: &Axis{Quantity: deprecated.Color}}
	}

	*w = WidgetScatterPlot(r)
	return nil
}

// Dashboard is a dashboard configuration: the list of widgets it
// contains.
type Dashboard struct {
	// Widgets are the widgets contained in the dashboard.
	Widgets []Widget `yaml:"widgets"`
}

// UnmarshalYAML decodes each widget into its concrete type based on the
// type discriminator.
func (d *Dashboard) UnmarshalYAML(node *yaml.Node) error {
	var aux struct {
		Widgets []yaml.Node `yaml:"widgets"`
	}
	if err := node.Decode(&aux); err != nil {
		return err
	}

	d.Widgets = make([]Widget, 0, len(aux.Widgets))
	for i := range aux.Widgets {
		widgetNode := &aux.Widgets[i]
		widget, err := decodeWidget(widgetNode)
		if err != nil {
			return err
		}
		d.Widgets = append(d.Widgets, widget)
	}
	return nil
}

// decodeWidget dispatches a widget node on its type field.
func decodeWidget(node *yaml.Node) (Widget, error) {
	var discriminator struct {
		Type string `yaml:"type"`
	}
	if err := node.Decode(&discriminator); err != nil {
		return nil, err
	}

	switch discriminator.Type {
	case WidgetTypeTerms:
		var w WidgetTerms
		if err := node.Decode(&w); err != nil {
			return nil, err
		}
		return &w, nil
	case WidgetTypeHistogram:
		var w WidgetHistogram
		if err := node.Decode(&w); err != nil {
			return nil, err
		}
		return &w, nil
	case WidgetTypeScatterPlot:
		var w WidgetScatterPlot
		if err := node.Decode(&w); err != nil {
			return nil, err
		}
		return &w, nil
	case WidgetTypePeriodicTable:
		var w WidgetPeriodicTable
		if err := node.Decode(&w); err != nil {
			return nil, err
		}
		return &w, nil
	case "":
		return nil, fmt.Errorf("line %d: widget is missing the type field", node.Line)
	default:
		return nil, fmt.Errorf("line %d: unknown widget type %q", node.Line, discriminator.Type)
	}
}
