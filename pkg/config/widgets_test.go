package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDashboardDecodesWidgetTypes(t *testing.T) {
	t.Parallel()

	doc := `
widgets:
  - type: terms
    quantity: results.material.structural_type
    scale: linear
    layout:
      lg: {h: 6, w: 6, x: 0, y: 0}
  - type: histogram
    quantity: results.properties.geometry_optimization.final_energy_difference
    scale: 1/4
    nbins: 30
    layout:
      lg: {h: 3, w: 8, x: 6, y: 0}
  - type: periodictable
    quantity: results.material.elements
    scale: linear
    layout:
      lg: {h: 6, w: 12, x: 0, y: 6}
  - type: scatterplot
    x: results.material.n_elements
    y:
      quantity: results.properties.electronic.band_gap
      unit: eV
    layout:
      lg: {h: 6, w: 6, x: 12, y: 0}
`
	var dashboard Dashboard
	require.NoError(t, yaml.Unmarshal([]byte(doc), &dashboard))
	require.Len(t, dashboard.Widgets, 4)

	terms, ok := dashboard.Widgets[0].(*WidgetTerms)
	require.True(t, ok)
	assert.Equal(t, WidgetTypeTerms, terms.WidgetType())
	assert.Equal(t, "results.material.structural_type", terms.Quantity)
	assert.True(t, terms.ShowInput, "the input field should be shown unless disabled")
	assert.Equal(t, 6, terms.Layout[BreakpointLG].H)

	histogram, ok := dashboard.Widgets[1].(*WidgetHistogram)
	require.True(t, ok)
	assert.Equal(t, ScaleQuarter, histogram.Scale)
	assert.Equal(t, 30, histogram.NBins)
	assert.True(t, histogram.Autorange)

	_, ok = dashboard.Widgets[2].(*WidgetPeriodicTable)
	require.True(t, ok)

	scatter, ok := dashboard.Widgets[3].(*WidgetScatterPlot)
	require.True(t, ok)
	assert.Equal(t, "results.material.n_elements", scatter.X.Quantity,
		"a plain string axis should decode into the quantity path")
	assert.Equal(t, "results.properties.electronic.band_gap", scatter.Y.Quantity)
	assert.Equal(t, "eV", scatter.Y.Unit)
	assert.Equal(t, 1000, scatter.Size, "the entry cap should default to 1000")
	assert.True(t, scatter.Autorange)
}

func TestDashboardRejectsBadWidgets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		expected string
		reason   string
	}{
		{
			name:     "missing type",
			doc:      "widgets:\n  - quantity: results.material.elements\n",
			expected: "missing the type field",
			reason:   "widgets without a type discriminator cannot be decoded",
		},
		{
			name:     "unknown type",
			doc:      "widgets:\n  - type: piechart\n",
			expected: `unknown widget type "piechart"`,
			reason:   "unknown widget types should fail instead of being dropped",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var dashboard Dashboard
			err := yaml.Unmarshal([]byte(tt.doc), &dashboard)
			require.Error(t, err, tt.reason)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestWidgetScatterPlotDeprecatedColor(t *testing.T) {
	t.Parallel()

	doc := `
type: scatterplot
x: results.material.n_elements
y: results.properties.mechanical.bulk_modulus
color: results.material.chemical_formula_hill
layout:
  lg: {h: 6, w: 6, x: 0, y: 0}
`
	var scatter WidgetScatterPlot
	require.NoError(t, yaml.Unmarshal([]byte(doc), &scatter))

	require.NotNil(t, scatter.Markers, "the deprecated color quantity should move into the markers")
	require.NotNil(t, scatter.Markers.Color)
	assert.Equal(t, "results.material.chemical_formula_hill", scatter.Markers.Color.Quantity)
}

func TestWidgetScatterPlotMarkersTakePrecedence(t *testing.T) {
	t.Parallel()

	doc := `
type: scatterplot
x: a
y: b
markers:
  color:
    quantity: results.material.elements
    title: Elements
size: 500
autorange: false
`
	var scatter WidgetScatterPlot
	require.NoError(t, yaml.Unmarshal([]byte(doc), &scatter))

	require.NotNil(t, scatter.Markers)
	assert.Equal(t, "results.material.elements", scatter.Markers.Color.Quantity)
	assert.Equal(t, "Elements", scatter.Markers.Color.Title)
	assert.Equal(t, 500, scatter.Size)
	assert.False(t, scatter.Autorange, "explicit values should override the defaults")
}

func TestWidgetTermsShowInputDisabled(t *testing.T) {
	t.Parallel()

	doc := "type: terms\nquantity: q\nshowinput: false\n"
	var terms WidgetTerms
	require.NoError(t, yaml.Unmarshal([]byte(doc), &terms))
	assert.False(t, terms.ShowInput)
}
