package config

import (
	"github.com/spectra-lab/spectra/pkg/options"
	"github.com/spectra-lab/spectra/pkg/units"
)

// Theme holds site theme and identity settings.
type Theme struct {
	// Title is the site name shown in the browser tab.
	Title string `yaml:"title"`
}

// ToolsUI configures the remote-tools hub parts of the UI.
type ToolsUI struct {
	// Enabled shows the remote tools in the UI.
	Enabled bool `yaml:"enabled"`
}

// Card defines a card shown on the entry overview page.
type Card struct {
	// Error is the message shown when the card fails to render.
	Error string `yaml:"error"`
}

// Entry controls the entry visualization.
type Entry struct {
	// Cards declares the overview page cards and controls their
	// visibility.
	Cards options.Set[Card] `yaml:"cards"`
}

// Pagination holds default result pagination.
type Pagination struct {
	// OrderBy is the field used for sorting.
	OrderBy string `yaml:"order_by"`

	// Order is the sorting order.
	Order string `yaml:"order"`

	// PageSize is the number of results on each page.
	PageSize int `yaml:"page_size"`
}

// Number display modes for Format.
const (
	ModeStandard   = "standard"
	ModeScientific = "scientific"
	ModeSeparators = "separators"
)

// Format holds value formatting options.
type Format struct {
	// Decimals is the number of decimals to show for numbers.
	Decimals int `yaml:"decimals"`

	// Mode is the display mode for numbers.
	Mode string `yaml:"mode"`
}

// Column alignments.
const (
	AlignLeft   = "left"
	AlignRight  = "right"
	AlignCenter = "center"
)

// Column configures a column shown in the search results. The option
// key must correspond to a quantity path that exists in the metadata.
type Column struct {
	// Label is shown in the header. Defaults to the quantity name.
	Label string `yaml:"label,omitempty"`

	// Align sets the alignment in the table.
	Align string `yaml:"align,omitempty"`

	// Unit to convert to when displaying. If not given the value is
	// displayed in the default unit of the active unit system.
	Unit string `yaml:"unit,omitempty"`

	// Format controls the formatting of the values.
	Format *Format `yaml:"format,omitempty"`
}

// Rows controls the display of entry rows in the results table.
type Rows struct {
	Actions   RowActions   `yaml:"actions"`
	Details   RowDetails   `yaml:"details"`
	Selection RowSelection `yaml:"selection"`
}

// RowActions controls the row actions shown at the end of each row.
type RowActions struct {
	Enabled bool `yaml:"enabled"`
}

// RowDetails controls the details shown upon pressing a row.
type RowDetails struct {
	Enabled bool `yaml:"enabled"`
}

// RowSelection controls whether rows can be selected for bulk actions.
type RowSelection struct {
	Enabled bool `yaml:"enabled"`
}

// FilterMenuActionCheckbox is the only filter menu action type.
const FilterMenuActionCheckbox = "checkbox"

// FilterMenuAction defines an action shown in a filter menu.
type FilterMenuAction struct {
	// Type is the action type.
	Type string `yaml:"type"`

	// Label to show.
	Label string `yaml:"label"`

	// Quantity targeted by the action.
	Quantity string `yaml:"quantity,omitempty"`
}

// Filter menu widths.
const (
	FilterMenuSizeS  = "s"
	FilterMenuSizeM  = "m"
	FilterMenuSizeL  = "l"
	FilterMenuSizeXL = "xl"
)

// FilterMenu defines the layout and functionality of one filter menu.
type FilterMenu struct {
	// Label to show in the UI.
	Label string `yaml:"label,omitempty"`

	// Level is the indentation level of the menu.
	Level int `yaml:"level"`

	// Size is the width of the menu.
	Size string `yaml:"size,omitempty"`

	// Actions declares the menu actions and controls their
	// availability.
	Actions options.Set[FilterMenuAction] `yaml:"actions,omitempty"`
}

// SearchSyntaxes controls the availability of search syntaxes. These
// determine how raw user input, e.g. in the search bar, is parsed into
// queries. Only exclusion is supported; by default existence, equality,
// bounded and half-bounded ranges and free text search are available.
type SearchSyntaxes struct {
	// Exclude lists the disabled syntaxes.
	Exclude []string `yaml:"exclude,omitempty"`
}

// App resources.
const (
	ResourceEntries   = "entries"
	ResourceMaterials = "materials"
)

// App defines the layout and functionality of a search app.
type App struct {
	// Label is the name of the app.
	Label string `yaml:"label"`

	// Path is used in the browser address bar.
	Path string `yaml:"path"`

	// Resource is the targeted resource.
	Resource string `yaml:"resource"`

	// Breadcrumb is the name shown in the breadcrumb, the label by
	// default.
	Breadcrumb string `yaml:"breadcrumb,omitempty"`

	// Category organizes apps in the explore menu.
	Category string `yaml:"category"`

	// Description is a short description of the app.
	Description string `yaml:"description,omitempty"`

	// Readme is a longer, possibly markdown, description.
	Readme string `yaml:"readme,omitempty"`

	// Pagination is the default result pagination.
	Pagination Pagination `yaml:"pagination"`

	// Columns declares the result table columns, their availability and
	// the default selection.
	Columns options.Multi[Column] `yaml:"columns"`

	// Rows controls the entry rows of the results table.
	Rows Rows `yaml:"rows"`

	// FilterMenus declares the filter menus on the left side of the
	// screen.
	FilterMenus options.Set[FilterMenu] `yaml:"filter_menus"`

	// Filters controls which metadata can be queried in this app. The
	// lists support glob syntax to target whole sections, e.g.
	// "results.*".
	Filters options.Glob `yaml:"filters,omitempty"`

	// Dashboard is the default dashboard layout.
	Dashboard *Dashboard `yaml:"dashboard,omitempty"`

	// FiltersLocked is a fixed query applied for this search context.
	// It is always active and not shown to the user by default.
	FiltersLocked map[string]any `yaml:"filters_locked,omitempty"`

	// SearchSyntaxes controls which search syntaxes are available.
	SearchSyntaxes SearchSyntaxes `yaml:"search_syntaxes,omitempty"`
}

// UI customizes the user interface.
type UI struct {
	// AppBase is the base url of the app. Set automatically from the
	// deployment configuration.
	AppBase string `yaml:"app_base,omitempty"`

	// ToolsBase is the base url of the remote tools hub.
	ToolsBase string `yaml:"tools_base,omitempty"`

	// Theme controls the site theme and identity.
	Theme Theme `yaml:"theme"`

	// UnitSystems controls the available unit systems and the default
	// selection.
	UnitSystems options.Single[units.System] `yaml:"unit_systems"`

	// Entry controls the entry visualization.
	Entry Entry `yaml:"entry"`

	// Apps declares the search apps and controls their availability.
	Apps options.Set[App] `yaml:"apps"`

	// Tools configures the remote-tools parts of the UI.
	Tools ToolsUI `yaml:"tools"`

	// ExampleUploads controls the available example uploads.
	ExampleUploads options.Base `yaml:"example_uploads,omitempty"`
}
