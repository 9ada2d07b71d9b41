package models

// Series is one line drawn in a subplot.
type Series struct {
	// Name is the legend label.
	Name string `json:"name"`
	// X holds the x values (days).
	X []float64 `json:"x"`
	// Y holds the y values, same length as X.
	Y []float64 `json:"y"`
	// Color is a named color such as "red" or "blue".
	Color string `json:"color"`
}

// Subplot is a single set of axes.
type Subplot struct {
	// Title is the subplot title.
	Title string `json:"title"`
	// XLabel is the x-axis label.
	XLabel string `json:"x_label"`
	// YLabel is the y-axis label.
	YLabel string `json:"y_label"`
	// Legend reports whether a legend is drawn.
	Legend bool `json:"legend"`
	// Grid reports whether grid lines are drawn.
	Grid bool `json:"grid"`
	// Series are drawn in order.
	Series []Series `json:"series"`
}

// ChartSpec is a declarative description of what to render.
// Subplots are stacked vertically, top first.
type ChartSpec struct {
	// Title names the whole figure; backends may use it as a window or sheet name.
	Title string `json:"title"`
	// Sources lists the source file names that fed the spec, in input order.
	Sources []string `json:"sources"`
	// Subplots contains one or two subplot definitions.
	Subplots []Subplot `json:"subplots"`
}
