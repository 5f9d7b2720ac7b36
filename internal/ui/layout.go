package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which only core columns are shown.
	LayoutCompactWidth = 100

	// LayoutDetailWidth is the minimum width to put the detail pane beside
	// the table instead of below it.
	LayoutDetailWidth = 140
)

// Rows reserved around the table: header, command bar, status line, footer.
const chromeRows = 5

// City mpg bands used for coloring.
const (
	efficientCityMPG = 28
	thirstyCityMPG   = 20
)
