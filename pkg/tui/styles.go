package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/codecraft/codecraft-terminal/pkg/models"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for focused elements
	ColorInactive = "240" // Gray for unfocused borders
	ColorSelected = "236" // Dark gray selection background
	ColorNormal   = "245"
	ColorDim      = "241"
	ColorWarning  = "214" // Orange for headers and warnings
	ColorDanger   = "196"
	ColorSuccess  = "28"
	ColorWhite    = "255"
	ColorStatus   = "62"
)

// File type accents, shown next to file names in tabs and the tree.
var fileTypeColors = map[models.FileType]string{
	models.FileTypeHTML: "208",
	models.FileTypeCSS:  "33",
	models.FileTypeJS:   "220",
}

var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	// Current item of the focused level
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	// Current item of an unfocused level
	CurrentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning))

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive)).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorStatus)).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorDanger)).
				Foreground(lipgloss.Color(ColorWhite)).
				Bold(true).
				Padding(0, 1)
)

// GetActiveHeaderStyle colors a section header by focus.
func GetActiveHeaderStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}

func borderStyle(isActive bool) lipgloss.Style {
	if isActive {
		return ActiveBorderStyle
	}
	return InactiveBorderStyle
}

func fileTypeBadge(t models.FileType) string {
	color, ok := fileTypeColors[t]
	if !ok {
		color = ColorNormal
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(t))
}

// formatConfirmOptions renders the [y]/[n] hint. Destructive prompts show
// yes in red and no in green.
func formatConfirmOptions(destructive bool) string {
	yes := lipgloss.NewStyle().Bold(true)
	no := lipgloss.NewStyle().Bold(true)
	if destructive {
		yes = yes.Foreground(lipgloss.Color(ColorDanger))
		no = no.Foreground(lipgloss.Color(ColorSuccess))
	} else {
		yes = yes.Foreground(lipgloss.Color(ColorSuccess))
		no = no.Foreground(lipgloss.Color(ColorNormal))
	}
	return yes.Render("[y]") + "/" + no.Render("[n]")
}
