package terminal

import "github.com/charmbracelet/lipgloss"

var (
	colorBright  = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorPackage = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"} // purple
	colorSection = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"} // blue
	colorAccent  = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"} // emerald
)

var (
	styleTitle = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleMeta  = lipgloss.NewStyle().Foreground(colorDim)
	styleClass = lipgloss.NewStyle().Foreground(colorAccent)

	styleStat      = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleStatLabel = lipgloss.NewStyle().Foreground(colorDim)

	styleHeading     = lipgloss.NewStyle().Foreground(colorDim).Bold(true)
	stylePackageName = lipgloss.NewStyle().Foreground(colorPackage).Bold(true)
	stylePackageOpts = lipgloss.NewStyle().Foreground(colorDim)
	styleSection     = lipgloss.NewStyle().Foreground(colorSection)

	styleSeparator = lipgloss.NewStyle().Foreground(colorDim)
)
