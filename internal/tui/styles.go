// Package tui implements the terminal storefront using Bubble Tea.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - cinema popcorn tub
var (
	colorButter    = lipgloss.Color("#FFE9A8")
	colorKernel    = lipgloss.Color("#F2C14E")
	colorStripe    = lipgloss.Color("#D7263D")
	colorCaramel   = lipgloss.Color("#C98B3C")
	colorPaper     = lipgloss.Color("#FAF7F0")
	colorHighlight = lipgloss.Color("#FF8C42")
	colorSuccess   = lipgloss.Color("#4CAF50")
	colorError     = lipgloss.Color("#F44336")
	colorMuted     = lipgloss.Color("#9E9E9E")
)

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	ListTitle lipgloss.Style

	// Product page
	ProductName        lipgloss.Style
	ProductDescription lipgloss.Style
	Price              lipgloss.Style
	Image              lipgloss.Style
	ImageFading        lipgloss.Style
	Thumbnail          lipgloss.Style
	ThumbnailActive    lipgloss.Style
	Label              lipgloss.Style
	LabelFocused       lipgloss.Style
	Option             lipgloss.Style
	OptionChosen       lipgloss.Style

	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Box       lipgloss.Style
	HelpBar   lipgloss.Style
}

// DefaultStyles returns the default TUI styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorStripe).
			MarginBottom(1).
			Padding(0, 1),

		HeaderTitle: lipgloss.NewStyle().
			Foreground(colorKernel).
			Bold(true),

		ListTitle: lipgloss.NewStyle().
			Foreground(colorPaper).
			Background(colorStripe).
			Bold(true).
			Padding(0, 1),

		ProductName: lipgloss.NewStyle().
			Foreground(colorKernel).
			Bold(true),

		ProductDescription: lipgloss.NewStyle().
			Foreground(colorButter).
			MarginTop(1).
			MarginBottom(1),

		Price: lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true),

		Image: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorCaramel).
			Foreground(colorButter).
			Width(44).
			Padding(1, 2),

		ImageFading: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Foreground(colorMuted).
			Width(44).
			Padding(1, 2),

		Thumbnail: lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1),

		ThumbnailActive: lipgloss.NewStyle().
			Foreground(colorPaper).
			Background(colorCaramel).
			Bold(true).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(10),

		LabelFocused: lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Width(10),

		Option: lipgloss.NewStyle().
			Foreground(colorButter),

		OptionChosen: lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true),

		Subtle: lipgloss.NewStyle().
			Foreground(colorMuted),

		Highlight: lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(colorSuccess),

		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorStripe).
			Padding(1, 2),

		HelpBar: lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1),
	}
}
