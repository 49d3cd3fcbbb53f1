// Package theme centralizes Lip Gloss styles for the terminal dashboard.
package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme groups the styles used across the dashboard.
type Theme struct {
	Card   CardTheme
	Chart  ChartTheme
	Banner BannerTheme
}

// CardTheme styles the framed summary cards.
type CardTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Value lipgloss.Style
	Label lipgloss.Style
}

// ChartTheme styles text bar charts.
type ChartTheme struct {
	Label lipgloss.Style
	Bar   lipgloss.Style
	Count lipgloss.Style
	Empty lipgloss.Style
}

// BannerTheme styles one-line notices such as goal progress or warnings.
type BannerTheme struct {
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	value := lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	return Theme{
		Card: CardTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Value: value,
			Label: muted,
		},
		Chart: ChartTheme{
			Label: lipgloss.NewStyle().Width(14),
			Bar:   lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
			Count: muted,
			Empty: muted.Italic(true),
		},
		Banner: BannerTheme{
			Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
	}
}

// Plain returns a theme without colours or borders, for non-terminal output.
func Plain() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Card:   CardTheme{Frame: plain, Title: plain, Value: plain, Label: plain},
		Chart:  ChartTheme{Label: plain.Width(14), Bar: plain, Count: plain, Empty: plain},
		Banner: BannerTheme{Info: plain, Success: plain, Warning: plain},
	}
}
