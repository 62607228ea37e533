package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

var (
	riskLowBadge = lipgloss.NewStyle().
			Foreground(RiskLowColor).
			Bold(true)

	riskMediumBadge = lipgloss.NewStyle().
			Foreground(RiskMediumColor).
			Bold(true)

	riskHighBadge = lipgloss.NewStyle().
			Foreground(RiskHighColor).
			Bold(true)
)

// RiskBadge renders the uppercase risk tag in its color, e.g. "[HIGH]".
func RiskBadge(risk types.RiskLevel) string {
	tag := "[" + strings.ToUpper(string(risk)) + "]"
	switch risk {
	case types.RiskLow:
		return riskLowBadge.Render(tag)
	case types.RiskMedium:
		return riskMediumBadge.Render(tag)
	case types.RiskHigh:
		return riskHighBadge.Render(tag)
	}
	return tag
}
