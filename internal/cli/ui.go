package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Styles
// =============================================================================

var (
	// Icon styles
	styleIconSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))  // green
	styleIconError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red
	styleIconWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // orange
	styleIconInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))  // blue
	styleIconSpinner = lipgloss.NewStyle().Foreground(lipgloss.Color("205")) // pink

	// Text styles
	styleBold   = lipgloss.NewStyle().Bold(true)
	styleDim    = lipgloss.NewStyle().Faint(true)
	styleFile   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styleKey    = lipgloss.NewStyle().Faint(true).Width(12)
	styleHeader = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Icons
const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Print Helpers
// =============================================================================

func printSuccess(msg string) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

func printError(msg string) {
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

func printWarning(msg string) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + msg)
}

func printInfo(msg string) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

func printDetail(msg string) {
	fmt.Println("  " + styleDim.Render(msg))
}

func printFile(path string) {
	fmt.Println("  " + styleFile.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println("  " + styleKey.Render(key) + value)
}

func printHeader(msg string) {
	fmt.Println(styleHeader.Render(msg))
}

func printNextStep(msg string) {
	fmt.Println(styleDim.Render(iconArrow+" Next: ") + msg)
}

func printNewline() {
	fmt.Println()
}
