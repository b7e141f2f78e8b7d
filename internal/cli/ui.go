package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/induwarauthsara/folio/pkg/pipeline"
)

// =============================================================================
// Palette
// =============================================================================

// Terminal colors follow the page theme in templates/app.css.
var (
	colorAccent = lipgloss.Color("#7c5cff") // --accent
	colorCyan   = lipgloss.Color("#2ec5ff") // --accent-2
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("#e6e9f2") // --text
	colorGray   = lipgloss.Color("#9aa3b8") // --muted
	colorDim    = lipgloss.Color("240")
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle renders the owner name and command headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleLink renders URLs and email addresses.
	StyleLink = lipgloss.NewStyle().Foreground(colorCyan).Underline(true)

	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue renders paths and config values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber renders counts, sizes and periods.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning renders rebuild and cache warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)

	styleCached  = lipgloss.NewStyle().Foreground(colorGreen)
	styleFresh   = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(10)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status lines
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printKeyValue prints a labelled value, as in the serve banner.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Build output
// =============================================================================

// printFile prints a written file with its size. Missing files print
// without a size.
func printFile(path string) {
	line := "  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path)
	if info, err := os.Stat(path); err == nil {
		line += " " + StyleDim.Render(formatBytes(info.Size()))
	}
	fmt.Println(line)
}

// printStats prints a one-line build summary.
func printStats(r *pipeline.Result) {
	fmt.Println("  " + statsLine(r))
}

func statsLine(r *pipeline.Result) string {
	parts := []string{
		fmt.Sprintf("%d sections", r.Stats.Sections),
		fmt.Sprintf("%d units", r.Stats.Units),
		formatBytes(int64(r.Stats.Bytes)),
	}
	if d := r.Stats.ComposeTime + r.Stats.RenderTime; d > 0 {
		parts = append(parts, d.Round(time.Microsecond).String())
	}

	status := styleFresh.Render("fresh")
	if r.CacheInfo.RenderHit {
		status = styleCached.Render("cached")
	}

	dim := make([]string, len(parts))
	for i, p := range parts {
		dim[i] = StyleDim.Render(p)
	}
	return strings.Join(append(dim, status), StyleDim.Render(" · "))
}

// printNextStep prints a suggested follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
