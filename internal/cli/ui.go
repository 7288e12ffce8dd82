package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/epinet/experiment"
	"github.com/katalvlaran/epinet/sir"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - failures
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - borders
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
	styleYes     = lipgloss.NewStyle().Foreground(colorGreen).Padding(0, 1)
	styleNo      = lipgloss.NewStyle().Foreground(colorRed).Padding(0, 1)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleBorder  = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	yes         = "yes"
	no          = "no"
)

// =============================================================================
// Formatting
// =============================================================================

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

func formatBool(b bool) string {
	if b {
		return yes
	}
	return no
}

// valueStyle colors yes/no cells and leaves numbers cyan.
func valueStyle(cell string) lipgloss.Style {
	switch cell {
	case yes:
		return styleYes
	case no:
		return styleNo
	}
	if _, err := strconv.ParseFloat(cell, 64); err == nil {
		return styleNumber
	}
	return styleValue
}

// =============================================================================
// Tables
// =============================================================================

// summaryRows flattens s into label/value pairs in display order.
func summaryRows(s experiment.Summary) [][]string {
	rows := [][]string{
		{"vertices", strconv.Itoa(s.Vertices)},
		{"edges", strconv.Itoa(s.Edges)},
		{"mean degree", formatFloat(s.MeanDegree)},
		{"symmetric", formatBool(s.Symmetric)},
		{"simple", formatBool(s.Simple)},
		{"avg clustering", formatFloat(s.AvgClustering)},
		{"pareto top", fmt.Sprintf("%s (%d vertices)", formatFloat(s.Pareto.Top), s.Pareto.TopCount)},
		{"pareto rest", formatFloat(s.Pareto.Rest)},
		{"pareto 80/20", formatBool(s.ParetoConforms)},
		{"components", strconv.Itoa(s.Components)},
		{"largest component", strconv.Itoa(s.LargestComponent)},
	}
	if s.PathLengthComputed {
		rows = append(rows, []string{"avg path length", formatFloat(s.AvgPathLength)})
	}

	return rows
}

// censusCell renders a census as "S=.. I=.. R=..".
func censusCell(c map[sir.State]int) string {
	out := ""
	for i, s := range sir.States {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%c=%d", s.String()[0], c[s])
	}
	return out
}

// renderSummary writes a two-column table describing one network.
func renderSummary(w io.Writer, title string, s experiment.Summary, extra ...[]string) error {
	rows := append(summaryRows(s), extra...)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("metric", "value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return styleLabel
			default:
				return valueStyle(rows[row][col])
			}
		})

	_, err := fmt.Fprintln(w, styleTitle.Render(title)+"\n"+t.Render())
	return err
}

// renderResults writes one row per run of an experiment plan.
func renderResults(w io.Writer, results []experiment.Result, withPaths bool) error {
	headers := []string{"experiment", "rep", "seed", "n", "edges", "clustering", "80/20", "components"}
	if withPaths {
		headers = append(headers, "path length")
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		row := []string{
			r.Experiment,
			strconv.Itoa(r.Repetition),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Summary.Vertices),
			strconv.Itoa(r.Summary.Edges),
			formatFloat(r.Summary.AvgClustering),
			formatBool(r.Summary.ParetoConforms),
			strconv.Itoa(r.Summary.Components),
		}
		if withPaths {
			row = append(row, formatFloat(r.Summary.AvgPathLength))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return styleValue
			default:
				return valueStyle(rows[row][col])
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// printSuccess writes a success line to w.
func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// printWarning writes a warning line to w.
func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}
