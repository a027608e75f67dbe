package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/born-ml/gograd/internal/autodiff"
	"github.com/born-ml/gograd/internal/expr"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)

	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

// newPlainTable creates a table whose first column is right aligned.
func newPlainTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row == lgtable.HeaderRow {
				return headerRowStyle
			}
			if row%2 == 0 {
				s = oddRowStyle
			} else {
				s = evenRowStyle
			}
			if col == 0 {
				return s.Align(lipgloss.Right)
			}
			return s.Align(lipgloss.Left)
		})
}

// formatValue prints v with up to 6 decimal digits, trailing zeros removed.
func formatValue(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return humanize.FtoaWithDigits(v, 6)
}

func printCatalog(w io.Writer) error {
	table := newPlainTable().Headers("Expression", "Formula")
	for _, name := range expr.Names() {
		e, err := expr.Lookup(name)
		if err != nil {
			return err
		}
		table.Row(e.Name, e.Formula)
	}
	_, err := fmt.Fprintln(w, table.Render())
	return err
}

func printResult(w io.Writer, res *expr.Result, order []autodiff.Function) error {
	steps := newPlainTable().Headers("Step", "Value")
	steps.Row("x", formatValue(res.X))
	for _, s := range res.Steps {
		steps.Row(s.Label, formatValue(s.Value))
	}

	backward := newPlainTable().Headers("#", "Function")
	for i, fn := range order {
		backward.Row(humanize.Comma(int64(i+1)), fn.Name())
	}

	summary := newPlainTable()
	summary.Row("y", formatValue(res.Y))
	summary.Row("dy/dx", formatValue(res.Grad))

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n%s\n%s\n%s\n",
		titleStyle.Render("y = "+res.Expression.Formula+" at x = "+formatValue(res.X)),
		steps.Render(),
		titleStyle.Render("Backward order"),
		backward.Render(),
		titleStyle.Render("Result"),
		summary.Render())
	return err
}
