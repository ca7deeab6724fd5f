package dataframe

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	// DefaultShowRows is the number of rows ShowDefault renders
	DefaultShowRows = 20

	truncateWidth  = 20
	minColumnWidth = 3
)

// cells are measured in terminal columns, wide east asian characters
// taking two. Ambiguous characters take one whatever the locale.
var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// ShowDefault renders the first 20 rows with cells truncated to 20 characters
func (df *DataFrame) ShowDefault(w io.Writer) error {
	return df.Show(w, DefaultShowRows, true)
}

// Show renders the first n rows as a console table followed by an empty
// line. With truncate, cells longer than 20 characters are cut and cells
// are right aligned. Doubles print the way the JVM prints them.
func (df *DataFrame) Show(w io.Writer, n int, truncate bool) error {
	if n < 0 {
		n = 0
	}
	hasMore := len(df.rows) > n
	rows := df.rows
	if hasMore {
		rows = rows[:n]
	}

	// first line is the header
	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, truncateCells(df.schema.Names(), truncate))
	for _, row := range rows {
		line := make([]string, len(row))
		for i, value := range row {
			line[i] = formatValue(value)
		}
		cells = append(cells, truncateCells(line, truncate))
	}

	widths := make([]int, len(df.schema.Fields))
	for i := range widths {
		widths[i] = minColumnWidth
	}
	for _, line := range cells {
		for i, cell := range line {
			if width := cellWidth.StringWidth(cell); width > widths[i] {
				widths[i] = width
			}
		}
	}

	var sep strings.Builder
	for _, width := range widths {
		sep.WriteString("+")
		sep.WriteString(strings.Repeat("-", width))
	}
	sep.WriteString("+\n")

	bw := bufio.NewWriter(w)
	bw.WriteString(sep.String())
	for i, line := range cells {
		for j, cell := range line {
			bw.WriteString("|")
			bw.WriteString(pad(cell, widths[j], truncate))
		}
		bw.WriteString("|\n")
		if i == 0 {
			bw.WriteString(sep.String())
		}
	}
	bw.WriteString(sep.String())

	if hasMore {
		unit := "rows"
		if n == 1 {
			unit = "row"
		}
		fmt.Fprintf(bw, "only showing top %d %s\n", n, unit)
	}
	bw.WriteString("\n")

	return bw.Flush()
}

// PrintSchema writes the frame schema as a tree
func (df *DataFrame) PrintSchema(w io.Writer) error {
	return df.schema.Print(w)
}

func truncateCells(cells []string, truncate bool) []string {
	if !truncate {
		return cells
	}
	for i, cell := range cells {
		if utf8.RuneCountInString(cell) > truncateWidth {
			runes := []rune(cell)
			cells[i] = string(runes[:truncateWidth-3]) + "..."
		}
	}
	return cells
}

func pad(cell string, width int, right bool) string {
	padding := strings.Repeat(" ", width-cellWidth.StringWidth(cell))
	if right {
		return padding + cell
	}
	return cell + padding
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return formatSpecialFloat(v)
		}
		return formatDouble(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func formatSpecialFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case v > 0:
		return "Infinity"
	default:
		return "-Infinity"
	}
}

// formatDouble prints plain decimals for magnitudes in [1e-3, 1e7) and
// computerized scientific notation (1.0E10) outside it
func formatDouble(v float64) string {
	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp, _ := strconv.Atoi(exponent)
	return mantissa + "E" + strconv.Itoa(exp)
}
