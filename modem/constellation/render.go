package constellation

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// ErrPlotSize is returned by [Plot] for canvases smaller than 3x3.
var ErrPlotSize = fmt.Errorf("constellation: %w: plot canvas too small", core.ErrInvalidInput)

// FormatSymbol renders s as "%+4.3f" for real symbols and as
// "%+4.3f ± j %4.3f" otherwise.
func FormatSymbol(s complex128, isReal bool) string {
	if isReal {
		return fmt.Sprintf("%+4.3f", real(s))
	}
	sign := '+'
	if imag(s) < 0 {
		sign = '-'
	}
	return fmt.Sprintf("%+4.3f %c j %4.3f", real(s), sign, math.Abs(imag(s)))
}

// BitString renders key as a K-character binary string.
func BitString(key, k int) string {
	s := strconv.FormatInt(int64(key), 2)
	for len(s) < k {
		s = "0" + s
	}
	return s
}

// WriteTable writes a two-column "Bits / Symbol" listing of t in key order.
func WriteTable(w io.Writer, t *Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	isReal := t.IsReal()

	fmt.Fprintln(tw, "Bits\tSymbol")
	fmt.Fprintln(tw, "----\t------")
	for key, p := range t.points {
		fmt.Fprintf(tw, "%s\t%s\n", BitString(key, t.k), FormatSymbol(p, isReal))
	}
	return tw.Flush()
}

// Plot draws t as an ASCII scatter on a width x height character canvas.
// Both axes span +-1.2 times the largest coordinate so the square aspect of
// QAM grids is kept. Each point is labelled with its decimal key; labels that
// would overwrite an earlier label are replaced by '*'.
func Plot(w io.Writer, t *Table, width, height int) error {
	if width < 3 || height < 3 {
		return fmt.Errorf("%w: %dx%d", ErrPlotSize, width, height)
	}

	limit := 0.0
	for _, p := range t.points {
		limit = math.Max(limit, math.Max(math.Abs(real(p)), math.Abs(imag(p))))
	}
	if limit == 0 {
		limit = 1
	}
	limit *= 1.2

	grid := make([][]byte, height)
	midRow, midCol := (height-1)/2, (width-1)/2
	for r := range grid {
		grid[r] = make([]byte, width)
		for c := range grid[r] {
			switch {
			case r == midRow && c == midCol:
				grid[r][c] = '+'
			case r == midRow:
				grid[r][c] = '-'
			case c == midCol:
				grid[r][c] = '|'
			default:
				grid[r][c] = ' '
			}
		}
	}

	taken := make([][]bool, height)
	for r := range taken {
		taken[r] = make([]bool, width)
	}

	for key, p := range t.points {
		col := int(math.Round((real(p) + limit) / (2 * limit) * float64(width-1)))
		row := int(math.Round((limit - imag(p)) / (2 * limit) * float64(height-1)))

		label := strconv.Itoa(key)
		if col+len(label) > width {
			col = width - len(label)
		}
		if col < 0 {
			grid[row][0] = '*'
			continue
		}

		clash := false
		for i := range label {
			if taken[row][col+i] {
				clash = true
				break
			}
		}
		if clash {
			grid[row][col] = '*'
			continue
		}
		for i := range label {
			grid[row][col+i] = label[i]
			taken[row][col+i] = true
		}
	}

	bw := bufio.NewWriter(w)
	for _, line := range grid {
		bw.Write(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
