package display

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Console renders the board to a writer, redrawing the full board after each
// change. It stands in for the LCD during development and -once smoke runs.
type Console struct {
	width int
	rows  []string
	out   io.Writer
}

// NewConsole creates a console display with the given geometry, writing to
// stdout.
func NewConsole(width, rows int) *Console {
	return &Console{
		width: width,
		rows:  make([]string, rows),
		out:   os.Stdout,
	}
}

func (c *Console) Clear() {
	for i := range c.rows {
		c.rows[i] = ""
	}
	c.render()
}

func (c *Console) WriteRow(text string, row int) {
	c.WriteAt(text, row, 0)
}

func (c *Console) WriteAt(text string, row, col int) {
	if row < 1 || row > len(c.rows) {
		return
	}
	buf := []byte(pad(c.rows[row-1], c.width))
	for i := 0; i < len(text) && col+i < c.width; i++ {
		buf[col+i] = text[i]
	}
	c.rows[row-1] = string(buf)
	c.render()
}

func (c *Console) render() {
	border := "+" + strings.Repeat("-", c.width) + "+"
	fmt.Fprintln(c.out, border)
	for _, row := range c.rows {
		fmt.Fprintf(c.out, "|%s|\n", pad(row, c.width))
	}
	fmt.Fprintln(c.out, border)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
