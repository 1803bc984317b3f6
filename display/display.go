package display

// Display is the capability the board needs from a character display.
// Rows are 1-indexed to match HD44780 row numbering; column offsets are
// 0-indexed. Clear resets every row before new content is written.
type Display interface {
	Clear()
	WriteRow(text string, row int)
	WriteAt(text string, row, col int)
}
