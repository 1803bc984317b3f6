package animate

import "strings"

// Style selects how overflowing rows are animated.
type Style string

const (
	Paging    Style = "paging"
	Scrolling Style = "scrolling"
)

// PagingFrames splits row into consecutive width-sized pages, space-padding
// the final page so every frame is exactly width characters. A row that fits
// in the window yields a single unpadded frame.
func PagingFrames(row string, width int) []string {
	if len(row) <= width {
		return []string{row}
	}
	pages := (len(row) + width - 1) / width
	frames := make([]string, 0, pages)
	for i := 0; i < pages; i++ {
		start := i * width
		end := start + width
		if end > len(row) {
			end = len(row)
		}
		frame := row[start:end]
		if len(frame) < width {
			frame += strings.Repeat(" ", width-len(frame))
		}
		frames = append(frames, frame)
	}
	return frames
}

// ScrollingFrames slides a width-sized window over row one character at a
// time. A row that fits in the window yields a single frame.
func ScrollingFrames(row string, width int) []string {
	if len(row) <= width {
		return []string{row}
	}
	frames := make([]string, 0, len(row)-width+1)
	for i := 0; i+width <= len(row); i++ {
		frames = append(frames, row[i:i+width])
	}
	return frames
}

// Frames precomputes the frame sequence for every row in the given style.
func Frames(rows []string, width int, style Style) [][]string {
	framesets := make([][]string, 0, len(rows))
	for _, row := range rows {
		if style == Scrolling {
			framesets = append(framesets, ScrollingFrames(row, width))
		} else {
			framesets = append(framesets, PagingFrames(row, width))
		}
	}
	return framesets
}
