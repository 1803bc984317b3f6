package board

import (
	"fmt"
	"strings"
)

// FormatLine renders a departure as a board line: abbreviated train type,
// departure time, upper-cased destination. Truncation to the display width is
// left to the caller.
func FormatLine(d Departure) string {
	shortType := d.Type
	switch d.Type {
	case "Express":
		shortType = "EXP"
	case "Local":
		shortType = "Loc"
	}
	return fmt.Sprintf("%s %s %s", shortType, d.Time, strings.ToUpper(d.Destination))
}

// ScrollText returns the destination as shown in the animation window.
func ScrollText(d Departure) string {
	return strings.ToUpper(d.Destination)
}

// ScrollTexts returns the animation window text for each departure in order.
func ScrollTexts(queue []Departure) []string {
	texts := make([]string, 0, len(queue))
	for _, d := range queue {
		texts = append(texts, ScrollText(d))
	}
	return texts
}
