package animate

import "time"

// TickInterval is how long each animation frame stays on screen.
const TickInterval = 1500 * time.Millisecond

// Window is the sub-region of the display reserved for animated text,
// distinct from the static left-hand region showing type and time.
type Window struct {
	StartCol int
	Width    int
}

// Writer is the subset of the display capability the animator needs.
// Rows are 1-indexed.
type Writer interface {
	WriteAt(text string, row, col int)
}

// Animator replays precomputed frame sequences into a display window.
type Animator struct {
	Style Style
	Sleep func(time.Duration) // nil means time.Sleep
}

// Run animates rows inside the window for the given duration. Elapsed time
// is counted in ticks rather than read from a wall clock, so a slow display
// write stretches the animation instead of skipping frames. Each row wraps
// through its own frame sequence independently.
func (a Animator) Run(w Writer, win Window, rows []string, duration time.Duration) {
	framesets := Frames(rows, win.Width, a.Style)
	cursors := make([]int, len(framesets))
	sleep := a.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	for elapsed := time.Duration(0); elapsed < duration; elapsed += TickInterval {
		for i, frames := range framesets {
			if cursors[i] >= len(frames) {
				cursors[i] = 0
			}
			w.WriteAt(frames[cursors[i]], i+1, win.StartCol)
			cursors[i]++
		}
		sleep(TickInterval)
	}
}
