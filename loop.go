// Package trainboard orchestrates the departure board refresh cycle:
// fetch a station timetable, schedule the upcoming departures, render them,
// animate overflowing destinations, wipe, repeat.
package trainboard

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/ratticon/trainboard/animate"
	"github.com/ratticon/trainboard/board"
	"github.com/ratticon/trainboard/config"
	"github.com/ratticon/trainboard/display"
	"github.com/ratticon/trainboard/odpt"
)

const (
	noDataMessage = "< NO DATA >"
	wipeRowDelay  = 50 * time.Millisecond
)

// Fetcher supplies raw timetable entries for one station and direction.
// odpt.Client is the production implementation; it never returns an error,
// only an empty list.
type Fetcher interface {
	FetchTimetable(ctx context.Context, station, direction string) []odpt.TimetableEntry
}

// Loop drives the board. All state is local to a cycle; the process can be
// killed between iterations without any shutdown handshake.
type Loop struct {
	cfg     *config.AppConfig
	fetcher Fetcher
	disp    display.Display

	now   func() time.Time
	sleep func(time.Duration)
}

func NewLoop(cfg *config.AppConfig, f Fetcher, d display.Display) *Loop {
	return &Loop{
		cfg:     cfg,
		fetcher: f,
		disp:    d,
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// Run executes refresh cycles until ctx is cancelled. Nothing inside a cycle
// is fatal: a failed fetch shows as the no-data screen and the next cycle
// starts over.
func (l *Loop) Run(ctx context.Context) {
	for ctx.Err() == nil {
		l.Cycle(ctx)
	}
}

// Cycle runs one fetch-render-animate-wipe pass.
func (l *Loop) Cycle(ctx context.Context) {
	refresh := time.Duration(l.cfg.RefreshSeconds) * time.Second

	entries := l.fetcher.FetchTimetable(ctx, l.cfg.Station, l.cfg.Direction)
	queue := board.FutureDepartures(odpt.Normalize(entries), l.now())

	log.Printf("next %d trains:", l.cfg.Display.Rows)
	if len(queue) == 0 {
		log.Printf("%s retrying in %d seconds...", noDataMessage, l.cfg.RefreshSeconds)
		l.disp.Clear()
		l.disp.WriteRow(noDataMessage, 1)
		l.sleep(refresh)
		l.wipe()
		return
	}

	next := board.Trim(queue, l.cfg.Display.Rows)
	l.render(next)

	log.Printf("%s display for %d seconds...", l.cfg.Animation, l.cfg.RefreshSeconds)
	animator := animate.Animator{Style: animate.Style(l.cfg.Animation), Sleep: l.sleep}
	win := animate.Window{
		StartCol: l.cfg.WindowStart,
		Width:    l.cfg.Display.Width - l.cfg.WindowStart,
	}
	animator.Run(l.disp, win, board.ScrollTexts(next), refresh)

	l.wipe()
}

// render clears the display and writes one formatted line per departure,
// truncated to the display width.
func (l *Loop) render(next []board.Departure) {
	l.disp.Clear()
	for i, d := range next {
		line := board.FormatLine(d)
		log.Print(line)
		if len(line) > l.cfg.Display.Width {
			line = line[:l.cfg.Display.Width]
		}
		l.disp.WriteRow(line, i+1)
	}
}

// wipe blanks rows one at a time for a visible transition before the next
// fetch. Direction "up" clears from the bottom row toward the top.
func (l *Loop) wipe() {
	blank := strings.Repeat(" ", l.cfg.Display.Width)
	for i := 1; i <= l.cfg.Display.Rows; i++ {
		row := i
		if l.cfg.Wipe == "up" {
			row = l.cfg.Display.Rows - i + 1
		}
		l.disp.WriteRow(blank, row)
		l.sleep(wipeRowDelay)
	}
}
