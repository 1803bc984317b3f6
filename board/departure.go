// Package board holds the departure model, the scheduling of upcoming
// departures relative to the current time, and their display formatting.
package board

import (
	"strconv"
	"strings"
	"time"
)

// Departure is one normalized train departure.
type Departure struct {
	Time        string // "HH:MM", 24-hour
	Type        string // "Local", "Express", or the raw odpt value
	Destination string
}

// Clock parses the departure time into hour and minute. ok is false when the
// time is not two integer fields or the minute is out of range; the hour is
// returned as-is, range checking is the scheduler's concern.
func (d Departure) Clock() (hour, minute int, ok bool) {
	hh, mm, found := strings.Cut(d.Time, ":")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// FutureDepartures orders departures by distance from now, walking the 24
// hour buckets forward from the current hour and wrapping past midnight.
// Entries keep their original order within an hour. Entries in the current
// hour whose minute is already behind now are skipped, and an entry whose
// hour matches no bucket (outside 0-23) is dropped outright.
func FutureDepartures(departures []Departure, now time.Time) []Departure {
	queue := make([]Departure, 0, len(departures))
	for offset := 0; offset < 24; offset++ {
		bucket := (now.Hour() + offset) % 24
		for _, d := range departures {
			hour, minute, ok := d.Clock()
			if !ok || hour != bucket {
				continue
			}
			if bucket == now.Hour() && offset == 0 && minute < now.Minute() {
				continue
			}
			queue = append(queue, d)
		}
	}
	return queue
}

// Trim caps the queue at limit entries. A queue already within the limit is
// returned unchanged.
func Trim(queue []Departure, limit int) []Departure {
	if limit < 0 {
		limit = 0
	}
	if len(queue) <= limit {
		return queue
	}
	return queue[:limit]
}
