package odpt

import (
	"log"
	"strings"

	"github.com/ratticon/trainboard/board"
)

// ExtractTimetable returns the entries of the first station timetable object
// found in the response, or an empty list when no element carries one.
func ExtractTimetable(payload []StationTimetable) []TimetableEntry {
	var entries []TimetableEntry
	for _, item := range payload {
		if item.Entries != nil {
			entries = item.Entries
			break
		}
	}
	log.Printf("got %d train times", len(entries))
	return entries
}

// Normalize maps raw timetable entries onto board departures.
//
// Train types are classified by substring so that variants like
// "Tokyu.CommuterExpress" still land in the Express bucket; anything
// unrecognized passes through verbatim. The destination is the last element
// of the destination list with its namespace prefix stripped.
func Normalize(entries []TimetableEntry) []board.Departure {
	departures := make([]board.Departure, 0, len(entries))
	for _, e := range entries {
		trainType := e.TrainType
		if strings.Contains(e.TrainType, "Local") {
			trainType = "Local"
		} else if strings.Contains(e.TrainType, "Express") {
			trainType = "Express"
		}

		var dest string
		if n := len(e.DestinationStation); n > 0 {
			segments := strings.Split(e.DestinationStation[n-1], ".")
			dest = segments[len(segments)-1]
		}

		departures = append(departures, board.Departure{
			Time:        e.DepartureTime,
			Type:        trainType,
			Destination: dest,
		})
	}
	return departures
}
