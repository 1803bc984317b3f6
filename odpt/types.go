package odpt

// TimetableEntry is one train record inside a station timetable object.
// Field names follow the odpt vocabulary used on the wire.
type TimetableEntry struct {
	DepartureTime      string   `json:"odpt:departureTime"`
	TrainType          string   `json:"odpt:trainType"`
	DestinationStation []string `json:"odpt:destinationStation"`
}

// StationTimetable is one element of a StationTimetable API response. The
// response carries a list of these; only the first element with a timetable
// object is relevant to the board.
type StationTimetable struct {
	Entries []TimetableEntry `json:"odpt:stationTimetableObject"`
}
