// Package odpt handles fetching and normalizing ODPT StationTimetable feeds.
//
// The client converts all transport-level failures into an empty result so
// the board falls through to its no-data screen and retries on the next
// refresh; nothing at this boundary is fatal.
package odpt
