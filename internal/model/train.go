package model

// Train is one timetable entry in the `trains` table.  Departure time is
// stored as an opaque string (typically ISO 8601) and never interpreted by
// the backend.
type Train struct {
	ID       uint64  // trains.id
	FromCity string  // trains.from_city
	ToCity   string  // trains.to_city
	Time     string  // trains.departure_time
	Price    float64 // trains.price (non-negative)
}
