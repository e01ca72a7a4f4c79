package availability

// Query is the requested rental window. Times are optional; a date-only
// query asks about the full days.
type Query struct {
	StartDate string
	EndDate   string
	StartTime *string
	EndTime   *string
}
