package calculation

import "time"

const isoDateLayout = "2006-01-02"

// parseISODate parses an ISO calendar date (YYYY-MM-DD).
func parseISODate(s string) (time.Time, error) {
	return time.Parse(isoDateLayout, s)
}

// monthOffset returns the number of whole months between the start date and
// the target date string. An empty or unparsable target yields -1, which the
// engines interpret as "already elapsed".
func monthOffset(start time.Time, target string) int {
	if target == "" {
		return -1
	}
	t, err := parseISODate(target)
	if err != nil {
		return -1
	}
	return (t.Year()-start.Year())*12 + int(t.Month()) - int(start.Month())
}

// monthLabel formats a simulated month for logs and summaries.
func monthLabel(t time.Time) string {
	return t.Format("Jan 2006")
}
