package model

import "time"

// TimestampLayout is the ISO-8601 layout used for the save timestamp (UTC, millisecond precision)
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// PersistedImage is the single image kept in local storage between sessions
type PersistedImage struct {
	DataURI    string
	SavedAtISO string
}

// SavedAt parses the stored timestamp
func (pi PersistedImage) SavedAt() (time.Time, error) {
	ts, err := time.Parse(TimestampLayout, pi.SavedAtISO)
	if err != nil {
		// Accept any RFC 3339 value written by other tools
		return time.Parse(time.RFC3339Nano, pi.SavedAtISO)
	}
	return ts, nil
}
