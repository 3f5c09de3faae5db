package cif

import (
	"strconv"
	"strings"
)

// ParseWTTTime parses a working timetable time token (HHMM with an optional
// trailing H half-minute marker) into seconds since midnight. Malformed or
// empty tokens report ok=false rather than an error; a missing time is a
// normal per-stop condition in the feed.
func ParseWTTTime(token string) (seconds int, ok bool) {
	token = strings.TrimSpace(token)
	if len(token) < 4 {
		return 0, false
	}

	hour, err := strconv.Atoi(token[0:2])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(token[2:4])
	if err != nil {
		return 0, false
	}

	seconds = hour*3600 + minute*60
	if len(token) > 4 && token[4] == 'H' {
		seconds += 30
	}

	return seconds, true
}

// LocationTime resolves the representative time of a scheduled call. A stop
// is primarily characterised by when the train leaves it, falling back to
// when it arrives, falling back to a non-stopping pass time.
func LocationTime(location ScheduleLocation) (int, bool) {
	if seconds, ok := ParseWTTTime(location.Departure); ok {
		return seconds, true
	}
	if seconds, ok := ParseWTTTime(location.Arrival); ok {
		return seconds, true
	}
	return ParseWTTTime(location.Pass)
}
