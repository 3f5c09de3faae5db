package cif

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/rs/zerolog/log"
)

// maxLineSize allows for long schedules with many calling points; the
// default bufio limit of 64KB is too small for some freight workings.
const maxLineSize = 4 * 1024 * 1024

// ParseSchedules reads a line-delimited SCHEDULE feed. Lines that fail to
// parse, are not JsonScheduleV1 records, or carry no UID or locations are
// skipped; only a broken reader aborts the run.
func ParseSchedules(reader io.Reader) ([]*Schedule, error) {
	var schedules []*Schedule

	var skippedLines, skippedEmpty int

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	for scanner.Scan() {
		var record ScheduleRecord
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			skippedLines += 1
			continue
		}

		// The feed interleaves timetable metadata & association records
		if record.Schedule == nil {
			continue
		}

		schedule := record.Schedule
		if schedule.TrainUID == "" || len(schedule.Segment.Locations) == 0 {
			skippedEmpty += 1
			continue
		}

		schedules = append(schedules, schedule)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	log.Info().
		Int("schedules", len(schedules)).
		Int("unparseable", skippedLines).
		Int("empty", skippedEmpty).
		Msg("Parsed SCHEDULE feed")

	return schedules, nil
}
