package timetable

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pulsemap/pulse/pkg/operators"
)

// Document is the output artifact consumed by the frontend.
type Document struct {
	Meta      Meta               `json:"meta"`
	Operators operators.AllowList `json:"operators"`
	Trains    []*Train           `json:"trains"`
}

type Meta struct {
	Date        string `json:"date"`
	TotalTrains int    `json:"total_trains"`
	Source      string `json:"source"`
	Note        string `json:"note,omitempty"`
}

// Train is one effective journey: the single surviving schedule version for
// a train UID, geocoded and time ordered.
type Train struct {
	ID       string     `json:"id"`
	Operator string     `json:"op"`
	From     string     `json:"from"`
	To       string     `json:"to"`
	Path     []Waypoint `json:"path"`
}

// Waypoint is a geocoded, timestamped point, serialised compactly as
// [lng, lat, seconds].
type Waypoint struct {
	Lng     float64
	Lat     float64
	Seconds int
}

func (w Waypoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{w.Lng, w.Lat, w.Seconds})
}

func (w *Waypoint) UnmarshalJSON(data []byte) error {
	var triple [3]float64
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}

	w.Lng = triple[0]
	w.Lat = triple[1]
	w.Seconds = int(triple[2])

	return nil
}

// Write serialises the document compactly. The JSON is fully assembled in
// memory and moved into place with a rename so a failed run never leaves a
// truncated artifact behind.
func (d *Document) Write(path string) error {
	return d.write(path, false)
}

// WritePretty writes an indented copy for manual inspection.
func (d *Document) WritePretty(path string) error {
	return d.write(path, true)
}

func (d *Document) write(path string, pretty bool) error {
	var body []byte
	var err error
	if pretty {
		body, err = json.MarshalIndent(d, "", "  ")
	} else {
		body, err = json.Marshal(d)
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), fmt.Sprintf(".%s-*", filepath.Base(path)))
	if err != nil {
		return err
	}

	if _, err := tempFile.Write(body); err != nil {
		tempFile.Close()
		os.Remove(tempFile.Name())
		return err
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempFile.Name())
		return err
	}

	return os.Rename(tempFile.Name(), path)
}
